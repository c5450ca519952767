package service_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"ocrbatch/internal/domain"
	"ocrbatch/internal/service"
	"ocrbatch/mocks"
)

func testRef(t *testing.T, name string) domain.DocumentReference {
	t.Helper()
	return domain.DocumentReference{
		Key:       "docs/" + name,
		LocalPath: filepath.Join(t.TempDir(), name),
	}
}

func TestConvertService_WritesMarkdownAndImages(t *testing.T) {
	engine := new(mocks.MockConversionEngine)
	outputRoot := t.TempDir()
	svc := service.NewConvertService(engine, outputRoot)
	ref := testRef(t, "report.pdf")

	engine.On("Convert", mock.Anything, ref.LocalPath).Return(&domain.ConversionResult{
		Markdown: "# Quarterly Report\n\nNumbers went up.",
		Images: map[string][]byte{
			"page_0001.jpg": {0xFF, 0xD8, 0xFF},
			"page_0002.jpg": {0xFF, 0xD8, 0xFE},
		},
	}, nil).Once()

	outcome := svc.ConvertAndPersist(context.Background(), ref)

	assert.True(t, outcome.OK())
	assert.Equal(t, filepath.Join(outputRoot, "report"), outcome.OutputDir)

	md, err := os.ReadFile(filepath.Join(outputRoot, "report", "report.md"))
	assert.NoError(t, err)
	assert.Equal(t, "# Quarterly Report\n\nNumbers went up.", string(md))

	img, err := os.ReadFile(filepath.Join(outputRoot, "report", "page_0001.jpg"))
	assert.NoError(t, err)
	assert.Equal(t, []byte{0xFF, 0xD8, 0xFF}, img)

	engine.AssertExpectations(t)
}

func TestConvertService_OutputPathIsDeterministicAcrossRuns(t *testing.T) {
	engine := new(mocks.MockConversionEngine)
	outputRoot := t.TempDir()
	svc := service.NewConvertService(engine, outputRoot)
	ref := testRef(t, "report.pdf")

	engine.On("Convert", mock.Anything, ref.LocalPath).Return(&domain.ConversionResult{
		Markdown: "first pass",
		Images:   map[string][]byte{},
	}, nil).Once()
	first := svc.ConvertAndPersist(context.Background(), ref)

	engine.On("Convert", mock.Anything, ref.LocalPath).Return(&domain.ConversionResult{
		Markdown: "second pass",
		Images:   map[string][]byte{},
	}, nil).Once()
	second := svc.ConvertAndPersist(context.Background(), ref)

	assert.True(t, first.OK())
	assert.True(t, second.OK())
	assert.Equal(t, first.OutputDir, second.OutputDir)

	// Re-processing fully overwrites the prior output.
	md, err := os.ReadFile(filepath.Join(outputRoot, "report", "report.md"))
	assert.NoError(t, err)
	assert.Equal(t, "second pass", string(md))
}

func TestConvertService_EngineFailureYieldsConvertOutcome(t *testing.T) {
	engine := new(mocks.MockConversionEngine)
	outputRoot := t.TempDir()
	svc := service.NewConvertService(engine, outputRoot)
	ref := testRef(t, "broken.pdf")

	engine.On("Convert", mock.Anything, ref.LocalPath).
		Return(nil, errors.New("malformed xref table")).Once()

	outcome := svc.ConvertAndPersist(context.Background(), ref)

	assert.False(t, outcome.OK())
	assert.Equal(t, domain.FailureConvert, outcome.Kind)
	assert.ErrorContains(t, outcome.Err, "docs/broken.pdf")

	_, err := os.Stat(filepath.Join(outputRoot, "broken", "broken.md"))
	assert.True(t, os.IsNotExist(err))
	engine.AssertExpectations(t)
}

func TestConvertService_InvokesEngineOncePerDocument(t *testing.T) {
	engine := new(mocks.MockConversionEngine)
	svc := service.NewConvertService(engine, t.TempDir())
	ref := testRef(t, "single.pdf")

	engine.On("Convert", mock.Anything, ref.LocalPath).Return(&domain.ConversionResult{
		Markdown: "body",
		Images:   map[string][]byte{},
	}, nil).Once()

	svc.ConvertAndPersist(context.Background(), ref)

	engine.AssertNumberOfCalls(t, "Convert", 1)
}

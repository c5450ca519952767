package service

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"ocrbatch/internal/domain"
	"ocrbatch/internal/port"
)

// ConvertService runs the conversion engine over one document and persists
// its outputs.
type ConvertService interface {
	// ConvertAndPersist converts the referenced document and writes its
	// images plus a <base>.md markdown file into outputRoot/<base>/.
	// Failures are reported in the outcome, never raised; outputs from a
	// prior run are overwritten.
	ConvertAndPersist(ctx context.Context, ref domain.DocumentReference) domain.ConversionOutcome
}

type convertService struct {
	engine     port.ConversionEngine
	outputRoot string
}

// NewConvertService creates a ConvertService around a single long-lived
// engine. The engine's exclusive accelerator state is the reason the whole
// batch shares one instance.
func NewConvertService(engine port.ConversionEngine, outputRoot string) ConvertService {
	return &convertService{
		engine:     engine,
		outputRoot: outputRoot,
	}
}

func (s *convertService) ConvertAndPersist(ctx context.Context, ref domain.DocumentReference) domain.ConversionOutcome {
	base := ref.BaseName()
	outDir := filepath.Join(s.outputRoot, base)
	outcome := domain.ConversionOutcome{Ref: ref, OutputDir: outDir}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		outcome.Kind = domain.FailureWrite
		outcome.Err = fmt.Errorf("creating output directory %s: %w", outDir, err)
		return outcome
	}

	log.Printf("convertService.ConvertAndPersist: processing %s", ref.LocalPath)
	result, err := s.engine.Convert(ctx, ref.LocalPath)
	if err != nil {
		outcome.Kind = domain.FailureConvert
		outcome.Err = fmt.Errorf("converting %s: %w", ref.Key, err)
		return outcome
	}

	// Best effort: a failed image write does not stop the remaining
	// outputs, the document is just reported as a write failure.
	var writeErr error
	for name, data := range result.Images {
		imagePath := filepath.Join(outDir, name)
		if err := os.WriteFile(imagePath, data, 0o644); err != nil {
			log.Printf("convertService.ConvertAndPersist: writing image %s failed: %v", imagePath, err)
			if writeErr == nil {
				writeErr = fmt.Errorf("writing image %s: %w", name, err)
			}
		}
	}

	mdPath := filepath.Join(outDir, base+".md")
	if err := os.WriteFile(mdPath, []byte(result.Markdown), 0o644); err != nil {
		log.Printf("convertService.ConvertAndPersist: writing markdown %s failed: %v", mdPath, err)
		if writeErr == nil {
			writeErr = fmt.Errorf("writing markdown %s: %w", mdPath, err)
		}
	}

	if writeErr != nil {
		outcome.Kind = domain.FailureWrite
		outcome.Err = writeErr
		return outcome
	}

	log.Printf("convertService.ConvertAndPersist: saved result to %s", mdPath)
	return outcome
}

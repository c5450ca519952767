package fitz

import (
	"bytes"
	"context"
	"fmt"
	"image/jpeg"
	"strings"

	gofitz "github.com/gen2brain/go-fitz"

	"ocrbatch/internal/config"
	"ocrbatch/internal/domain"
	"ocrbatch/internal/port"
)

type fitzEngine struct {
	cfg    config.EngineConfig
	closed bool
}

// NewEngine creates a MuPDF-backed ConversionEngine. The engine is meant to
// live for the whole batch; Close invalidates it. The Languages hint in cfg
// is part of the engine contract but the MuPDF backend does not consume it:
// text extraction here is layout-based, not model-based.
func NewEngine(cfg config.EngineConfig) (port.ConversionEngine, error) {
	if cfg.ImageQuality <= 0 || cfg.ImageQuality > 100 {
		return nil, fmt.Errorf("image quality %d out of range (1-100)", cfg.ImageQuality)
	}
	return &fitzEngine{cfg: cfg}, nil
}

// Convert renders every page of the document to markdown text plus one JPEG
// per page, keyed page_0001.jpg, page_0002.jpg, ...
func (e *fitzEngine) Convert(ctx context.Context, localPath string) (*domain.ConversionResult, error) {
	if e.closed {
		return nil, domain.ErrEngineClosed
	}

	doc, err := gofitz.New(localPath)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", localPath, err)
	}
	defer doc.Close()

	pageCount := doc.NumPage()
	if pageCount == 0 {
		return nil, fmt.Errorf("%s: %w", localPath, domain.ErrEmptyDocument)
	}

	var text strings.Builder
	images := make(map[string][]byte, pageCount)

	for pageNum := 0; pageNum < pageCount; pageNum++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		pageText, err := doc.Text(pageNum)
		if err != nil {
			return nil, fmt.Errorf("extracting text from page %d: %w", pageNum+1, err)
		}
		if pageNum > 0 {
			text.WriteString("\n\n")
		}
		text.WriteString(strings.TrimRight(pageText, "\n"))

		img, err := doc.Image(pageNum)
		if err != nil {
			return nil, fmt.Errorf("rendering page %d: %w", pageNum+1, err)
		}
		var buf bytes.Buffer
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: e.cfg.ImageQuality}); err != nil {
			return nil, fmt.Errorf("encoding page %d: %w", pageNum+1, err)
		}
		images[fmt.Sprintf("page_%04d.jpg", pageNum+1)] = buf.Bytes()
	}

	return &domain.ConversionResult{
		Markdown: text.String(),
		Images:   images,
		Metadata: doc.Metadata(),
	}, nil
}

func (e *fitzEngine) Close() error {
	e.closed = true
	return nil
}

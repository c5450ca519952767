package port

import (
	"context"

	"ocrbatch/internal/domain"
)

// ConversionEngine abstracts the document conversion pipeline. An engine is
// constructed once per process (model load is expensive) and holds exclusive
// accelerator state, so implementations are not safe for concurrent use.
type ConversionEngine interface {
	Convert(ctx context.Context, localPath string) (*domain.ConversionResult, error)
	Close() error
}

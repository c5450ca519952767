package accelerator

import (
	"fmt"

	"ocrbatch/internal/accelerator/hostmem"
	"ocrbatch/internal/accelerator/noop"
	"ocrbatch/internal/config"
	"ocrbatch/internal/domain"
	"ocrbatch/internal/port"
)

// New selects an Accelerator implementation from config.
func New(cfg *config.AcceleratorConfig) (port.Accelerator, error) {
	switch cfg.Provider {
	case "hostmem":
		return hostmem.NewAccelerator(cfg.MemoryBudgetMB), nil
	case "noop", "":
		return noop.NewAccelerator(), nil
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownAccelerator, cfg.Provider)
	}
}

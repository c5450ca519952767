package noop

import "ocrbatch/internal/port"

type noopAccelerator struct{}

// NewAccelerator creates an Accelerator for deployments without one. The
// resource guard treats it as absent and never reclaims.
func NewAccelerator() port.Accelerator {
	return noopAccelerator{}
}

func (noopAccelerator) Name() string { return "noop" }

func (noopAccelerator) Available() bool { return false }

func (noopAccelerator) MemoryStats() port.MemoryStats { return port.MemoryStats{} }

func (noopAccelerator) ReleaseCache() {}

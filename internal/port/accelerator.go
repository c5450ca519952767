package port

// MemoryStats is a point-in-time snapshot of the accelerator memory pool.
type MemoryStats struct {
	ReservedBytes uint64
	TotalBytes    uint64
}

// UsageRatio returns reserved/total, or 0 when no capacity is reported.
func (m MemoryStats) UsageRatio() float64 {
	if m.TotalBytes == 0 {
		return 0
	}
	return float64(m.ReservedBytes) / float64(m.TotalBytes)
}

// Accelerator abstracts the device memory pool the conversion engine runs on.
type Accelerator interface {
	Name() string
	// Available reports whether an accelerator is present; when false the
	// resource guard is a no-op.
	Available() bool
	MemoryStats() MemoryStats
	// ReleaseCache drops any cached allocations it can. Best effort: it may
	// free nothing if live references remain.
	ReleaseCache()
}

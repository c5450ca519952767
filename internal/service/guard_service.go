package service

import (
	"log"
	"runtime"

	"ocrbatch/internal/port"
)

// DefaultUsageThreshold is the reserved/total ratio at which the guard
// reclaims, roughly two thirds of capacity.
const DefaultUsageThreshold = 0.66

// GuardService watches accelerator memory pressure between conversions.
type GuardService interface {
	// CheckAndReclaim samples the accelerator's memory and, above the
	// threshold, runs one reclamation pass. Never blocks, retries, or
	// fails; reclamation may free nothing if the engine holds live
	// references.
	CheckAndReclaim()
}

type guardService struct {
	accelerator port.Accelerator
	threshold   float64
}

// NewGuardService creates a GuardService. A non-positive threshold falls
// back to DefaultUsageThreshold.
func NewGuardService(accelerator port.Accelerator, threshold float64) GuardService {
	if threshold <= 0 {
		threshold = DefaultUsageThreshold
	}
	return &guardService{
		accelerator: accelerator,
		threshold:   threshold,
	}
}

func (s *guardService) CheckAndReclaim() {
	if !s.accelerator.Available() {
		return
	}

	stats := s.accelerator.MemoryStats()
	ratio := stats.UsageRatio()
	if ratio < s.threshold {
		return
	}

	log.Printf("guardService.CheckAndReclaim: memory usage high (%.2f%%), reclaiming", ratio*100)
	runtime.GC()
	s.accelerator.ReleaseCache()

	after := s.accelerator.MemoryStats()
	log.Printf("guardService.CheckAndReclaim: memory after reclaim: %.2f%%", after.UsageRatio()*100)
}

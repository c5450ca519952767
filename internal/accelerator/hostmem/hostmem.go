package hostmem

import (
	"runtime"
	"runtime/debug"

	"ocrbatch/internal/port"
)

type hostmemAccelerator struct {
	totalBytes uint64
}

// NewAccelerator creates an Accelerator that treats the process heap as the
// engine's memory pool, measured against a fixed budget in MB. Reserved is
// the memory the runtime has obtained from the OS for the heap, which is
// the host analogue of a device's reserved pool.
func NewAccelerator(memoryBudgetMB int64) port.Accelerator {
	return &hostmemAccelerator{
		totalBytes: uint64(memoryBudgetMB) * 1024 * 1024,
	}
}

func (a *hostmemAccelerator) Name() string { return "hostmem" }

func (a *hostmemAccelerator) Available() bool { return true }

func (a *hostmemAccelerator) MemoryStats() port.MemoryStats {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	return port.MemoryStats{
		ReservedBytes: ms.HeapSys,
		TotalBytes:    a.totalBytes,
	}
}

func (a *hostmemAccelerator) ReleaseCache() {
	debug.FreeOSMemory()
}

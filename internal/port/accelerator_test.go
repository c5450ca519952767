package port_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ocrbatch/internal/port"
)

func TestMemoryStats_UsageRatio(t *testing.T) {
	assert.InDelta(t, 0.5, port.MemoryStats{ReservedBytes: 50, TotalBytes: 100}.UsageRatio(), 0.001)
	assert.InDelta(t, 0.9, port.MemoryStats{ReservedBytes: 90, TotalBytes: 100}.UsageRatio(), 0.001)
	assert.Zero(t, port.MemoryStats{}.UsageRatio())
	assert.Zero(t, port.MemoryStats{ReservedBytes: 10}.UsageRatio())
}

package mocks

import (
	"github.com/stretchr/testify/mock"

	"ocrbatch/internal/port"
)

// MockAccelerator is a mock implementation of port.Accelerator.
type MockAccelerator struct {
	mock.Mock
}

func (m *MockAccelerator) Name() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockAccelerator) Available() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *MockAccelerator) MemoryStats() port.MemoryStats {
	args := m.Called()
	return args.Get(0).(port.MemoryStats)
}

func (m *MockAccelerator) ReleaseCache() {
	m.Called()
}

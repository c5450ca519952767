package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"ocrbatch/internal/domain"
)

// MockConversionEngine is a mock implementation of port.ConversionEngine.
type MockConversionEngine struct {
	mock.Mock
}

func (m *MockConversionEngine) Convert(ctx context.Context, localPath string) (*domain.ConversionResult, error) {
	args := m.Called(ctx, localPath)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ConversionResult), args.Error(1)
}

func (m *MockConversionEngine) Close() error {
	args := m.Called()
	return args.Error(0)
}

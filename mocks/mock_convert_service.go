package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"ocrbatch/internal/domain"
)

// MockConvertService is a mock implementation of service.ConvertService.
type MockConvertService struct {
	mock.Mock
}

func (m *MockConvertService) ConvertAndPersist(ctx context.Context, ref domain.DocumentReference) domain.ConversionOutcome {
	args := m.Called(ctx, ref)
	return args.Get(0).(domain.ConversionOutcome)
}

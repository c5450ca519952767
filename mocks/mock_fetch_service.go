package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"ocrbatch/internal/domain"
)

// MockFetchService is a mock implementation of service.FetchService.
type MockFetchService struct {
	mock.Mock
}

func (m *MockFetchService) DiscoverAndFetch(ctx context.Context) ([]domain.DocumentReference, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DocumentReference), args.Error(1)
}

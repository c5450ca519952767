package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"ocrbatch/internal/port"
)

// MockObjectStorage is a mock implementation of port.ObjectStorage.
type MockObjectStorage struct {
	mock.Mock
}

func (m *MockObjectStorage) ListObjects(ctx context.Context, bucket, prefix string) ([]port.ObjectInfo, error) {
	args := m.Called(ctx, bucket, prefix)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]port.ObjectInfo), args.Error(1)
}

func (m *MockObjectStorage) DownloadToFile(ctx context.Context, bucket, key, localPath string) error {
	args := m.Called(ctx, bucket, key, localPath)
	return args.Error(0)
}

package mocks

import "github.com/stretchr/testify/mock"

// MockGuardService is a mock implementation of service.GuardService.
type MockGuardService struct {
	mock.Mock
}

func (m *MockGuardService) CheckAndReclaim() {
	m.Called()
}

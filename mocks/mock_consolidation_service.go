package mocks

import (
	"github.com/stretchr/testify/mock"
)

// MockConsolidationService is a mock implementation of service.ConsolidationService.
type MockConsolidationService struct {
	mock.Mock
}

func (m *MockConsolidationService) Consolidate() (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}

func (m *MockConsolidationService) Separate() ([]string, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

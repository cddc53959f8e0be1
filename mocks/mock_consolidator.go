package mocks

import (
	"github.com/stretchr/testify/mock"
)

// MockConsolidator is a mock implementation of port.Consolidator.
type MockConsolidator struct {
	mock.Mock
}

func (m *MockConsolidator) Consolidate() (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}

func (m *MockConsolidator) Separate() ([]string, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

package mocks

import (
	"io"

	"github.com/stretchr/testify/mock"
)

// MockSheetReader is a mock implementation of port.SheetReader.
type MockSheetReader struct {
	mock.Mock
}

func (m *MockSheetReader) Rows(r io.Reader) ([][]string, error) {
	args := m.Called(r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([][]string), args.Error(1)
}

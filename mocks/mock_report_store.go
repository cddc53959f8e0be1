package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"finloom/internal/domain"
)

// MockReportStore is a mock implementation of port.ReportStore.
type MockReportStore struct {
	mock.Mock
}

func (m *MockReportStore) Save(ctx context.Context, period time.Time, kind domain.ReportKind, report interface{}) error {
	args := m.Called(ctx, period, kind, report)
	return args.Error(0)
}

func (m *MockReportStore) Load(ctx context.Context, period time.Time, kind domain.ReportKind, dest interface{}) (bool, error) {
	args := m.Called(ctx, period, kind, dest)
	return args.Bool(0), args.Error(1)
}

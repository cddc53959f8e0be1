package mocks

import (
	"context"
	"encoding/json"

	"github.com/stretchr/testify/mock"
)

// MockReportService is a mock implementation of service.ReportService.
type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) Cogs(ctx context.Context, month string) (string, error) {
	args := m.Called(ctx, month)
	return args.String(0), args.Error(1)
}

func (m *MockReportService) Pal1(ctx context.Context, month string) (string, error) {
	args := m.Called(ctx, month)
	return args.String(0), args.Error(1)
}

func (m *MockReportService) TradingPl(ctx context.Context, month string) (string, error) {
	args := m.Called(ctx, month)
	return args.String(0), args.Error(1)
}

func (m *MockReportService) Pal2(ctx context.Context, month string) (string, error) {
	args := m.Called(ctx, month)
	return args.String(0), args.Error(1)
}

func (m *MockReportService) FinAnalysis(ctx context.Context, month string) (string, error) {
	args := m.Called(ctx, month)
	return args.String(0), args.Error(1)
}

func (m *MockReportService) SalesSummary(ctx context.Context, month string) (string, error) {
	args := m.Called(ctx, month)
	return args.String(0), args.Error(1)
}

func (m *MockReportService) Fetch(ctx context.Context, kind, month string) (json.RawMessage, error) {
	args := m.Called(ctx, kind, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}

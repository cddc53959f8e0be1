package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"finloom/internal/domain"
	"finloom/internal/service"
)

// MockLedgerService is a mock implementation of service.LedgerService.
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) Ingest(ctx context.Context, category service.LedgerCategory, input service.LedgerUploadInput) (*domain.Ledger, error) {
	args := m.Called(ctx, category, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Ledger), args.Error(1)
}

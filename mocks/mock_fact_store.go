package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"finloom/internal/domain"
)

// MockFactStore is a mock implementation of port.FactStore.
type MockFactStore struct {
	mock.Mock
}

func (m *MockFactStore) GetAll(ctx context.Context, period time.Time) ([]domain.Fact, error) {
	args := m.Called(ctx, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Fact), args.Error(1)
}

func (m *MockFactStore) HasFacts(ctx context.Context, period time.Time) (bool, error) {
	args := m.Called(ctx, period)
	return args.Bool(0), args.Error(1)
}

func (m *MockFactStore) Upsert(ctx context.Context, fact *domain.Fact) error {
	args := m.Called(ctx, fact)
	return args.Error(0)
}

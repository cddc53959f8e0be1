package port

import (
	"context"
	"time"

	"finloom/internal/domain"
)

// FactStore is the keyed ledger-fact store. Facts are addressed by
// (period, kind, category) with upsert semantics.
type FactStore interface {
	// GetAll returns every fact stored for the period across all kinds.
	GetAll(ctx context.Context, period time.Time) ([]domain.Fact, error)
	// HasFacts reports whether any fact exists for the period.
	HasFacts(ctx context.Context, period time.Time) (bool, error)
	Upsert(ctx context.Context, fact *domain.Fact) error
}

package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"finloom/internal/domain"
	"finloom/internal/port"
)

type factRepo struct {
	db *sqlx.DB
}

// NewFactRepo creates a new PostgreSQL-backed FactStore.
func NewFactRepo(db *sqlx.DB) port.FactStore {
	return &factRepo{db: db}
}

func (r *factRepo) GetAll(ctx context.Context, period time.Time) ([]domain.Fact, error) {
	var facts []domain.Fact
	err := r.db.SelectContext(ctx, &facts,
		"SELECT * FROM facts WHERE period = $1 ORDER BY created_at",
		period)
	if err != nil {
		return nil, fmt.Errorf("factRepo.GetAll: %w", err)
	}
	return facts, nil
}

func (r *factRepo) HasFacts(ctx context.Context, period time.Time) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists,
		"SELECT EXISTS (SELECT 1 FROM facts WHERE period = $1)", period)
	if err != nil {
		return false, fmt.Errorf("factRepo.HasFacts: %w", err)
	}
	return exists, nil
}

func (r *factRepo) Upsert(ctx context.Context, fact *domain.Fact) error {
	if fact.ID == uuid.Nil {
		fact.ID = uuid.New()
	}
	now := time.Now().UTC()
	fact.UpdatedAt = now
	if fact.CreatedAt.IsZero() {
		fact.CreatedAt = now
	}

	query := `INSERT INTO facts (id, period, kind, category, fields, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (period, kind, category)
		DO UPDATE SET fields = EXCLUDED.fields, updated_at = EXCLUDED.updated_at`

	_, err := r.db.ExecContext(ctx, query,
		fact.ID, fact.Period, fact.Kind, fact.Category, fact.Fields, fact.CreatedAt, fact.UpdatedAt)
	if err != nil {
		return fmt.Errorf("factRepo.Upsert: %w", err)
	}
	return nil
}

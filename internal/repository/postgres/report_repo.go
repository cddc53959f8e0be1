package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"finloom/internal/domain"
	"finloom/internal/port"
)

type reportRepo struct {
	db *sqlx.DB
}

// NewReportRepo creates a new PostgreSQL-backed ReportStore.
func NewReportRepo(db *sqlx.DB) port.ReportStore {
	return &reportRepo{db: db}
}

func (r *reportRepo) Save(ctx context.Context, period time.Time, kind domain.ReportKind, report interface{}) error {
	fields, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("reportRepo.Save marshal: %w", err)
	}
	now := time.Now().UTC()

	query := `INSERT INTO derived_reports (id, period, kind, fields, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (period, kind)
		DO UPDATE SET fields = EXCLUDED.fields, updated_at = EXCLUDED.updated_at`

	_, err = r.db.ExecContext(ctx, query, uuid.New(), period, kind, fields, now, now)
	if err != nil {
		return fmt.Errorf("reportRepo.Save: %w", err)
	}
	return nil
}

func (r *reportRepo) Load(ctx context.Context, period time.Time, kind domain.ReportKind, dest interface{}) (bool, error) {
	var fields json.RawMessage
	err := r.db.GetContext(ctx, &fields,
		"SELECT fields FROM derived_reports WHERE period = $1 AND kind = $2", period, kind)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("reportRepo.Load: %w", err)
	}
	if err := json.Unmarshal(fields, dest); err != nil {
		return false, fmt.Errorf("reportRepo.Load unmarshal: %w", err)
	}
	return true, nil
}

package port

import (
	"context"
	"time"

	"finloom/internal/domain"
)

// ReportStore persists derived reports keyed by (period, kind). Report
// payloads round-trip through json.
type ReportStore interface {
	Save(ctx context.Context, period time.Time, kind domain.ReportKind, report interface{}) error
	// Load unmarshals the stored report into dest and reports whether a row
	// existed.
	Load(ctx context.Context, period time.Time, kind domain.ReportKind, dest interface{}) (bool, error)
}

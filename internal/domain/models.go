package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Fields holds the named numeric fields of a fact. A nil map reads as all
// zeros, which is the business-correct default for any absent figure.
type Fields map[string]float64

// Get returns the named field, or 0 when the field or the whole map is
// absent.
func (f Fields) Get(name string) float64 {
	return f[name]
}

// Sum adds the named fields, substituting 0 for any that are absent.
func (f Fields) Sum(names ...string) float64 {
	var total float64
	for _, n := range names {
		total += f[n]
	}
	return total
}

// SumExcept adds every field except the named ones.
func (f Fields) SumExcept(exclude ...string) float64 {
	skip := make(map[string]bool, len(exclude))
	for _, n := range exclude {
		skip[n] = true
	}
	var total float64
	for n, v := range f {
		if !skip[n] {
			total += v
		}
	}
	return total
}

// Value implements driver.Valuer so Fields persists as jsonb.
func (f Fields) Value() (driver.Value, error) {
	if f == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(f)
}

// Scan implements sql.Scanner for jsonb columns.
func (f *Fields) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*f = nil
		return nil
	case []byte:
		return json.Unmarshal(v, f)
	case string:
		return json.Unmarshal([]byte(v), f)
	default:
		return fmt.Errorf("cannot scan %T into Fields", src)
	}
}

// Fact is one stored set of ledger figures for a (period, kind, category)
// key. Re-ingesting the same sheet overwrites the row, never duplicates it.
type Fact struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Period    time.Time `db:"period" json:"period"`
	Kind      FactKind  `db:"kind" json:"kind"`
	Category  string    `db:"category" json:"category"`
	Fields    Fields    `db:"fields" json:"fields"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// DerivedReport is the persisted form of one derivation stage's output for
// a period. Fields round-trips the typed report structs through json.
type DerivedReport struct {
	ID        uuid.UUID       `db:"id" json:"id"`
	Period    time.Time       `db:"period" json:"period"`
	Kind      ReportKind      `db:"kind" json:"kind"`
	Fields    json.RawMessage `db:"fields" json:"fields"`
	CreatedAt time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt time.Time       `db:"updated_at" json:"updated_at"`
}

// Ledger is the output of one ingestion mapper: the period the sheet covers
// and the facts extracted from it.
type Ledger struct {
	Period time.Time
	Facts  []Fact
}

package ingest

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"finloom/internal/domain"
	"finloom/internal/period"
)

// Mapper turns one uploaded ledger's row grid into period-keyed facts. Each
// upload category has its own mapper; all of them are stateless and
// positional, reading fixed (row, col) cells agreed with the source sheets.
type Mapper func(rows [][]string) (*domain.Ledger, error)

// binding reads one cell into one named field. Scale multiplies the parsed
// value when non-zero; the quantity-analysis sheet stores percentages as
// fractions and they are kept as whole percent figures.
type binding struct {
	Row   int
	Col   int
	Field string
	Scale float64
}

func cellString(rows [][]string, r, c int) string {
	if r >= len(rows) || c >= len(rows[r]) {
		return ""
	}
	return strings.TrimSpace(rows[r][c])
}

// cell parses one cell as a number. Absent, empty, and unparseable cells all
// read as 0: an empty figure means "none this month", not an error.
func cell(rows [][]string, r, c int) float64 {
	s := cellString(rows, r, c)
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
	if err != nil {
		return 0
	}
	return v
}

func extract(rows [][]string, bindings []binding) domain.Fields {
	fields := make(domain.Fields, len(bindings))
	for _, b := range bindings {
		v := cell(rows, b.Row, b.Col)
		if b.Scale != 0 {
			v *= b.Scale
		}
		fields[b.Field] = v
	}
	return fields
}

// ledgerDate validates the sheet's minimum depth and resolves its date cell.
// Both failures are data errors on the uploaded file.
func ledgerDate(rows [][]string, minRows, dateRow, dateCol int) (time.Time, error) {
	if len(rows) < minRows {
		return time.Time{}, fmt.Errorf("ledger has %d rows, expected at least %d: %w", len(rows), minRows, domain.ErrMalformedLedger)
	}
	raw := cellString(rows, dateRow, dateCol)
	p, err := period.Resolve(raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("ledger date cell %q: %w", raw, domain.ErrMalformedLedger)
	}
	return p, nil
}

func fact(p time.Time, kind domain.FactKind, category string, fields domain.Fields) domain.Fact {
	return domain.Fact{Period: p, Kind: kind, Category: category, Fields: fields}
}

// Package period resolves free-text month labels and spreadsheet serial
// dates into canonical period keys: UTC month-start instants.
package period

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"finloom/internal/domain"
)

// serialEpoch is the spreadsheet date epoch. Serial N maps to
// epoch + (N-2) days; the -2 offset absorbs the format's 1-based day count
// and its year-1900 leap bug, and must stay fixed for round-trip
// compatibility with stored data.
var serialEpoch = time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)

const serialDayOffset = 2

// Resolve parses a month label into its period key. Accepted forms:
// a spreadsheet serial number, "Mon-YY", a bare three-letter month
// abbreviation (current year), or a full month name (current year).
func Resolve(input string) (time.Time, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: empty input", domain.ErrInvalidPeriodFormat)
	}

	if serial, err := strconv.ParseFloat(s, 64); err == nil {
		d := serialEpoch.AddDate(0, 0, int(serial)-serialDayOffset)
		return MonthStart(d), nil
	}

	for _, layout := range []string{"Jan-06", "Jan", "January"} {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			year := t.Year()
			if layout != "Jan-06" {
				year = time.Now().UTC().Year()
			}
			return time.Date(year, t.Month(), 1, 0, 0, 0, 0, time.UTC), nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: %q", domain.ErrInvalidPeriodFormat, input)
}

// MonthStart truncates t to the first day of its month, UTC midnight.
func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// Preceding returns the period one calendar month before p.
func Preceding(p time.Time) time.Time {
	return MonthStart(p.AddDate(0, -1, 0))
}

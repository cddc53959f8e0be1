package period_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finloom/internal/domain"
	"finloom/internal/period"
)

func TestResolve_SerialNumber(t *testing.T) {
	// Hand-computed oracles: serial 45322 lands on 2024-01-31 and truncates
	// to the January period; 45323 lands on 2024-02-01.
	got, err := period.Resolve("45322")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), got)

	got, err = period.Resolve("45323")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC), got)
}

func TestResolve_MonthDashYear(t *testing.T) {
	got, err := period.Resolve("Feb-24")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC), got)

	got, err = period.Resolve("Dec-23")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2023, time.December, 1, 0, 0, 0, 0, time.UTC), got)
}

func TestResolve_BareMonthAssumesCurrentYear(t *testing.T) {
	year := time.Now().UTC().Year()

	got, err := period.Resolve("Feb")
	require.NoError(t, err)
	assert.Equal(t, time.Date(year, time.February, 1, 0, 0, 0, 0, time.UTC), got)

	got, err = period.Resolve("February")
	require.NoError(t, err)
	assert.Equal(t, time.Date(year, time.February, 1, 0, 0, 0, 0, time.UTC), got)
}

func TestResolve_Invalid(t *testing.T) {
	for _, input := range []string{"", "Febr-24", "2024-02", "month of Feb", "Feb/24"} {
		_, err := period.Resolve(input)
		assert.ErrorIs(t, err, domain.ErrInvalidPeriodFormat, "input %q", input)
	}
}

func TestPreceding(t *testing.T) {
	jan := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2023, time.December, 1, 0, 0, 0, 0, time.UTC), period.Preceding(jan))

	mar := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC), period.Preceding(mar))
}

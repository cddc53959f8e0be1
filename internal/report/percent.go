package report

import (
	"math"
	"strconv"
	"strings"
)

// formatCostPercentage renders value as a rounded whole percentage of
// total, like "42%". A zero total yields an empty string.
func formatCostPercentage(value, total float64) string {
	if total == 0 {
		return ""
	}
	return strconv.Itoa(int(math.Round(value/total*100))) + "%"
}

// sumDisplayPercentages adds already-formatted percentage strings and
// returns the integer sum. Blank strings count as zero. Roll-up lines sum
// the displayed figures rather than recomputing from the ratios, so the
// totals match what the sheet shows.
func sumDisplayPercentages(percents ...string) int {
	var sum int
	for _, p := range percents {
		p = strings.TrimSuffix(p, "%")
		if p == "" {
			continue
		}
		if n, err := strconv.Atoi(p); err == nil {
			sum += n
		}
	}
	return sum
}

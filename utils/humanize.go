package utils

import (
	"fmt"
	"math"
	"strings"
)

type timeUnit struct {
	name    string
	seconds int64
}

var timeUnits = []timeUnit{
	{"year", 365 * 24 * 3600},
	{"month", 61 * 12 * 3600}, // 30.5 days
	{"day", 24 * 3600},
	{"hour", 3600},
	{"minute", 60},
}

// PreciseDelta renders a number of seconds as elapsed time, e.g.
// "3 days, 4 hours and 5.50 seconds". Zero units are left out. A year is
// 365 days and a month 30.5 days, so the remainder of a month may carry
// half a day into hours.
func PreciseDelta(seconds float64) string {
	if seconds < 0 || math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		seconds = 0
	}

	// keep two decimals of the seconds part, as precise as they are printed
	total := math.Round(seconds*100) / 100
	whole := int64(total)
	frac := total - float64(whole)

	var parts []string
	for _, u := range timeUnits {
		n := whole / u.seconds
		whole %= u.seconds
		if n > 0 {
			parts = append(parts, plural(n, u.name))
		}
	}

	switch {
	case frac > 0.0049:
		parts = append(parts, fmt.Sprintf("%.2f seconds", float64(whole)+frac))
	case whole > 0 || len(parts) == 0:
		parts = append(parts, plural(whole, "second"))
	}

	if len(parts) == 1 {
		return parts[0]
	}
	return strings.Join(parts[:len(parts)-1], ", ") + " and " + parts[len(parts)-1]
}

func plural(n int64, unit string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

// Package cli provides formatting and rendering utilities for terminal
// output. All currency and percentage strings are produced here — the
// engine's value objects stay numeric.
package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatMoney renders an amount with the currency symbol and comma
// grouping, rounded to whole units. e.g., 25800000 -> "₹25,800,000"
func FormatMoney(symbol string, v float64) string {
	if v < 0 {
		return "-" + FormatMoney(symbol, -v)
	}
	return symbol + FormatNumber(int64(math.Round(v)))
}

// FormatCompact renders an amount with k/M/B suffixes for chart axes
// and dense tables. e.g., 25800000 -> "25.8M"
func FormatCompact(v float64) string {
	abs := math.Abs(v)
	switch {
	case abs >= 1e9:
		return fmt.Sprintf("%.1fB", v/1e9)
	case abs >= 1e6:
		return fmt.Sprintf("%.1fM", v/1e6)
	case abs >= 1e3:
		return fmt.Sprintf("%.1fk", v/1e3)
	default:
		return fmt.Sprintf("%.0f", v)
	}
}

// FormatPercent renders a rate already expressed in percent units.
// e.g., 4.83 -> "4.83%"
func FormatPercent(pct float64) string {
	return fmt.Sprintf("%.2f%%", pct)
}

// FormatYears renders a fractional year count. e.g., 37.4 -> "37.4 years"
func FormatYears(y float64) string {
	return fmt.Sprintf("%.1f years", y)
}

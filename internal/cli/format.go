// Package cli provides formatting and rendering utilities for terminal
// output.
package cli

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatAmount formats a currency amount with comma grouping and two
// decimals. e.g., 1234567.8 -> "$1,234,567.80" with symbol "$".
func FormatAmount(symbol string, v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}

	s := strconv.FormatFloat(v, 'f', 2, 64)
	intPart, fracPart, _ := strings.Cut(s, ".")

	var grouped strings.Builder
	remainder := len(intPart) % 3
	if remainder > 0 {
		grouped.WriteString(intPart[:remainder])
	}
	for i := remainder; i < len(intPart); i += 3 {
		if grouped.Len() > 0 {
			grouped.WriteByte(',')
		}
		grouped.WriteString(intPart[i : i+3])
	}

	sign := ""
	if neg {
		sign = "-"
	}
	return fmt.Sprintf("%s%s%s.%s", sign, symbol, grouped.String(), fracPart)
}

// FormatPercent formats a 0-100 percentage with up to two decimals,
// trailing zeros trimmed. e.g., 33.30 -> "33.3%", 40.00 -> "40%".
func FormatPercent(p float64) string {
	s := strconv.FormatFloat(p, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	return s + "%"
}

// FormatPeriod renders a forecast horizon like "18 months" or "2 years".
func FormatPeriod(value float64, unit string) string {
	v := strconv.FormatFloat(value, 'f', -1, 64)
	if value == 1 {
		return v + " " + strings.TrimSuffix(unit, "s")
	}
	return v + " " + unit
}

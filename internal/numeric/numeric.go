// Package numeric provides the safe parsing, clamping, and rounding
// primitives shared by the budget engine and codec.
package numeric

import (
	"math"
	"strconv"
	"strings"
)

// ParseNumber converts raw text to a float64. Non-numeric, empty, and
// non-finite input (NaN, ±Inf) all yield 0 so interactive field editing
// never has an error path.
func ParseNumber(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// Clamp restricts v to [min, max]. Assumes min <= max.
func Clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// Round2 rounds to two decimal places, half away from zero at the cent
// level. Applied uniformly to currency and percentage fields so float
// drift never accumulates visibly.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

package cli

import "testing"

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		symbol string
		v      float64
		want   string
	}{
		{"$", 0, "$0.00"},
		{"$", 1234.5, "$1,234.50"},
		{"$", 1234567.891, "$1,234,567.89"},
		{"€", 999.999, "€1,000.00"},
		{"$", -42.5, "-$42.50"},
		{"$", 100, "$100.00"},
	}
	for _, tt := range tests {
		if got := FormatAmount(tt.symbol, tt.v); got != tt.want {
			t.Errorf("FormatAmount(%q, %v) = %q, want %q", tt.symbol, tt.v, got, tt.want)
		}
	}
}

func TestFormatPercent(t *testing.T) {
	tests := []struct {
		p    float64
		want string
	}{
		{40, "40%"},
		{33.3, "33.3%"},
		{12.34, "12.34%"},
		{0, "0%"},
		{100, "100%"},
	}
	for _, tt := range tests {
		if got := FormatPercent(tt.p); got != tt.want {
			t.Errorf("FormatPercent(%v) = %q, want %q", tt.p, got, tt.want)
		}
	}
}

func TestFormatPeriod(t *testing.T) {
	tests := []struct {
		v    float64
		unit string
		want string
	}{
		{12, "months", "12 months"},
		{1, "years", "1 year"},
		{2, "years", "2 years"},
	}
	for _, tt := range tests {
		if got := FormatPeriod(tt.v, tt.unit); got != tt.want {
			t.Errorf("FormatPeriod(%v, %q) = %q, want %q", tt.v, tt.unit, got, tt.want)
		}
	}
}

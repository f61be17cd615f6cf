package numeric

import "testing"

func TestParseNumber(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
	}{
		{"1234.56", 1234.56},
		{"  42 ", 42},
		{"-3.5", -3.5},
		{"0", 0},
		{"", 0},
		{"abc", 0},
		{"12abc", 0},
		{"NaN", 0},
		{"Inf", 0},
		{"-Inf", 0},
		{"1e3", 1000},
	}
	for _, tt := range tests {
		if got := ParseNumber(tt.raw); got != tt.want {
			t.Errorf("ParseNumber(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, min, max, want float64
	}{
		{5, 0, 10, 5},
		{-1, 0, 10, 0},
		{11, 0, 10, 10},
		{0, 0, 100, 0},
		{100, 0, 100, 100},
	}
	for _, tt := range tests {
		if got := Clamp(tt.v, tt.min, tt.max); got != tt.want {
			t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tt.v, tt.min, tt.max, got, tt.want)
		}
	}
}

func TestRound2(t *testing.T) {
	tests := []struct {
		v, want float64
	}{
		{0.125, 0.13}, // exact binary half, rounds away from zero
		{-0.125, -0.13},
		{1.004, 1.0},
		{12.344, 12.34},
		{12.346, 12.35},
		{600.0, 600.0},
		{0, 0},
	}
	for _, tt := range tests {
		if got := Round2(tt.v); got != tt.want {
			t.Errorf("Round2(%v) = %v, want %v", tt.v, got, tt.want)
		}
	}
}

func TestRound2Idempotent(t *testing.T) {
	for _, v := range []float64{0, 0.005, 1.2345, 99.999, -42.015, 1268.249999} {
		once := Round2(v)
		if twice := Round2(once); twice != once {
			t.Errorf("Round2(Round2(%v)) = %v, want %v", v, twice, once)
		}
	}
}

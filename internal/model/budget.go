// Package model defines domain types for bplan budgets.
package model

import "fmt"

// PeriodUnit is the unit of the forecast horizon.
type PeriodUnit string

const (
	PeriodMonths PeriodUnit = "months"
	PeriodYears  PeriodUnit = "years"
)

// Category is one budget line item. Percentage and Amount are kept in
// sync by the allocation engine; Percentage stays within [0, 100] and
// both fields carry two-decimal granularity.
type Category struct {
	Name       string  `json:"name"`
	Percentage float64 `json:"percentage"`
	Amount     float64 `json:"amount"`
	IsSavings  bool    `json:"isSavings"`
}

// DisplayName returns the category name, substituting the positional
// default when the name is blank.
func (c Category) DisplayName(pos int) string {
	if c.Name == "" {
		return DefaultCategoryName(pos)
	}
	return c.Name
}

// DefaultCategoryName returns the default label for the category at the
// given zero-based position.
func DefaultCategoryName(pos int) string {
	return fmt.Sprintf("Category %d", pos+1)
}

// BudgetState is the full budget snapshot. Category order is
// insertion/display order and is preserved across persistence.
type BudgetState struct {
	Income              float64    `json:"income"`
	InterestRate        float64    `json:"interestRate"`
	ForecastPeriodValue float64    `json:"forecastPeriodValue"`
	ForecastPeriodUnit  PeriodUnit `json:"forecastPeriodUnit"`
	Categories          []Category `json:"categories"`
}

// Clone returns a deep copy of the state.
func (s BudgetState) Clone() BudgetState {
	out := s
	out.Categories = make([]Category, len(s.Categories))
	copy(out.Categories, s.Categories)
	return out
}

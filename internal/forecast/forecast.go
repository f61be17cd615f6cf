// Package forecast computes compound-interest projections for savings
// allocations as the future value of an ordinary annuity: level monthly
// contributions compounding monthly, valued at period end.
package forecast

import (
	"math"

	"bplan/internal/model"
	"bplan/internal/numeric"
)

// Engine holds the rate/period configuration. It is read-only: queries
// derive from the caller's current category list.
type Engine struct {
	AnnualRate  float64 // annual interest rate, percent
	PeriodValue float64
	PeriodUnit  model.PeriodUnit
}

// FromState builds a forecast engine from a budget snapshot.
func FromState(s model.BudgetState) Engine {
	return Engine{
		AnnualRate:  s.InterestRate,
		PeriodValue: s.ForecastPeriodValue,
		PeriodUnit:  s.ForecastPeriodUnit,
	}
}

// Months returns the forecast horizon in months.
func (f Engine) Months() float64 {
	if f.PeriodUnit == model.PeriodYears {
		return f.PeriodValue * 12
	}
	return f.PeriodValue
}

// FutureValue returns the projected value of contributing monthly for
// the whole horizon. Zero for a non-positive contribution or horizon.
// With a zero rate the contributions simply accumulate.
func (f Engine) FutureValue(monthlyContribution float64) float64 {
	months := f.Months()
	if monthlyContribution <= 0 || months <= 0 {
		return 0
	}
	monthlyRate := f.AnnualRate / 100 / 12
	if monthlyRate == 0 {
		return numeric.Round2(monthlyContribution * months)
	}
	growth := math.Pow(1+monthlyRate, months)
	return numeric.Round2(monthlyContribution * (growth - 1) / monthlyRate)
}

// ProjectedSavingsValue projects the combined monthly allocation across
// all savings categories.
func (f Engine) ProjectedSavingsValue(categories []model.Category) float64 {
	var total float64
	for _, c := range categories {
		if c.IsSavings {
			total += c.Amount
		}
	}
	return f.FutureValue(numeric.Round2(total))
}

// SavingsForecast pairs one savings category with its projection.
type SavingsForecast struct {
	Name        string
	Monthly     float64
	FutureValue float64
}

// SavingsForecasts projects every savings category independently, in
// category order. The annuity formula is linear in the contribution, so
// these sum exactly to the aggregate projection.
func (f Engine) SavingsForecasts(categories []model.Category) []SavingsForecast {
	var out []SavingsForecast
	for i, c := range categories {
		if !c.IsSavings {
			continue
		}
		out = append(out, SavingsForecast{
			Name:        c.DisplayName(i),
			Monthly:     c.Amount,
			FutureValue: f.FutureValue(c.Amount),
		})
	}
	return out
}

// Package budget implements the allocation engine: income plus an
// ordered category list, with percentage and amount reconciled on every
// mutation under a 100%-of-income ceiling.
package budget

import (
	"errors"

	"bplan/internal/model"
	"bplan/internal/numeric"
)

// ErrIndexOutOfRange is returned when an operation references a
// category index not present in the current list. This signals a caller
// bug, not user input.
var ErrIndexOutOfRange = errors.New("category index out of range")

// Engine owns a BudgetState and is its only writer. Mutations run to
// completion synchronously; there is no partial application.
//
// AllocationClamped and NeedsIncomeWarning are transient presentation
// signals: clamped is set whenever a requested percentage or amount was
// truncated to the remaining headroom, and cleared on the next
// structural change or unclamped write; the income warning fires when
// an amount is entered with no positive income to map it against.
type Engine struct {
	State model.BudgetState

	AllocationClamped  bool
	NeedsIncomeWarning bool
}

// New returns an engine with an empty budget.
func New() *Engine {
	return &Engine{
		State: model.BudgetState{
			ForecastPeriodValue: 12,
			ForecastPeriodUnit:  model.PeriodMonths,
		},
	}
}

// SetIncome parses and applies a new income, floored at zero. All
// category amounts are recomputed from their percentages; the
// percentages themselves never change on an income edit.
func (e *Engine) SetIncome(raw string) {
	income := numeric.ParseNumber(raw)
	if income < 0 {
		income = 0
	}
	e.State.Income = income
	e.NeedsIncomeWarning = false

	for i := range e.State.Categories {
		c := &e.State.Categories[i]
		c.Amount = numeric.Round2(income * c.Percentage / 100)
	}
}

// SetInterestRate parses and applies the annual interest rate in
// percent, floored at zero.
func (e *Engine) SetInterestRate(raw string) {
	rate := numeric.ParseNumber(raw)
	if rate < 0 {
		rate = 0
	}
	e.State.InterestRate = rate
}

// SetForecastPeriod applies the forecast horizon. The value is floored
// at zero; any unit other than years is treated as months.
func (e *Engine) SetForecastPeriod(raw string, unit model.PeriodUnit) {
	v := numeric.ParseNumber(raw)
	if v < 0 {
		v = 0
	}
	if unit != model.PeriodYears {
		unit = model.PeriodMonths
	}
	e.State.ForecastPeriodValue = v
	e.State.ForecastPeriodUnit = unit
}

// AddCategory appends an empty category with a positional default name.
// Existing categories are untouched.
func (e *Engine) AddCategory() {
	e.State.Categories = append(e.State.Categories, model.Category{
		Name: model.DefaultCategoryName(len(e.State.Categories)),
	})
	e.AllocationClamped = false
}

// RemoveCategory deletes the category at index. The transient flags are
// reset on any structural change.
func (e *Engine) RemoveCategory(index int) error {
	if index < 0 || index >= len(e.State.Categories) {
		return ErrIndexOutOfRange
	}
	e.State.Categories = append(e.State.Categories[:index], e.State.Categories[index+1:]...)
	e.AllocationClamped = false
	e.NeedsIncomeWarning = false
	return nil
}

// SetCategoryName writes the display label. No effect on allocation.
func (e *Engine) SetCategoryName(index int, name string) error {
	if index < 0 || index >= len(e.State.Categories) {
		return ErrIndexOutOfRange
	}
	e.State.Categories[index].Name = name
	return nil
}

// SetCategorySavings toggles the savings flag. No effect on allocation.
func (e *Engine) SetCategorySavings(index int, isSavings bool) error {
	if index < 0 || index >= len(e.State.Categories) {
		return ErrIndexOutOfRange
	}
	e.State.Categories[index].IsSavings = isSavings
	return nil
}

// SetCategoryPercentage applies a percentage edit. The requested value
// is clamped to [0, 100], then silently truncated to whatever headroom
// remains under the 100% ceiling; truncation is reported through
// AllocationClamped rather than an error so the caller never gets
// stuck. The amount is recomputed from the applied percentage.
func (e *Engine) SetCategoryPercentage(index int, raw string) error {
	if index < 0 || index >= len(e.State.Categories) {
		return ErrIndexOutOfRange
	}
	c := &e.State.Categories[index]

	p := numeric.Clamp(numeric.ParseNumber(raw), 0, 100)
	maxAllowed := e.headroomExcluding(index)
	e.AllocationClamped = p > maxAllowed
	if p > maxAllowed {
		p = maxAllowed
	}

	c.Percentage = numeric.Round2(p)
	c.Amount = numeric.Round2(e.State.Income * c.Percentage / 100)
	return nil
}

// SetCategoryAmount applies an amount edit. With a positive income the
// amount maps back to a percentage, which is truncated to the remaining
// headroom like a percentage edit; when truncated the amount is
// recomputed from the applied percentage, otherwise the entered amount
// stays authoritative. With no income there is no valid mapping: the
// percentage is forced to 0, the entered amount is kept, and
// NeedsIncomeWarning tells the caller to prompt for income.
func (e *Engine) SetCategoryAmount(index int, raw string) error {
	if index < 0 || index >= len(e.State.Categories) {
		return ErrIndexOutOfRange
	}
	c := &e.State.Categories[index]

	amount := numeric.ParseNumber(raw)
	if amount < 0 {
		amount = 0
	}
	c.Amount = amount

	if e.State.Income <= 0 {
		c.Percentage = 0
		e.NeedsIncomeWarning = amount > 0
		return nil
	}

	rawPercentage := amount / e.State.Income * 100
	maxAllowed := e.headroomExcluding(index)
	clamped := rawPercentage > maxAllowed
	e.AllocationClamped = clamped

	applied := rawPercentage
	if clamped {
		applied = maxAllowed
	}
	c.Percentage = numeric.Round2(applied)
	if clamped {
		c.Amount = numeric.Round2(e.State.Income * c.Percentage / 100)
	}
	e.NeedsIncomeWarning = false
	return nil
}

// headroomExcluding returns the percentage still available under the
// 100% ceiling, ignoring the category at skip.
func (e *Engine) headroomExcluding(skip int) float64 {
	var others float64
	for i, c := range e.State.Categories {
		if i == skip {
			continue
		}
		others += c.Percentage
	}
	headroom := 100 - others
	if headroom < 0 {
		headroom = 0
	}
	return headroom
}

// TotalPercentage is the sum of all category percentages.
func (e *Engine) TotalPercentage() float64 {
	var total float64
	for _, c := range e.State.Categories {
		total += c.Percentage
	}
	return total
}

// RemainingPercentage is the unallocated share of income, floored at 0.
func (e *Engine) RemainingPercentage() float64 {
	remaining := 100 - e.TotalPercentage()
	if remaining < 0 {
		return 0
	}
	return remaining
}

// TotalSavingsAllocation is the monthly amount across savings
// categories, rounded to cents.
func (e *Engine) TotalSavingsAllocation() float64 {
	var total float64
	for _, c := range e.State.Categories {
		if c.IsSavings {
			total += c.Amount
		}
	}
	return numeric.Round2(total)
}

// Apply replaces the engine state wholesale, as on import or load.
// Transient flags are cleared.
func (e *Engine) Apply(s model.BudgetState) {
	e.State = s.Clone()
	e.AllocationClamped = false
	e.NeedsIncomeWarning = false
}

// Snapshot returns a deep copy of the current state.
func (e *Engine) Snapshot() model.BudgetState {
	return e.State.Clone()
}

// Package state serializes budget snapshots to their canonical JSON
// shape and deserializes arbitrary untrusted payloads back into
// well-formed state, coercing field by field instead of failing.
package state

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"bplan/internal/model"
	"bplan/internal/numeric"
)

// ErrInvalidPayload is returned when a payload is not well-formed JSON
// or its top level is not an object.
var ErrInvalidPayload = errors.New("invalid budget payload")

// Serialize emits the canonical export shape, categories in list order.
func Serialize(s model.BudgetState) ([]byte, error) {
	out := s.Clone()
	out.Income = numeric.Round2(out.Income)
	out.InterestRate = numeric.Round2(out.InterestRate)
	if out.ForecastPeriodUnit != model.PeriodYears {
		out.ForecastPeriodUnit = model.PeriodMonths
	}
	if out.Categories == nil {
		out.Categories = []model.Category{}
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding budget: %w", err)
	}
	return data, nil
}

// Deserialize parses an untrusted payload into a BudgetState. Malformed
// bytes or a non-object top level fail with ErrInvalidPayload; past
// that point every field is individually coerced to a safe value, so a
// partially damaged payload still loads. The 100%-total invariant is
// not re-validated here: coerced data is trusted as internally
// consistent, and callers may re-run reconciliation if they want it.
func Deserialize(raw []byte) (model.BudgetState, error) {
	var top any
	if err := json.Unmarshal(raw, &top); err != nil {
		return model.BudgetState{}, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	obj, ok := top.(map[string]any)
	if !ok {
		return model.BudgetState{}, ErrInvalidPayload
	}

	s := model.BudgetState{
		Income:              floorZero(coerceNumber(obj["income"], 0)),
		InterestRate:        floorZero(coerceNumber(obj["interestRate"], 0)),
		ForecastPeriodValue: floorZero(coerceNumber(obj["forecastPeriodValue"], 12)),
		ForecastPeriodUnit:  coerceUnit(obj["forecastPeriodUnit"]),
		Categories:          coerceCategories(obj["categories"]),
	}
	return s, nil
}

func coerceCategories(v any) []model.Category {
	list, ok := v.([]any)
	if !ok {
		return []model.Category{}
	}

	out := make([]model.Category, 0, len(list))
	for _, el := range list {
		obj, ok := el.(map[string]any)
		if !ok {
			continue // non-object elements are dropped
		}

		c := model.Category{}
		if name, ok := obj["name"].(string); ok {
			c.Name = name
		} else {
			c.Name = model.DefaultCategoryName(len(out))
		}
		c.Percentage = numeric.Round2(numeric.Clamp(coerceNumber(obj["percentage"], 0), 0, 100))
		c.Amount = numeric.Round2(floorZero(coerceNumber(obj["amount"], 0)))
		if b, ok := obj["isSavings"].(bool); ok {
			c.IsSavings = b
		}
		out = append(out, c)
	}
	return out
}

// coerceNumber accepts a JSON number or a numeric string; anything else
// falls back to the supplied default. Non-finite values also fall back.
func coerceNumber(v any, def float64) float64 {
	switch n := v.(type) {
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return def
		}
		return n
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil || math.IsNaN(parsed) || math.IsInf(parsed, 0) {
			return def
		}
		return parsed
	default:
		return def
	}
}

// coerceUnit recognizes only the literal years marker; everything else
// defaults to months.
func coerceUnit(v any) model.PeriodUnit {
	if s, ok := v.(string); ok && s == string(model.PeriodYears) {
		return model.PeriodYears
	}
	return model.PeriodMonths
}

func floorZero(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

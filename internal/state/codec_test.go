package state

import (
	"errors"
	"reflect"
	"testing"

	"bplan/internal/model"
)

func mustDeserialize(t *testing.T, raw string) model.BudgetState {
	t.Helper()
	s, err := Deserialize([]byte(raw))
	if err != nil {
		t.Fatalf("Deserialize(%q): %v", raw, err)
	}
	return s
}

func TestRoundTrip(t *testing.T) {
	orig := model.BudgetState{
		Income:              2500.75,
		InterestRate:        6.5,
		ForecastPeriodValue: 10,
		ForecastPeriodUnit:  model.PeriodYears,
		Categories: []model.Category{
			{Name: "Rent", Percentage: 35.5, Amount: 887.77},
			{Name: "", Percentage: 10, Amount: 250.08, IsSavings: true},
			{Name: "Fun", Percentage: 5.25, Amount: 131.29},
		},
	}

	data, err := Serialize(orig)
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	got, err := Deserialize(data)
	if err != nil {
		t.Fatalf("Deserialize: %v", err)
	}

	// The trip is exact, order included. A blank name is still text and
	// survives as-is; only DisplayName substitutes the positional
	// default, at render time.
	if !reflect.DeepEqual(got, orig) {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", got, orig)
	}
	if got.Categories[1].Name != "" {
		t.Fatalf("blank name rewritten to %q on round trip", got.Categories[1].Name)
	}
}

func TestDeserializeRejectsNonObject(t *testing.T) {
	for _, raw := range []string{"42", `"hello"`, "[1,2,3]", "true", "null", "{not json", ""} {
		_, err := Deserialize([]byte(raw))
		if !errors.Is(err, ErrInvalidPayload) {
			t.Errorf("Deserialize(%q) err = %v, want ErrInvalidPayload", raw, err)
		}
	}
}

func TestDeserializeCategoriesNotAnArray(t *testing.T) {
	s := mustDeserialize(t, `{"categories": "not-an-array"}`)
	if len(s.Categories) != 0 {
		t.Fatalf("categories = %v, want empty list", s.Categories)
	}
}

func TestDeserializeDropsNonObjectElements(t *testing.T) {
	s := mustDeserialize(t, `{"categories": [42, {"name":"Kept"}, "junk", null, {"name":"Also"}]}`)
	if len(s.Categories) != 2 {
		t.Fatalf("got %d categories, want 2", len(s.Categories))
	}
	if s.Categories[0].Name != "Kept" || s.Categories[1].Name != "Also" {
		t.Fatalf("surviving categories = %+v", s.Categories)
	}
}

func TestDeserializeFieldCoercion(t *testing.T) {
	s := mustDeserialize(t, `{
		"income": "1200.50",
		"interestRate": -3,
		"forecastPeriodValue": "junk",
		"forecastPeriodUnit": "fortnights",
		"categories": [
			{"name": 7, "percentage": "150", "amount": "-40", "isSavings": "yes"},
			{"percentage": 12.344, "amount": 99.996, "isSavings": true}
		]
	}`)

	if s.Income != 1200.50 {
		t.Errorf("income = %v, want 1200.50 (string-parsed)", s.Income)
	}
	if s.InterestRate != 0 {
		t.Errorf("interestRate = %v, want 0 (floored)", s.InterestRate)
	}
	if s.ForecastPeriodValue != 12 {
		t.Errorf("forecastPeriodValue = %v, want default 12", s.ForecastPeriodValue)
	}
	if s.ForecastPeriodUnit != model.PeriodMonths {
		t.Errorf("forecastPeriodUnit = %v, want months", s.ForecastPeriodUnit)
	}

	c0 := s.Categories[0]
	if c0.Name != "Category 1" {
		t.Errorf("non-text name = %q, want positional default", c0.Name)
	}
	if c0.Percentage != 100 {
		t.Errorf("percentage = %v, want clamped 100", c0.Percentage)
	}
	if c0.Amount != 0 {
		t.Errorf("amount = %v, want floored 0", c0.Amount)
	}
	if c0.IsSavings {
		t.Error("truthy string coerced to savings flag; non-bools must fall back to false")
	}

	c1 := s.Categories[1]
	if c1.Percentage != 12.34 {
		t.Errorf("percentage = %v, want rounded 12.34", c1.Percentage)
	}
	if c1.Amount != 100 {
		t.Errorf("amount = %v, want rounded 100", c1.Amount)
	}
	if !c1.IsSavings {
		t.Error("real boolean lost")
	}
}

func TestDeserializeYearsMarkerIsLiteral(t *testing.T) {
	tests := []struct {
		raw  string
		want model.PeriodUnit
	}{
		{`{"forecastPeriodUnit": "years"}`, model.PeriodYears},
		{`{"forecastPeriodUnit": "Years"}`, model.PeriodMonths},
		{`{"forecastPeriodUnit": 12}`, model.PeriodMonths},
		{`{}`, model.PeriodMonths},
	}
	for _, tt := range tests {
		if got := mustDeserialize(t, tt.raw).ForecastPeriodUnit; got != tt.want {
			t.Errorf("Deserialize(%s) unit = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

func TestDeserializeOverAllocatedTotalIsTrusted(t *testing.T) {
	// Per-field clamping only; the 100%-total invariant is not
	// re-validated on import.
	s := mustDeserialize(t, `{"categories": [{"percentage": 90}, {"percentage": 90}]}`)
	if s.Categories[0].Percentage != 90 || s.Categories[1].Percentage != 90 {
		t.Fatalf("categories = %+v, want both at 90", s.Categories)
	}
}

func TestSerializeRoundsScalars(t *testing.T) {
	data, err := Serialize(model.BudgetState{Income: 1000.005001, InterestRate: 5.129})
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	s, err := Deserialize(data)
	if err != nil {
		t.Fatalf("Deserialize: %v", err)
	}
	if s.Income != 1000.01 {
		t.Errorf("income = %v, want 1000.01", s.Income)
	}
	if s.InterestRate != 5.13 {
		t.Errorf("interestRate = %v, want 5.13", s.InterestRate)
	}
	if s.ForecastPeriodUnit != model.PeriodMonths {
		t.Errorf("unit = %v, want months default on empty state", s.ForecastPeriodUnit)
	}
}

package chart

import (
	"strings"
	"testing"

	"bplan/internal/model"
)

func TestSlicesFiltersAndCycles(t *testing.T) {
	var cats []model.Category
	for i := 0; i < 8; i++ {
		cats = append(cats, model.Category{Name: "", Percentage: 10})
	}
	cats = append(cats, model.Category{Name: "Zero", Percentage: 0})

	slices := Slices(cats)
	if len(slices) != 8 {
		t.Fatalf("got %d slices, want 8 (zero-percentage filtered)", len(slices))
	}
	if slices[0].Color != Palette[0] || slices[6].Color != Palette[0] {
		t.Errorf("palette did not cycle at index 6: %q vs %q", slices[6].Color, Palette[0])
	}
	if slices[7].Color != Palette[1] {
		t.Errorf("slice 7 color = %q, want %q", slices[7].Color, Palette[1])
	}
	if slices[0].Name != "Category 1" {
		t.Errorf("blank name = %q, want positional default", slices[0].Name)
	}
}

func TestSlicesEmptyWhenNothingAllocated(t *testing.T) {
	cats := []model.Category{{Name: "A"}, {Name: "B"}}
	if got := Slices(cats); got != nil {
		t.Fatalf("Slices = %v, want nil for zero total", got)
	}
	if got := ArcSlices(cats, 100, 100, 90); got != nil {
		t.Fatalf("ArcSlices = %v, want nil for zero total", got)
	}
}

func TestArcSlicesFullCircleDegenerate(t *testing.T) {
	cats := []model.Category{{Name: "Everything", Percentage: 100}}
	arcs := ArcSlices(cats, 100, 100, 90)
	if len(arcs) != 1 {
		t.Fatalf("got %d arcs, want 1", len(arcs))
	}
	// Two-arc circle path, no line segment back to center.
	if strings.Contains(arcs[0].Path, "L ") {
		t.Errorf("full-circle path contains a wedge line: %q", arcs[0].Path)
	}
	if strings.Count(arcs[0].Path, "A ") != 2 {
		t.Errorf("full-circle path should have two arcs: %q", arcs[0].Path)
	}
}

func TestArcSlicesWedgeGeometry(t *testing.T) {
	cats := []model.Category{
		{Name: "Half", Percentage: 30},
		{Name: "Rest", Percentage: 30},
	}
	arcs := ArcSlices(cats, 100, 100, 90)
	if len(arcs) != 2 {
		t.Fatalf("got %d arcs, want 2", len(arcs))
	}

	// Shares are of the allocated total, so each slice spans 180°.
	// First wedge starts at 12 o'clock: (100, 10).
	if !strings.HasPrefix(arcs[0].Path, "M 100.00 100.00 L 100.00 10.00 ") {
		t.Errorf("first wedge start = %q", arcs[0].Path)
	}
	// 180° sweeps are not large arcs.
	if !strings.Contains(arcs[0].Path, " 0 0 1 ") {
		t.Errorf("180° wedge flagged as large arc: %q", arcs[0].Path)
	}
	// Second wedge picks up at 6 o'clock: (100, 190).
	if !strings.Contains(arcs[1].Path, "L 100.00 190.00 ") {
		t.Errorf("second wedge start = %q", arcs[1].Path)
	}
}

func TestArcSlicesLargeArcFlag(t *testing.T) {
	cats := []model.Category{
		{Name: "Big", Percentage: 75},
		{Name: "Small", Percentage: 25},
	}
	arcs := ArcSlices(cats, 50, 50, 40)
	if !strings.Contains(arcs[0].Path, " 0 1 1 ") {
		t.Errorf("270° wedge missing large-arc flag: %q", arcs[0].Path)
	}
	if !strings.Contains(arcs[1].Path, " 0 0 1 ") {
		t.Errorf("90° wedge has large-arc flag: %q", arcs[1].Path)
	}
}

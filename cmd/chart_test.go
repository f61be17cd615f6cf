package cmd

import (
	"strings"
	"testing"

	"bplan/internal/model"
)

func TestRenderSVG(t *testing.T) {
	cats := []model.Category{
		{Name: "Rent", Percentage: 60},
		{Name: "Fun & Games", Percentage: 20},
	}

	svg := renderSVG(cats)

	if !strings.HasPrefix(svg, `<svg xmlns="http://www.w3.org/2000/svg"`) {
		t.Fatalf("missing svg header: %q", svg[:40])
	}
	if got := strings.Count(svg, "<path "); got != 2 {
		t.Errorf("got %d wedges, want 2", got)
	}
	if got := strings.Count(svg, "<rect "); got != 2 {
		t.Errorf("got %d legend swatches, want 2", got)
	}
	if !strings.Contains(svg, "Fun &amp; Games (20%)") {
		t.Errorf("legend entry missing or unescaped:\n%s", svg)
	}
	if !strings.HasSuffix(svg, "</svg>\n") {
		t.Error("svg not closed")
	}
}

func TestRenderSVGEmpty(t *testing.T) {
	svg := renderSVG(nil)
	if strings.Contains(svg, "<path ") {
		t.Errorf("empty budget produced wedges:\n%s", svg)
	}
}

package components

import (
	"strings"

	"bplan/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// AllocationBar renders a filled 0-100% bar. Color shifts from green
// through orange to red as the allocation approaches the ceiling.
func AllocationBar(totalPercentage float64, width int) string {
	t := theme.Active

	pct := totalPercentage / 100
	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}

	filled := int(pct * float64(width))
	if filled > width {
		filled = width
	}

	color := t.Green
	switch {
	case pct >= 1:
		color = t.Red
	case pct >= 0.8:
		color = t.Orange
	}

	barStyle := lipgloss.NewStyle().Foreground(color)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	return barStyle.Render(strings.Repeat("█", filled)) +
		dimStyle.Render(strings.Repeat("░", width-filled))
}

// StackedBar renders weighted segments as one bar, each segment taking
// its share of the width in the i-th slice palette color. The last
// segment absorbs integer rounding so the bar always fills the width.
func StackedBar(weights []float64, width int) string {
	var total float64
	for _, w := range weights {
		total += w
	}
	if total <= 0 || width <= 0 {
		return ""
	}

	var b strings.Builder
	used := 0
	for i, w := range weights {
		n := int(w / total * float64(width))
		if i == len(weights)-1 {
			n = width - used
		}
		if n <= 0 {
			continue
		}
		style := lipgloss.NewStyle().Foreground(theme.SliceColor(i))
		b.WriteString(style.Render(strings.Repeat("█", n)))
		used += n
	}
	return b.String()
}

// HBar renders a single horizontal value bar scaled against maxValue.
func HBar(value, maxValue float64, width int, color lipgloss.Color) string {
	if maxValue <= 0 || width <= 0 {
		return ""
	}
	n := int(value / maxValue * float64(width))
	if n < 0 {
		n = 0
	}
	if n > width {
		n = width
	}
	return lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", n))
}

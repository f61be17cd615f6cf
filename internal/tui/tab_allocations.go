package tui

import (
	"fmt"
	"strings"

	"bplan/internal/chart"
	"bplan/internal/cli"
	"bplan/internal/tui/components"
	"bplan/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func (a App) updateAllocationsKeys(key string) (tea.Model, tea.Cmd) {
	cats := a.engine.State.Categories

	switch key {
	case "j", "down":
		if a.cursor < len(cats)-1 {
			a.cursor++
		}
	case "k", "up":
		if a.cursor > 0 {
			a.cursor--
		}
	case "a":
		a.engine.AddCategory()
		a.cursor = len(a.engine.State.Categories) - 1
		a.persist()
	case "d":
		if len(cats) > 0 {
			if err := a.engine.RemoveCategory(a.cursor); err == nil {
				a.clampCursor()
				a.persist()
			}
		}
	case "s":
		if a.cursor < len(cats) {
			_ = a.engine.SetCategorySavings(a.cursor, !cats[a.cursor].IsSavings)
			a.persist()
		}
	case "i":
		return a, a.startEdit(editIncome, "monthly income", trimFloat(a.engine.State.Income))
	case "n":
		if a.cursor < len(cats) {
			return a, a.startEdit(editName, "category name", cats[a.cursor].Name)
		}
	case "p":
		if a.cursor < len(cats) {
			return a, a.startEdit(editPercent, "0-100", trimFloat(cats[a.cursor].Percentage))
		}
	case "m", "enter":
		if a.cursor < len(cats) {
			return a, a.startEdit(editAmount, "amount", trimFloat(cats[a.cursor].Amount))
		}
	}
	return a, nil
}

func (a App) renderAllocationsTab(cw int) string {
	t := theme.Active
	symbol := a.cfg.General.CurrencySymbol
	s := a.engine.State

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	selStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceBright).Bold(true)
	markerStyle := lipgloss.NewStyle().Foreground(t.AccentBright)
	warnStyle := lipgloss.NewStyle().Foreground(t.Orange)

	cards := []struct{ Label, Value string }{
		{"Income", cli.FormatAmount(symbol, s.Income)},
		{"Allocated", cli.FormatPercent(a.engine.TotalPercentage())},
		{"Remaining", cli.FormatPercent(a.engine.RemainingPercentage())},
		{"Savings / mo", cli.FormatAmount(symbol, a.engine.TotalSavingsAllocation())},
	}

	var list strings.Builder
	if len(s.Categories) == 0 {
		list.WriteString(labelStyle.Render("No categories yet. Press [a] to add one."))
		list.WriteString("\n")
	}
	for i, c := range s.Categories {
		savings := " "
		if c.IsSavings {
			savings = "S"
		}
		line := fmt.Sprintf("%-20s %8s %12s  %s",
			truncate(c.DisplayName(i), 20),
			cli.FormatPercent(c.Percentage),
			cli.FormatAmount(symbol, c.Amount),
			savings,
		)

		if i == a.cursor && a.editField != editNone && a.editField != editIncome {
			list.WriteString(markerStyle.Render("▸ "))
			list.WriteString(valueStyle.Render(truncate(c.DisplayName(i), 20) + " "))
			list.WriteString(a.input.View())
		} else if i == a.cursor {
			list.WriteString(markerStyle.Render("▸ "))
			list.WriteString(selStyle.Render(line))
		} else {
			list.WriteString("  ")
			list.WriteString(valueStyle.Render(line))
		}
		list.WriteString("\n")
	}

	innerW := components.CardInnerWidth(cw)
	barW := innerW - 2
	if barW > 60 {
		barW = 60
	}

	list.WriteString("\n")
	list.WriteString(labelStyle.Render("Total "))
	list.WriteString(components.AllocationBar(a.engine.TotalPercentage(), barW))

	// Breakdown of allocated slices, colored per category
	slices := chart.Slices(s.Categories)
	if len(slices) > 0 {
		weights := make([]float64, len(slices))
		var legend strings.Builder
		for i, sl := range slices {
			weights[i] = sl.Percentage
			sw := lipgloss.NewStyle().Foreground(theme.SliceColor(i))
			legend.WriteString(sw.Render("■ "))
			legend.WriteString(labelStyle.Render(fmt.Sprintf("%s %s  ", truncate(sl.Name, 14), cli.FormatPercent(sl.Percentage))))
		}
		list.WriteString("\n")
		list.WriteString(labelStyle.Render("Split "))
		list.WriteString(components.StackedBar(weights, barW))
		list.WriteString("\n      ")
		list.WriteString(legend.String())
	}

	if a.engine.AllocationClamped {
		list.WriteString("\n\n")
		list.WriteString(warnStyle.Render("Requested allocation exceeded remaining headroom and was reduced."))
	}
	if a.engine.NeedsIncomeWarning {
		list.WriteString("\n\n")
		list.WriteString(warnStyle.Render("Set an income before entering amounts: press [i]."))
	}
	if a.statusMsg != "" {
		list.WriteString("\n\n")
		list.WriteString(warnStyle.Render(a.statusMsg))
	}

	list.WriteString("\n\n")
	list.WriteString(labelStyle.Render("[a]dd [d]elete [n]ame [p]ercent a[m]ount [s]avings [i]ncome"))

	income := a.renderIncomeEdit(labelStyle)

	return components.MetricCardRow(cards, cw) + "\n" +
		income +
		components.ContentCard("Categories", list.String(), cw)
}

// renderIncomeEdit shows the income input above the list while active.
func (a App) renderIncomeEdit(labelStyle lipgloss.Style) string {
	if a.editField != editIncome {
		return ""
	}
	return "  " + labelStyle.Render("Income: ") + a.input.View() + "\n"
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}

func trimFloat(v float64) string {
	return strings.TrimSuffix(strings.TrimRight(fmt.Sprintf("%.2f", v), "0"), ".")
}

package tui

import (
	"fmt"
	"strings"

	"bplan/internal/cli"
	"bplan/internal/forecast"
	"bplan/internal/model"
	"bplan/internal/tui/components"
	"bplan/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func (a App) updateForecastKeys(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "r":
		return a, a.startEdit(editRate, "annual %", trimFloat(a.engine.State.InterestRate))
	case "o":
		return a, a.startEdit(editPeriod, "period length", trimFloat(a.engine.State.ForecastPeriodValue))
	case "u":
		unit := model.PeriodYears
		if a.engine.State.ForecastPeriodUnit == model.PeriodYears {
			unit = model.PeriodMonths
		}
		a.engine.SetForecastPeriod(trimFloat(a.engine.State.ForecastPeriodValue), unit)
		a.persist()
	}
	return a, nil
}

func (a App) renderForecastTab(cw int) string {
	t := theme.Active
	symbol := a.cfg.General.CurrencySymbol
	s := a.engine.State
	f := forecast.FromState(s)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	greenStyle := lipgloss.NewStyle().Foreground(t.Green)

	totalSavings := a.engine.TotalSavingsAllocation()
	projected := f.ProjectedSavingsValue(s.Categories)

	cards := []struct{ Label, Value string }{
		{"Rate (annual)", cli.FormatPercent(s.InterestRate)},
		{"Horizon", cli.FormatPeriod(s.ForecastPeriodValue, string(s.ForecastPeriodUnit))},
		{"Savings / mo", cli.FormatAmount(symbol, totalSavings)},
		{"Projected", cli.FormatAmount(symbol, projected)},
	}

	forecasts := f.SavingsForecasts(s.Categories)

	var body strings.Builder
	if a.editField == editRate {
		body.WriteString(labelStyle.Render("Rate: ") + a.input.View() + "\n\n")
	}
	if a.editField == editPeriod {
		body.WriteString(labelStyle.Render("Period: ") + a.input.View() + "\n\n")
	}

	if len(forecasts) == 0 {
		body.WriteString(labelStyle.Render("No savings categories. Toggle one with [s] on the Allocations tab."))
		body.WriteString("\n")
	} else {
		maxFV := 0.0
		for _, fc := range forecasts {
			if fc.FutureValue > maxFV {
				maxFV = fc.FutureValue
			}
		}

		innerW := components.CardInnerWidth(cw)
		barW := innerW - 46
		if barW < 10 {
			barW = 10
		}
		if barW > 30 {
			barW = 30
		}

		for i, fc := range forecasts {
			body.WriteString("  ")
			body.WriteString(valueStyle.Render(fmt.Sprintf("%-16s", truncate(fc.Name, 16))))
			body.WriteString(labelStyle.Render(fmt.Sprintf("%10s/mo ", cli.FormatAmount(symbol, fc.Monthly))))
			body.WriteString(greenStyle.Render(fmt.Sprintf("%12s ", cli.FormatAmount(symbol, fc.FutureValue))))
			body.WriteString(components.HBar(fc.FutureValue, maxFV, barW, theme.SliceColor(i)))
			body.WriteString("\n")
		}

		body.WriteString("\n")
		body.WriteString(labelStyle.Render(fmt.Sprintf("Σ %s contributed over %s grows to %s.",
			cli.FormatAmount(symbol, totalSavings*f.Months()),
			cli.FormatPeriod(s.ForecastPeriodValue, string(s.ForecastPeriodUnit)),
			cli.FormatAmount(symbol, projected),
		)))
		body.WriteString("\n")
	}

	body.WriteString("\n")
	body.WriteString(labelStyle.Render("[r]ate [o]period [u]nit toggle"))

	return components.MetricCardRow(cards, cw) + "\n" +
		components.ContentCard("Savings forecast", body.String(), cw)
}

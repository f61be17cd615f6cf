package tui

import (
	"fmt"
	"strings"

	"bplan/internal/config"
	"bplan/internal/tui/components"
	"bplan/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func (a App) updateSettingsKeys(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "t":
		// Cycle through themes and persist the choice.
		idx := 0
		for i, th := range theme.All {
			if th.Name == theme.Active.Name {
				idx = i
				break
			}
		}
		next := theme.All[(idx+1)%len(theme.All)]
		theme.SetActive(next.Name)
		a.cfg.Appearance.Theme = next.Name
		a.saveErr = config.Save(a.cfg)
	case "c":
		return a, a.startEdit(editCurrency, "currency symbol", a.cfg.General.CurrencySymbol)
	}
	return a, nil
}

func (a App) renderSettingsTab(cw int) string {
	t := theme.Active

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)

	var body strings.Builder
	if a.editField == editCurrency {
		body.WriteString(labelStyle.Render("Currency: ") + a.input.View() + "\n\n")
	}

	fields := []struct{ label, value string }{
		{"Theme", theme.Active.Name},
		{"Currency symbol", a.cfg.General.CurrencySymbol},
		{"Default budget", a.cfg.General.DefaultBudget},
		{"Config file", config.Path()},
	}
	for _, f := range fields {
		body.WriteString(labelStyle.Render(fmt.Sprintf("  %-18s ", f.label+":")))
		body.WriteString(valueStyle.Render(f.value))
		body.WriteString("\n")
	}

	body.WriteString("\n")
	body.WriteString(labelStyle.Render("[t]heme cycle  [c]urrency"))

	return components.ContentCard("Settings", body.String(), cw)
}

package tui

import (
	"bplan/internal/config"
	"bplan/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// setupValues backs the first-run form. Heap-allocated so the form's
// bindings stay valid across App value copies.
type setupValues struct {
	Income string
	Rate   string
	Theme  string
}

var setupVals = &setupValues{}

func (a App) newSetupForm() *huh.Form {
	setupVals.Theme = a.cfg.Appearance.Theme
	setupVals.Rate = trimFloat(a.cfg.Forecast.AnnualRate)

	themeOpts := make([]huh.Option[string], 0, len(theme.All))
	for _, th := range theme.All {
		themeOpts = append(themeOpts, huh.NewOption(th.Name, th.Name))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Monthly income").
				Description("Leave blank to set it later.").
				Placeholder("2500").
				Value(&setupVals.Income),
			huh.NewInput().
				Title("Annual interest rate (%)").
				Description("Used to project savings growth.").
				Value(&setupVals.Rate),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOpts...).
				Value(&setupVals.Theme),
		),
	)
}

func (a App) updateSetup(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return a, tea.Quit
	}

	form, cmd := a.setupForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.setupForm = f
	}

	if a.setupForm.State == huh.StateCompleted {
		a.finishSetup()
	}
	return a, cmd
}

func (a *App) finishSetup() {
	a.cfg.Appearance.Theme = setupVals.Theme
	theme.SetActive(setupVals.Theme)

	if setupVals.Income != "" {
		a.engine.SetIncome(setupVals.Income)
	}
	if setupVals.Rate != "" {
		a.engine.SetInterestRate(setupVals.Rate)
	}

	a.saveErr = config.Save(a.cfg)
	a.persist()
	a.needSetup = false
	a.setupForm = nil
}

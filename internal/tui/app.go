// Package tui provides the interactive Bubble Tea dashboard for bplan.
package tui

import (
	"fmt"

	"bplan/internal/budget"
	"bplan/internal/config"
	"bplan/internal/state"
	"bplan/internal/store"
	"bplan/internal/tui/components"
	"bplan/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// Edit targets for the shared text input.
const (
	editNone = iota
	editIncome
	editName
	editPercent
	editAmount
	editRate
	editPeriod
	editCurrency
)

const (
	tabAllocations = iota
	tabForecast
	tabSettings
)

// App is the root Bubble Tea model. It owns the allocation engine and
// persists a snapshot to the budget store after every mutation.
type App struct {
	engine *budget.Engine
	st     *store.Store
	slot   string
	cfg    config.Config

	width     int
	height    int
	activeTab int
	showHelp  bool

	// Allocations tab cursor + shared edit state
	cursor    int
	editField int
	input     textinput.Model

	saveErr   error
	statusMsg string

	// First-run setup (huh form)
	setupForm *huh.Form
	needSetup bool
}

// NewApp creates the TUI model around an already-loaded engine.
func NewApp(engine *budget.Engine, st *store.Store, slot string, cfg config.Config) App {
	theme.SetActive(cfg.Appearance.Theme)

	a := App{
		engine: engine,
		st:     st,
		slot:   slot,
		cfg:    cfg,
	}
	if !config.Exists() {
		a.needSetup = true
		a.setupForm = a.newSetupForm()
	}
	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	if a.setupForm != nil {
		return a.setupForm.Init()
	}
	return nil
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.setupForm != nil {
			a.setupForm = a.setupForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case tea.KeyMsg:
		if a.needSetup && a.setupForm != nil {
			return a.updateSetup(msg)
		}
		if a.editField != editNone {
			return a.updateEditing(msg)
		}
		return a.updateKeys(msg)
	}

	if a.needSetup && a.setupForm != nil {
		form, cmd := a.setupForm.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			a.setupForm = f
		}
		return a, cmd
	}
	return a, nil
}

func (a App) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	// Global keys
	switch key {
	case "q", "ctrl+c":
		return a, tea.Quit
	case "?":
		a.showHelp = !a.showHelp
		return a, nil
	case "tab":
		a.activeTab = (a.activeTab + 1) % len(components.Tabs)
		return a, nil
	case "shift+tab":
		a.activeTab = (a.activeTab + len(components.Tabs) - 1) % len(components.Tabs)
		return a, nil
	}
	if len(key) == 1 {
		if idx := components.TabIdxByKey(rune(key[0])); idx >= 0 {
			a.activeTab = idx
			return a, nil
		}
	}

	switch a.activeTab {
	case tabAllocations:
		return a.updateAllocationsKeys(key)
	case tabForecast:
		return a.updateForecastKeys(key)
	case tabSettings:
		return a.updateSettingsKeys(key)
	}
	return a, nil
}

// startEdit focuses the shared input on the given field with an
// initial value.
func (a *App) startEdit(field int, placeholder, value string) tea.Cmd {
	ti := textinput.New()
	ti.CharLimit = 64
	ti.Width = 24
	ti.Placeholder = placeholder
	ti.SetValue(value)
	ti.Focus()

	a.editField = field
	a.input = ti
	a.statusMsg = ""
	return ti.Cursor.BlinkCmd()
}

func (a App) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		a.applyEdit()
		a.editField = editNone
		return a, nil
	case "esc":
		a.editField = editNone
		return a, nil
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

// applyEdit routes the submitted input to the engine and persists.
func (a *App) applyEdit() {
	val := a.input.Value()

	switch a.editField {
	case editIncome:
		a.engine.SetIncome(val)
	case editName:
		if err := a.engine.SetCategoryName(a.cursor, val); err != nil {
			a.statusMsg = err.Error()
			return
		}
	case editPercent:
		if err := a.engine.SetCategoryPercentage(a.cursor, val); err != nil {
			a.statusMsg = err.Error()
			return
		}
	case editAmount:
		if err := a.engine.SetCategoryAmount(a.cursor, val); err != nil {
			a.statusMsg = err.Error()
			return
		}
	case editRate:
		a.engine.SetInterestRate(val)
	case editPeriod:
		a.engine.SetForecastPeriod(val, a.engine.State.ForecastPeriodUnit)
	case editCurrency:
		a.cfg.General.CurrencySymbol = val
		a.saveErr = config.Save(a.cfg)
		return
	}
	a.persist()
}

// persist writes the current snapshot to the budget store.
func (a *App) persist() {
	if a.st == nil {
		return
	}
	payload, err := state.Serialize(a.engine.Snapshot())
	if err == nil {
		err = a.st.SaveBudget(a.slot, payload)
	}
	a.saveErr = err
}

func (a *App) clampCursor() {
	if a.cursor >= len(a.engine.State.Categories) {
		a.cursor = len(a.engine.State.Categories) - 1
	}
	if a.cursor < 0 {
		a.cursor = 0
	}
}

// View implements tea.Model.
func (a App) View() string {
	if a.needSetup && a.setupForm != nil {
		return a.setupForm.View()
	}

	t := theme.Active
	cw := a.width
	if cw < 60 {
		cw = 60
	}
	if cw > 120 {
		cw = 120
	}

	var body string
	switch a.activeTab {
	case tabAllocations:
		body = a.renderAllocationsTab(cw)
	case tabForecast:
		body = a.renderForecastTab(cw)
	case tabSettings:
		body = a.renderSettingsTab(cw)
	}

	if a.showHelp {
		body = a.renderHelp()
	}

	right := fmt.Sprintf("budget: %s ", a.slot)
	if a.saveErr != nil {
		warn := lipgloss.NewStyle().Foreground(t.Orange)
		right = warn.Render(fmt.Sprintf("save failed: %s ", a.saveErr))
	}

	return components.RenderTabBar(a.activeTab) + "\n\n" +
		body + "\n" +
		components.RenderStatusBar(a.width, right)
}

func (a App) renderHelp() string {
	t := theme.Active
	label := lipgloss.NewStyle().Foreground(t.TextMuted)
	value := lipgloss.NewStyle().Foreground(t.TextPrimary)

	rows := []struct{ key, desc string }{
		{"1/2/3, tab", "switch tabs"},
		{"j/k", "move cursor"},
		{"a / d", "add / delete category"},
		{"n / p / m", "edit name / percent / amount"},
		{"s", "toggle savings flag"},
		{"i", "edit income"},
		{"r / o / u", "edit rate / period / toggle unit (forecast)"},
		{"enter / esc", "apply / cancel edit"},
		{"q", "quit"},
	}

	body := ""
	for _, r := range rows {
		body += fmt.Sprintf("  %s %s\n", value.Render(fmt.Sprintf("%-12s", r.key)), label.Render(r.desc))
	}
	return components.ContentCard("Keys", body, 50)
}

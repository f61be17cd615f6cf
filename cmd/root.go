package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"bplan/internal/budget"
	"bplan/internal/config"
	"bplan/internal/model"
	"bplan/internal/state"
	"bplan/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagBudget string
	flagQuiet  bool
)

var rootCmd = &cobra.Command{
	Use:   "bplan",
	Short: "Personal budget allocation planner",
	Long:  "Plan how income splits across categories, keep percentages and amounts in sync, and project savings growth.",
	RunE:  runStatus,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagBudget, "budget", "b", "", "Budget slot name (default from config)")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress warnings on stderr")
}

// slotName resolves the active budget slot: flag, then config, then
// the built-in default.
func slotName(cfg config.Config) string {
	if flagBudget != "" {
		return flagBudget
	}
	if cfg.General.DefaultBudget != "" {
		return cfg.General.DefaultBudget
	}
	return store.DefaultSlot
}

func storePath(cfg config.Config) string {
	if cfg.General.DataDir != "" {
		return filepath.Join(cfg.General.DataDir, "budgets.db")
	}
	return store.DefaultPath()
}

// freshState builds a new budget from the configured forecast defaults.
func freshState(cfg config.Config) model.BudgetState {
	unit := model.PeriodMonths
	if cfg.Forecast.PeriodUnit == string(model.PeriodYears) {
		unit = model.PeriodYears
	}
	return model.BudgetState{
		InterestRate:        cfg.Forecast.AnnualRate,
		ForecastPeriodValue: cfg.Forecast.PeriodValue,
		ForecastPeriodUnit:  unit,
	}
}

// loadEngine is the shared load path: open the store, read the active
// slot, and coerce the payload into an engine. A missing slot yields a
// fresh budget; an unreadable one is reported and replaced.
func loadEngine() (*budget.Engine, *store.Store, config.Config, error) {
	cfg, err := config.Load()
	if err != nil && !flagQuiet {
		fmt.Fprintf(os.Stderr, "  config unreadable, using defaults: %v\n", err)
	}

	st, err := store.Open(storePath(cfg))
	if err != nil {
		return nil, nil, cfg, err
	}

	e := budget.New()
	payload, err := st.LoadBudget(slotName(cfg))
	switch {
	case errors.Is(err, store.ErrNotFound):
		e.Apply(freshState(cfg))
	case err != nil:
		_ = st.Close()
		return nil, nil, cfg, err
	default:
		s, derr := state.Deserialize(payload)
		if derr != nil {
			if !flagQuiet {
				fmt.Fprintf(os.Stderr, "  stored budget %q is unreadable, starting fresh\n", slotName(cfg))
			}
			s = freshState(cfg)
		}
		e.Apply(s)
	}

	return e, st, cfg, nil
}

// saveEngine persists the engine snapshot into the active slot.
func saveEngine(st *store.Store, cfg config.Config, e *budget.Engine) error {
	payload, err := state.Serialize(e.Snapshot())
	if err != nil {
		return err
	}
	return st.SaveBudget(slotName(cfg), payload)
}

// reportFlags surfaces the engine's transient signals after a mutation.
func reportFlags(e *budget.Engine) {
	if flagQuiet {
		return
	}
	if e.AllocationClamped {
		fmt.Fprintf(os.Stderr, "  note: allocation exceeded remaining headroom and was reduced\n")
	}
	if e.NeedsIncomeWarning {
		fmt.Fprintf(os.Stderr, "  note: no income set; amount kept, set an income with `bplan income`\n")
	}
}

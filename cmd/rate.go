package cmd

import (
	"fmt"

	"bplan/internal/cli"
	"bplan/internal/model"

	"github.com/spf13/cobra"
)

var rateCmd = &cobra.Command{
	Use:   "rate <percent>",
	Short: "Set the annual interest rate used for savings forecasts",
	Args:  cobra.ExactArgs(1),
	RunE:  runRate,
}

var (
	flagPeriodYears bool

	periodCmd = &cobra.Command{
		Use:   "period <value> [months|years]",
		Short: "Set the forecast horizon (months by default)",
		Args:  cobra.RangeArgs(1, 2),
		RunE:  runPeriod,
	}
)

func init() {
	periodCmd.Flags().BoolVar(&flagPeriodYears, "years", false, "Interpret the value as years")
	rootCmd.AddCommand(rateCmd)
	rootCmd.AddCommand(periodCmd)
}

func runRate(_ *cobra.Command, args []string) error {
	e, st, cfg, err := loadEngine()
	if err != nil {
		return err
	}
	defer st.Close()

	e.SetInterestRate(args[0])
	if err := saveEngine(st, cfg, e); err != nil {
		return err
	}

	fmt.Printf("  Annual rate set to %s\n", cli.FormatPercent(e.Snapshot().InterestRate))
	return nil
}

func runPeriod(_ *cobra.Command, args []string) error {
	e, st, cfg, err := loadEngine()
	if err != nil {
		return err
	}
	defer st.Close()

	unit := model.PeriodMonths
	if flagPeriodYears || (len(args) == 2 && args[1] == string(model.PeriodYears)) {
		unit = model.PeriodYears
	}
	e.SetForecastPeriod(args[0], unit)
	if err := saveEngine(st, cfg, e); err != nil {
		return err
	}

	s := e.Snapshot()
	fmt.Printf("  Forecast horizon set to %s\n", cli.FormatPeriod(s.ForecastPeriodValue, string(s.ForecastPeriodUnit)))
	return nil
}

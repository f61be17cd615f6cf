package cmd

import (
	"fmt"

	"bplan/internal/cli"
	"bplan/internal/forecast"

	"github.com/spf13/cobra"
)

var forecastCmd = &cobra.Command{
	Use:   "forecast",
	Short: "Project savings growth over the configured horizon",
	RunE:  runForecast,
}

func init() {
	rootCmd.AddCommand(forecastCmd)
}

func runForecast(_ *cobra.Command, _ []string) error {
	e, st, cfg, err := loadEngine()
	if err != nil {
		return err
	}
	defer st.Close()

	s := e.Snapshot()
	sym := cfg.General.CurrencySymbol
	fe := forecast.FromState(s)

	fmt.Println()
	fmt.Println(cli.RenderTitle("SAVINGS FORECAST"))
	fmt.Println()
	fmt.Printf("  Annual rate: %s, compounded monthly\n", cli.FormatPercent(s.InterestRate))
	fmt.Printf("  Horizon:     %s (%g months)\n",
		cli.FormatPeriod(s.ForecastPeriodValue, string(s.ForecastPeriodUnit)), fe.Months())
	fmt.Println()

	items := fe.SavingsForecasts(s.Categories)
	if len(items) == 0 {
		fmt.Println("  No savings categories. Mark one with `bplan category set <n> --savings`.")
		fmt.Println()
		return nil
	}

	rows := make([][]string, 0, len(items)+2)
	for _, it := range items {
		rows = append(rows, []string{
			it.Name,
			cli.FormatAmount(sym, it.Monthly),
			cli.FormatAmount(sym, it.FutureValue),
		})
	}
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{
		"Total",
		cli.FormatAmount(sym, e.TotalSavingsAllocation()),
		cli.FormatAmount(sym, fe.ProjectedSavingsValue(s.Categories)),
	})

	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Projected Balances",
		Headers: []string{"Category", "Monthly", "Projected"},
		Rows:    rows,
	}))

	return nil
}

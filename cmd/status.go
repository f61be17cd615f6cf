package cmd

import (
	"fmt"

	"bplan/internal/cli"
	"bplan/internal/forecast"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current budget allocation",
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(_ *cobra.Command, _ []string) error {
	e, st, cfg, err := loadEngine()
	if err != nil {
		return err
	}
	defer st.Close()

	s := e.Snapshot()
	sym := cfg.General.CurrencySymbol

	fmt.Println()
	fmt.Println(cli.RenderTitle("BUDGET STATUS"))
	fmt.Println()

	fmt.Printf("  Budget:    %s\n", slotName(cfg))
	fmt.Printf("  Income:    %s / month\n", cli.FormatAmount(sym, s.Income))
	fmt.Printf("  Allocated: %s of income\n", cli.FormatPercent(e.TotalPercentage()))
	fmt.Printf("  Remaining: %s\n", cli.FormatPercent(e.RemainingPercentage()))
	fmt.Println()
	fmt.Printf("  %s\n", cli.RenderAllocationBar(e.TotalPercentage(), 40))
	fmt.Println()

	if len(s.Categories) == 0 {
		fmt.Println("  No categories yet. Add one with `bplan category add`.")
		fmt.Println()
		return nil
	}

	rows := make([][]string, 0, len(s.Categories))
	for i, c := range s.Categories {
		kind := ""
		if c.IsSavings {
			kind = "savings"
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			c.DisplayName(i),
			cli.FormatPercent(c.Percentage),
			cli.FormatAmount(sym, c.Amount),
			kind,
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Categories",
		Headers: []string{"#", "Name", "Percent", "Amount", ""},
		Rows:    rows,
	}))

	if sav := e.TotalSavingsAllocation(); sav > 0 {
		fe := forecast.FromState(s)
		fmt.Printf("  Savings: %s per month, %s after %s\n\n",
			cli.FormatAmount(sym, sav),
			cli.FormatAmount(sym, fe.ProjectedSavingsValue(s.Categories)),
			cli.FormatPeriod(s.ForecastPeriodValue, string(s.ForecastPeriodUnit)))
	}

	return nil
}

package cmd

import (
	"fmt"

	"bplan/internal/cli"

	"github.com/spf13/cobra"
)

var incomeCmd = &cobra.Command{
	Use:   "income <amount>",
	Short: "Set monthly income",
	Args:  cobra.ExactArgs(1),
	RunE:  runIncome,
}

func init() {
	rootCmd.AddCommand(incomeCmd)
}

func runIncome(_ *cobra.Command, args []string) error {
	e, st, cfg, err := loadEngine()
	if err != nil {
		return err
	}
	defer st.Close()

	e.SetIncome(args[0])
	if err := saveEngine(st, cfg, e); err != nil {
		return err
	}

	fmt.Printf("  Income set to %s / month\n", cli.FormatAmount(cfg.General.CurrencySymbol, e.Snapshot().Income))
	return nil
}

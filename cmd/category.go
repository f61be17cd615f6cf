package cmd

import (
	"fmt"
	"strconv"

	"bplan/internal/budget"
	"bplan/internal/cli"

	"github.com/spf13/cobra"
)

var categoryCmd = &cobra.Command{
	Use:   "category",
	Short: "Manage budget categories",
}

var categoryAddCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Add a category",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCategoryAdd,
}

var categoryRemoveCmd = &cobra.Command{
	Use:   "remove <index>",
	Short: "Remove a category by its 1-based index",
	Args:  cobra.ExactArgs(1),
	RunE:  runCategoryRemove,
}

var (
	flagCatName    string
	flagCatPercent string
	flagCatAmount  string
	flagCatSavings bool

	categorySetCmd = &cobra.Command{
		Use:   "set <index>",
		Short: "Update a category by its 1-based index",
		Args:  cobra.ExactArgs(1),
		RunE:  runCategorySet,
	}
)

func init() {
	categoryAddCmd.Flags().StringVar(&flagCatName, "name", "", "Category name")
	categoryAddCmd.Flags().StringVar(&flagCatPercent, "percent", "", "Percentage of income")
	categoryAddCmd.Flags().StringVar(&flagCatAmount, "amount", "", "Fixed amount (converted to a percentage)")
	categoryAddCmd.Flags().BoolVar(&flagCatSavings, "savings", false, "Count this category toward savings forecasts")

	categorySetCmd.Flags().StringVar(&flagCatName, "name", "", "Category name")
	categorySetCmd.Flags().StringVar(&flagCatPercent, "percent", "", "Percentage of income")
	categorySetCmd.Flags().StringVar(&flagCatAmount, "amount", "", "Fixed amount (converted to a percentage)")
	categorySetCmd.Flags().BoolVar(&flagCatSavings, "savings", false, "Count this category toward savings forecasts")

	categoryCmd.AddCommand(categoryAddCmd)
	categoryCmd.AddCommand(categoryRemoveCmd)
	categoryCmd.AddCommand(categorySetCmd)
	rootCmd.AddCommand(categoryCmd)
}

// parseIndex converts a 1-based CLI index into the engine's 0-based one.
func parseIndex(raw string, n int) (int, error) {
	i, err := strconv.Atoi(raw)
	if err != nil || i < 1 || i > n {
		return 0, fmt.Errorf("invalid category index %q (have %d categories)", raw, n)
	}
	return i - 1, nil
}

// applyCategoryFlags pushes whichever flags were set on cmd into the
// category at index. Amount wins over percent when both are given, to
// match the last-edited-field behavior of the interactive editor.
func applyCategoryFlags(cmd *cobra.Command, e *budget.Engine, index int) error {
	if cmd.Flags().Changed("name") {
		if err := e.SetCategoryName(index, flagCatName); err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("savings") {
		if err := e.SetCategorySavings(index, flagCatSavings); err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("percent") {
		if err := e.SetCategoryPercentage(index, flagCatPercent); err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("amount") {
		if err := e.SetCategoryAmount(index, flagCatAmount); err != nil {
			return err
		}
	}
	return nil
}

func runCategoryAdd(cmd *cobra.Command, args []string) error {
	e, st, cfg, err := loadEngine()
	if err != nil {
		return err
	}
	defer st.Close()

	e.AddCategory()
	index := len(e.Snapshot().Categories) - 1
	if len(args) == 1 {
		if err := e.SetCategoryName(index, args[0]); err != nil {
			return err
		}
	}
	if err := applyCategoryFlags(cmd, e, index); err != nil {
		return err
	}
	if err := saveEngine(st, cfg, e); err != nil {
		return err
	}
	reportFlags(e)

	c := e.Snapshot().Categories[index]
	fmt.Printf("  Added %q: %s (%s)\n",
		c.DisplayName(index),
		cli.FormatPercent(c.Percentage),
		cli.FormatAmount(cfg.General.CurrencySymbol, c.Amount))
	return nil
}

func runCategoryRemove(_ *cobra.Command, args []string) error {
	e, st, cfg, err := loadEngine()
	if err != nil {
		return err
	}
	defer st.Close()

	index, err := parseIndex(args[0], len(e.Snapshot().Categories))
	if err != nil {
		return err
	}
	name := e.Snapshot().Categories[index].DisplayName(index)
	if err := e.RemoveCategory(index); err != nil {
		return err
	}
	if err := saveEngine(st, cfg, e); err != nil {
		return err
	}

	fmt.Printf("  Removed %q\n", name)
	return nil
}

func runCategorySet(cmd *cobra.Command, args []string) error {
	e, st, cfg, err := loadEngine()
	if err != nil {
		return err
	}
	defer st.Close()

	index, err := parseIndex(args[0], len(e.Snapshot().Categories))
	if err != nil {
		return err
	}
	if err := applyCategoryFlags(cmd, e, index); err != nil {
		return err
	}
	if err := saveEngine(st, cfg, e); err != nil {
		return err
	}
	reportFlags(e)

	c := e.Snapshot().Categories[index]
	fmt.Printf("  %s: %s (%s)\n",
		c.DisplayName(index),
		cli.FormatPercent(c.Percentage),
		cli.FormatAmount(cfg.General.CurrencySymbol, c.Amount))
	return nil
}

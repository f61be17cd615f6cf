package cmd

import (
	"fmt"

	"bplan/internal/cli"
	"bplan/internal/config"
	"bplan/internal/store"

	"github.com/spf13/cobra"
)

var budgetsCmd = &cobra.Command{
	Use:   "budgets",
	Short: "List saved budgets",
	RunE:  runBudgets,
}

var budgetsUseCmd = &cobra.Command{
	Use:   "use <name>",
	Short: "Make a budget the default",
	Args:  cobra.ExactArgs(1),
	RunE:  runBudgetsUse,
}

var budgetsDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a saved budget",
	Args:  cobra.ExactArgs(1),
	RunE:  runBudgetsDelete,
}

func init() {
	budgetsCmd.AddCommand(budgetsUseCmd)
	budgetsCmd.AddCommand(budgetsDeleteCmd)
	rootCmd.AddCommand(budgetsCmd)
}

func runBudgets(_ *cobra.Command, _ []string) error {
	cfg, _ := config.Load()
	st, err := store.Open(storePath(cfg))
	if err != nil {
		return err
	}
	defer st.Close()

	infos, err := st.ListBudgets()
	if err != nil {
		return err
	}
	if len(infos) == 0 {
		fmt.Println("  No saved budgets yet.")
		return nil
	}

	active := slotName(cfg)
	rows := make([][]string, 0, len(infos))
	for _, info := range infos {
		marker := ""
		if info.Name == active {
			marker = "*"
		}
		rows = append(rows, []string{marker, info.Name, info.UpdatedAt.Local().Format("2006-01-02 15:04")})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Budgets",
		Headers: []string{"", "Name", "Updated"},
		Rows:    rows,
	}))
	return nil
}

func runBudgetsUse(_ *cobra.Command, args []string) error {
	cfg, _ := config.Load()
	cfg.General.DefaultBudget = args[0]
	if err := config.Save(cfg); err != nil {
		return err
	}
	fmt.Printf("  Default budget set to %q\n", args[0])
	return nil
}

func runBudgetsDelete(_ *cobra.Command, args []string) error {
	cfg, _ := config.Load()
	st, err := store.Open(storePath(cfg))
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.DeleteBudget(args[0]); err != nil {
		return err
	}
	fmt.Printf("  Deleted budget %q\n", args[0])
	return nil
}

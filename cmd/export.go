package cmd

import (
	"fmt"
	"os"

	"bplan/internal/state"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export the current budget as JSON (stdout by default)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, args []string) error {
	e, st, _, err := loadEngine()
	if err != nil {
		return err
	}
	defer st.Close()

	payload, err := state.Serialize(e.Snapshot())
	if err != nil {
		return err
	}

	if len(args) == 0 {
		fmt.Println(string(payload))
		return nil
	}
	if err := os.WriteFile(args[0], append(payload, '\n'), 0o644); err != nil {
		return fmt.Errorf("write export: %w", err)
	}
	fmt.Printf("  Budget exported to %s\n", args[0])
	return nil
}

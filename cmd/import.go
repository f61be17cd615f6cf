package cmd

import (
	"errors"
	"fmt"
	"os"

	"bplan/internal/state"

	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a budget from a JSON export, replacing the current one",
	Args:  cobra.ExactArgs(1),
	RunE:  runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(_ *cobra.Command, args []string) error {
	payload, err := os.ReadFile(args[0])
	if err != nil {
		return errors.New("Import failed. Please try a different file.")
	}

	s, err := state.Deserialize(payload)
	if err != nil {
		return errors.New("Import failed. The selected file is not a valid budget export.")
	}

	e, st, cfg, err := loadEngine()
	if err != nil {
		return err
	}
	defer st.Close()

	e.Apply(s)
	if err := saveEngine(st, cfg, e); err != nil {
		return err
	}

	fmt.Printf("  Imported %s into budget %q\n", args[0], slotName(cfg))
	return nil
}

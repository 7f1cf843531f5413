package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/s0rta/tcshows/schemas"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Validate a show listing document against the schema",
	Long:  "Checks an existing output document against the shows JSON Schema and reports every violating field.",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read document %s: %w", args[0], err)
	}

	if err := schemas.ValidateDocument(string(data)); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(os.Stdout, "%s is valid\n", args[0])
	return nil
}

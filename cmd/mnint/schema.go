package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/mnint/internal/parameters"
)

func newSchemaCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema of the parameters document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			schema, err := parameters.Schema()
			if err != nil {
				return fmt.Errorf("parameters.Schema() > %w", err)
			}
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(schema); err != nil {
				return fmt.Errorf("encoder.Encode() > %w", err)
			}
			return nil
		},
	}
}

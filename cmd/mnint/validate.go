package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/at-ishikawa/mnint/internal/parameters"
)

var issueHeadings = map[parameters.Kind]string{
	parameters.KindParse:          "Malformed document",
	parameters.KindMissingField:   "Missing fields",
	parameters.KindTypeMismatch:   "Type mismatches",
	parameters.KindRangeInvariant: "Range violations",
	parameters.KindEnumMembership: "Undeclared literals",
}

func newValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [parameters file]",
		Short: "Validate a parameters document and report every issue found",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := readableParametersPath(cmd, args)
			if err != nil {
				return err
			}

			output := cmd.OutOrStdout()
			if _, err := parameters.Load(path); err != nil {
				var configErr *parameters.ConfigError
				if !errors.As(err, &configErr) {
					return fmt.Errorf("parameters.Load() > %w", err)
				}
				displayConfigError(output, configErr)
				return fmt.Errorf("validation failed with %d issue(s)", len(configErr.Issues))
			}

			_, _ = color.New(color.FgGreen).Fprintf(output, "✓ %s is valid\n", path)
			return nil
		},
	}
}

func displayConfigError(output io.Writer, configErr *parameters.ConfigError) {
	red := color.New(color.FgRed)
	bold := color.New(color.Bold)

	_, _ = bold.Fprintf(output, "=== %s ===\n", configErr.Source)
	for _, kind := range parameters.Kinds {
		issues := configErr.ByKind(kind)
		if len(issues) == 0 {
			continue
		}
		_, _ = red.Fprintf(output, "✗ %s (%d):\n", issueHeadings[kind], len(issues))
		for _, issue := range issues {
			_, _ = fmt.Fprintf(output, "  - %s\n", issue.Message)
		}
	}
	_, _ = fmt.Fprintf(output, "Total issues: %d\n", len(configErr.Issues))
}

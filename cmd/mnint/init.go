package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/natefinch/atomic"
	"github.com/spf13/cobra"

	"github.com/at-ishikawa/mnint/internal/assets"
)

func newInitCommand() *cobra.Command {
	var force bool

	command := &cobra.Command{
		Use:   "init [parameters file]",
		Short: "Write the default parameters document",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _, err := parametersPath(cmd, args)
			if err != nil {
				return err
			}
			if !force {
				if _, err := os.Stat(path); err == nil {
					return fmt.Errorf("%s already exists, use --force to overwrite it", path)
				}
			}

			if err := atomic.WriteFile(path, bytes.NewReader(assets.DefaultParameters())); err != nil {
				return fmt.Errorf("atomic.WriteFile(%s) > %w", path, err)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}
	command.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")

	return command
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/mnint/internal/config"
)

func newConfigLoader(cmd *cobra.Command) (*config.ConfigLoader, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	if err := loader.BindFlags(cmd.Flags()); err != nil {
		return nil, err
	}
	return loader, nil
}

func loadConfig(cmd *cobra.Command) (*config.Config, *config.ConfigLoader, error) {
	loader, err := newConfigLoader(cmd)
	if err != nil {
		return nil, nil, err
	}
	cfg, err := loader.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, loader, nil
}

// parametersPath returns the document named on the command line, falling
// back to the configured parameters.file.
func parametersPath(cmd *cobra.Command, args []string) (string, *config.ConfigLoader, error) {
	if len(args) > 0 {
		loader, err := newConfigLoader(cmd)
		if err != nil {
			return "", nil, err
		}
		return args[0], loader, nil
	}
	cfg, loader, err := loadConfig(cmd)
	if err != nil {
		return "", nil, err
	}
	return cfg.Parameters.File, loader, nil
}

// readableParametersPath is parametersPath for commands that read the
// document.
func readableParametersPath(cmd *cobra.Command, args []string) (string, error) {
	path, loader, err := parametersPath(cmd, args)
	if err != nil {
		return "", err
	}
	if err := loader.RequireReadableFile(path); err != nil {
		return "", err
	}
	return path, nil
}

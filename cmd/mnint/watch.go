package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/mnint/internal/parameters"
	"github.com/at-ishikawa/mnint/internal/reload"
)

func newWatchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "watch [parameters file]",
		Short: "Validate a parameters document on every change until interrupted",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, loader, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			path := cfg.Parameters.File
			if len(args) > 0 {
				path = args[0]
			}
			if err := loader.RequireReadableFile(path); err != nil {
				return err
			}

			store, err := reload.NewStore(path)
			if err != nil {
				return err
			}
			store.Subscribe(logListener{})

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return reload.NewWatcher(store, cfg.Watch.Debounce).Run(ctx)
		},
	}
}

// logListener logs which sections a reload changed.
type logListener struct{}

func (logListener) ParametersReloaded(previous, current *parameters.Config) {
	slog.Default().Info("parameters changed",
		slog.Bool("nodes", previous.Nodes != current.Nodes),
		slog.Bool("element_settings", previous.Elements != current.Elements),
		slog.Bool("subassembly_settings", previous.Subassembly != current.Subassembly),
	)
}

var _ reload.Listener = logListener{}

package main

import (
	"log/slog"
	"time"

	"deedles.dev/xselect/drag"
	"deedles.dev/xselect/internal/script"
	"github.com/spf13/cobra"
)

func replayCmd() *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "replay scenario.yaml",
		Short: "Replay a recorded selection scenario",
		Long: `Replay runs the events of a scenario file through a selection session
and prints the selection and inner rectangle after each one.

With --watch the scenario is replayed again every time the file changes.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			run := func() error {
				s, err := script.Load(path)
				if err != nil {
					return err
				}

				start := time.Now()
				steps, session := s.Replay(start)
				return script.Print(cmd.OutOrStdout(), start, steps, session)
			}

			if !watch {
				return run()
			}

			logger := drag.Logger()
			if !logger.Enabled(cmd.Context(), slog.LevelError) {
				logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), nil))
			}
			return script.Watch(cmd.Context(), path, logger, run)
		},
	}

	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "replay again whenever the file changes")

	return cmd
}

// Command xselect runs aspect-fit queries and replays recorded
// selection scenarios from the command line.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"

	"deedles.dev/xselect"
	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:           "xselect",
		Short:         "Aspect-fit selections",
		Long:          `xselect fits rectangles into selections and replays handle-drag scenarios.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if !verbose {
				return
			}
			xselect.SetLogger(newLogger(cmd))
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log gesture transitions to stderr")

	cmd.AddCommand(fitCmd())
	cmd.AddCommand(replayCmd())
	cmd.AddCommand(knobsCmd())

	return cmd
}

func newLogger(cmd *cobra.Command) *slog.Logger {
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}

func parseFloats(args []string) ([]float64, error) {
	vals := make([]float64, 0, len(args))
	for i, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i+1, err)
		}
		vals = append(vals, v)
	}
	return vals, nil
}

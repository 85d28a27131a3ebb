package cli

import (
	"context"

	"github.com/gear6io/tablediff/display"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tablediff",
	Short: "Compare files and directory trees with numeric tolerance",
	Long: `Tablediff compares pairs of files or whole directory trees, treating
numbers as equal up to a configurable decimal precision before diffing.

Delimited tabular files additionally get a statistical catalog of their
columns: inferred types, null counts, unique counts, extremes and the most
frequent values. Results can be rendered as a terminal summary, JSON, or a
standalone HTML report.`,
	Version: "0.1.0",
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteWithContext runs the root command with context carrying the display
// and logger instances
func ExecuteWithContext(ctx context.Context) error {
	rootCmd.SetContext(ctx)

	if logger := getLoggerFromContext(ctx); logger != nil {
		logger.Info().Str("cmd", "root").Msg("Executing root command")
	}

	return rootCmd.Execute()
}

type contextKey string

const loggerKey contextKey = "logger"

// WithLogger attaches a logger to the context for all subcommands
func WithLogger(ctx context.Context, logger zerolog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// getLoggerFromContext retrieves the logger from context
func getLoggerFromContext(ctx context.Context) *zerolog.Logger {
	if logger, ok := ctx.Value(loggerKey).(zerolog.Logger); ok {
		return &logger
	}
	return nil
}

// getDisplayFromContext retrieves the display instance from context
func getDisplayFromContext(ctx context.Context) display.Display {
	return display.FromContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
}

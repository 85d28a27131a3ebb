package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/gear6io/tablediff/cli"
	"github.com/gear6io/tablediff/config"
	"github.com/gear6io/tablediff/display"
	"github.com/rs/zerolog"
)

func main() {
	logManager, logger := setupLogger()
	defer logManager.Close()

	// Create context with display and logger
	ctx := context.Background()
	ctx = display.WithDisplay(ctx, display.New())
	ctx = cli.WithLogger(ctx, logger)

	logger.Info().Str("cmd", "main").Msg("Starting tablediff CLI")

	if err := cli.ExecuteWithContext(ctx); err != nil {
		logger.Error().Str("cmd", "main").Err(err).Msg("CLI execution failed")
		os.Exit(1)
	}

	logger.Info().Str("cmd", "main").Msg("tablediff CLI completed successfully")
}

// setupLogger initializes zerolog with rotated file output, honoring the
// logging section of .tablediff.yml when one is found
func setupLogger() (*config.LogManager, zerolog.Logger) {
	_, cfg, err := config.FindConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		cfg = config.LoadDefaultConfig()
	}

	if cfg.Log.Cleanup {
		if err := config.CleanupLogFile(cfg.Log.FilePath); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to clean up log file: %v\n", err)
		}
	}

	logManager := config.NewLogManager(&cfg.Log)
	writer, err := logManager.GetWriter()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
		writer = io.Discard
	}

	if cfg.Log.Console {
		writer = zerolog.MultiLevelWriter(writer, zerolog.ConsoleWriter{Out: os.Stderr})
	}

	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	logger := zerolog.New(writer).Level(level).With().
		Timestamp().
		Str("app", "tablediff").
		Logger()

	return logManager, logger
}

// Package commands implements the pymeledger CLI. The CLI is the driver
// around the accounting core: it loads caller data, pushes entries through
// validate/post and prints reports.
package commands

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/pymeledger/pymeledger/pkg/config"
)

// NewRootCommand creates the root CLI command with all subcommands
// registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "pymeledger",
		Short:        "Double-entry bookkeeping for small businesses",
		SilenceUsage: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	rootCmd.AddCommand(newChartCommand())
	rootCmd.AddCommand(newJournalCommand())
	rootCmd.AddCommand(newReportCommand())

	return rootCmd
}

// setupLogger configures the process logger from config.
func setupLogger(cfg *config.Config) *slog.Logger {
	level := slog.LevelWarn
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "error":
		level = slog.LevelError
	}
	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "bedrock",
	Short: "Bedrock - provenance-aware build-definition loader",
	Long: `Bedrock loads YAML build-definition files into a typed node tree in
which every value remembers the file, line, and column it came from.

It is used to validate definition files before they enter a build
pipeline, reporting problems as precise file:line:column diagnostics.`,
	Version: Version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging()
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setupLogging wires the process-wide slog logger. Verbose mode enables
// debug records from the loader and watcher.
func setupLogging() {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

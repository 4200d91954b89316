// Package cmd implements the CLI commands for JitaDeck using Cobra.
package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:   "jitadeck",
	Short: "JitaDeck — scrape Japanese verb pair articles into Anki flashcards",
	Long: `JitaDeck scrapes transitive/intransitive verb pair articles from
edewakaru.com, persists them as JSON records with their images, and syncs
the records into Anki via the AnkiConnect automation API.

Usage:
  jitadeck scrape [--level beginner]
  jitadeck sync [level]`,
}

// logger is shared by all commands; built before any command runs.
var logger *zap.Logger

// Execute runs the root command.
func Execute() {
	cobra.OnInitialize(initLogger)

	err := rootCmd.Execute()
	if logger != nil {
		_ = logger.Sync()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func initLogger() {
	// Optional .env for local overrides; absence is fine.
	_ = godotenv.Load()

	l, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "initializing logger: %v\n", err)
		os.Exit(1)
	}
	logger = l
}

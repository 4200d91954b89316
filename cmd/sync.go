// Package cmd — sync command.
// Reads persisted records and upserts them into Anki via AnkiConnect.
// An unreachable automation API aborts the run; a single failing note is
// skipped with a diagnostic.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gaurav-prasanna/jitadeck/anki"
	"github.com/gaurav-prasanna/jitadeck/core"
	"github.com/gaurav-prasanna/jitadeck/core/store"
)

var flagAnkiURL string

var syncCmd = &cobra.Command{
	Use:   "sync [level]",
	Short: "Upsert scraped verb pair records into Anki",
	Long: `Sync reads JSON records and upserts them into Anki, keyed by the
VerbPairID field so reruns never create duplicate notes.

Without an argument every individual record file is synced; with a level
argument only that level's combined file is.

Examples:
  jitadeck sync
  jitadeck sync beginner`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSync,
}

func init() {
	rootCmd.AddCommand(syncCmd)

	syncCmd.Flags().StringVar(&flagAnkiURL, "anki-url", "", "AnkiConnect endpoint (default from config)")
	syncCmd.Flags().StringVar(&flagDataDir, "data-dir", "", "Directory holding JSON records (default from config)")
	syncCmd.Flags().StringVar(&flagImagesDir, "images-dir", "", "Directory holding downloaded images (default from config)")
}

func runSync(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if flagAnkiURL != "" {
		cfg.AnkiConnectURL = flagAnkiURL
	}
	if flagDataDir != "" {
		cfg.DataDir = flagDataDir
	}
	if flagImagesDir != "" {
		cfg.ImagesDir = flagImagesDir
	}

	recordStore, err := store.New(cfg.DataDir)
	if err != nil {
		return fmt.Errorf("initializing record store: %w", err)
	}

	client := anki.NewClient(cfg.AnkiConnectURL)
	syncer := anki.NewSyncer(client, cfg.DeckName, cfg.ModelName, cfg.ImagesDir, logger)

	ctx := context.Background()

	if err := syncer.CheckConnection(ctx); err != nil {
		return err
	}
	if err := syncer.EnsureDeck(ctx); err != nil {
		return fmt.Errorf("ensuring deck: %w", err)
	}
	if err := syncer.EnsureModel(ctx); err != nil {
		return fmt.Errorf("ensuring note type: %w", err)
	}

	records, err := loadSyncRecords(recordStore, args)
	if err != nil {
		return err
	}

	fmt.Printf("\nSyncing %d verb pairs to Anki...\n", len(records))

	added, updated, failed := 0, 0, 0
	for _, rec := range records {
		created, err := syncer.Upsert(ctx, rec)
		if err != nil {
			logger.Warn("note not synced", zap.String("id", rec.ID), zap.Error(err))
			fmt.Printf("  ✗ Failed: %s (%v)\n", rec.ID, err)
			failed++
			continue
		}
		if created {
			added++
			fmt.Printf("  ✓ Added: %s\n", rec.ID)
		} else {
			updated++
			fmt.Printf("  ✓ Updated: %s\n", rec.ID)
		}
	}

	fmt.Printf("\nSync complete!\n")
	printSyncSummary(added, updated, failed)
	return nil
}

// loadSyncRecords picks the sync source: one level's combined file when a
// level argument is given, otherwise every individual record file.
func loadSyncRecords(recordStore *store.FileStore, args []string) ([]*core.VerbPairRecord, error) {
	if len(args) == 1 {
		if !core.ValidLevel(args[0]) {
			return nil, fmt.Errorf("unknown level %q (expected beginner, intermediate, or advanced)", args[0])
		}
		return recordStore.LoadLevel(core.Level(args[0]))
	}

	paths, err := recordStore.ListRecordFiles()
	if err != nil {
		return nil, err
	}

	var records []*core.VerbPairRecord
	for _, path := range paths {
		rec, err := recordStore.LoadRecord(path)
		if err != nil {
			logger.Warn("record file unreadable, skipping", zap.String("path", path), zap.Error(err))
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

func printSyncSummary(added, updated, failed int) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Added", "Updated", "Failed", "Total"})
	t.AppendRow(table.Row{added, updated, failed, added + updated + failed})
	t.Render()
}

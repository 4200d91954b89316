// Package cmd — scrape command.
// Orchestrates the pipeline: paginate category → fetch article → extract
// record → resolve images → persist JSON.
//
// Extraction and fetch failures skip the single article; only setup errors
// (unwritable directories, bad flags) abort the run.
package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gaurav-prasanna/jitadeck/core"
	"github.com/gaurav-prasanna/jitadeck/core/extract"
	"github.com/gaurav-prasanna/jitadeck/core/fetch"
	"github.com/gaurav-prasanna/jitadeck/core/images"
	"github.com/gaurav-prasanna/jitadeck/core/store"
	"github.com/gaurav-prasanna/jitadeck/crawl"
)

// Flag variables.
var (
	flagLevel     string
	flagDataDir   string
	flagImagesDir string
)

var scrapeCmd = &cobra.Command{
	Use:   "scrape",
	Short: "Scrape verb pair articles and persist them as JSON records",
	Long: `Scrape walks each category's pagination, extracts a structured record
from every verb pair article, downloads the article images, and writes one
JSON document per record plus combined per-level documents.

Examples:
  jitadeck scrape
  jitadeck scrape --level beginner
  jitadeck scrape --data-dir ./data --images-dir ./images`,
	Args: cobra.NoArgs,
	RunE: runScrape,
}

func init() {
	rootCmd.AddCommand(scrapeCmd)

	scrapeCmd.Flags().StringVar(&flagLevel, "level", "", "Scrape one level only (beginner|intermediate|advanced); default all")
	scrapeCmd.Flags().StringVar(&flagDataDir, "data-dir", "", "Directory for JSON records (default from config)")
	scrapeCmd.Flags().StringVar(&flagImagesDir, "images-dir", "", "Directory for downloaded images (default from config)")
}

func runScrape(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if flagDataDir != "" {
		cfg.DataDir = flagDataDir
	}
	if flagImagesDir != "" {
		cfg.ImagesDir = flagImagesDir
	}

	levels := core.Levels
	if flagLevel != "" {
		if !core.ValidLevel(flagLevel) {
			return fmt.Errorf("unknown level %q (expected beginner, intermediate, or advanced)", flagLevel)
		}
		levels = []core.Level{core.Level(flagLevel)}
	}

	// Initialize pipeline components.
	fetcher := fetch.New(cfg.RequestDelay, logger)
	extractor := extract.New(logger)
	paginator := crawl.NewPaginator(fetcher, logger)

	resolver, err := images.New(cfg.ImagesDir, cfg.ImageDelay, logger)
	if err != nil {
		return fmt.Errorf("initializing image resolver: %w", err)
	}
	recordStore, err := store.New(cfg.DataDir)
	if err != nil {
		return fmt.Errorf("initializing record store: %w", err)
	}

	ctx := context.Background()

	counts := make(map[core.Level]*levelCount)
	all := make(map[core.Level][]*core.VerbPairRecord)

	for _, level := range levels {
		categoryURL := cfg.CategoryURLs[level]
		fmt.Printf("\nScraping %s level from %s\n", level, categoryURL)

		urls := paginator.Discover(ctx, categoryURL)
		fmt.Printf("Found %d articles\n", len(urls))

		count := &levelCount{found: len(urls)}
		counts[level] = count

		var records []*core.VerbPairRecord
		for _, articleURL := range urls {
			fmt.Printf("  Parsing: %s\n", articleURL)

			rec, err := scrapeArticle(ctx, articleURL, level, fetcher, extractor, resolver)
			if err != nil {
				logger.Warn("skipping article", zap.String("url", articleURL), zap.Error(err))
				fmt.Printf("    ✗ Skipped: %v\n", err)
				continue
			}
			count.parsed++

			path, err := recordStore.SaveRecord(rec)
			if err != nil {
				logger.Warn("record not saved", zap.String("id", rec.ID), zap.Error(err))
				fmt.Printf("    ✗ Save error: %v\n", err)
				continue
			}
			count.saved++
			records = append(records, rec)
			fmt.Printf("    ✓ Saved: %s\n", filepath.Base(path))
		}

		all[level] = records
		if _, err := recordStore.SaveLevel(level, records); err != nil {
			return fmt.Errorf("writing %s combined file: %w", level, err)
		}
	}

	if flagLevel == "" {
		if _, err := recordStore.SaveCombined(all); err != nil {
			return fmt.Errorf("writing combined file: %w", err)
		}
	}

	fmt.Printf("\nScraping complete!\n")
	printScrapeSummary(levels, counts)
	return nil
}

// scrapeArticle runs a single article through fetch → extract → resolve
// images. Image failures drop only the one image.
func scrapeArticle(
	ctx context.Context,
	articleURL string,
	level core.Level,
	fetcher core.Fetcher,
	extractor *extract.Extractor,
	resolver core.ImageResolver,
) (*core.VerbPairRecord, error) {
	result, err := fetcher.Fetch(ctx, articleURL)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}

	rec, candidates, err := extractor.Extract(result.HTML, level, articleURL)
	if err != nil {
		return nil, err
	}

	for _, candidate := range candidates {
		filename, err := resolver.Resolve(ctx, rec.ID, candidate.URL)
		if err != nil {
			logger.Warn("image skipped", zap.String("url", candidate.URL), zap.Error(err))
			continue
		}
		rec.Images = append(rec.Images, core.ImageRef{
			Filename:    filename,
			OriginalURL: candidate.URL,
			Alt:         candidate.Alt,
		})
	}
	return rec, nil
}

// levelCount tracks per-level progress for the end-of-run summary.
type levelCount struct{ found, parsed, saved int }

func printScrapeSummary(levels []core.Level, counts map[core.Level]*levelCount) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Level", "Found", "Parsed", "Saved"})

	totalFound, totalParsed, totalSaved := 0, 0, 0
	for _, level := range levels {
		c := counts[level]
		if c == nil {
			continue
		}
		t.AppendRow(table.Row{string(level), c.found, c.parsed, c.saved})
		totalFound += c.found
		totalParsed += c.parsed
		totalSaved += c.saved
	}
	t.AppendFooter(table.Row{"Total", totalFound, totalParsed, totalSaved})
	t.Render()
}

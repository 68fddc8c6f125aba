package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/job-matcher/internal/catalog"
	"github.com/jonathan/job-matcher/internal/observability"
	"github.com/jonathan/job-matcher/internal/stats"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Compute corpus statistics for a job catalog",
	Long:  "Computes the IDF weight tables and cosine similarity baseline for a catalog snapshot and prints or writes them as JSON.",
	RunE:  runStats,
}

var (
	statsCatalogPath string
	statsOutputPath  string
)

func init() {
	statsCmd.Flags().StringVarP(&statsCatalogPath, "catalog", "c", "", "Path to jobs catalog JSON file (required unless set in config)")
	statsCmd.Flags().StringVarP(&statsOutputPath, "out", "o", "", "Path to output JSON file (default: summary to stdout)")

	rootCmd.AddCommand(statsCmd)
}

func runStats(_ *cobra.Command, _ []string) error {
	cfg, err := loadRuntimeConfig()
	if err != nil {
		return err
	}

	log, err := newLogger()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	catalogPath := statsCatalogPath
	if catalogPath == "" {
		catalogPath = cfg.Catalog
	}
	if catalogPath == "" {
		return fmt.Errorf("no catalog file: provide --catalog or set 'catalog' in the config file")
	}

	cat, err := catalog.Load(catalogPath)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}
	log.Info("catalog loaded",
		zap.String("version", cat.Version),
		zap.Int("records", cat.Len()))

	statistics := stats.Compute(cat, stats.Options{
		BaselineSampleSize: cfg.BaselineSampleSize,
		BaselineSeed:       cfg.BaselineSeed,
	})

	if statsOutputPath == "" {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintStatistics(statistics)
		return nil
	}

	jsonOutput, err := json.MarshalIndent(statistics, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal statistics to JSON: %w", err)
	}

	outputDir := filepath.Dir(statsOutputPath)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
		}
	}

	if err := os.WriteFile(statsOutputPath, jsonOutput, 0644); err != nil {
		return fmt.Errorf("failed to write statistics to %s: %w", statsOutputPath, err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Wrote corpus statistics to %s\n", statsOutputPath)
	return nil
}

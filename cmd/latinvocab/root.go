package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/lehmann314159/latinvocab/internal/app"
	"github.com/lehmann314159/latinvocab/internal/config"
)

var (
	cfgFile      string
	dbPath       string
	outputFormat string
)

var rootCmd = &cobra.Command{
	Use:   "latinvocab",
	Short: "Look up Latin vocabulary by chapter",
	Long: `latinvocab reads the packaged Latin vocabulary database and prints
dictionary entries grouped by part of speech.

Entries can be listed for a single chapter, cumulatively for every chapter
up to a given one, or searched by Latin word prefix or English definition.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default: $CONFIG_PATH or ./config.yaml)",
	)
	rootCmd.PersistentFlags().StringVar(
		&dbPath, "db", "", "path to the vocabulary database (overrides config)",
	)
	rootCmd.PersistentFlags().StringVarP(
		&outputFormat, "output", "o", "text", "output format: text, json or csv",
	)

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(categoriesCmd)
	rootCmd.AddCommand(chapterCmd)
	rootCmd.AddCommand(cumulativeCmd)
	rootCmd.AddCommand(searchCmd)
}

// openApp loads configuration, applies flag overrides and opens the store.
func openApp(ctx context.Context) (*app.App, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	if dbPath != "" {
		cfg.Database.Path = dbPath
	}
	return app.New(ctx, cfg)
}

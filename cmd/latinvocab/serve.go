package main

import (
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the lookup API over HTTP",
	Long: `Start the read-only lookup API.

Routes:
  /health
  /api/v1/categories
  /api/v1/chapters/{chapter}/entries
  /api/v1/chapters/{chapter}/cumulative
  /api/v1/chapters/{chapter}/search?q=term&mode=word|definition

Every lookup route accepts category=... filters and format=csv.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		return a.Serve(cmd.Context())
	},
}

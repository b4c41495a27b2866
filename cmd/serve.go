package cmd

import (
	"github.com/prajeet74/fire-calculator/internal/server"

	"github.com/spf13/cobra"
)

var flagAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the projection engine as a JSON API",
	Long:  "Expose POST /v1/projection: send a plan document, receive the aggregate, the full projection series, and the key metrics.",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagAddr, "addr", ":8080", "Listen address")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	return server.ListenAndServe(flagAddr)
}

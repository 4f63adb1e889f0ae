package main

import (
	"github.com/guttosm/mary-storefront/internal/app"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	a := app.InitializeApp(cmd.Context(), cfg)
	defer a.Close()

	return app.NewServer(a.Router, cfg.Server.Port, cfg.Server.RequestTimeout).Run(cmd.Context())
}

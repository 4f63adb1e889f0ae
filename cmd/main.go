// Package main is the entry point for the mary-storefront application.
//
// @title           Mary Restaurante Storefront API
// @version         1.0.0
// @description     Catalog, selection quotes and anonymous carts for the Mary Restaurante storefront.
//
//	Orders are handed off as a WhatsApp message; the service never takes payment.
//
// @contact.name   Mary Restaurante
// @contact.url    https://github.com/guttosm/mary-storefront
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @tag.name        Catalog
// @tag.description Categories, products and selection quotes
//
// @tag.name        Cart
// @tag.description Anonymous shopping cart and order handoff
//
// @tag.name        Session
// @tag.description Anonymous cart sessions
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	"os"

	_ "github.com/guttosm/mary-storefront/docs" // swagger docs

	"github.com/guttosm/mary-storefront/config"
	"github.com/guttosm/mary-storefront/internal/app"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	envFile string
	cfg     config.Config
)

var rootCmd = &cobra.Command{
	Use:           "mary-storefront",
	Short:         "Mary Restaurante storefront service",
	Long:          `Serves the storefront API and offers maintenance commands for the product feed and order handoffs.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config.LoadEnv(envFile)
		cfg = config.Load()
		app.InitializeLogger(cfg.Log)
		return nil
	},
	RunE: runServe,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Environment file to load before reading configuration")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(checkCatalogCmd)
	rootCmd.AddCommand(previewOrderCmd)
	rootCmd.AddCommand(handoffsCmd)
	rootCmd.AddCommand(genSecretCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("Command failed")
		os.Exit(1)
	}
}

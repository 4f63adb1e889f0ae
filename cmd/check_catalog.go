package main

import (
	"fmt"

	"github.com/guttosm/mary-storefront/config"
	"github.com/guttosm/mary-storefront/internal/app"
	"github.com/guttosm/mary-storefront/internal/catalog"
	"github.com/guttosm/mary-storefront/internal/money"
	"github.com/spf13/cobra"
)

var checkCatalogCmd = &cobra.Command{
	Use:   "check-catalog [path]",
	Short: "Validate the product feed",
	Long: `Loads the product feed the service is configured with, or the file given as
argument, and prints its categories and products. Exits non-zero when the
feed cannot be read or fails validation.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheckCatalog,
}

func runCheckCatalog(cmd *cobra.Command, args []string) error {
	catalogCfg := cfg.Catalog
	if len(args) == 1 {
		catalogCfg = config.CatalogConfig{Path: args[0]}
	}
	loader := app.NewCatalogLoader(catalogCfg)

	c, err := catalog.NewSource(loader).Reload(cmd.Context())
	if err != nil {
		return fmt.Errorf("catalog %s: %w", loader.Location(), err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s: %d categories, %d products\n", loader.Location(), len(c.Categories()), c.Len())
	for _, category := range c.Categories() {
		marker := ""
		if category.ID == c.DefaultCategory().ID {
			marker = " (default)"
		}
		fmt.Fprintf(out, "\n%s %s%s\n", category.Icon, category.Label, marker)
		for _, p := range c.ProductsByCategory(category.ID) {
			price := "sem preço"
			if from, ok := p.FromPrice(); ok {
				price = money.FormatBRL(from)
			}
			status := ""
			if !p.Addable() {
				status = " [indisponível]"
			}
			fmt.Fprintf(out, "  - %s (%s): %d gramatura(s), %d sabor(es), a partir de %s%s\n",
				p.Name, p.ID, len(p.Weights), len(p.Flavors), price, status)
		}
	}
	return nil
}

package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/guttosm/mary-storefront/internal/app"
	"github.com/guttosm/mary-storefront/internal/cart"
	"github.com/guttosm/mary-storefront/internal/catalog"
	"github.com/guttosm/mary-storefront/internal/service"
	"github.com/spf13/cobra"
)

var previewItems []string

var previewOrderCmd = &cobra.Command{
	Use:   "preview-order --item product[:weight[:flavor,flavor[:quantity]]]...",
	Short: "Print the order message and WhatsApp link for a cart",
	Long: `Builds a throwaway cart from the configured feed and prints the message and
link a shopper would be sent to. Useful to check copy and prices after editing
the feed. Items are added in order, so repeated configurations merge.`,
	Example: `  mary-storefront preview-order --item ovo-trio:500g:ninho,maracuja,pistache:2 --item ovo-colher`,
	RunE:    runPreviewOrder,
}

func init() {
	previewOrderCmd.Flags().StringArrayVar(&previewItems, "item", nil, "Item to add (repeatable)")
	_ = previewOrderCmd.MarkFlagRequired("item")
}

// parseItem reads "product[:weight[:flavor,flavor[:quantity]]]".
func parseItem(s string) (string, service.SelectionInput, error) {
	parts := strings.Split(s, ":")
	if len(parts) > 4 || strings.TrimSpace(parts[0]) == "" {
		return "", service.SelectionInput{}, fmt.Errorf("invalid item %q", s)
	}
	var in service.SelectionInput
	if len(parts) > 1 {
		in.WeightID = parts[1]
	}
	if len(parts) > 2 && parts[2] != "" {
		in.FlavorIDs = strings.Split(parts[2], ",")
	}
	if len(parts) > 3 {
		q, err := strconv.Atoi(parts[3])
		if err != nil || q < 1 {
			return "", service.SelectionInput{}, fmt.Errorf("invalid quantity in item %q", s)
		}
		in.Quantity = q
	}
	return parts[0], in, nil
}

func runPreviewOrder(cmd *cobra.Command, _ []string) error {
	source := catalog.NewSource(app.NewCatalogLoader(cfg.Catalog))
	if _, err := source.Reload(cmd.Context()); err != nil {
		return err
	}
	catalogService := service.NewCatalogService(source)
	carts := service.NewCartService(catalogService, cart.NewMemoryStorage(), service.CartServiceConfig{CacheSize: 1})
	defer carts.Close()
	checkout := service.NewCheckoutService(carts, nil, cfg.Checkout.WhatsAppNumber)

	const sessionID = "preview"
	for _, item := range previewItems {
		productID, in, err := parseItem(item)
		if err != nil {
			return err
		}
		if _, _, err := carts.Add(sessionID, productID, in); err != nil {
			return fmt.Errorf("item %q: %w", item, err)
		}
	}

	out, err := checkout.Checkout(cmd.Context(), sessionID, "")
	if errors.Is(err, service.ErrEmptyCart) {
		return errors.New("no items given")
	}
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintln(w, out.Message)
	fmt.Fprintln(w)
	fmt.Fprintln(w, out.URL)
	return nil
}

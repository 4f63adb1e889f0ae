package app

import (
	"github.com/guttosm/mary-storefront/config"
	"github.com/guttosm/mary-storefront/internal/cart"
	"github.com/guttosm/mary-storefront/internal/catalog"
	"github.com/guttosm/mary-storefront/internal/repository"
	"github.com/guttosm/mary-storefront/internal/service"
)

// ServiceComponents holds service-related components.
type ServiceComponents struct {
	Source   *catalog.Source
	Catalog  *service.CatalogServiceImpl
	Carts    *service.CartServiceImpl
	Checkout *service.CheckoutServiceImpl
	Sessions *service.SessionServiceImpl
}

// InitializeServices builds the storefront services. Carts persist to MongoDB
// when db is set and to process memory otherwise. The catalog is not loaded here.
func InitializeServices(cfg config.Config, db *DatabaseComponents) *ServiceComponents {
	source := catalog.NewSource(NewCatalogLoader(cfg.Catalog))
	catalogService := service.NewCatalogService(source)

	var storage cart.Storage = cart.NewMemoryStorage()
	var handoffs repository.HandoffRepositoryInterface
	if db != nil {
		storage = repository.NewCartStorage(db.CartStates, cfg.Cart.PersistTimeout)
		handoffs = db.Handoffs
	}

	carts := service.NewCartService(catalogService, storage, service.CartServiceConfig{
		StorageKey: cfg.Cart.StorageKey,
		CacheSize:  cfg.Cart.CacheSize,
		CacheTTL:   cfg.Cart.CacheTTL,
	})

	return &ServiceComponents{
		Source:   source,
		Catalog:  catalogService,
		Carts:    carts,
		Checkout: service.NewCheckoutService(carts, handoffs, cfg.Checkout.WhatsAppNumber),
		Sessions: service.NewSessionService(cfg.Session),
	}
}

// NewCatalogLoader picks the feed loader: a configured URL wins over the file path.
func NewCatalogLoader(cfg config.CatalogConfig) catalog.Loader {
	if cfg.URL != "" {
		return catalog.NewHTTPLoader(cfg.URL)
	}
	return catalog.FileLoader{Path: cfg.Path}
}

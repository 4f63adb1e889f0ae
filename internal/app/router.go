package app

import (
	"context"
	"errors"

	"github.com/guttosm/mary-storefront/config"
	"github.com/guttosm/mary-storefront/internal/http"
)

var errCatalogNotLoaded = errors.New("catalog not loaded")

// RouterComponents holds router-related components.
type RouterComponents struct {
	Handler       *http.Handler
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// InitializeRouter initializes HTTP handlers, readiness checks and router configuration.
func InitializeRouter(services *ServiceComponents, db *DatabaseComponents, cfg config.Config) *RouterComponents {
	handler := http.NewHandler(services.Catalog, services.Carts, services.Checkout, services.Sessions)

	healthHandler := http.NewHealthHandler()
	healthHandler.RegisterChecker("catalog", http.CheckerFunc(func(context.Context) error {
		if !services.Catalog.Ready() {
			return errCatalogNotLoaded
		}
		return nil
	}))
	if db != nil {
		healthHandler.RegisterChecker("mongodb", http.CheckerFunc(db.DB.HealthCheck))
		healthHandler.RegisterCircuitBreaker("mongodb_cart_state", db.CartStateCircuitBreaker)
		healthHandler.RegisterCircuitBreaker("mongodb_handoffs", db.HandoffsCircuitBreaker)
	}

	return &RouterComponents{
		Handler:       handler,
		HealthHandler: healthHandler,
		Config: http.RouterConfig{
			RateLimit:         cfg.Server.RateLimit,
			RateWindow:        cfg.Server.RateWindow,
			EnableIdempotency: true,
			CORSOrigins:       cfg.Server.CORSOrigins,
			SwaggerUser:       cfg.Server.SwaggerUser,
			SwaggerPass:       cfg.Server.SwaggerPass,
			RequestTimeout:    cfg.Server.RequestTimeout,
		},
	}
}

// Package app provides application initialization and dependency injection.
package app

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/mary-storefront/config"
	"github.com/guttosm/mary-storefront/internal/catalog"
	"github.com/guttosm/mary-storefront/internal/http"
	"github.com/guttosm/mary-storefront/internal/logger"
)

// App is the wired storefront.
type App struct {
	Router   *gin.Engine
	Services *ServiceComponents
	Database *DatabaseComponents

	watcher    *catalog.Watcher
	stopRouter func()
}

// InitializeApp creates and wires all application dependencies.
//
// A catalog that fails to load is not fatal: catalog routes answer 503 and the
// readiness probe reports it until a reload succeeds.
func InitializeApp(ctx context.Context, cfg config.Config) *App {
	log := logger.Component("app")

	db := InitializeDatabase(cfg.Database)
	services := InitializeServices(cfg, db)

	if c, err := services.Source.Reload(ctx); err != nil {
		log.Error().Err(err).Msg("Catalog not loaded")
	} else {
		log.Info().Int("products", c.Len()).Msg("Catalog loaded")
	}

	a := &App{Services: services, Database: db}
	if cfg.Catalog.Watch && cfg.Catalog.URL == "" {
		a.watcher = startWatcher(ctx, cfg.Catalog.Path, services.Source)
	}

	rc := InitializeRouter(services, db, cfg)
	a.Router, a.stopRouter = http.NewRouter(rc.Handler, rc.HealthHandler, rc.Config)
	return a
}

// Close stops background work and releases the database connection.
func (a *App) Close() {
	if a.watcher != nil {
		a.watcher.Stop()
	}
	if a.stopRouter != nil {
		a.stopRouter()
	}
	a.Services.Carts.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := a.Database.Close(ctx); err != nil {
		log := logger.Component("app")
		log.Warn().Err(err).Msg("Failed to close MongoDB connection")
	}
}

func startWatcher(ctx context.Context, path string, source *catalog.Source) *catalog.Watcher {
	log := logger.Component("app")

	w, err := catalog.NewWatcher(path, source)
	if err != nil {
		log.Warn().Err(err).Msg("Catalog watcher unavailable")
		return nil
	}
	if err := w.Start(ctx); err != nil {
		log.Warn().Err(err).Msg("Catalog watcher did not start")
		return nil
	}
	return w
}

package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/mary-storefront/internal/metrics"
	"github.com/guttosm/mary-storefront/internal/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Paths kept out of request logs, compression and the request deadline.
var infrastructurePaths = []string{"/healthz", "/readyz", "/metrics"}

// RouteGroup is a set of API routes mounted under /api.
type RouteGroup interface {
	RegisterRoutes(rg *gin.RouterGroup, cfg *RouterConfig)
}

// RouterConfig holds router configuration options.
type RouterConfig struct {
	RateLimit         int
	RateWindow        time.Duration
	EnableIdempotency bool
	CORSOrigins       []string
	SwaggerUser       string
	SwaggerPass       string
	RequestTimeout    time.Duration
}

// DefaultRouterConfig returns the default router configuration.
func DefaultRouterConfig() RouterConfig {
	return RouterConfig{
		RateLimit:         100,
		RateWindow:        time.Minute,
		EnableIdempotency: true,
		RequestTimeout:    10 * time.Second,
	}
}

// NewRouter creates and configures the Gin router for the storefront. The returned
// function stops the background workers the router owns.
func NewRouter(handler *Handler, healthHandler *HealthHandler, cfg RouterConfig) (*gin.Engine, func()) {
	router := gin.New()
	var closers []func()

	closers = append(closers, configureGlobalMiddleware(router, &cfg)...)
	registerInfrastructureRoutes(router, healthHandler, &cfg)

	api := router.Group("/api")
	closers = append(closers, configureAPIMiddleware(api, &cfg)...)

	if handler != nil {
		var sessionLimiter *middleware.RateLimiter
		if cfg.RateLimit > 0 {
			sessionLimiter = middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
			closers = append(closers, sessionLimiter.Stop)
		}
		for _, group := range []RouteGroup{
			NewCatalogRoutes(handler),
			NewCartRoutes(handler, sessionLimiter),
		} {
			group.RegisterRoutes(api, &cfg)
		}
	}

	return router, func() {
		for _, closeFn := range closers {
			closeFn()
		}
	}
}

// configureGlobalMiddleware sets up middleware applied to all routes.
func configureGlobalMiddleware(router *gin.Engine, cfg *RouterConfig) []func() {
	router.Use(
		middleware.CORS(cfg.CORSOrigins),
		middleware.RequestID(),
		middleware.Recovery(),
		metrics.PrometheusMiddleware(),
		middleware.Compression(infrastructurePaths...),
		middleware.RequestLogger(infrastructurePaths...),
		middleware.ErrorHandler(),
	)

	if cfg.RequestTimeout > 0 {
		timeoutCfg := middleware.DefaultTimeoutConfig()
		timeoutCfg.Timeout = cfg.RequestTimeout
		timeoutCfg.SkipPaths = infrastructurePaths
		router.Use(middleware.Timeout(timeoutCfg))
	}

	if cfg.RateLimit > 0 {
		limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
		router.Use(limiter.RateLimit())
		return []func(){limiter.Stop}
	}
	return nil
}

// registerInfrastructureRoutes registers health, metrics, and documentation routes.
func registerInfrastructureRoutes(router *gin.Engine, healthHandler *HealthHandler, cfg *RouterConfig) {
	if healthHandler != nil {
		healthHandler.Register(router)
	}
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if cfg.SwaggerUser != "" && cfg.SwaggerPass != "" {
		authorized := router.Group("/swagger", gin.BasicAuth(gin.Accounts{
			cfg.SwaggerUser: cfg.SwaggerPass,
		}))
		authorized.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	} else {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
}

// configureAPIMiddleware sets up middleware for the API group.
func configureAPIMiddleware(api *gin.RouterGroup, cfg *RouterConfig) []func() {
	if !cfg.EnableIdempotency {
		return nil
	}
	idempotencyCfg := middleware.DefaultIdempotencyConfig()
	api.Use(middleware.Idempotency(idempotencyCfg))
	return []func(){idempotencyCfg.Close}
}

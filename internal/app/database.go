package app

import (
	"context"
	"time"

	"github.com/guttosm/mary-storefront/config"
	"github.com/guttosm/mary-storefront/internal/circuitbreaker"
	"github.com/guttosm/mary-storefront/internal/logger"
	"github.com/guttosm/mary-storefront/internal/metrics"
	"github.com/guttosm/mary-storefront/internal/repository"
)

// DatabaseComponents holds database-related components.
type DatabaseComponents struct {
	DB                      *repository.MongoDB
	CartStates              repository.CartStateRepositoryInterface
	Handoffs                repository.HandoffRepositoryInterface
	CartStateCircuitBreaker *circuitbreaker.CircuitBreaker
	HandoffsCircuitBreaker  *circuitbreaker.CircuitBreaker
}

// InitializeDatabase connects to MongoDB and builds the cart state and handoff
// repositories behind circuit breakers. Returns nil if the database is disabled
// or unreachable; the service then keeps carts in memory.
func InitializeDatabase(cfg config.DatabaseConfig) *DatabaseComponents {
	if !cfg.Enabled {
		return nil
	}
	log := logger.Component("database")

	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing with in-memory carts")
		return nil
	}
	log.Info().Str("database", cfg.DatabaseName).Msg("Connected to MongoDB")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.SetCartTTL(ctx, cfg.CartTTL); err != nil {
		log.Warn().Err(err).Msg("Failed to set cart TTL index")
	}

	cartStateCB := newCircuitBreaker("mongodb-cart-state", cfg)
	handoffsCB := newCircuitBreaker("mongodb-handoffs", cfg)

	return &DatabaseComponents{
		DB:                      db,
		CartStates:              repository.NewCartStateRepositoryWithCircuitBreaker(repository.NewCartStateRepository(db), cartStateCB),
		Handoffs:                repository.NewHandoffRepositoryWithCircuitBreaker(repository.NewHandoffRepository(db), handoffsCB),
		CartStateCircuitBreaker: cartStateCB,
		HandoffsCircuitBreaker:  handoffsCB,
	}
}

// Close disconnects from MongoDB.
func (d *DatabaseComponents) Close(ctx context.Context) error {
	if d == nil || d.DB == nil {
		return nil
	}
	return d.DB.Close(ctx)
}

func newCircuitBreaker(name string, cfg config.DatabaseConfig) *circuitbreaker.CircuitBreaker {
	metrics.CircuitBreakerState.WithLabelValues(name).Set(float64(circuitbreaker.StateClosed))
	return circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             name,
		OnStateChange:    recordStateChange,
	})
}

func recordStateChange(name string, _, to circuitbreaker.State) {
	metrics.RecordCircuitBreakerState(name, to.String(), int(to))
}

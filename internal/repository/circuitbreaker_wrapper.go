package repository

import (
	"context"
	"errors"

	"github.com/guttosm/mary-storefront/internal/circuitbreaker"
)

// CartStateRepositoryWithCircuitBreaker wraps a cart state repository with circuit breaker protection.
// A missing key is a normal answer and does not count as a failure.
type CartStateRepositoryWithCircuitBreaker struct {
	repo           CartStateRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewCartStateRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewCartStateRepositoryWithCircuitBreaker(repo CartStateRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *CartStateRepositoryWithCircuitBreaker {
	return &CartStateRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Get returns the stored state with circuit breaker protection.
func (r *CartStateRepositoryWithCircuitBreaker) Get(ctx context.Context, key string) ([]byte, error) {
	return circuitbreaker.Call(ctx, r.circuitBreaker, func() ([]byte, error) {
		return r.repo.Get(ctx, key)
	}, ErrCartStateNotFound)
}

// Put stores state with circuit breaker protection.
func (r *CartStateRepositoryWithCircuitBreaker) Put(ctx context.Context, key string, data []byte) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Put(ctx, key, data)
	})
}

// Delete removes state with circuit breaker protection.
func (r *CartStateRepositoryWithCircuitBreaker) Delete(ctx context.Context, key string) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Delete(ctx, key)
	})
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *CartStateRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// HandoffRepositoryWithCircuitBreaker wraps a handoff repository with circuit breaker protection.
type HandoffRepositoryWithCircuitBreaker struct {
	repo           HandoffRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewHandoffRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewHandoffRepositoryWithCircuitBreaker(repo HandoffRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *HandoffRepositoryWithCircuitBreaker {
	return &HandoffRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Create records a handoff with circuit breaker protection.
// If circuit is open, silently drops the record (the handoff itself already happened).
func (r *HandoffRepositoryWithCircuitBreaker) Create(ctx context.Context, doc *HandoffDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Create(ctx, doc)
	})
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		return nil
	}
	return err
}

// Query retrieves handoffs with circuit breaker protection.
func (r *HandoffRepositoryWithCircuitBreaker) Query(ctx context.Context, opts HandoffQueryOptions) ([]*HandoffDocument, error) {
	return circuitbreaker.Call(ctx, r.circuitBreaker, func() ([]*HandoffDocument, error) {
		return r.repo.Query(ctx, opts)
	})
}

// Count returns the number of matching handoffs with circuit breaker protection.
func (r *HandoffRepositoryWithCircuitBreaker) Count(ctx context.Context, opts HandoffQueryOptions) (int64, error) {
	return circuitbreaker.Call(ctx, r.circuitBreaker, func() (int64, error) {
		return r.repo.Count(ctx, opts)
	})
}

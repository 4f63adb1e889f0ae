package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/guttosm/mary-storefront/internal/cart"
	"github.com/guttosm/mary-storefront/internal/metrics"
)

// CartStorage adapts a cart state repository to cart.Storage. Every call gets its
// own deadline since carts persist synchronously from their mutation path.
type CartStorage struct {
	repo    CartStateRepositoryInterface
	timeout time.Duration
}

// NewCartStorage creates a CartStorage. A non-positive timeout defaults to two seconds.
func NewCartStorage(repo CartStateRepositoryInterface, timeout time.Duration) *CartStorage {
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	return &CartStorage{repo: repo, timeout: timeout}
}

// Load implements cart.Storage.
func (s *CartStorage) Load(key string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	data, err := s.repo.Get(ctx, key)
	if errors.Is(err, ErrCartStateNotFound) {
		return nil, cart.ErrNotFound
	}
	if err != nil {
		metrics.RecordStorageFailure("load")
		return nil, fmt.Errorf("load cart state %s: %w", key, err)
	}
	return data, nil
}

// Save implements cart.Storage.
func (s *CartStorage) Save(key string, data []byte) error {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	if err := s.repo.Put(ctx, key, data); err != nil {
		metrics.RecordStorageFailure("save")
		return fmt.Errorf("save cart state %s: %w", key, err)
	}
	return nil
}

// Delete removes the state stored under key.
func (s *CartStorage) Delete(key string) error {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	if err := s.repo.Delete(ctx, key); err != nil {
		metrics.RecordStorageFailure("delete")
		return fmt.Errorf("delete cart state %s: %w", key, err)
	}
	return nil
}

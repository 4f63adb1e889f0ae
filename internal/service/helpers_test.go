//go:build !integration

package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/guttosm/mary-storefront/internal/cart"
	"github.com/guttosm/mary-storefront/internal/catalog"
	"github.com/stretchr/testify/require"
)

func newTestCatalogService(t *testing.T) *CatalogServiceImpl {
	t.Helper()
	source := catalog.NewSource(catalog.FileLoader{Path: filepath.Join("..", "catalog", "testdata", "feed.json")})
	_, err := source.Reload(context.Background())
	require.NoError(t, err)
	return NewCatalogService(source)
}

func newTestCartService(t *testing.T, storage cart.Storage) *CartServiceImpl {
	t.Helper()
	if storage == nil {
		storage = cart.NewMemoryStorage()
	}
	s := NewCartService(newTestCatalogService(t), storage, CartServiceConfig{CacheSize: 64})
	t.Cleanup(s.Close)
	return s
}

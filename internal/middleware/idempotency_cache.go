package middleware

import (
	"time"

	"github.com/guttosm/mary-storefront/internal/service/cache"
)

const (
	idempotencyCacheSize   = 4096
	idempotencyCacheShards = 8
)

// cachedResponse stores a replayable HTTP response.
type cachedResponse struct {
	StatusCode  int
	ContentType string
	Headers     map[string]string
	Body        []byte
}

// idempotencyCache holds replayable responses keyed by request fingerprint.
type idempotencyCache struct {
	store *cache.Sharded[*cachedResponse]
}

func newIdempotencyCache(ttl time.Duration) *idempotencyCache {
	return &idempotencyCache{
		store: cache.NewSharded[*cachedResponse](idempotencyCacheSize, ttl, idempotencyCacheShards),
	}
}

// Get retrieves a cached response.
func (c *idempotencyCache) Get(key string) (*cachedResponse, bool) {
	return c.store.Get(key)
}

// Set stores a response.
func (c *idempotencyCache) Set(key string, resp *cachedResponse) {
	c.store.Set(key, resp)
}

// Stop ends the background expiry sweep.
func (c *idempotencyCache) Stop() {
	c.store.Stop()
}

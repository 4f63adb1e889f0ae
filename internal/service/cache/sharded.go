package cache

import (
	"time"

	"github.com/cespare/xxhash/v2"
)

const defaultSweepInterval = time.Minute

// Sharded spreads entries over several ttlCaches to reduce lock contention.
type Sharded[V any] struct {
	shards    []*ttlCache[V]
	shardMask uint64
}

// NewSharded creates a cache holding about capacity entries in total. numShards
// is rounded up to a power of two; zero or less means 16.
func NewSharded[V any](capacity int, ttl time.Duration, numShards int) *Sharded[V] {
	return newSharded[V](capacity, ttl, numShards, defaultSweepInterval)
}

func newSharded[V any](capacity int, ttl time.Duration, numShards int, sweep time.Duration) *Sharded[V] {
	if numShards <= 0 {
		numShards = 16
	}
	n := 1
	for n < numShards {
		n *= 2
	}

	perShard := capacity / n
	if perShard < 1 {
		perShard = 1
	}

	shards := make([]*ttlCache[V], n)
	for i := range shards {
		shards[i] = newTTLCache[V](perShard, ttl, sweep)
	}
	return &Sharded[V]{shards: shards, shardMask: uint64(n - 1)}
}

func (s *Sharded[V]) shard(key string) *ttlCache[V] {
	return s.shards[xxhash.Sum64String(key)&s.shardMask]
}

// Get retrieves a value from the appropriate shard.
func (s *Sharded[V]) Get(key string) (V, bool) {
	return s.shard(key).Get(key)
}

// Set stores a value in the appropriate shard.
func (s *Sharded[V]) Set(key string, value V) {
	s.shard(key).Set(key, value)
}

// GetOrSet returns the value for key, creating it when absent.
func (s *Sharded[V]) GetOrSet(key string, create func() V) V {
	return s.shard(key).GetOrSet(key, create)
}

// Invalidate removes a key from the appropriate shard.
func (s *Sharded[V]) Invalidate(key string) {
	s.shard(key).Invalidate(key)
}

// Clear removes all entries from all shards.
func (s *Sharded[V]) Clear() {
	for _, sh := range s.shards {
		sh.Clear()
	}
}

// Stop shuts down every shard's sweeper.
func (s *Sharded[V]) Stop() {
	for _, sh := range s.shards {
		sh.Stop()
	}
}

// Shards is the number of shards.
func (s *Sharded[V]) Shards() int {
	return len(s.shards)
}

// Metrics returns aggregated metrics from all shards.
func (s *Sharded[V]) Metrics() Metrics {
	var total Metrics
	for _, sh := range s.shards {
		m := sh.Metrics()
		total.Hits += m.Hits
		total.Misses += m.Misses
		total.Evictions += m.Evictions
		total.Size += m.Size
		total.Capacity += m.Capacity
	}
	return total
}

var _ CacheWithMetrics[int] = (*Sharded[int])(nil)

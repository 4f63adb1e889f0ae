package middleware

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/gin-gonic/gin"
	"github.com/guttosm/mary-storefront/internal/domain/dto"
	"github.com/guttosm/mary-storefront/internal/i18n"
	"github.com/guttosm/mary-storefront/internal/metrics"
)

const defaultNumShards = 16

// window is one client's budget for the current period.
type window struct {
	start time.Time
	used  int
}

type bucket struct {
	mu      sync.Mutex
	windows map[string]*window
}

// decision is the outcome of taking one request from a client's budget.
type decision struct {
	allowed   bool
	remaining int
	// reset is the time left until the client's budget refills.
	reset time.Duration
}

// ShardedRateLimiter allows rate requests per client per period. Clients are
// hashed onto buckets so concurrent shoppers rarely share a lock.
type ShardedRateLimiter struct {
	buckets   []*bucket
	numShards int
	rate      int
	period    time.Duration
	stopCh    chan struct{}
	stopOnce  sync.Once
	now       func() time.Time
}

// RateLimiter is the limiter used by the router.
type RateLimiter = ShardedRateLimiter

// NewRateLimiter returns a limiter allowing rate requests per period.
func NewRateLimiter(rate int, period time.Duration) *ShardedRateLimiter {
	return NewShardedRateLimiter(rate, period, defaultNumShards)
}

// NewShardedRateLimiter is NewRateLimiter with an explicit bucket count.
// It starts a sweeper goroutine; call Stop to end it.
func NewShardedRateLimiter(rate int, period time.Duration, numShards int) *ShardedRateLimiter {
	if numShards <= 0 {
		numShards = defaultNumShards
	}

	rl := &ShardedRateLimiter{
		buckets:   make([]*bucket, numShards),
		numShards: numShards,
		rate:      rate,
		period:    period,
		stopCh:    make(chan struct{}),
		now:       time.Now,
	}
	for i := range rl.buckets {
		rl.buckets[i] = &bucket{windows: make(map[string]*window)}
	}

	go rl.sweep()
	return rl
}

func (rl *ShardedRateLimiter) bucketFor(client string) *bucket {
	return rl.buckets[xxhash.Sum64String(client)%uint64(rl.numShards)]
}

// take spends one request from client's budget, opening a new period when the
// previous one has elapsed.
func (rl *ShardedRateLimiter) take(client string) decision {
	b := rl.bucketFor(client)
	now := rl.now()

	b.mu.Lock()
	defer b.mu.Unlock()

	w, ok := b.windows[client]
	if !ok || now.Sub(w.start) >= rl.period {
		w = &window{start: now}
		b.windows[client] = w
	}

	reset := rl.period - now.Sub(w.start)
	if w.used >= rl.rate {
		return decision{reset: reset}
	}
	w.used++
	return decision{allowed: true, remaining: rl.rate - w.used, reset: reset}
}

// RateLimit limits requests per client IP.
func (rl *ShardedRateLimiter) RateLimit() gin.HandlerFunc {
	return rl.limit("ip", func(c *gin.Context) string { return "ip:" + c.ClientIP() })
}

// SessionRateLimit limits requests per cart session so shoppers behind one
// NAT do not share a budget. Requests without a session fall back to the IP.
func (rl *ShardedRateLimiter) SessionRateLimit() gin.HandlerFunc {
	return rl.limit("session", sessionIdentifier)
}

func (rl *ShardedRateLimiter) limit(scope string, identify func(*gin.Context) string) gin.HandlerFunc {
	limit := strconv.Itoa(rl.rate)

	return func(c *gin.Context) {
		d := rl.take(identify(c))
		resetSeconds := strconv.Itoa(int(math.Ceil(d.reset.Seconds())))

		c.Header("X-RateLimit-Limit", limit)
		c.Header("X-RateLimit-Remaining", strconv.Itoa(d.remaining))
		c.Header("X-RateLimit-Reset", resetSeconds)

		if d.allowed {
			c.Next()
			return
		}

		metrics.RecordRateLimited(scope)
		c.Header("Retry-After", resetSeconds)
		message := i18n.GetTranslator().Translate(i18n.ErrKeyRateLimitExceeded, i18n.GetLocale(c))
		c.AbortWithStatusJSON(http.StatusTooManyRequests,
			dto.NewError(dto.ErrCodeRateLimit, message).WithRequestID(GetRequestID(c)))
	}
}

// sessionIdentifier prefers the resolved cart session, then a hash of the raw
// session header, then the client IP.
func sessionIdentifier(c *gin.Context) string {
	if id := GetCartSessionID(c); id != "" {
		return "session:" + id
	}
	if token := c.GetHeader(CartSessionHeader); token != "" {
		return "token:" + strconv.FormatUint(xxhash.Sum64String(token), 16)
	}
	return "ip:" + c.ClientIP()
}

func (rl *ShardedRateLimiter) sweep() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.evictIdle()
		case <-rl.stopCh:
			return
		}
	}
}

// evictIdle forgets clients whose last period started more than two periods ago.
func (rl *ShardedRateLimiter) evictIdle() {
	cutoff := rl.now().Add(-2 * rl.period)

	for _, b := range rl.buckets {
		b.mu.Lock()
		for client, w := range b.windows {
			if w.start.Before(cutoff) {
				delete(b.windows, client)
			}
		}
		b.mu.Unlock()
	}
}

// Stop ends the sweeper. Safe to call more than once.
func (rl *ShardedRateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stopCh) })
}

// Stats reports how many clients are tracked, overall and per bucket.
func (rl *ShardedRateLimiter) Stats() (clients int, perShard []int) {
	perShard = make([]int, rl.numShards)
	for i, b := range rl.buckets {
		b.mu.Lock()
		perShard[i] = len(b.windows)
		b.mu.Unlock()
		clients += perShard[i]
	}
	return clients, perShard
}

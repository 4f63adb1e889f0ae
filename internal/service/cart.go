package service

import (
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/guttosm/mary-storefront/internal/cart"
	"github.com/guttosm/mary-storefront/internal/logger"
	"github.com/guttosm/mary-storefront/internal/metrics"
	"github.com/guttosm/mary-storefront/internal/service/cache"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// CartSnapshot is a consistent view of a cart taken right after an operation.
type CartSnapshot struct {
	SessionID     string
	Items         []cart.LineItem
	TotalQuantity int
	Total         decimal.Decimal
	Message       string
	Version       uint64
}

// Empty reports whether the cart has no items.
func (s CartSnapshot) Empty() bool {
	return len(s.Items) == 0
}

// CartService runs cart operations for shopper sessions. Operations on one session
// are serialized; different sessions proceed in parallel.
type CartService interface {
	View(sessionID string) CartSnapshot
	Add(sessionID, productID string, in SelectionInput) (CartSnapshot, int, error)
	SetQuantity(sessionID string, itemID, quantity int) (CartSnapshot, error)
	Increment(sessionID string, itemID int) (CartSnapshot, error)
	Decrement(sessionID string, itemID int) (CartSnapshot, error)
	Remove(sessionID string, itemID int) (CartSnapshot, error)
	Clear(sessionID string) CartSnapshot
	Close()
}

// CartServiceConfig configures the cart service.
type CartServiceConfig struct {
	StorageKey string
	CacheSize  int
	CacheTTL   time.Duration
}

// sessionLocks is the number of lock stripes sessions are hashed onto.
const sessionLocks = 256

// openCart is a cart held in memory. Access is guarded by its session's stripe
// in CartServiceImpl.locks, not by the cache entry, so a cart evicted mid-request
// is reopened from storage only after the request has saved.
type openCart struct {
	once sync.Once
	cart *cart.Cart
	op   string
}

// CartServiceImpl implements CartService.
type CartServiceImpl struct {
	catalog CatalogService
	storage cart.Storage
	prefix  string
	carts   *cache.Sharded[*openCart]
	locks   [sessionLocks]sync.Mutex
	log     zerolog.Logger
}

// NewCartService creates a new cart service. Carts persist to storage under
// "<StorageKey>:<session id>".
func NewCartService(catalog CatalogService, storage cart.Storage, cfg CartServiceConfig) *CartServiceImpl {
	if cfg.StorageKey == "" {
		cfg.StorageKey = cart.DefaultStorageKey
	}
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = 1000
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = 30 * time.Minute
	}
	return &CartServiceImpl{
		catalog: catalog,
		storage: storage,
		prefix:  cfg.StorageKey,
		carts:   cache.NewSharded[*openCart](cfg.CacheSize, cfg.CacheTTL, 16),
		log:     logger.Logger().With().Str("component", "cart_service").Logger(),
	}
}

// StorageKey returns the key a session's cart is persisted under.
func (s *CartServiceImpl) StorageKey(sessionID string) string {
	return s.prefix + ":" + sessionID
}

// View returns the session's cart.
func (s *CartServiceImpl) View(sessionID string) CartSnapshot {
	snap, _ := s.with(sessionID, "", func(*cart.Cart) error { return nil })
	return snap
}

// Add validates the selection against the catalog and adds it to the cart,
// returning the id of the row that holds it.
func (s *CartServiceImpl) Add(sessionID, productID string, in SelectionInput) (CartSnapshot, int, error) {
	p, err := s.catalog.Product(productID)
	if err != nil {
		return CartSnapshot{}, 0, err
	}
	b, err := applySelection(p, in)
	if err != nil {
		return CartSnapshot{}, 0, err
	}
	if !b.IsComplete() {
		return CartSnapshot{}, 0, ErrIncompleteSelection
	}
	weight, _ := b.Weight()

	var id int
	snap, err := s.with(sessionID, "add", func(c *cart.Cart) error {
		id = c.AddItem(b.Product(), weight, b.Flavors(), b.Quantity())
		return nil
	})
	return snap, id, err
}

// SetQuantity sets a row's quantity.
func (s *CartServiceImpl) SetQuantity(sessionID string, itemID, quantity int) (CartSnapshot, error) {
	if quantity < 1 {
		return CartSnapshot{}, ErrInvalidQuantity
	}
	return s.with(sessionID, "update", func(c *cart.Cart) error {
		if _, ok := c.GetItem(itemID); !ok {
			return ErrItemNotFound
		}
		c.UpdateItem(itemID, cart.ItemChanges{Quantity: &quantity})
		return nil
	})
}

// Increment adds one unit to a row.
func (s *CartServiceImpl) Increment(sessionID string, itemID int) (CartSnapshot, error) {
	return s.with(sessionID, "increment", func(c *cart.Cart) error {
		if _, ok := c.GetItem(itemID); !ok {
			return ErrItemNotFound
		}
		c.Increment(itemID)
		return nil
	})
}

// Decrement removes one unit from a row; the row goes away at zero.
func (s *CartServiceImpl) Decrement(sessionID string, itemID int) (CartSnapshot, error) {
	return s.with(sessionID, "decrement", func(c *cart.Cart) error {
		if _, ok := c.GetItem(itemID); !ok {
			return ErrItemNotFound
		}
		c.Decrement(itemID)
		return nil
	})
}

// Remove deletes a row.
func (s *CartServiceImpl) Remove(sessionID string, itemID int) (CartSnapshot, error) {
	return s.with(sessionID, "remove", func(c *cart.Cart) error {
		if _, ok := c.GetItem(itemID); !ok {
			return ErrItemNotFound
		}
		c.RemoveItem(itemID)
		return nil
	})
}

// Clear empties the cart.
func (s *CartServiceImpl) Clear(sessionID string) CartSnapshot {
	snap, _ := s.with(sessionID, "clear", func(c *cart.Cart) error {
		c.Clear()
		return nil
	})
	return snap
}

// Close releases the open-cart cache. Carts are already persisted.
func (s *CartServiceImpl) Close() {
	s.carts.Stop()
}

func (s *CartServiceImpl) open(sessionID string) *openCart {
	oc := s.carts.GetOrSet(sessionID, func() *openCart { return &openCart{} })
	oc.once.Do(func() {
		oc.cart = cart.New(
			cart.WithStorage(s.storage, s.StorageKey(sessionID)),
			cart.WithLogger(s.log.With().Str("session_id", sessionID).Logger()),
			cart.WithObserver(func(c *cart.Cart) {
				total, _ := c.TotalPrice().Float64()
				metrics.RecordCartOperation(oc.op, total)
			}),
		)
	})
	m := s.carts.Metrics()
	metrics.UpdateCacheMetrics(m.Size, m.Capacity)
	return oc
}

func (s *CartServiceImpl) lock(sessionID string) *sync.Mutex {
	return &s.locks[xxhash.Sum64String(sessionID)%sessionLocks]
}

func (s *CartServiceImpl) with(sessionID, op string, fn func(*cart.Cart) error) (CartSnapshot, error) {
	mu := s.lock(sessionID)
	mu.Lock()
	defer mu.Unlock()

	oc := s.open(sessionID)

	oc.op = op
	if err := fn(oc.cart); err != nil {
		return CartSnapshot{}, err
	}
	if op != "" {
		s.log.Debug().
			Str("session_id", sessionID).
			Str("operation", op).
			Int("items", oc.cart.Len()).
			Uint64("version", oc.cart.Version()).
			Msg("Cart updated")
	}
	return snapshot(sessionID, oc.cart), nil
}

func snapshot(sessionID string, c *cart.Cart) CartSnapshot {
	return CartSnapshot{
		SessionID:     sessionID,
		Items:         c.Items(),
		TotalQuantity: c.TotalQuantity(),
		Total:         c.TotalPrice(),
		Message:       c.BuildOrderMessage(),
		Version:       c.Version(),
	}
}

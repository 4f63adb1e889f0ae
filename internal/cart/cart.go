// Package cart implements the shopping cart: an ordered list of line items with
// merge-on-add, derived totals, persistence and the order message handed to the
// messaging deep link.
//
// A Cart is not safe for concurrent use. Every operation runs to completion before
// the next one starts; callers that share a cart between goroutines must serialize
// access themselves.
package cart

import (
	"encoding/json"
	"errors"

	"github.com/guttosm/mary-storefront/internal/domain/model"
	"github.com/guttosm/mary-storefront/internal/logger"
	"github.com/guttosm/mary-storefront/internal/money"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Observer is called once after every mutating operation, once the mutation is
// done and persistence has been attempted.
type Observer func(*Cart)

// ItemChanges lists the fields UpdateItem may change. Nil fields are left alone.
type ItemChanges struct {
	Quantity *int
}

// Cart is the shopper's cart.
type Cart struct {
	items    []LineItem
	nextID   int
	version  uint64
	storage  Storage
	key      string
	observer Observer
	log      zerolog.Logger
}

// Option configures a Cart.
type Option func(*Cart)

// WithStorage persists the cart under key. An empty key uses DefaultStorageKey.
func WithStorage(s Storage, key string) Option {
	return func(c *Cart) {
		if key == "" {
			key = DefaultStorageKey
		}
		c.storage = s
		c.key = key
	}
}

// WithObserver registers the mutation observer.
func WithObserver(o Observer) Option {
	return func(c *Cart) {
		c.observer = o
	}
}

// WithLogger sets the logger used for persistence warnings.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Cart) {
		c.log = l
	}
}

// New creates a cart, restoring it from storage when one is configured.
// Missing or unreadable state yields an empty cart.
func New(opts ...Option) *Cart {
	c := &Cart{
		items:  []LineItem{},
		nextID: 1,
		key:    DefaultStorageKey,
		log:    logger.Logger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.load()
	return c
}

// FromState builds a cart without storage from persisted state.
func FromState(s State) *Cart {
	c := New()
	c.restore(s)
	return c
}

// SetObserver replaces the observer. A cart has at most one.
func (c *Cart) SetObserver(o Observer) {
	c.observer = o
}

// AddItem adds a configuration to the cart and returns the id of the row that holds it.
//
// If a row with the same merge key exists its quantity grows by quantity; otherwise a
// new row is appended with the next id. Quantities below one count as one.
func (c *Cart) AddItem(product model.Product, weight model.WeightTier, flavors []model.Flavor, quantity int) int {
	if quantity < 1 {
		quantity = 1
	}
	key := MergeKey(product.ID, weight.ID, flavors)

	for i := range c.items {
		if c.items[i].MergeKey == key {
			c.items[i].Quantity += quantity
			c.notify()
			return c.items[i].ID
		}
	}

	item := LineItem{
		ID:        c.nextID,
		Product:   product.Clone(),
		Weight:    weight,
		Flavors:   append([]model.Flavor(nil), flavors...),
		MergeKey:  key,
		Quantity:  quantity,
		UnitPrice: weight.Price,
	}
	c.nextID++
	c.items = append(c.items, item)
	c.notify()
	return item.ID
}

// UpdateItem applies changes to the row with the given id. Unknown ids are ignored.
// A quantity below one is ignored; the merge key is not re-checked.
func (c *Cart) UpdateItem(id int, changes ItemChanges) {
	idx := c.indexOf(id)
	if idx < 0 {
		return
	}
	if changes.Quantity != nil && *changes.Quantity >= 1 {
		c.items[idx].Quantity = *changes.Quantity
	}
	c.notify()
}

// Increment adds one unit to a row.
func (c *Cart) Increment(id int) {
	item, ok := c.GetItem(id)
	if !ok {
		return
	}
	q := item.Quantity + 1
	c.UpdateItem(id, ItemChanges{Quantity: &q})
}

// Decrement removes one unit from a row, removing the row when it holds one unit.
func (c *Cart) Decrement(id int) {
	item, ok := c.GetItem(id)
	if !ok {
		return
	}
	if item.Quantity <= 1 {
		c.RemoveItem(id)
		return
	}
	q := item.Quantity - 1
	c.UpdateItem(id, ItemChanges{Quantity: &q})
}

// RemoveItem deletes the row with the given id, if present.
func (c *Cart) RemoveItem(id int) {
	if idx := c.indexOf(id); idx >= 0 {
		c.items = append(c.items[:idx], c.items[idx+1:]...)
	}
	c.notify()
}

// Clear empties the cart. The id counter keeps running.
func (c *Cart) Clear() {
	c.items = []LineItem{}
	c.notify()
}

// GetItem returns a copy of the row with the given id.
func (c *Cart) GetItem(id int) (LineItem, bool) {
	idx := c.indexOf(id)
	if idx < 0 {
		return LineItem{}, false
	}
	return c.items[idx].clone(), true
}

// Items returns copies of all rows in insertion order.
func (c *Cart) Items() []LineItem {
	out := make([]LineItem, 0, len(c.items))
	for _, it := range c.items {
		out = append(out, it.clone())
	}
	return out
}

// Len is the number of rows.
func (c *Cart) Len() int {
	return len(c.items)
}

// Version counts the mutating operations applied since the cart was created.
func (c *Cart) Version() uint64 {
	return c.version
}

// TotalQuantity is the sum of the rows' quantities.
func (c *Cart) TotalQuantity() int {
	total := 0
	for _, it := range c.items {
		total += it.Quantity
	}
	return total
}

// TotalPrice is the sum of the rows' totals.
func (c *Cart) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, it := range c.items {
		total = total.Add(it.TotalPrice())
	}
	return total
}

// TotalFormatted is TotalPrice as currency text.
func (c *Cart) TotalFormatted() string {
	return money.FormatBRL(c.TotalPrice())
}

// State returns the persistable form of the cart.
func (c *Cart) State() State {
	return State{NextID: c.nextID, Items: c.Items()}
}

func (c *Cart) indexOf(id int) int {
	for i := range c.items {
		if c.items[i].ID == id {
			return i
		}
	}
	return -1
}

func (c *Cart) notify() {
	c.version++
	c.save()
	if c.observer != nil {
		c.observer(c)
	}
}

func (c *Cart) save() {
	if c.storage == nil {
		return
	}
	data, err := json.Marshal(c.State())
	if err != nil {
		c.log.Warn().Err(err).Str("key", c.key).Msg("Cart: could not encode state")
		return
	}
	if err := c.storage.Save(c.key, data); err != nil {
		c.log.Warn().Err(err).Str("key", c.key).Msg("Cart: could not save state")
	}
}

func (c *Cart) load() {
	if c.storage == nil {
		return
	}
	data, err := c.storage.Load(c.key)
	if errors.Is(err, ErrNotFound) || (err == nil && len(data) == 0) {
		return
	}
	if err != nil {
		c.log.Warn().Err(err).Str("key", c.key).Msg("Cart: could not read state")
		return
	}
	s, err := ParseState(data)
	if err != nil {
		c.log.Warn().Err(err).Str("key", c.key).Msg("Cart: discarding unreadable state")
		return
	}
	c.restore(s)
}

// restore rebuilds the cart from persisted state. Merge keys are recomputed and
// rows sharing one are folded together; duplicate ids are renumbered and the id
// counter always ends above every restored id.
func (c *Cart) restore(s State) {
	maxID := 0
	for _, it := range s.Items {
		maxID = max(maxID, it.ID)
	}
	c.nextID = max(s.NextID, maxID+1, 1)

	c.items = make([]LineItem, 0, len(s.Items))
	byKey := make(map[string]int, len(s.Items))
	ids := make(map[int]struct{}, len(s.Items))
	for _, it := range s.Items {
		it = it.clone()
		it.MergeKey = MergeKey(it.Product.ID, it.Weight.ID, it.Flavors)
		if it.Quantity < 1 {
			it.Quantity = 1
		}
		if idx, ok := byKey[it.MergeKey]; ok {
			c.items[idx].Quantity += it.Quantity
			continue
		}
		if _, taken := ids[it.ID]; taken || it.ID < 1 {
			it.ID = c.nextID
			c.nextID++
		}
		ids[it.ID] = struct{}{}
		byKey[it.MergeKey] = len(c.items)
		c.items = append(c.items, it)
	}
}

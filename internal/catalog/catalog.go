// Package catalog loads the storefront product feed and answers navigation queries
// over it. A Catalog is immutable once built and safe for concurrent use.
package catalog

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/guttosm/mary-storefront/internal/domain/model"
)

var (
	// ErrEmptyFeed is returned when a feed has no categories.
	ErrEmptyFeed = errors.New("catalog feed has no categories")
	// ErrInvalidFeed wraps every validation failure of a feed.
	ErrInvalidFeed = errors.New("invalid catalog feed")
)

// Catalog is a validated, indexed feed.
type Catalog struct {
	feed       model.Feed
	products   map[string]int
	categories map[string]int
	byCategory map[string][]int
}

// Parse decodes and validates a feed document.
func Parse(data []byte) (*Catalog, error) {
	var feed model.Feed
	if err := json.Unmarshal(data, &feed); err != nil {
		return nil, fmt.Errorf("decode catalog feed: %w", err)
	}
	return New(feed)
}

// New indexes feed after checking it. Product and category ids must be unique,
// products must point at a known category and prices cannot be negative.
func New(feed model.Feed) (*Catalog, error) {
	if len(feed.Categories) == 0 {
		return nil, ErrEmptyFeed
	}

	c := &Catalog{
		feed:       feed,
		products:   make(map[string]int, len(feed.Products)),
		categories: make(map[string]int, len(feed.Categories)),
		byCategory: make(map[string][]int, len(feed.Categories)),
	}

	for i, cat := range feed.Categories {
		if cat.ID == "" {
			return nil, fmt.Errorf("%w: category %d has no id", ErrInvalidFeed, i)
		}
		if _, dup := c.categories[cat.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate category %q", ErrInvalidFeed, cat.ID)
		}
		c.categories[cat.ID] = i
	}

	for i, p := range feed.Products {
		if p.ID == "" {
			return nil, fmt.Errorf("%w: product %d has no id", ErrInvalidFeed, i)
		}
		if _, dup := c.products[p.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate product %q", ErrInvalidFeed, p.ID)
		}
		if _, ok := c.categories[p.Category]; !ok {
			return nil, fmt.Errorf("%w: product %q references unknown category %q", ErrInvalidFeed, p.ID, p.Category)
		}
		if err := checkProduct(p); err != nil {
			return nil, err
		}
		c.products[p.ID] = i
		c.byCategory[p.Category] = append(c.byCategory[p.Category], i)
	}

	return c, nil
}

func checkProduct(p model.Product) error {
	weights := make(map[string]struct{}, len(p.Weights))
	for _, w := range p.Weights {
		if _, dup := weights[w.ID]; dup {
			return fmt.Errorf("%w: product %q repeats weight %q", ErrInvalidFeed, p.ID, w.ID)
		}
		if w.Price.IsNegative() {
			return fmt.Errorf("%w: product %q weight %q has a negative price", ErrInvalidFeed, p.ID, w.ID)
		}
		weights[w.ID] = struct{}{}
	}
	flavors := make(map[string]struct{}, len(p.Flavors))
	for _, f := range p.Flavors {
		if _, dup := flavors[f.ID]; dup {
			return fmt.Errorf("%w: product %q repeats flavor %q", ErrInvalidFeed, p.ID, f.ID)
		}
		flavors[f.ID] = struct{}{}
	}
	if p.MultiSelect < 0 {
		return fmt.Errorf("%w: product %q has a negative multiSelect", ErrInvalidFeed, p.ID)
	}
	if p.MultiSelect > len(p.Flavors) {
		return fmt.Errorf("%w: product %q requires %d flavors but offers %d",
			ErrInvalidFeed, p.ID, p.MultiSelect, len(p.Flavors))
	}
	return nil
}

// Categories returns the categories in feed order.
func (c *Catalog) Categories() []model.Category {
	return append([]model.Category(nil), c.feed.Categories...)
}

// Category returns the category with the given id.
func (c *Catalog) Category(id string) (model.Category, bool) {
	i, ok := c.categories[id]
	if !ok {
		return model.Category{}, false
	}
	return c.feed.Categories[i], true
}

// DefaultCategory is the category shown first: the first flagged default, else
// the first flagged active, else the first one.
func (c *Catalog) DefaultCategory() model.Category {
	for _, cat := range c.feed.Categories {
		if cat.Default {
			return cat
		}
	}
	for _, cat := range c.feed.Categories {
		if cat.Active {
			return cat
		}
	}
	return c.feed.Categories[0]
}

// ProductsByCategory returns copies of the category's products in feed order.
func (c *Catalog) ProductsByCategory(categoryID string) []model.Product {
	idx := c.byCategory[categoryID]
	out := make([]model.Product, 0, len(idx))
	for _, i := range idx {
		out = append(out, c.feed.Products[i].Clone())
	}
	return out
}

// Product returns a copy of the product with the given id.
func (c *Catalog) Product(id string) (model.Product, bool) {
	i, ok := c.products[id]
	if !ok {
		return model.Product{}, false
	}
	return c.feed.Products[i].Clone(), true
}

// Len is the number of products.
func (c *Catalog) Len() int {
	return len(c.feed.Products)
}

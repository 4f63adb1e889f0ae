// Package model defines the core domain entities for the storefront.
package model

import (
	"github.com/shopspring/decimal"
)

// WeightTier is a size option of a product with its price.
//
// @Description Weight/size tier of a product
type WeightTier struct {
	ID    string          `json:"id" example:"500g"`
	Label string          `json:"label" example:"500g"`
	Price decimal.Decimal `json:"price" swaggertype:"string" example:"89.90"`
}

// Flavor is a selectable flavor of a product.
//
// @Description Flavor option of a product
type Flavor struct {
	ID    string `json:"id" example:"ninho"`
	Label string `json:"label" example:"Ninho com Nutella"`
}

// Hero is the banner content shown when a category is selected.
type Hero struct {
	Tag      string `json:"tag"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	CTALabel string `json:"ctaLabel"`
}

// Category groups products in the catalog navigation.
//
// @Description Catalog category
type Category struct {
	ID          string `json:"id" example:"pascoa"`
	Label       string `json:"label" example:"Páscoa"`
	Icon        string `json:"icon" example:"🐣"`
	Description string `json:"description"`
	Default     bool   `json:"default,omitempty"`
	Active      bool   `json:"active,omitempty"`
	Hero        *Hero  `json:"hero,omitempty"`
}

// Product is a catalog entry. Products are read-only once loaded; the cart keeps
// its own copies (see Clone).
//
// @Description Catalog product with its weight tiers and flavors
type Product struct {
	ID            string       `json:"id" example:"ovo-trio"`
	Category      string       `json:"category" example:"pascoa"`
	Name          string       `json:"name" example:"Ovo Trio"`
	Description   string       `json:"description"`
	Image         string       `json:"image,omitempty"`
	Image2        string       `json:"image2,omitempty"`
	ImageFallback string       `json:"imageFallback,omitempty"`
	Badge         string       `json:"badge,omitempty"`
	BadgeColor    string       `json:"badgeColor,omitempty"`
	Note          string       `json:"note,omitempty"`
	Weights       []WeightTier `json:"weights"`
	Flavors       []Flavor     `json:"flavors"`
	// MultiSelect is the exact number of flavors the shopper must pick.
	// Zero means single-select.
	MultiSelect int `json:"multiSelect,omitempty"`
}

// IsMultiSelect reports whether the product requires several flavors.
func (p Product) IsMultiSelect() bool {
	return p.MultiSelect > 0
}

// RequiredFlavors returns how many flavors make a complete selection.
func (p Product) RequiredFlavors() int {
	if p.MultiSelect > 0 {
		return p.MultiSelect
	}
	return 1
}

// Addable reports whether the product can be put in a cart at all.
func (p Product) Addable() bool {
	return len(p.Weights) > 0 && len(p.Flavors) > 0
}

// Weight returns the weight tier with the given id.
func (p Product) Weight(id string) (WeightTier, bool) {
	for _, w := range p.Weights {
		if w.ID == id {
			return w, true
		}
	}
	return WeightTier{}, false
}

// Flavor returns the flavor with the given id.
func (p Product) Flavor(id string) (Flavor, bool) {
	for _, f := range p.Flavors {
		if f.ID == id {
			return f, true
		}
	}
	return Flavor{}, false
}

// FromPrice returns the lowest weight price ("a partir de") and false when the
// product has no weight tiers.
func (p Product) FromPrice() (decimal.Decimal, bool) {
	if len(p.Weights) == 0 {
		return decimal.Zero, false
	}
	lowest := p.Weights[0].Price
	for _, w := range p.Weights[1:] {
		if w.Price.LessThan(lowest) {
			lowest = w.Price
		}
	}
	return lowest, true
}

// Clone returns a deep copy so later catalog changes cannot leak into holders of the copy.
func (p Product) Clone() Product {
	c := p
	c.Weights = append([]WeightTier(nil), p.Weights...)
	c.Flavors = append([]Flavor(nil), p.Flavors...)
	return c
}

// Feed is the catalog document as published by the storefront.
type Feed struct {
	Categories []Category `json:"categories"`
	Products   []Product  `json:"products"`
}

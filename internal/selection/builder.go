// Package selection tracks the in-progress configuration of the product a shopper
// is looking at: weight tier, flavors and quantity.
//
// A Builder never fails. Ids that do not belong to the product are ignored and
// quantities are clamped, because input comes from a closed set of rendered controls.
package selection

import (
	"github.com/guttosm/mary-storefront/internal/domain/model"
	"github.com/shopspring/decimal"
)

const (
	// MinQuantity is the smallest quantity a selection can hold.
	MinQuantity = 1
	// MaxQuantity is the largest quantity a selection can hold.
	MaxQuantity = 99
)

// Builder holds the selection for one product view.
type Builder struct {
	product  model.Product
	weight   *model.WeightTier
	flavors  []model.Flavor
	quantity int
}

// New returns a builder initialized for the product.
func New(product model.Product) *Builder {
	b := &Builder{}
	b.Initialize(product)
	return b
}

// Initialize resets the selection: first weight tier, first flavor for
// single-select products (none for multi-select), quantity 1.
func (b *Builder) Initialize(product model.Product) {
	b.product = product.Clone()
	b.weight = nil
	b.flavors = nil
	b.quantity = MinQuantity

	if len(b.product.Weights) > 0 {
		w := b.product.Weights[0]
		b.weight = &w
	}
	if !b.product.IsMultiSelect() && len(b.product.Flavors) > 0 {
		b.flavors = []model.Flavor{b.product.Flavors[0]}
	}
}

// SetWeight selects the weight tier with the given id. Unknown ids are ignored.
func (b *Builder) SetWeight(weightID string) {
	w, ok := b.product.Weight(weightID)
	if !ok {
		return
	}
	b.weight = &w
}

// ToggleFlavor selects or deselects a flavor.
//
// Single-select products behave like radio buttons. Multi-select products toggle
// membership, capped at the required count; clicks past the cap are ignored.
func (b *Builder) ToggleFlavor(flavorID string) {
	f, ok := b.product.Flavor(flavorID)
	if !ok {
		return
	}

	if !b.product.IsMultiSelect() {
		b.flavors = []model.Flavor{f}
		return
	}

	if idx := b.indexOf(flavorID); idx >= 0 {
		b.flavors = append(b.flavors[:idx], b.flavors[idx+1:]...)
		return
	}
	if len(b.flavors) < b.product.MultiSelect {
		b.flavors = append(b.flavors, f)
	}
}

// SetQuantity sets the quantity, clamped to [MinQuantity, MaxQuantity].
func (b *Builder) SetQuantity(n int) {
	b.quantity = ClampQuantity(n)
}

// IncrementQuantity adds one unit, up to MaxQuantity.
func (b *Builder) IncrementQuantity() {
	b.SetQuantity(b.quantity + 1)
}

// DecrementQuantity removes one unit, down to MinQuantity.
func (b *Builder) DecrementQuantity() {
	b.SetQuantity(b.quantity - 1)
}

// IsComplete reports whether the selection can be added to the cart.
func (b *Builder) IsComplete() bool {
	return b.weight != nil && len(b.flavors) == b.product.RequiredFlavors()
}

// CurrentTotal is the chosen weight price times quantity, or zero without a weight.
func (b *Builder) CurrentTotal() decimal.Decimal {
	if b.weight == nil {
		return decimal.Zero
	}
	return b.weight.Price.Mul(decimal.NewFromInt(int64(b.quantity)))
}

// Remaining is how many flavors are still missing on a multi-select product.
// It is always zero for single-select products.
func (b *Builder) Remaining() int {
	if !b.product.IsMultiSelect() {
		return 0
	}
	if n := b.product.MultiSelect - len(b.flavors); n > 0 {
		return n
	}
	return 0
}

// IsFlavorSelected reports whether the flavor is part of the selection.
func (b *Builder) IsFlavorSelected(flavorID string) bool {
	return b.indexOf(flavorID) >= 0
}

// IsFlavorDisabled reports whether the control for a flavor should be disabled:
// the cap is reached and the flavor is not one of the chosen ones.
func (b *Builder) IsFlavorDisabled(flavorID string) bool {
	return b.product.IsMultiSelect() &&
		len(b.flavors) >= b.product.MultiSelect &&
		!b.IsFlavorSelected(flavorID)
}

// Product returns the product being configured.
func (b *Builder) Product() model.Product {
	return b.product
}

// Weight returns the chosen weight tier.
func (b *Builder) Weight() (model.WeightTier, bool) {
	if b.weight == nil {
		return model.WeightTier{}, false
	}
	return *b.weight, true
}

// Flavors returns the chosen flavors in the order they were picked.
func (b *Builder) Flavors() []model.Flavor {
	return append([]model.Flavor(nil), b.flavors...)
}

// Quantity returns the chosen quantity.
func (b *Builder) Quantity() int {
	return b.quantity
}

func (b *Builder) indexOf(flavorID string) int {
	for i, f := range b.flavors {
		if f.ID == flavorID {
			return i
		}
	}
	return -1
}

// ClampQuantity bounds n to [MinQuantity, MaxQuantity].
func ClampQuantity(n int) int {
	switch {
	case n < MinQuantity:
		return MinQuantity
	case n > MaxQuantity:
		return MaxQuantity
	default:
		return n
	}
}

package cart

import (
	"sort"
	"strings"

	"github.com/guttosm/mary-storefront/internal/domain/model"
	"github.com/shopspring/decimal"
)

// LineItem is one row of the cart: a unique product/weight/flavor configuration
// and how many of it the shopper wants.
//
// Product, Weight and Flavors are snapshots taken when the row was created.
type LineItem struct {
	ID        int              `json:"id"`
	Product   model.Product    `json:"product"`
	Weight    model.WeightTier `json:"weight"`
	Flavors   []model.Flavor   `json:"flavors"`
	MergeKey  string           `json:"mergeKey"`
	Quantity  int              `json:"quantity"`
	UnitPrice decimal.Decimal  `json:"unitPrice"`
}

// TotalPrice is UnitPrice × Quantity. It is computed on every call and never stored.
func (i LineItem) TotalPrice() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// FlavorLabels returns the flavor labels in selection order.
func (i LineItem) FlavorLabels() []string {
	labels := make([]string, 0, len(i.Flavors))
	for _, f := range i.Flavors {
		labels = append(labels, f.Label)
	}
	return labels
}

func (i LineItem) clone() LineItem {
	c := i
	c.Product = i.Product.Clone()
	c.Flavors = append([]model.Flavor(nil), i.Flavors...)
	return c
}

// MergeKey identifies a configuration: product id, weight id and the flavor ids
// sorted ascending. Two additions with the same key accumulate on one row.
func MergeKey(productID, weightID string, flavors []model.Flavor) string {
	ids := make([]string, 0, len(flavors))
	for _, f := range flavors {
		ids = append(ids, f.ID)
	}
	sort.Strings(ids)
	return productID + "|" + weightID + "|" + strings.Join(ids, ",")
}

package service

import (
	"fmt"

	"github.com/guttosm/mary-storefront/internal/domain/model"
	"github.com/guttosm/mary-storefront/internal/selection"
	"github.com/shopspring/decimal"
)

// SelectionInput is a proposed configuration of a product. An empty WeightID keeps
// the first tier; no flavors keeps the default (the first flavor of single-select
// products). Quantity is clamped to the allowed range.
type SelectionInput struct {
	WeightID  string
	FlavorIDs []string
	Quantity  int
}

// Quote is the evaluated state of a selection.
type Quote struct {
	Product          model.Product
	Weight           model.WeightTier
	Flavors          []model.Flavor
	Quantity         int
	Complete         bool
	Remaining        int
	Total            decimal.Decimal
	ActionLabel      string
	FlavorGroupLabel string
	DisabledFlavors  []string
}

// applySelection replays in on a fresh builder. Unlike the builder, which ignores
// stray input from rendered controls, it rejects ids the product does not have
// and more flavors than the product takes.
func applySelection(p model.Product, in SelectionInput) (*selection.Builder, error) {
	if !p.Addable() {
		return nil, ErrProductUnavailable
	}

	b := selection.New(p)
	if in.WeightID != "" {
		if _, ok := p.Weight(in.WeightID); !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownWeight, in.WeightID)
		}
		b.SetWeight(in.WeightID)
	}

	flavors := dedupe(in.FlavorIDs)
	if len(flavors) > p.RequiredFlavors() {
		return nil, fmt.Errorf("%w: %d given, %d allowed", ErrTooManyFlavors, len(flavors), p.RequiredFlavors())
	}
	for _, id := range flavors {
		if _, ok := p.Flavor(id); !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownFlavor, id)
		}
		b.ToggleFlavor(id)
	}

	if in.Quantity != 0 {
		b.SetQuantity(in.Quantity)
	}
	return b, nil
}

func quoteFrom(b *selection.Builder) Quote {
	p := b.Product()
	w, _ := b.Weight()
	q := Quote{
		Product:          p,
		Weight:           w,
		Flavors:          b.Flavors(),
		Quantity:         b.Quantity(),
		Complete:         b.IsComplete(),
		Remaining:        b.Remaining(),
		Total:            b.CurrentTotal(),
		ActionLabel:      b.ActionLabel(),
		FlavorGroupLabel: b.FlavorGroupLabel(),
		DisabledFlavors:  []string{},
	}
	for _, f := range p.Flavors {
		if b.IsFlavorDisabled(f.ID) {
			q.DisabledFlavors = append(q.DisabledFlavors, f.ID)
		}
	}
	return q
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

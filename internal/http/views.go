package http

import (
	"github.com/guttosm/mary-storefront/internal/domain/dto"
	"github.com/guttosm/mary-storefront/internal/money"
	"github.com/guttosm/mary-storefront/internal/service"
)

func cartView(s service.CartSnapshot) dto.CartView {
	return dto.NewCartView(s.Items, s.TotalQuantity, s.Total, s.Version)
}

func quoteView(q service.Quote) dto.QuoteView {
	return dto.QuoteView{
		ProductID:        q.Product.ID,
		Weight:           q.Weight,
		Flavors:          q.Flavors,
		Quantity:         q.Quantity,
		Complete:         q.Complete,
		Remaining:        q.Remaining,
		Total:            q.Total.StringFixed(2),
		TotalFormatted:   money.FormatBRL(q.Total),
		ActionLabel:      q.ActionLabel,
		FlavorGroupLabel: q.FlavorGroupLabel,
		DisabledFlavors:  q.DisabledFlavors,
	}
}

func selectionInput(r dto.SelectionRequest) service.SelectionInput {
	return service.SelectionInput{
		WeightID:  r.WeightID,
		FlavorIDs: r.FlavorIDs,
		Quantity:  r.Quantity,
	}
}

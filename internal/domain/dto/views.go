package dto

import (
	"strconv"
	"time"

	"github.com/guttosm/mary-storefront/internal/cart"
	"github.com/guttosm/mary-storefront/internal/domain/model"
	"github.com/guttosm/mary-storefront/internal/money"
	"github.com/shopspring/decimal"
)

// FlavorPreviewSize is how many flavors a product card lists before "+N".
const FlavorPreviewSize = 4

// CatalogView is the storefront navigation.
//
// @Description Catalog categories and the one to open first
type CatalogView struct {
	Categories      []model.Category `json:"categories"`
	DefaultCategory string           `json:"defaultCategory" example:"pascoa"`
} // @name CatalogView

// ProductView is a product with its card rendering hints.
//
// @Description Catalog product with its display price
type ProductView struct {
	model.Product
	FromPrice          string   `json:"fromPrice" example:"49.90"`
	FromPriceFormatted string   `json:"fromPriceFormatted" example:"R$ 49,90"`
	HasMultiplePrices  bool     `json:"hasMultiplePrices"`
	PriceLabel         string   `json:"priceLabel,omitempty" example:"A partir de"`
	FlavorPreview      []string `json:"flavorPreview"`
	MoreFlavors        int      `json:"moreFlavors"`
	Addable            bool     `json:"addable"`
} // @name ProductView

// NewProductView builds the view of a product.
func NewProductView(p model.Product) ProductView {
	v := ProductView{
		Product:           p,
		HasMultiplePrices: len(p.Weights) > 1,
		FlavorPreview:     []string{},
		Addable:           p.Addable(),
	}
	if from, ok := p.FromPrice(); ok {
		v.FromPrice = from.StringFixed(2)
		v.FromPriceFormatted = money.FormatBRL(from)
	}
	if v.HasMultiplePrices {
		v.PriceLabel = "A partir de"
	}
	for i, f := range p.Flavors {
		if i == FlavorPreviewSize {
			break
		}
		v.FlavorPreview = append(v.FlavorPreview, f.Label)
	}
	if n := len(p.Flavors) - FlavorPreviewSize; n > 0 {
		v.MoreFlavors = n
	}
	return v
}

// NewProductViews builds views for products, keeping their order.
func NewProductViews(products []model.Product) []ProductView {
	out := make([]ProductView, 0, len(products))
	for _, p := range products {
		out = append(out, NewProductView(p))
	}
	return out
}

// QuoteView is the evaluated state of a proposed selection.
//
// @Description Evaluated product selection
type QuoteView struct {
	ProductID        string           `json:"productId" example:"ovo-trio"`
	Weight           model.WeightTier `json:"weight"`
	Flavors          []model.Flavor   `json:"flavors"`
	Quantity         int              `json:"quantity" example:"1"`
	Complete         bool             `json:"complete"`
	Remaining        int              `json:"remaining" example:"0"`
	Total            string           `json:"total" example:"89.90"`
	TotalFormatted   string           `json:"totalFormatted" example:"R$ 89,90"`
	ActionLabel      string           `json:"actionLabel" example:"🛒 Adicionar ao Carrinho"`
	FlavorGroupLabel string           `json:"flavorGroupLabel" example:"🍫 Sabores (escolha 3)"`
	DisabledFlavors  []string         `json:"disabledFlavors"`
} // @name QuoteView

// LineItemView is one cart row.
//
// @Description Cart line
type LineItemView struct {
	ID                 int              `json:"id" example:"1"`
	ProductID          string           `json:"productId" example:"ovo-trio"`
	ProductName        string           `json:"productName" example:"Ovo Trio"`
	Image              string           `json:"image,omitempty"`
	ImageFallback      string           `json:"imageFallback,omitempty"`
	Weight             model.WeightTier `json:"weight"`
	Flavors            []model.Flavor   `json:"flavors"`
	FlavorLabels       []string         `json:"flavorLabels"`
	Quantity           int              `json:"quantity" example:"2"`
	UnitPrice          string           `json:"unitPrice" example:"89.90"`
	UnitPriceFormatted string           `json:"unitPriceFormatted" example:"R$ 89,90"`
	Total              string           `json:"total" example:"179.80"`
	TotalFormatted     string           `json:"totalFormatted" example:"R$ 179,80"`
} // @name LineItemView

// NewLineItemView builds the view of a cart row.
func NewLineItemView(it cart.LineItem) LineItemView {
	total := it.TotalPrice()
	return LineItemView{
		ID:                 it.ID,
		ProductID:          it.Product.ID,
		ProductName:        it.Product.Name,
		Image:              it.Product.Image,
		ImageFallback:      it.Product.ImageFallback,
		Weight:             it.Weight,
		Flavors:            it.Flavors,
		FlavorLabels:       it.FlavorLabels(),
		Quantity:           it.Quantity,
		UnitPrice:          it.UnitPrice.StringFixed(2),
		UnitPriceFormatted: money.FormatBRL(it.UnitPrice),
		Total:              total.StringFixed(2),
		TotalFormatted:     money.FormatBRL(total),
	}
}

// CartView is the shopper's cart.
//
// @Description Cart with derived totals
type CartView struct {
	Items          []LineItemView `json:"items"`
	TotalQuantity  int            `json:"totalQuantity" example:"3"`
	CountLabel     string         `json:"countLabel" example:"3 itens"`
	Total          string         `json:"total" example:"269.70"`
	TotalFormatted string         `json:"totalFormatted" example:"R$ 269,70"`
	Empty          bool           `json:"empty"`
	Version        uint64         `json:"version" example:"4"`
} // @name CartView

// NewCartView builds the view of a cart from its rows.
func NewCartView(items []cart.LineItem, totalQuantity int, total decimal.Decimal, version uint64) CartView {
	v := CartView{
		Items:          make([]LineItemView, 0, len(items)),
		TotalQuantity:  totalQuantity,
		CountLabel:     CountLabel(totalQuantity),
		Total:          total.StringFixed(2),
		TotalFormatted: money.FormatBRL(total),
		Empty:          len(items) == 0,
		Version:        version,
	}
	for _, it := range items {
		v.Items = append(v.Items, NewLineItemView(it))
	}
	return v
}

// CountLabel is the cart badge text: "1 item", otherwise "N itens".
func CountLabel(n int) string {
	if n == 1 {
		return "1 item"
	}
	return strconv.Itoa(n) + " itens"
}

// AddItemView is the result of adding a selection.
//
// @Description Cart after an addition and the row that holds the selection
type AddItemView struct {
	ItemID int      `json:"itemId" example:"1"`
	Cart   CartView `json:"cart"`
} // @name AddItemView

// CheckoutView is the order handoff.
//
// @Description Order message and the deep link that opens it
type CheckoutView struct {
	Cart    CartView `json:"cart"`
	Message string   `json:"message"`
	URL     string   `json:"url" example:"https://wa.me/5584991087606?text=..."`
} // @name CheckoutView

// SessionView is a freshly issued cart session.
//
// @Description Anonymous cart session
type SessionView struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
} // @name SessionView

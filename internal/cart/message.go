package cart

import (
	"strconv"
	"strings"

	"github.com/guttosm/mary-storefront/internal/money"
)

const (
	orderHeader     = "🐣 *Pedido — Mary Restaurante*"
	orderDisclaimer = "_⚠️ O pedido é confirmado mediante pagamento de 50% do valor._"
)

// BuildOrderMessage renders the cart as the text handed to the messaging link.
// An empty cart yields an empty string. The layout is fixed: the receiving side
// reads it as is.
func (c *Cart) BuildOrderMessage() string {
	if len(c.items) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(orderHeader)
	b.WriteString("\n\n")

	for idx, it := range c.items {
		flavorNoun := "Sabor"
		if len(it.Flavors) > 1 {
			flavorNoun = "Sabores"
		}
		b.WriteString("*" + strconv.Itoa(idx+1) + ". " + it.Product.Name + "*\n")
		b.WriteString("   • Gramatura: " + it.Weight.Label + "\n")
		b.WriteString("   • " + flavorNoun + ": " + strings.Join(it.FlavorLabels(), ", ") + "\n")
		b.WriteString("   • Quantidade: " + strconv.Itoa(it.Quantity) + "x\n")
		b.WriteString("   • Subtotal: " + money.FormatBRL(it.TotalPrice()) + "\n")
		b.WriteString("\n")
	}

	b.WriteString("*Total: " + c.TotalFormatted() + "*\n")
	b.WriteString("\n")
	b.WriteString(orderDisclaimer)
	return b.String()
}

package selection

import "fmt"

const (
	// AddToCartLabel is the call to action of a complete selection.
	AddToCartLabel = "🛒 Adicionar ao Carrinho"
	// SingleFlavorGroupLabel heads the flavor group of single-select products.
	SingleFlavorGroupLabel = "🍫 Sabor"
)

// ActionLabel is the text of the add-to-cart button. Multi-select products that
// still miss flavors ask for the remaining ones.
func (b *Builder) ActionLabel() string {
	if n := b.Remaining(); n > 0 {
		return fmt.Sprintf("Selecione mais %d %s", n, pluralFlavor(n))
	}
	return AddToCartLabel
}

// FlavorGroupLabel heads the flavor controls.
func (b *Builder) FlavorGroupLabel() string {
	if b.product.IsMultiSelect() {
		return fmt.Sprintf("🍫 Sabores (escolha %d)", b.product.MultiSelect)
	}
	return SingleFlavorGroupLabel
}

func pluralFlavor(n int) string {
	if n > 1 {
		return "sabores"
	}
	return "sabor"
}

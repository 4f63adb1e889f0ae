// Package money formats prices the way the storefront shows them (pt-BR, BRL).
package money

import (
	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

const (
	// Symbol is the currency symbol for Brazilian reais.
	Symbol = "R$"
	// symbolSeparator matches the no-break space the pt-BR locale puts after the symbol.
	symbolSeparator = "\u00a0"
	// brlPattern groups thousands with "." and uses "," for two decimals.
	brlPattern = "#.###,##"
)

// FormatBRL renders an amount as currency text, e.g. "R$ 1.234,50".
// Rounding happens only here, to two places.
func FormatBRL(amount decimal.Decimal) string {
	rounded := amount.Round(2)
	if rounded.IsNegative() {
		return "-" + Symbol + symbolSeparator + humanize.FormatFloat(brlPattern, rounded.Neg().InexactFloat64())
	}
	return Symbol + symbolSeparator + humanize.FormatFloat(brlPattern, rounded.InexactFloat64())
}

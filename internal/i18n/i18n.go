// Package i18n provides internationalization support for the storefront API.
// It handles translation of user-facing messages and error messages.
package i18n

import (
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

const (
	// DefaultLocale is the default language locale (Brazilian Portuguese).
	DefaultLocale = "pt"
	// AcceptLanguageHeader is the HTTP header name for language preference.
	AcceptLanguageHeader = "Accept-Language"
)

var (
	// defaultTranslator is the singleton translator instance.
	defaultTranslator *Translator
	translatorOnce    sync.Once
)

// Translator handles message translation for different locales.
type Translator struct {
	messages map[string]map[string]string
}

// NewTranslator creates a new translator with the default messages.
func NewTranslator() *Translator {
	return &Translator{
		messages: defaultMessages,
	}
}

// GetTranslator returns the default singleton translator instance.
func GetTranslator() *Translator {
	translatorOnce.Do(func() {
		defaultTranslator = NewTranslator()
	})
	return defaultTranslator
}

// Translate returns the translated message for the given key and locale.
// Falls back to DefaultLocale, then to the key itself.
func (t *Translator) Translate(key, locale string) string {
	if msg, ok := t.messages[locale][key]; ok {
		return msg
	}
	if msg, ok := t.messages[DefaultLocale][key]; ok {
		return msg
	}
	return key
}

// Locales returns the supported locales.
func (t *Translator) Locales() []string {
	out := make([]string, 0, len(t.messages))
	for l := range t.messages {
		out = append(out, l)
	}
	return out
}

// GetLocale extracts the locale from the gin context.
// Picks the first supported language of the Accept-Language header.
func GetLocale(c *gin.Context) string {
	acceptLang := c.GetHeader(AcceptLanguageHeader)
	if acceptLang == "" {
		return DefaultLocale
	}

	// e.g. "en-US,en;q=0.9,pt;q=0.8"
	for _, part := range strings.Split(acceptLang, ",") {
		lang := strings.TrimSpace(strings.Split(part, ";")[0])
		if idx := strings.Index(lang, "-"); idx > 0 {
			lang = lang[:idx]
		}
		lang = strings.ToLower(lang)
		if _, ok := defaultMessages[lang]; ok {
			return lang
		}
	}

	return DefaultLocale
}

var defaultMessages = map[string]map[string]string{
	"pt": {
		"error.invalid_request":      "Requisição inválida",
		"error.invalid_request_body": "Corpo da requisição inválido",
		"error.internal_error":       "Ocorreu um erro inesperado",
		"error.not_found":            "Não encontrado",
		"error.rate_limit_exceeded":  "Muitas requisições, tente novamente mais tarde",
		"error.conflict":             "Conflito",
		"error.timeout":              "Tempo de resposta esgotado",
		"error.catalog_unavailable":  "Cardápio indisponível no momento",
		"error.category_not_found":   "Categoria não encontrada",
		"error.product_not_found":    "Produto não encontrado",
		"error.product_unavailable":  "Produto indisponível",
		"error.unknown_weight":       "Gramatura inválida para este produto",
		"error.unknown_flavor":       "Sabor inválido para este produto",
		"error.too_many_flavors":     "Sabores demais para este produto",
		"error.incomplete_selection": "Escolha a gramatura e os sabores antes de adicionar",
		"error.item_not_found":       "Item não encontrado no carrinho",
		"error.invalid_quantity":     "A quantidade deve ser pelo menos 1",
		"error.empty_cart":           "Seu carrinho está vazio",
		"error.session_unavailable":  "Não foi possível iniciar o carrinho",
	},
	"en": {
		"error.invalid_request":      "Invalid request",
		"error.invalid_request_body": "Invalid request body",
		"error.internal_error":       "An unexpected error occurred",
		"error.not_found":            "Not found",
		"error.rate_limit_exceeded":  "Too many requests, please try again later",
		"error.conflict":             "Conflict",
		"error.timeout":              "Request timed out",
		"error.catalog_unavailable":  "Catalog is temporarily unavailable",
		"error.category_not_found":   "Category not found",
		"error.product_not_found":    "Product not found",
		"error.product_unavailable":  "Product cannot be ordered",
		"error.unknown_weight":       "Unknown weight for this product",
		"error.unknown_flavor":       "Unknown flavor for this product",
		"error.too_many_flavors":     "Too many flavors for this product",
		"error.incomplete_selection": "Choose the weight and flavors before adding",
		"error.item_not_found":       "Cart item not found",
		"error.invalid_quantity":     "Quantity must be at least 1",
		"error.empty_cart":           "Your cart is empty",
		"error.session_unavailable":  "Could not start a cart session",
	},
}

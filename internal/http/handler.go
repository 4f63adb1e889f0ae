// Package http exposes the storefront over HTTP: catalog browsing, selection
// quotes, the anonymous cart and the order handoff.
package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/mary-storefront/internal/domain/dto"
	"github.com/guttosm/mary-storefront/internal/i18n"
	"github.com/guttosm/mary-storefront/internal/service"
)

// Handler provides HTTP handlers for the storefront routes.
type Handler struct {
	catalog  service.CatalogService
	carts    service.CartService
	checkout service.CheckoutService
	sessions service.SessionService
}

// NewHandler creates a new Handler instance.
func NewHandler(
	catalog service.CatalogService,
	carts service.CartService,
	checkout service.CheckoutService,
	sessions service.SessionService,
) *Handler {
	return &Handler{
		catalog:  catalog,
		carts:    carts,
		checkout: checkout,
		sessions: sessions,
	}
}

// serviceErrors maps service errors to status codes and message keys.
var serviceErrors = []struct {
	err    error
	status int
	key    string
}{
	{service.ErrCatalogUnavailable, http.StatusServiceUnavailable, i18n.ErrKeyCatalogUnavailable},
	{service.ErrCategoryNotFound, http.StatusNotFound, i18n.ErrKeyCategoryNotFound},
	{service.ErrProductNotFound, http.StatusNotFound, i18n.ErrKeyProductNotFound},
	{service.ErrItemNotFound, http.StatusNotFound, i18n.ErrKeyItemNotFound},
	{service.ErrProductUnavailable, http.StatusUnprocessableEntity, i18n.ErrKeyProductUnavailable},
	{service.ErrUnknownWeight, http.StatusUnprocessableEntity, i18n.ErrKeyUnknownWeight},
	{service.ErrUnknownFlavor, http.StatusUnprocessableEntity, i18n.ErrKeyUnknownFlavor},
	{service.ErrTooManyFlavors, http.StatusUnprocessableEntity, i18n.ErrKeyTooManyFlavors},
	{service.ErrIncompleteSelection, http.StatusUnprocessableEntity, i18n.ErrKeyIncompleteSelection},
	{service.ErrInvalidQuantity, http.StatusBadRequest, i18n.ErrKeyInvalidQuantity},
	{service.ErrEmptyCart, http.StatusConflict, i18n.ErrKeyEmptyCart},
}

// errorStatus returns the status code and message key for a service error.
func errorStatus(err error) (int, string) {
	for _, e := range serviceErrors {
		if errors.Is(err, e.err) {
			return e.status, e.key
		}
	}
	return http.StatusInternalServerError, i18n.ErrKeyInternalError
}

// fail writes the error response for a service error.
func fail(builder *ResponseBuilder, err error) {
	status, key := errorStatus(err)
	builder.Error(status, key, err)
}

// bindError writes the response for a request that failed binding or validation.
func bindError(builder *ResponseBuilder, err error) {
	var verr *dto.ValidationError
	if errors.As(err, &verr) {
		builder.ErrorWithDetails(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, map[string]string{verr.Field: verr.Message}, err)
		return
	}
	builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
}

// itemID parses the :id path parameter of cart item routes.
func itemID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}

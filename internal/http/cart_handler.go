package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/mary-storefront/internal/domain/dto"
	"github.com/guttosm/mary-storefront/internal/i18n"
	"github.com/guttosm/mary-storefront/internal/middleware"
	"github.com/guttosm/mary-storefront/internal/service"
)

// GetCart godoc
// @Summary      Get the cart
// @Description  Returns the session's cart with derived totals. A request without a valid session gets a new, empty one.
// @Tags         Cart
// @Produce      json
// @Param        X-Cart-Session header string false "Cart session token"
// @Success      200 {object} dto.SuccessResponse{data=dto.CartView} "Cart"
// @Failure      503 {object} dto.ErrorResponse "Session could not be issued"
// @Router       /api/cart [get]
func (h *Handler) GetCart(c *gin.Context) {
	snap := h.carts.View(middleware.GetCartSessionID(c))
	NewResponseBuilder(c).SuccessOK(cartView(snap))
}

// AddItem godoc
// @Summary      Add a selection to the cart
// @Description  Validates a complete selection against the catalog and adds it. Adding a configuration already in the cart grows that row's quantity. Supports idempotency via Idempotency-Key header.
// @Tags         Cart
// @Accept       json
// @Produce      json
// @Param        X-Cart-Session header string false "Cart session token"
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        request body dto.AddItemRequest true "Selection"
// @Success      201 {object} dto.SuccessResponse{data=dto.AddItemView} "Cart after the addition"
// @Failure      400 {object} dto.ErrorResponse "Malformed request"
// @Failure      404 {object} dto.ErrorResponse "Unknown product"
// @Failure      422 {object} dto.ErrorResponse "Selection is incomplete or does not fit the product"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      503 {object} dto.ErrorResponse "Catalog not loaded"
// @Router       /api/cart/items [post]
func (h *Handler) AddItem(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.AddItemRequest](c)
	if err != nil {
		bindError(builder, err)
		return
	}

	snap, id, err := h.carts.Add(middleware.GetCartSessionID(c), req.ProductID, selectionInput(req.SelectionRequest))
	if err != nil {
		fail(builder, err)
		return
	}
	builder.SuccessCreated(dto.AddItemView{ItemID: id, Cart: cartView(snap)})
}

// UpdateItem godoc
// @Summary      Set a line's quantity
// @Description  Sets the quantity of a cart line. The line keeps its configuration.
// @Tags         Cart
// @Accept       json
// @Produce      json
// @Param        X-Cart-Session header string false "Cart session token"
// @Param        id path int true "Line id"
// @Param        request body dto.UpdateQuantityRequest true "New quantity"
// @Success      200 {object} dto.SuccessResponse{data=dto.CartView} "Cart"
// @Failure      400 {object} dto.ErrorResponse "Malformed request"
// @Failure      404 {object} dto.ErrorResponse "Unknown line"
// @Router       /api/cart/items/{id} [patch]
func (h *Handler) UpdateItem(c *gin.Context) {
	builder := NewResponseBuilder(c)

	id, ok := itemID(c)
	if !ok {
		builder.Error(http.StatusNotFound, i18n.ErrKeyItemNotFound, nil)
		return
	}
	req, err := BuildRequestAndValidate[dto.UpdateQuantityRequest](c)
	if err != nil {
		bindError(builder, err)
		return
	}

	snap, err := h.carts.SetQuantity(middleware.GetCartSessionID(c), id, req.Quantity)
	h.respondCart(builder, snap, err)
}

// IncrementItem godoc
// @Summary      Add one unit to a line
// @Tags         Cart
// @Produce      json
// @Param        X-Cart-Session header string false "Cart session token"
// @Param        id path int true "Line id"
// @Success      200 {object} dto.SuccessResponse{data=dto.CartView} "Cart"
// @Failure      404 {object} dto.ErrorResponse "Unknown line"
// @Router       /api/cart/items/{id}/increment [post]
func (h *Handler) IncrementItem(c *gin.Context) {
	h.lineOperation(c, h.carts.Increment)
}

// DecrementItem godoc
// @Summary      Remove one unit from a line
// @Description  Removes one unit; a line holding a single unit is removed from the cart.
// @Tags         Cart
// @Produce      json
// @Param        X-Cart-Session header string false "Cart session token"
// @Param        id path int true "Line id"
// @Success      200 {object} dto.SuccessResponse{data=dto.CartView} "Cart"
// @Failure      404 {object} dto.ErrorResponse "Unknown line"
// @Router       /api/cart/items/{id}/decrement [post]
func (h *Handler) DecrementItem(c *gin.Context) {
	h.lineOperation(c, h.carts.Decrement)
}

// RemoveItem godoc
// @Summary      Remove a line
// @Tags         Cart
// @Produce      json
// @Param        X-Cart-Session header string false "Cart session token"
// @Param        id path int true "Line id"
// @Success      200 {object} dto.SuccessResponse{data=dto.CartView} "Cart"
// @Failure      404 {object} dto.ErrorResponse "Unknown line"
// @Router       /api/cart/items/{id} [delete]
func (h *Handler) RemoveItem(c *gin.Context) {
	h.lineOperation(c, h.carts.Remove)
}

// ClearCart godoc
// @Summary      Empty the cart
// @Tags         Cart
// @Produce      json
// @Param        X-Cart-Session header string false "Cart session token"
// @Success      200 {object} dto.SuccessResponse{data=dto.CartView} "Empty cart"
// @Router       /api/cart [delete]
func (h *Handler) ClearCart(c *gin.Context) {
	snap := h.carts.Clear(middleware.GetCartSessionID(c))
	NewResponseBuilder(c).SuccessOK(cartView(snap))
}

// Checkout godoc
// @Summary      Hand the order off
// @Description  Builds the order message and the WhatsApp link that opens it. The cart is kept so the shopper can come back and edit it.
// @Tags         Cart
// @Produce      json
// @Param        X-Cart-Session header string false "Cart session token"
// @Success      200 {object} dto.SuccessResponse{data=dto.CheckoutView} "Order handoff"
// @Failure      409 {object} dto.ErrorResponse "Cart is empty"
// @Router       /api/cart/checkout [post]
func (h *Handler) Checkout(c *gin.Context) {
	builder := NewResponseBuilder(c)

	out, err := h.checkout.Checkout(c.Request.Context(), middleware.GetCartSessionID(c), middleware.GetRequestID(c))
	if err != nil {
		fail(builder, err)
		return
	}
	builder.SuccessOK(dto.CheckoutView{
		Cart:    cartView(out.Cart),
		Message: out.Message,
		URL:     out.URL,
	})
}

// IssueSession godoc
// @Summary      Start a cart session
// @Description  Issues a new anonymous cart session. Send the token back in the X-Cart-Session header.
// @Tags         Session
// @Produce      json
// @Success      201 {object} dto.SuccessResponse{data=dto.SessionView} "New session"
// @Failure      503 {object} dto.ErrorResponse "Session could not be issued"
// @Router       /api/session [post]
func (h *Handler) IssueSession(c *gin.Context) {
	builder := NewResponseBuilder(c)

	session, err := h.sessions.Issue()
	if err != nil {
		builder.Error(http.StatusServiceUnavailable, i18n.ErrKeySessionUnavailable, err)
		return
	}
	c.Header(middleware.CartSessionHeader, session.Token)
	builder.SuccessCreated(dto.SessionView{Token: session.Token, ExpiresAt: session.ExpiresAt})
}

func (h *Handler) lineOperation(c *gin.Context, op func(sessionID string, itemID int) (service.CartSnapshot, error)) {
	builder := NewResponseBuilder(c)

	id, ok := itemID(c)
	if !ok {
		builder.Error(http.StatusNotFound, i18n.ErrKeyItemNotFound, nil)
		return
	}
	snap, err := op(middleware.GetCartSessionID(c), id)
	h.respondCart(builder, snap, err)
}

func (h *Handler) respondCart(builder *ResponseBuilder, snap service.CartSnapshot, err error) {
	if err != nil {
		fail(builder, err)
		return
	}
	builder.SuccessOK(cartView(snap))
}

package http

import (
	"github.com/gin-gonic/gin"
	"github.com/guttosm/mary-storefront/internal/middleware"
)

// CartRoutes registers the session and cart endpoints.
type CartRoutes struct {
	handler *Handler
	limiter *middleware.RateLimiter
}

// NewCartRoutes creates the cart route group. limiter may be nil.
func NewCartRoutes(handler *Handler, limiter *middleware.RateLimiter) *CartRoutes {
	return &CartRoutes{handler: handler, limiter: limiter}
}

// RegisterRoutes registers /session and the /cart routes. Cart routes resolve the
// shopper's session first and are rate limited per session.
func (r *CartRoutes) RegisterRoutes(rg *gin.RouterGroup, _ *RouterConfig) {
	rg.POST("/session", r.handler.IssueSession)

	cart := rg.Group("/cart", middleware.CartSession(r.handler.sessions))
	if r.limiter != nil {
		cart.Use(r.limiter.SessionRateLimit())
	}

	cart.GET("", r.handler.GetCart)
	cart.DELETE("", r.handler.ClearCart)
	cart.POST("/items", r.handler.AddItem)
	cart.PATCH("/items/:id", r.handler.UpdateItem)
	cart.DELETE("/items/:id", r.handler.RemoveItem)
	cart.POST("/items/:id/increment", r.handler.IncrementItem)
	cart.POST("/items/:id/decrement", r.handler.DecrementItem)
	cart.POST("/checkout", r.handler.Checkout)
}

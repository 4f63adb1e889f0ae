package http

import (
	"github.com/gin-gonic/gin"
)

// CatalogRoutes registers the read-only catalog endpoints.
type CatalogRoutes struct {
	handler *Handler
}

// NewCatalogRoutes creates the catalog route group.
func NewCatalogRoutes(handler *Handler) *CatalogRoutes {
	return &CatalogRoutes{handler: handler}
}

// RegisterRoutes registers the catalog routes under /catalog.
func (r *CatalogRoutes) RegisterRoutes(rg *gin.RouterGroup, _ *RouterConfig) {
	catalog := rg.Group("/catalog")
	catalog.GET("", r.handler.GetCatalog)
	catalog.GET("/categories/:id/products", r.handler.ListCategoryProducts)
	catalog.GET("/products/:id", r.handler.GetProduct)
	catalog.POST("/products/:id/quote", r.handler.QuoteProduct)
}

package http

import (
	"github.com/gin-gonic/gin"
	"github.com/guttosm/mary-storefront/internal/domain/dto"
)

// GetCatalog godoc
// @Summary      Get catalog navigation
// @Description  Returns the categories in feed order and the category the storefront opens first
// @Tags         Catalog
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=dto.CatalogView} "Catalog categories"
// @Failure      503 {object} dto.ErrorResponse "Catalog not loaded"
// @Router       /api/catalog [get]
func (h *Handler) GetCatalog(c *gin.Context) {
	builder := NewResponseBuilder(c).Cache(cacheCatalog)

	overview, err := h.catalog.Overview()
	if err != nil {
		fail(builder, err)
		return
	}
	builder.SuccessOK(dto.CatalogView{
		Categories:      overview.Categories,
		DefaultCategory: overview.DefaultCategory,
	})
}

// ListCategoryProducts godoc
// @Summary      List products of a category
// @Description  Returns the category's products in feed order with their card rendering hints
// @Tags         Catalog
// @Produce      json
// @Param        id path string true "Category id"
// @Success      200 {object} dto.SuccessResponse{data=[]dto.ProductView} "Products"
// @Failure      404 {object} dto.ErrorResponse "Unknown category"
// @Failure      503 {object} dto.ErrorResponse "Catalog not loaded"
// @Router       /api/catalog/categories/{id}/products [get]
func (h *Handler) ListCategoryProducts(c *gin.Context) {
	builder := NewResponseBuilder(c).Cache(cacheCatalog)

	products, err := h.catalog.ProductsByCategory(c.Param("id"))
	if err != nil {
		fail(builder, err)
		return
	}
	builder.SuccessOK(dto.NewProductViews(products))
}

// GetProduct godoc
// @Summary      Get a product
// @Description  Returns one product with its weights and flavors
// @Tags         Catalog
// @Produce      json
// @Param        id path string true "Product id"
// @Success      200 {object} dto.SuccessResponse{data=dto.ProductView} "Product"
// @Failure      404 {object} dto.ErrorResponse "Unknown product"
// @Failure      503 {object} dto.ErrorResponse "Catalog not loaded"
// @Router       /api/catalog/products/{id} [get]
func (h *Handler) GetProduct(c *gin.Context) {
	builder := NewResponseBuilder(c).Cache(cacheCatalog)

	product, err := h.catalog.Product(c.Param("id"))
	if err != nil {
		fail(builder, err)
		return
	}
	builder.SuccessOK(dto.NewProductView(product))
}

// QuoteProduct godoc
// @Summary      Quote a selection
// @Description  Evaluates a proposed weight, flavor set and quantity without touching the cart. Incomplete selections are quoted too; the response says how many flavors are missing.
// @Tags         Catalog
// @Accept       json
// @Produce      json
// @Param        id path string true "Product id"
// @Param        request body dto.SelectionRequest true "Proposed selection"
// @Success      200 {object} dto.SuccessResponse{data=dto.QuoteView} "Evaluated selection"
// @Failure      400 {object} dto.ErrorResponse "Malformed request"
// @Failure      404 {object} dto.ErrorResponse "Unknown product"
// @Failure      422 {object} dto.ErrorResponse "Selection does not fit the product"
// @Failure      503 {object} dto.ErrorResponse "Catalog not loaded"
// @Router       /api/catalog/products/{id}/quote [post]
func (h *Handler) QuoteProduct(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.SelectionRequest](c)
	if err != nil {
		bindError(builder, err)
		return
	}

	quote, err := h.catalog.Quote(c.Param("id"), selectionInput(*req))
	if err != nil {
		fail(builder, err)
		return
	}
	builder.SuccessOK(quoteView(quote))
}

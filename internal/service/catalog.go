package service

import (
	"context"

	"github.com/guttosm/mary-storefront/internal/catalog"
	"github.com/guttosm/mary-storefront/internal/domain/model"
)

// CatalogOverview is what the storefront needs to render its navigation.
type CatalogOverview struct {
	Categories      []model.Category
	DefaultCategory string
}

// CatalogService answers catalog queries against the active feed.
type CatalogService interface {
	Overview() (CatalogOverview, error)
	ProductsByCategory(categoryID string) ([]model.Product, error)
	Product(productID string) (model.Product, error)
	Quote(productID string, in SelectionInput) (Quote, error)
	Reload(ctx context.Context) error
	Ready() bool
}

// CatalogServiceImpl implements CatalogService.
type CatalogServiceImpl struct {
	source *catalog.Source
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(source *catalog.Source) *CatalogServiceImpl {
	return &CatalogServiceImpl{source: source}
}

func (s *CatalogServiceImpl) current() (*catalog.Catalog, error) {
	c, err := s.source.Current()
	if err != nil {
		return nil, ErrCatalogUnavailable
	}
	return c, nil
}

// Overview returns the categories and the one to open first.
func (s *CatalogServiceImpl) Overview() (CatalogOverview, error) {
	c, err := s.current()
	if err != nil {
		return CatalogOverview{}, err
	}
	return CatalogOverview{
		Categories:      c.Categories(),
		DefaultCategory: c.DefaultCategory().ID,
	}, nil
}

// ProductsByCategory returns the category's products in feed order.
func (s *CatalogServiceImpl) ProductsByCategory(categoryID string) ([]model.Product, error) {
	c, err := s.current()
	if err != nil {
		return nil, err
	}
	if _, ok := c.Category(categoryID); !ok {
		return nil, ErrCategoryNotFound
	}
	return c.ProductsByCategory(categoryID), nil
}

// Product returns one product.
func (s *CatalogServiceImpl) Product(productID string) (model.Product, error) {
	c, err := s.current()
	if err != nil {
		return model.Product{}, err
	}
	p, ok := c.Product(productID)
	if !ok {
		return model.Product{}, ErrProductNotFound
	}
	return p, nil
}

// Quote evaluates a proposed selection without touching any cart.
func (s *CatalogServiceImpl) Quote(productID string, in SelectionInput) (Quote, error) {
	p, err := s.Product(productID)
	if err != nil {
		return Quote{}, err
	}
	b, err := applySelection(p, in)
	if err != nil {
		return Quote{}, err
	}
	return quoteFrom(b), nil
}

// Reload re-reads the feed.
func (s *CatalogServiceImpl) Reload(ctx context.Context) error {
	_, err := s.source.Reload(ctx)
	return err
}

// Ready reports whether a catalog is loaded.
func (s *CatalogServiceImpl) Ready() bool {
	return s.source.Loaded()
}

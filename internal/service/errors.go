// Package service contains the business logic of the storefront: catalog queries,
// selection quotes, per-session carts, sessions and checkout.
package service

import "errors"

var (
	// ErrCatalogUnavailable is returned while no catalog could be loaded.
	ErrCatalogUnavailable = errors.New("catalog unavailable")
	// ErrCategoryNotFound is returned for unknown category ids.
	ErrCategoryNotFound = errors.New("category not found")
	// ErrProductNotFound is returned for unknown product ids.
	ErrProductNotFound = errors.New("product not found")
	// ErrProductUnavailable is returned for products without weights or flavors.
	ErrProductUnavailable = errors.New("product cannot be ordered")
	// ErrUnknownWeight is returned when a weight id does not belong to the product.
	ErrUnknownWeight = errors.New("unknown weight")
	// ErrUnknownFlavor is returned when a flavor id does not belong to the product.
	ErrUnknownFlavor = errors.New("unknown flavor")
	// ErrTooManyFlavors is returned when more flavors are sent than the product takes.
	ErrTooManyFlavors = errors.New("too many flavors")
	// ErrIncompleteSelection is returned when adding a selection that is not complete.
	ErrIncompleteSelection = errors.New("selection is incomplete")
	// ErrItemNotFound is returned for unknown cart line ids.
	ErrItemNotFound = errors.New("cart item not found")
	// ErrInvalidQuantity is returned for quantities below one.
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	// ErrEmptyCart is returned when checking out an empty cart.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrInvalidSession is returned for missing, malformed or expired session tokens.
	ErrInvalidSession = errors.New("invalid cart session")
	// ErrRepositoryNotConfigured is returned when an optional repository is not configured.
	ErrRepositoryNotConfigured = errors.New("repository not configured")
)

package i18n

// Error message translation keys.
const (
	// ErrKeyInvalidRequest indicates an invalid request.
	ErrKeyInvalidRequest = "error.invalid_request"
	// ErrKeyInvalidRequestBody indicates an invalid request body.
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	// ErrKeyInternalError indicates an internal server error.
	ErrKeyInternalError = "error.internal_error"
	// ErrKeyNotFound indicates a resource was not found.
	ErrKeyNotFound = "error.not_found"
	// ErrKeyRateLimitExceeded indicates rate limit exceeded.
	ErrKeyRateLimitExceeded = "error.rate_limit_exceeded"
	// ErrKeyConflict indicates a conflict with current state.
	ErrKeyConflict = "error.conflict"
	// ErrKeyTimeout indicates a request timeout.
	ErrKeyTimeout = "error.timeout"
	// ErrKeyCatalogUnavailable indicates no catalog is loaded.
	ErrKeyCatalogUnavailable = "error.catalog_unavailable"
	// ErrKeyCategoryNotFound indicates an unknown category.
	ErrKeyCategoryNotFound = "error.category_not_found"
	// ErrKeyProductNotFound indicates an unknown product.
	ErrKeyProductNotFound = "error.product_not_found"
	// ErrKeyProductUnavailable indicates a product that cannot be ordered.
	ErrKeyProductUnavailable = "error.product_unavailable"
	// ErrKeyUnknownWeight indicates a weight the product does not offer.
	ErrKeyUnknownWeight = "error.unknown_weight"
	// ErrKeyUnknownFlavor indicates a flavor the product does not offer.
	ErrKeyUnknownFlavor = "error.unknown_flavor"
	// ErrKeyTooManyFlavors indicates more flavors than the product takes.
	ErrKeyTooManyFlavors = "error.too_many_flavors"
	// ErrKeyIncompleteSelection indicates a selection missing weight or flavors.
	ErrKeyIncompleteSelection = "error.incomplete_selection"
	// ErrKeyItemNotFound indicates an unknown cart line.
	ErrKeyItemNotFound = "error.item_not_found"
	// ErrKeyInvalidQuantity indicates a quantity below one.
	ErrKeyInvalidQuantity = "error.invalid_quantity"
	// ErrKeyEmptyCart indicates checkout of an empty cart.
	ErrKeyEmptyCart = "error.empty_cart"
	// ErrKeySessionUnavailable indicates a cart session could not be issued.
	ErrKeySessionUnavailable = "error.session_unavailable"
)

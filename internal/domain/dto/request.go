// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs are used to decouple the HTTP layer from the domain model,
// providing validation and serialization for API communication.
package dto

import "strings"

// MaxFlavorIDs bounds the flavor list a request may carry.
const MaxFlavorIDs = 20

// SelectionRequest is a proposed configuration of a product.
//
// WeightID is optional and defaults to the first tier. FlavorIDs are applied in
// order. Quantity is optional; zero keeps the default of one.
//
// @Description Proposed product configuration
type SelectionRequest struct {
	WeightID  string   `json:"weightId" example:"500g"`
	FlavorIDs []string `json:"flavorIds" example:"ninho,maracuja,pistache"`
	Quantity  int      `json:"quantity" example:"1" minimum:"0" maximum:"99"`
} // @name SelectionRequest

// AddItemRequest represents the JSON request body for adding a selection to the cart.
//
// @Description Request to add a product configuration to the cart
type AddItemRequest struct {
	ProductID string `json:"productId" binding:"required" example:"ovo-trio"`
	SelectionRequest
} // @name AddItemRequest

// UpdateQuantityRequest represents the JSON request body for setting a line's quantity.
//
// @Description Request to set the quantity of a cart line
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity" binding:"required" example:"2" minimum:"1"`
} // @name UpdateQuantityRequest

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

var (
	// ErrInvalidQuantity is returned when quantity is out of range.
	ErrInvalidQuantity = &ValidationError{
		Field:   "quantity",
		Message: "must be a positive integer",
	}
	// ErrProductIDRequired is returned when productId is blank.
	ErrProductIDRequired = &ValidationError{
		Field:   "productId",
		Message: "is required",
	}
	// ErrTooManyFlavorIDs is returned when flavorIds is unreasonably long.
	ErrTooManyFlavorIDs = &ValidationError{
		Field:   "flavorIds",
		Message: "too many values",
	}
)

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// Validate performs custom validation on the request.
func (r *SelectionRequest) Validate() error {
	if r.Quantity < 0 {
		return ErrInvalidQuantity
	}
	if len(r.FlavorIDs) > MaxFlavorIDs {
		return ErrTooManyFlavorIDs
	}
	return nil
}

// Validate performs custom validation on the request.
func (r *AddItemRequest) Validate() error {
	if strings.TrimSpace(r.ProductID) == "" {
		return ErrProductIDRequired
	}
	return r.SelectionRequest.Validate()
}

// Validate performs custom validation on the request.
func (r *UpdateQuantityRequest) Validate() error {
	if r.Quantity < 1 {
		return ErrInvalidQuantity
	}
	return nil
}

package service

import "errors"

// Sentinel errors for the two failure classes the core distinguishes:
// a referenced record that does not exist, and an argument that fails
// validation. Handlers map these to HTTP statuses with errors.Is.
var (
	ErrOrderNotFound    = errors.New("order not found")
	ErrLineItemNotFound = errors.New("line item not found")
	ErrProductNotFound  = errors.New("product not found")

	ErrInvalidQuantity = errors.New("quantity must be greater than zero")
	ErrInvalidPrice    = errors.New("discount price must not be negative")
)

package domain

import "errors"

var (
	// ErrProductNotFound is returned by a ProductRepository when the id does not resolve.
	ErrProductNotFound = errors.New("product not found")

	// ErrInvalidRequest marks caller errors in an order request.
	ErrInvalidRequest = errors.New("invalid order request")
)

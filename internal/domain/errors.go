package domain

import "errors"

var (
	// ErrProductNotFound signals a missing catalog product.
	ErrProductNotFound = errors.New("product not found")
	// ErrOrderNotFound signals a missing order.
	ErrOrderNotFound = errors.New("order not found")
	// ErrValidation signals an invalid domain object or request.
	ErrValidation = errors.New("validation failed")
	// ErrOutOfStock signals insufficient stock for an order line.
	ErrOutOfStock = errors.New("out of stock")
	// ErrInvalidStatus signals an unknown order status value.
	ErrInvalidStatus = errors.New("invalid order status")
)

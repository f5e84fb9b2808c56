package order

import "errors"

var (
	ErrEmptyCart    = errors.New("cart is empty")
	ErrInvalidOrder = errors.New("invalid order payload")
)

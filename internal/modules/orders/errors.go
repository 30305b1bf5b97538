package orders

import "errors"

var (
	ErrCartEmpty         = errors.New("cart is empty")
	ErrCurrencyMismatch  = errors.New("currency mismatch in cart")
	ErrUnknownStatus     = errors.New("unknown order status")
	ErrInvalidTransition = errors.New("invalid order status transition")
)

package payment

import "errors"

var (
	ErrBookingNotFound = errors.New("booking not found")
	ErrExceedsTotal    = errors.New("payment would exceed booking total price")
)

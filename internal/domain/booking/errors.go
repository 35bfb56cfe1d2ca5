package booking

import "errors"

var (
	ErrBookingNotFound  = errors.New("booking not found")
	ErrClientNotFound   = errors.New("client not found")
	ErrInvalidDate      = errors.New("invalid date provided")
	ErrNegativeAmount   = errors.New("price and paid amount must not be negative")
	ErrPaidExceedsTotal = errors.New("paid amount exceeds total price")
	ErrSlotTaken        = errors.New("date and time slot already booked")
)

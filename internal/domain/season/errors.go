package season

import "errors"

var (
	ErrSeasonNotFound  = errors.New("pricing season not found")
	ErrInvalidDate     = errors.New("invalid date provided")
	ErrInvalidRange    = errors.New("end date is before start date")
	ErrNegativePrice   = errors.New("prices must not be negative")
	ErrNoSeasonForDate = errors.New("no active season covers this date")
)

package season

import (
	"time"

	"github.com/google/uuid"
)

// Season represents a pricing season: a date range with its own
// morning and evening prices, used to quote booking totals.
type Season struct {
	ID           uuid.UUID `db:"id"`
	Name         string    `db:"name"`
	StartDate    time.Time `db:"start_date"`
	EndDate      time.Time `db:"end_date"`
	MorningPrice float64   `db:"morning_price"`
	EveningPrice float64   `db:"evening_price"`
	IsActive     bool      `db:"is_active"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

// Covers reports whether the season's date range includes d
func (s *Season) Covers(d time.Time) bool {
	day := d.Truncate(24 * time.Hour)
	return !day.Before(s.StartDate.Truncate(24*time.Hour)) && !day.After(s.EndDate.Truncate(24*time.Hour))
}

// PriceFor returns the price for a time slot ("MORNING" or "EVENING")
func (s *Season) PriceFor(slot string) float64 {
	if slot == "MORNING" {
		return s.MorningPrice
	}
	return s.EveningPrice
}

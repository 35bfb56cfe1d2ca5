package season

import (
	"time"

	"github.com/google/uuid"
)

// CreateSeasonRequest for POST /pricing-seasons
type CreateSeasonRequest struct {
	Name         string  `json:"name" validate:"required,min=2,max=255"`
	StartDate    string  `json:"start_date" validate:"required"`
	EndDate      string  `json:"end_date" validate:"required"`
	MorningPrice float64 `json:"morning_price" validate:"gte=0"`
	EveningPrice float64 `json:"evening_price" validate:"gte=0"`
	IsActive     bool    `json:"is_active"`
}

// UpdateSeasonRequest for PUT /pricing-seasons/{id}; nil means untouched
type UpdateSeasonRequest struct {
	Name         *string  `json:"name,omitempty" validate:"omitempty,min=2,max=255"`
	StartDate    *string  `json:"start_date,omitempty"`
	EndDate      *string  `json:"end_date,omitempty"`
	MorningPrice *float64 `json:"morning_price,omitempty" validate:"omitempty,gte=0"`
	EveningPrice *float64 `json:"evening_price,omitempty" validate:"omitempty,gte=0"`
	IsActive     *bool    `json:"is_active,omitempty"`
}

// SeasonResponse for API responses
type SeasonResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	StartDate    string    `json:"start_date"`
	EndDate      string    `json:"end_date"`
	MorningPrice float64   `json:"morning_price"`
	EveningPrice float64   `json:"evening_price"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    string    `json:"created_at"`
}

// ToResponse converts entity to response
func ToResponse(s *Season) *SeasonResponse {
	return &SeasonResponse{
		ID:           s.ID,
		Name:         s.Name,
		StartDate:    s.StartDate.Format("2006-01-02"),
		EndDate:      s.EndDate.Format("2006-01-02"),
		MorningPrice: s.MorningPrice,
		EveningPrice: s.EveningPrice,
		IsActive:     s.IsActive,
		CreatedAt:    s.CreatedAt.Format(time.RFC3339),
	}
}

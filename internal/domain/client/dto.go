package client

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// CreateClientRequest for POST /clients
type CreateClientRequest struct {
	FullName    string `json:"full_name" validate:"required,min=2,max=255"`
	Email       string `json:"email,omitempty" validate:"omitempty,email"`
	PhoneNumber string `json:"phone_number" validate:"required,min=5,max=30"`
	GuestCount  int    `json:"guest_count,omitempty" validate:"omitempty,gte=0"`
	Notes       string `json:"notes,omitempty"`
}

// ClientResponse for API responses
type ClientResponse struct {
	ID          uuid.UUID        `json:"id"`
	FullName    string           `json:"full_name"`
	Email       string           `json:"email,omitempty"`
	PhoneNumber string           `json:"phone_number"`
	GuestCount  int              `json:"guest_count"`
	Notes       string           `json:"notes,omitempty"`
	CreatedAt   string           `json:"created_at"`
	Bookings    []BookingSummary `json:"bookings,omitempty"`
	Payments    []PaymentSummary `json:"payments,omitempty"`
}

// ClientDetailResponse adds financial aggregates for the client page
type ClientDetailResponse struct {
	ClientResponse
	TotalPrice float64 `json:"total_price"`
	TotalPaid  float64 `json:"total_paid"`
	Balance    float64 `json:"balance"`
}

// ToResponse converts entity to response
func ToResponse(c *Client) *ClientResponse {
	resp := &ClientResponse{
		ID:          c.ID,
		FullName:    c.FullName,
		PhoneNumber: c.PhoneNumber,
		GuestCount:  c.GuestCount,
		CreatedAt:   c.CreatedAt.Format(time.RFC3339),
	}
	if c.Email.Valid {
		resp.Email = c.Email.String
	}
	if c.Notes.Valid {
		resp.Notes = c.Notes.String
	}
	return resp
}

// NullString builds sql.NullString from an optional field
func NullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

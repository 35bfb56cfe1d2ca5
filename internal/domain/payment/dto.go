package payment

import (
	"time"

	"github.com/google/uuid"
)

// CreatePaymentRequest for POST /payments
type CreatePaymentRequest struct {
	BookingID string  `json:"booking_id" validate:"required,uuid"`
	Amount    float64 `json:"amount" validate:"required,gt=0"`
	Method    string  `json:"method" validate:"required,payment_method"`
	Type      string  `json:"type" validate:"required,payment_type"`
	Notes     string  `json:"notes,omitempty"`
}

// PaymentResponse for API responses
type PaymentResponse struct {
	ID        uuid.UUID `json:"id"`
	BookingID uuid.UUID `json:"booking_id"`
	StaffID   uuid.UUID `json:"staff_id"`
	Amount    float64   `json:"amount"`
	Method    string    `json:"method"`
	Type      string    `json:"type"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt string    `json:"created_at"`

	// Joined context, present in listings
	BookingTitle string `json:"booking_title,omitempty"`
	BookingDate  string `json:"booking_date,omitempty"`
	ClientName   string `json:"client_name,omitempty"`
	Staff        string `json:"staff,omitempty"`
}

// ToResponse converts entity to response
func ToResponse(p *Payment) *PaymentResponse {
	resp := &PaymentResponse{
		ID:        p.ID,
		BookingID: p.BookingID,
		StaffID:   p.StaffID,
		Amount:    p.Amount,
		Method:    string(p.Method),
		Type:      string(p.Type),
		CreatedAt: p.CreatedAt.Format(time.RFC3339),
	}
	if p.Notes.Valid {
		resp.Notes = p.Notes.String
	}
	return resp
}

// DetailToResponse converts a joined payment row to response
func DetailToResponse(d *Detail) *PaymentResponse {
	resp := ToResponse(&d.Payment)
	resp.BookingDate = d.BookingDate.Format(time.RFC3339)
	resp.ClientName = d.ClientFullName
	resp.Staff = d.StaffUsername
	if d.BookingTitle.Valid {
		resp.BookingTitle = d.BookingTitle.String
	}
	return resp
}

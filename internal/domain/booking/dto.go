package booking

import (
	"time"

	"github.com/google/uuid"
)

// CreateBookingRequest for POST /bookings
type CreateBookingRequest struct {
	ClientID   string  `json:"client_id" validate:"required,uuid"`
	Title      string  `json:"title,omitempty" validate:"omitempty,max=255"`
	Date       string  `json:"date" validate:"required"`
	TimeSlot   string  `json:"time_slot" validate:"required,time_slot"`
	Status     string  `json:"status,omitempty" validate:"booking_status"`
	TotalPrice float64 `json:"total_price,omitempty" validate:"omitempty,gte=0"`
	PaidAmount float64 `json:"paid_amount,omitempty" validate:"omitempty,gte=0"`
	Notes      string  `json:"notes,omitempty"`
}

// UpdateBookingRequest for PUT /bookings/{id} and PATCH /bookings.
// Any subset of fields may change; nil means untouched.
type UpdateBookingRequest struct {
	ClientID   *string  `json:"client_id,omitempty" validate:"omitempty,uuid"`
	Title      *string  `json:"title,omitempty" validate:"omitempty,max=255"`
	Date       *string  `json:"date,omitempty"`
	TimeSlot   *string  `json:"time_slot,omitempty" validate:"omitempty,time_slot"`
	Status     *string  `json:"status,omitempty" validate:"omitempty,booking_status"`
	TotalPrice *float64 `json:"total_price,omitempty" validate:"omitempty,gte=0"`
	PaidAmount *float64 `json:"paid_amount,omitempty" validate:"omitempty,gte=0"`
	Notes      *string  `json:"notes,omitempty"`
}

// PatchBookingRequest is the legacy collection-level update, id in body
type PatchBookingRequest struct {
	ID string `json:"id" validate:"required,uuid"`
	UpdateBookingRequest
}

// ClientInfo is the embedded client in booking responses
type ClientInfo struct {
	ID          uuid.UUID `json:"id"`
	FullName    string    `json:"full_name"`
	Email       string    `json:"email,omitempty"`
	PhoneNumber string    `json:"phone_number"`
}

// BookingResponse for API responses
type BookingResponse struct {
	ID         uuid.UUID     `json:"id"`
	Title      string        `json:"title,omitempty"`
	ClientID   uuid.UUID     `json:"client_id"`
	UserID     uuid.UUID     `json:"user_id"`
	Date       string        `json:"date"`
	TimeSlot   string        `json:"time_slot"`
	Status     string        `json:"status"`
	TotalPrice float64       `json:"total_price"`
	PaidAmount float64       `json:"paid_amount"`
	Notes      string        `json:"notes,omitempty"`
	CreatedAt  string        `json:"created_at"`
	Client     *ClientInfo   `json:"client,omitempty"`
	Staff      string        `json:"staff,omitempty"`
	Payments   []PaymentInfo `json:"payments,omitempty"`
}

// ToResponse converts entity to response
func ToResponse(b *Booking) *BookingResponse {
	resp := &BookingResponse{
		ID:         b.ID,
		ClientID:   b.ClientID,
		UserID:     b.UserID,
		Date:       b.Date.Format(time.RFC3339),
		TimeSlot:   string(b.TimeSlot),
		Status:     string(b.Status),
		TotalPrice: b.TotalPrice,
		PaidAmount: b.PaidAmount,
		CreatedAt:  b.CreatedAt.Format(time.RFC3339),
	}
	if b.Title.Valid {
		resp.Title = b.Title.String
	}
	if b.Notes.Valid {
		resp.Notes = b.Notes.String
	}
	return resp
}

// DetailToResponse converts a joined booking row to response
func DetailToResponse(d *Detail) *BookingResponse {
	resp := ToResponse(&d.Booking)
	resp.Staff = d.StaffUsername
	resp.Client = &ClientInfo{
		ID:          d.ClientID,
		FullName:    d.ClientFullName,
		PhoneNumber: d.ClientPhone,
	}
	if d.ClientEmail.Valid {
		resp.Client.Email = d.ClientEmail.String
	}
	return resp
}

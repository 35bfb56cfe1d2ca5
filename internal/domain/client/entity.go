package client

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Client represents a venue client (the couple or family booking the hall)
type Client struct {
	ID          uuid.UUID      `db:"id"`
	FullName    string         `db:"full_name"`
	Email       sql.NullString `db:"email"`
	PhoneNumber string         `db:"phone_number"`
	GuestCount  int            `db:"guest_count"`
	Notes       sql.NullString `db:"notes"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

// BookingSummary is a client's booking as embedded in client listings
type BookingSummary struct {
	ID         uuid.UUID `db:"id" json:"id"`
	Title      string    `db:"title" json:"title"`
	Date       time.Time `db:"date" json:"date"`
	TimeSlot   string    `db:"time_slot" json:"time_slot"`
	Status     string    `db:"status" json:"status"`
	TotalPrice float64   `db:"total_price" json:"total_price"`
	PaidAmount float64   `db:"paid_amount" json:"paid_amount"`
}

// PaymentSummary is a payment against one of the client's bookings
type PaymentSummary struct {
	ID        uuid.UUID `db:"id" json:"id"`
	BookingID uuid.UUID `db:"booking_id" json:"booking_id"`
	Amount    float64   `db:"amount" json:"amount"`
	Method    string    `db:"method" json:"method"`
	Type      string    `db:"type" json:"type"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

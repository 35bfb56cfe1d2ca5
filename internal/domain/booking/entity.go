package booking

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Status represents booking lifecycle status
type Status string

const (
	StatusInquiry     Status = "INQUIRY"
	StatusReserved    Status = "RESERVED"
	StatusDepositPaid Status = "DEPOSIT_PAID"
	StatusConfirmed   Status = "CONFIRMED"
	StatusFullyPaid   Status = "FULLY_PAID"
	StatusCancelled   Status = "CANCELLED"
)

// TimeSlot represents one of the two bookable periods per day
type TimeSlot string

const (
	SlotMorning TimeSlot = "MORNING"
	SlotEvening TimeSlot = "EVENING"
)

// Booking represents a reservation of the venue for one client on one date and slot
type Booking struct {
	ID         uuid.UUID      `db:"id"`
	Title      sql.NullString `db:"title"`
	ClientID   uuid.UUID      `db:"client_id"`
	UserID     uuid.UUID      `db:"user_id"`
	Date       time.Time      `db:"date"`
	TimeSlot   TimeSlot       `db:"time_slot"`
	Status     Status         `db:"status"`
	TotalPrice float64        `db:"total_price"`
	PaidAmount float64        `db:"paid_amount"`
	Notes      sql.NullString `db:"notes"`
	CreatedAt  time.Time      `db:"created_at"`
	UpdatedAt  time.Time      `db:"updated_at"`
}

// IsCancelled returns true if the booking is cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// Detail is a booking joined with its client and creating staff user
type Detail struct {
	Booking
	ClientFullName string         `db:"client_full_name"`
	ClientEmail    sql.NullString `db:"client_email"`
	ClientPhone    string         `db:"client_phone"`
	StaffUsername  string         `db:"staff_username"`
}

// PaymentInfo is a payment row as embedded in booking listings and the CSV export
type PaymentInfo struct {
	ID        uuid.UUID `db:"id" json:"id"`
	BookingID uuid.UUID `db:"booking_id" json:"booking_id"`
	Amount    float64   `db:"amount" json:"amount"`
	Method    string    `db:"method" json:"method"`
	Type      string    `db:"type" json:"type"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

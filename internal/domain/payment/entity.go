package payment

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Method represents how the money was received
type Method string

const (
	MethodCash         Method = "CASH"
	MethodCard         Method = "CARD"
	MethodBankTransfer Method = "BANK_TRANSFER"
	MethodCheck        Method = "CHECK"
)

// Type represents what the payment covers
type Type string

const (
	TypeDeposit Type = "DEPOSIT"
	TypePartial Type = "PARTIAL"
	TypeFull    Type = "FULL"
)

// Payment represents a single recorded transfer of funds against a booking.
// Rows are append-only.
type Payment struct {
	ID        uuid.UUID      `db:"id"`
	BookingID uuid.UUID      `db:"booking_id"`
	StaffID   uuid.UUID      `db:"staff_id"`
	Amount    float64        `db:"amount"`
	Method    Method         `db:"method"`
	Type      Type           `db:"type"`
	Notes     sql.NullString `db:"notes"`
	CreatedAt time.Time      `db:"created_at"`
}

// Detail is a payment joined with its booking, the booking's client and the recording staff
type Detail struct {
	Payment
	BookingTitle   sql.NullString `db:"booking_title"`
	BookingDate    time.Time      `db:"booking_date"`
	ClientID       uuid.UUID      `db:"client_id"`
	ClientFullName string         `db:"client_full_name"`
	StaffUsername  string         `db:"staff_username"`
}

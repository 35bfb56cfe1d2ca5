package dashboard

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// upcomingLimit caps the upcoming events feed
const upcomingLimit = 5

// recentPaymentsLimit caps the recent payments feed
const recentPaymentsLimit = 5

// Stats represents venue-wide dashboard statistics
type Stats struct {
	BookingsCount int     `json:"bookings_count"`
	ClientsCount  int     `json:"clients_count"`
	TotalRevenue  float64 `json:"total_revenue"`
	TotalPaid     float64 `json:"total_paid"`
	Balance       float64 `json:"balance"`
}

// EventRow is a booking as shown on the schedule feeds
type EventRow struct {
	ID         uuid.UUID `db:"id" json:"id"`
	Title      string    `db:"title" json:"title,omitempty"`
	Date       time.Time `db:"date" json:"date"`
	TimeSlot   string    `db:"time_slot" json:"time_slot"`
	Status     string    `db:"status" json:"status"`
	TotalPrice float64   `db:"total_price" json:"total_price"`
	PaidAmount float64   `db:"paid_amount" json:"paid_amount"`
	ClientName string    `db:"client_name" json:"client_name"`
}

// PaymentRow is a payment as shown on the recent payments feed
type PaymentRow struct {
	ID         uuid.UUID `db:"id" json:"id"`
	Amount     float64   `db:"amount" json:"amount"`
	Method     string    `db:"method" json:"method"`
	Type       string    `db:"type" json:"type"`
	ClientName string    `db:"client_name" json:"client_name"`
	Staff      string    `db:"staff" json:"staff"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}

// Repository handles dashboard data aggregation
type Repository struct {
	db *sqlx.DB
}

// NewRepository creates dashboard repository
func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

// GetStats returns venue-wide totals. Cancelled bookings are excluded
// from the revenue and paid sums, matching the client page figures.
func (r *Repository) GetStats(ctx context.Context) (*Stats, error) {
	stats := &Stats{}

	if err := r.db.GetContext(ctx, &stats.BookingsCount,
		`SELECT COUNT(*) FROM bookings`); err != nil {
		return nil, err
	}

	if err := r.db.GetContext(ctx, &stats.ClientsCount,
		`SELECT COUNT(*) FROM clients`); err != nil {
		return nil, err
	}

	var totals struct {
		Revenue sql.NullFloat64 `db:"revenue"`
		Paid    sql.NullFloat64 `db:"paid"`
	}
	err := r.db.GetContext(ctx, &totals, `
		SELECT SUM(total_price) AS revenue, SUM(paid_amount) AS paid
		FROM bookings
		WHERE status != 'CANCELLED'
	`)
	if err != nil {
		return nil, err
	}
	stats.TotalRevenue = totals.Revenue.Float64
	stats.TotalPaid = totals.Paid.Float64
	stats.Balance = stats.TotalRevenue - stats.TotalPaid

	return stats, nil
}

// TodaySchedule returns bookings whose date falls on the given day
func (r *Repository) TodaySchedule(ctx context.Context, now time.Time) ([]EventRow, error) {
	query := `
		SELECT b.id, COALESCE(b.title, '') AS title, b.date, b.time_slot, b.status,
		       b.total_price, b.paid_amount, c.full_name AS client_name
		FROM bookings b
		JOIN clients c ON b.client_id = c.id
		WHERE date_trunc('day', b.date) = date_trunc('day', $1::timestamptz)
		ORDER BY b.time_slot ASC
	`
	var events []EventRow
	err := r.db.SelectContext(ctx, &events, query, now)
	return events, err
}

// UpcomingEvents returns the next bookings after now, earliest first
func (r *Repository) UpcomingEvents(ctx context.Context, now time.Time) ([]EventRow, error) {
	query := `
		SELECT b.id, COALESCE(b.title, '') AS title, b.date, b.time_slot, b.status,
		       b.total_price, b.paid_amount, c.full_name AS client_name
		FROM bookings b
		JOIN clients c ON b.client_id = c.id
		WHERE b.date > $1
		ORDER BY b.date ASC
		LIMIT $2
	`
	var events []EventRow
	err := r.db.SelectContext(ctx, &events, query, now, upcomingLimit)
	return events, err
}

// RecentPayments returns the latest recorded payments, newest first
func (r *Repository) RecentPayments(ctx context.Context) ([]PaymentRow, error) {
	query := `
		SELECT p.id, p.amount, p.method, p.type, p.created_at,
		       c.full_name AS client_name, u.username AS staff
		FROM payments p
		JOIN bookings b ON p.booking_id = b.id
		JOIN clients c ON b.client_id = c.id
		JOIN users u ON p.staff_id = u.id
		ORDER BY p.created_at DESC
		LIMIT $1
	`
	var payments []PaymentRow
	err := r.db.SelectContext(ctx, &payments, query, recentPaymentsLimit)
	return payments, err
}

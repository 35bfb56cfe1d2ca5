package payment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Repository defines payment data access
type Repository interface {
	// Record inserts the payment and increments the parent booking's
	// paid_amount in a single transaction.
	Record(ctx context.Context, p *Payment) error
	GetByID(ctx context.Context, id uuid.UUID) (*Payment, error)
	List(ctx context.Context) ([]*Detail, error)
	ListRecent(ctx context.Context, limit int) ([]*Detail, error)
}

type repository struct {
	db *sqlx.DB
}

// NewRepository creates payment repository
func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

// Record writes the payment and the booking aggregate atomically. The booking
// row is locked so concurrent submissions cannot produce a lost update.
func (r *repository) Record(ctx context.Context, p *Payment) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var totals struct {
		TotalPrice float64 `db:"total_price"`
		PaidAmount float64 `db:"paid_amount"`
	}
	err = tx.GetContext(ctx, &totals,
		`SELECT total_price, paid_amount FROM bookings WHERE id = $1 FOR UPDATE`, p.BookingID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrBookingNotFound
		}
		return fmt.Errorf("payment repository lock booking: %w", err)
	}

	if totals.PaidAmount+p.Amount > totals.TotalPrice {
		return ErrExceedsTotal
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO payments (id, booking_id, staff_id, amount, method, type, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`,
		p.ID,
		p.BookingID,
		p.StaffID,
		p.Amount,
		p.Method,
		p.Type,
		p.Notes,
		p.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("payment repository insert: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE bookings SET paid_amount = paid_amount + $2, updated_at = NOW() WHERE id = $1
	`, p.BookingID, p.Amount)
	if err != nil {
		return fmt.Errorf("payment repository update booking aggregate: %w", err)
	}

	return tx.Commit()
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Payment, error) {
	query := `
		SELECT id, booking_id, staff_id, amount, method, type, notes, created_at
		FROM payments WHERE id = $1
	`
	var p Payment
	err := r.db.GetContext(ctx, &p, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

// List returns all payments joined with booking, client and staff, newest first
func (r *repository) List(ctx context.Context) ([]*Detail, error) {
	return r.list(ctx, 0)
}

// ListRecent returns the latest payments, newest first
func (r *repository) ListRecent(ctx context.Context, limit int) ([]*Detail, error) {
	return r.list(ctx, limit)
}

func (r *repository) list(ctx context.Context, limit int) ([]*Detail, error) {
	query := `
		SELECT p.id, p.booking_id, p.staff_id, p.amount, p.method, p.type, p.notes, p.created_at,
		       b.title AS booking_title, b.date AS booking_date,
		       c.id AS client_id, c.full_name AS client_full_name,
		       u.username AS staff_username
		FROM payments p
		JOIN bookings b ON p.booking_id = b.id
		JOIN clients c ON b.client_id = c.id
		JOIN users u ON p.staff_id = u.id
		ORDER BY p.created_at DESC
	`
	args := []interface{}{}
	if limit > 0 {
		query += " LIMIT $1"
		args = append(args, limit)
	}

	var payments []*Detail
	err := r.db.SelectContext(ctx, &payments, query, args...)
	return payments, err
}

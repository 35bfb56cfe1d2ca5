package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// ListFilter narrows booking listings
type ListFilter struct {
	Status *Status
	From   *time.Time
	To     *time.Time
}

// Repository defines booking data access
type Repository interface {
	Create(ctx context.Context, b *Booking) error
	GetByID(ctx context.Context, id uuid.UUID) (*Booking, error)
	GetDetailByID(ctx context.Context, id uuid.UUID) (*Detail, error)
	List(ctx context.Context, f ListFilter) ([]*Detail, error)
	ListPayments(ctx context.Context, bookingIDs []uuid.UUID) (map[uuid.UUID][]PaymentInfo, error)
	Update(ctx context.Context, b *Booking) error
	Delete(ctx context.Context, id uuid.UUID) error
	ExistsForSlot(ctx context.Context, date time.Time, slot TimeSlot, exclude uuid.UUID) (bool, error)
}

type repository struct {
	db *sqlx.DB
}

// NewRepository creates booking repository
func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, b *Booking) error {
	query := `
		INSERT INTO bookings (id, title, client_id, user_id, date, time_slot, status, total_price, paid_amount, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err := r.db.ExecContext(ctx, query,
		b.ID,
		b.Title,
		b.ClientID,
		b.UserID,
		b.Date,
		b.TimeSlot,
		b.Status,
		b.TotalPrice,
		b.PaidAmount,
		b.Notes,
		b.CreatedAt,
		b.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("booking repository create: %w", err)
	}
	return nil
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Booking, error) {
	query := `
		SELECT id, title, client_id, user_id, date, time_slot, status, total_price, paid_amount, notes, created_at, updated_at
		FROM bookings WHERE id = $1
	`
	var b Booking
	err := r.db.GetContext(ctx, &b, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &b, nil
}

func (r *repository) GetDetailByID(ctx context.Context, id uuid.UUID) (*Detail, error) {
	query := `
		SELECT b.id, b.title, b.client_id, b.user_id, b.date, b.time_slot, b.status,
		       b.total_price, b.paid_amount, b.notes, b.created_at, b.updated_at,
		       c.full_name AS client_full_name, c.email AS client_email, c.phone_number AS client_phone,
		       u.username AS staff_username
		FROM bookings b
		JOIN clients c ON b.client_id = c.id
		JOIN users u ON b.user_id = u.id
		WHERE b.id = $1
	`
	var d Detail
	err := r.db.GetContext(ctx, &d, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &d, nil
}

// List returns bookings joined with client and staff, earliest date first
func (r *repository) List(ctx context.Context, f ListFilter) ([]*Detail, error) {
	query := `
		SELECT b.id, b.title, b.client_id, b.user_id, b.date, b.time_slot, b.status,
		       b.total_price, b.paid_amount, b.notes, b.created_at, b.updated_at,
		       c.full_name AS client_full_name, c.email AS client_email, c.phone_number AS client_phone,
		       u.username AS staff_username
		FROM bookings b
		JOIN clients c ON b.client_id = c.id
		JOIN users u ON b.user_id = u.id
		WHERE 1=1
	`
	args := []interface{}{}
	n := 1
	if f.Status != nil {
		query += fmt.Sprintf(" AND b.status = $%d", n)
		args = append(args, *f.Status)
		n++
	}
	if f.From != nil {
		query += fmt.Sprintf(" AND b.date >= $%d", n)
		args = append(args, *f.From)
		n++
	}
	if f.To != nil {
		query += fmt.Sprintf(" AND b.date <= $%d", n)
		args = append(args, *f.To)
		n++
	}
	query += " ORDER BY b.date ASC"

	var bookings []*Detail
	err := r.db.SelectContext(ctx, &bookings, query, args...)
	return bookings, err
}

// ListPayments returns payments grouped by booking for the given booking IDs
func (r *repository) ListPayments(ctx context.Context, bookingIDs []uuid.UUID) (map[uuid.UUID][]PaymentInfo, error) {
	result := make(map[uuid.UUID][]PaymentInfo)
	if len(bookingIDs) == 0 {
		return result, nil
	}

	query, args, err := sqlx.In(`
		SELECT id, booking_id, amount, method, type, created_at
		FROM payments
		WHERE booking_id IN (?)
		ORDER BY created_at ASC
	`, bookingIDs)
	if err != nil {
		return nil, err
	}
	query = r.db.Rebind(query)

	var payments []PaymentInfo
	if err := r.db.SelectContext(ctx, &payments, query, args...); err != nil {
		return nil, err
	}

	for _, p := range payments {
		result[p.BookingID] = append(result[p.BookingID], p)
	}
	return result, nil
}

func (r *repository) Update(ctx context.Context, b *Booking) error {
	query := `
		UPDATE bookings
		SET title = $2, client_id = $3, date = $4, time_slot = $5, status = $6,
		    total_price = $7, paid_amount = $8, notes = $9, updated_at = NOW()
		WHERE id = $1
	`
	result, err := r.db.ExecContext(ctx, query,
		b.ID,
		b.Title,
		b.ClientID,
		b.Date,
		b.TimeSlot,
		b.Status,
		b.TotalPrice,
		b.PaidAmount,
		b.Notes,
	)
	if err != nil {
		return fmt.Errorf("booking repository update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return ErrBookingNotFound
	}
	return nil
}

// Delete removes the booking together with its payments in one transaction
func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM payments WHERE booking_id = $1`, id); err != nil {
		return fmt.Errorf("booking repository delete payments: %w", err)
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("booking repository delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return ErrBookingNotFound
	}

	return tx.Commit()
}

// ExistsForSlot reports whether a non-cancelled booking occupies the date and slot
func (r *repository) ExistsForSlot(ctx context.Context, date time.Time, slot TimeSlot, exclude uuid.UUID) (bool, error) {
	query := `
		SELECT COUNT(*) FROM bookings
		WHERE date_trunc('day', date) = date_trunc('day', $1::timestamptz)
		  AND time_slot = $2
		  AND status != 'CANCELLED'
		  AND id != $3
	`
	var count int
	if err := r.db.GetContext(ctx, &count, query, date, slot, exclude); err != nil {
		return false, err
	}
	return count > 0, nil
}

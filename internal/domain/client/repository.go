package client

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Repository defines client data access
type Repository interface {
	Create(ctx context.Context, c *Client) error
	GetByID(ctx context.Context, id uuid.UUID) (*Client, error)
	List(ctx context.Context) ([]*Client, error)
	ListBookings(ctx context.Context, clientID uuid.UUID) ([]BookingSummary, error)
	ListPayments(ctx context.Context, clientID uuid.UUID) ([]PaymentSummary, error)
	Count(ctx context.Context) (int, error)
}

type repository struct {
	db *sqlx.DB
}

// NewRepository creates client repository
func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, c *Client) error {
	query := `
		INSERT INTO clients (id, full_name, email, phone_number, guest_count, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.ExecContext(ctx, query,
		c.ID,
		c.FullName,
		c.Email,
		c.PhoneNumber,
		c.GuestCount,
		c.Notes,
		c.CreatedAt,
		c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("client repository create: %w", err)
	}
	return nil
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Client, error) {
	query := `
		SELECT id, full_name, email, phone_number, guest_count, notes, created_at, updated_at
		FROM clients WHERE id = $1
	`
	var c Client
	err := r.db.GetContext(ctx, &c, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *repository) List(ctx context.Context) ([]*Client, error) {
	query := `
		SELECT id, full_name, email, phone_number, guest_count, notes, created_at, updated_at
		FROM clients ORDER BY created_at DESC
	`
	var clients []*Client
	err := r.db.SelectContext(ctx, &clients, query)
	return clients, err
}

// ListBookings returns the client's bookings, earliest date first
func (r *repository) ListBookings(ctx context.Context, clientID uuid.UUID) ([]BookingSummary, error) {
	query := `
		SELECT id, COALESCE(title, '') AS title, date, time_slot, status, total_price, paid_amount
		FROM bookings
		WHERE client_id = $1
		ORDER BY date ASC
	`
	var bookings []BookingSummary
	err := r.db.SelectContext(ctx, &bookings, query, clientID)
	return bookings, err
}

// ListPayments returns payments recorded against any of the client's bookings
func (r *repository) ListPayments(ctx context.Context, clientID uuid.UUID) ([]PaymentSummary, error) {
	query := `
		SELECT p.id, p.booking_id, p.amount, p.method, p.type, p.created_at
		FROM payments p
		JOIN bookings b ON p.booking_id = b.id
		WHERE b.client_id = $1
		ORDER BY p.created_at DESC
	`
	var payments []PaymentSummary
	err := r.db.SelectContext(ctx, &payments, query, clientID)
	return payments, err
}

func (r *repository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM clients`)
	return count, err
}

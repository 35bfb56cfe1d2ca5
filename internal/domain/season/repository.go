package season

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Repository defines pricing season data access
type Repository interface {
	Create(ctx context.Context, s *Season) error
	GetByID(ctx context.Context, id uuid.UUID) (*Season, error)
	List(ctx context.Context) ([]*Season, error)
	Update(ctx context.Context, s *Season) error
	Delete(ctx context.Context, id uuid.UUID) error
	// FindActiveCovering returns the active season covering the date.
	// Overlapping seasons are allowed; the most recently created wins.
	FindActiveCovering(ctx context.Context, date time.Time) (*Season, error)
}

type repository struct {
	db *sqlx.DB
}

// NewRepository creates pricing season repository
func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, s *Season) error {
	query := `
		INSERT INTO pricing_seasons (id, name, start_date, end_date, morning_price, evening_price, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		s.Name,
		s.StartDate,
		s.EndDate,
		s.MorningPrice,
		s.EveningPrice,
		s.IsActive,
		s.CreatedAt,
		s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("season repository create: %w", err)
	}
	return nil
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Season, error) {
	query := `
		SELECT id, name, start_date, end_date, morning_price, evening_price, is_active, created_at, updated_at
		FROM pricing_seasons WHERE id = $1
	`
	var s Season
	err := r.db.GetContext(ctx, &s, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *repository) List(ctx context.Context) ([]*Season, error) {
	query := `
		SELECT id, name, start_date, end_date, morning_price, evening_price, is_active, created_at, updated_at
		FROM pricing_seasons ORDER BY start_date ASC
	`
	var seasons []*Season
	err := r.db.SelectContext(ctx, &seasons, query)
	return seasons, err
}

func (r *repository) Update(ctx context.Context, s *Season) error {
	query := `
		UPDATE pricing_seasons
		SET name = $2, start_date = $3, end_date = $4, morning_price = $5, evening_price = $6,
		    is_active = $7, updated_at = NOW()
		WHERE id = $1
	`
	result, err := r.db.ExecContext(ctx, query,
		s.ID,
		s.Name,
		s.StartDate,
		s.EndDate,
		s.MorningPrice,
		s.EveningPrice,
		s.IsActive,
	)
	if err != nil {
		return fmt.Errorf("season repository update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return ErrSeasonNotFound
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM pricing_seasons WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return ErrSeasonNotFound
	}
	return nil
}

func (r *repository) FindActiveCovering(ctx context.Context, date time.Time) (*Season, error) {
	query := `
		SELECT id, name, start_date, end_date, morning_price, evening_price, is_active, created_at, updated_at
		FROM pricing_seasons
		WHERE is_active = true
		  AND date_trunc('day', start_date) <= date_trunc('day', $1::timestamptz)
		  AND date_trunc('day', end_date) >= date_trunc('day', $1::timestamptz)
		ORDER BY created_at DESC
		LIMIT 1
	`
	var s Season
	err := r.db.GetContext(ctx, &s, query, date)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

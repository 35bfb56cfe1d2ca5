package season

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Service handles pricing season business logic
type Service struct {
	repo Repository
}

// NewService creates pricing season service
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create validates and persists a new season
func (s *Service) Create(ctx context.Context, req *CreateSeasonRequest) (*Season, error) {
	start, err := parseDate(req.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := parseDate(req.EndDate)
	if err != nil {
		return nil, err
	}
	if end.Before(start) {
		return nil, ErrInvalidRange
	}
	if req.MorningPrice < 0 || req.EveningPrice < 0 {
		return nil, ErrNegativePrice
	}

	now := time.Now()
	season := &Season{
		ID:           uuid.New(),
		Name:         req.Name,
		StartDate:    start,
		EndDate:      end,
		MorningPrice: req.MorningPrice,
		EveningPrice: req.EveningPrice,
		IsActive:     req.IsActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, season); err != nil {
		return nil, err
	}
	return season, nil
}

// Update applies a partial update to a season
func (s *Service) Update(ctx context.Context, id uuid.UUID, req *UpdateSeasonRequest) (*Season, error) {
	season, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if season == nil {
		return nil, ErrSeasonNotFound
	}

	if req.Name != nil {
		season.Name = *req.Name
	}
	if req.StartDate != nil {
		start, err := parseDate(*req.StartDate)
		if err != nil {
			return nil, err
		}
		season.StartDate = start
	}
	if req.EndDate != nil {
		end, err := parseDate(*req.EndDate)
		if err != nil {
			return nil, err
		}
		season.EndDate = end
	}
	if req.MorningPrice != nil {
		season.MorningPrice = *req.MorningPrice
	}
	if req.EveningPrice != nil {
		season.EveningPrice = *req.EveningPrice
	}
	if req.IsActive != nil {
		season.IsActive = *req.IsActive
	}

	if season.EndDate.Before(season.StartDate) {
		return nil, ErrInvalidRange
	}
	if season.MorningPrice < 0 || season.EveningPrice < 0 {
		return nil, ErrNegativePrice
	}

	if err := s.repo.Update(ctx, season); err != nil {
		return nil, err
	}
	return season, nil
}

// Resolve returns the active season covering the given date
func (s *Service) Resolve(ctx context.Context, date time.Time) (*Season, error) {
	season, err := s.repo.FindActiveCovering(ctx, date)
	if err != nil {
		return nil, err
	}
	if season == nil {
		return nil, ErrNoSeasonForDate
	}
	return season, nil
}

func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

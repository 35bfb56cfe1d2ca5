package booking

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/venuehall/venue-api/internal/domain/client"
)

// Service handles booking business logic
type Service struct {
	repo       Repository
	clientRepo client.Repository
}

// NewService creates booking service
func NewService(repo Repository, clientRepo client.Repository) *Service {
	return &Service{repo: repo, clientRepo: clientRepo}
}

// ParseDate accepts RFC3339 timestamps and plain dates from booking forms
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

// Create validates and persists a new booking
func (s *Service) Create(ctx context.Context, req *CreateBookingRequest, userID uuid.UUID) (*Booking, error) {
	date, err := ParseDate(req.Date)
	if err != nil {
		return nil, ErrInvalidDate
	}

	clientID, err := uuid.Parse(req.ClientID)
	if err != nil {
		return nil, ErrClientNotFound
	}
	c, err := s.clientRepo.GetByID(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrClientNotFound
	}

	if req.TotalPrice < 0 || req.PaidAmount < 0 {
		return nil, ErrNegativeAmount
	}
	if req.PaidAmount > req.TotalPrice {
		return nil, ErrPaidExceedsTotal
	}

	status := Status(req.Status)
	if status == "" {
		status = StatusInquiry
	}

	slot := TimeSlot(req.TimeSlot)
	if status != StatusCancelled {
		taken, err := s.repo.ExistsForSlot(ctx, date, slot, uuid.Nil)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrSlotTaken
		}
	}

	now := time.Now()
	b := &Booking{
		ID:         uuid.New(),
		Title:      nullString(req.Title),
		ClientID:   clientID,
		UserID:     userID,
		Date:       date,
		TimeSlot:   slot,
		Status:     status,
		TotalPrice: req.TotalPrice,
		PaidAmount: req.PaidAmount,
		Notes:      nullString(req.Notes),
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// Update applies a partial update to a booking
func (s *Service) Update(ctx context.Context, id uuid.UUID, req *UpdateBookingRequest) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrBookingNotFound
	}

	wasCancelled := b.IsCancelled()
	slotChanged := false

	if req.ClientID != nil {
		clientID, err := uuid.Parse(*req.ClientID)
		if err != nil {
			return nil, ErrClientNotFound
		}
		c, err := s.clientRepo.GetByID(ctx, clientID)
		if err != nil {
			return nil, err
		}
		if c == nil {
			return nil, ErrClientNotFound
		}
		b.ClientID = clientID
	}
	if req.Title != nil {
		b.Title = nullString(*req.Title)
	}
	if req.Date != nil {
		date, err := ParseDate(*req.Date)
		if err != nil {
			return nil, ErrInvalidDate
		}
		b.Date = date
		slotChanged = true
	}
	if req.TimeSlot != nil {
		b.TimeSlot = TimeSlot(*req.TimeSlot)
		slotChanged = true
	}
	if req.Status != nil && *req.Status != "" {
		b.Status = Status(*req.Status)
	}
	if req.TotalPrice != nil {
		b.TotalPrice = *req.TotalPrice
	}
	if req.PaidAmount != nil {
		b.PaidAmount = *req.PaidAmount
	}
	if req.Notes != nil {
		b.Notes = nullString(*req.Notes)
	}

	if b.TotalPrice < 0 || b.PaidAmount < 0 {
		return nil, ErrNegativeAmount
	}
	if b.PaidAmount > b.TotalPrice {
		return nil, ErrPaidExceedsTotal
	}

	// A booking leaving CANCELLED re-enters the slot and must recheck it
	uncancelled := wasCancelled && !b.IsCancelled()
	if (slotChanged || uncancelled) && !b.IsCancelled() {
		taken, err := s.repo.ExistsForSlot(ctx, b.Date, b.TimeSlot, b.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrSlotTaken
		}
	}

	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// Delete removes a booking and its payments
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

// GetDetail returns a booking joined with client and staff
func (s *Service) GetDetail(ctx context.Context, id uuid.UUID) (*Detail, error) {
	d, err := s.repo.GetDetailByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, ErrBookingNotFound
	}
	return d, nil
}

// List returns bookings with their payments attached
func (s *Service) List(ctx context.Context, f ListFilter) ([]*BookingResponse, error) {
	details, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, len(details))
	for i, d := range details {
		ids[i] = d.ID
	}
	payments, err := s.repo.ListPayments(ctx, ids)
	if err != nil {
		return nil, err
	}

	items := make([]*BookingResponse, len(details))
	for i, d := range details {
		resp := DetailToResponse(d)
		resp.Payments = payments[d.ID]
		items[i] = resp
	}
	return items, nil
}

// PaymentsFor returns payments recorded against a single booking
func (s *Service) PaymentsFor(ctx context.Context, id uuid.UUID) ([]PaymentInfo, error) {
	payments, err := s.repo.ListPayments(ctx, []uuid.UUID{id})
	if err != nil {
		return nil, err
	}
	return payments[id], nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

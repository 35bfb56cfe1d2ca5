package season

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

type fakeRepo struct {
	seasons map[uuid.UUID]*Season
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{seasons: map[uuid.UUID]*Season{}}
}

func (f *fakeRepo) Create(ctx context.Context, s *Season) error {
	cp := *s
	f.seasons[s.ID] = &cp
	return nil
}

func (f *fakeRepo) GetByID(ctx context.Context, id uuid.UUID) (*Season, error) {
	s, ok := f.seasons[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (f *fakeRepo) List(ctx context.Context) ([]*Season, error) {
	var out []*Season
	for _, s := range f.seasons {
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeRepo) Update(ctx context.Context, s *Season) error {
	if _, ok := f.seasons[s.ID]; !ok {
		return ErrSeasonNotFound
	}
	cp := *s
	f.seasons[s.ID] = &cp
	return nil
}

func (f *fakeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := f.seasons[id]; !ok {
		return ErrSeasonNotFound
	}
	delete(f.seasons, id)
	return nil
}

func (f *fakeRepo) FindActiveCovering(ctx context.Context, date time.Time) (*Season, error) {
	var best *Season
	for _, s := range f.seasons {
		if !s.IsActive || !s.Covers(date) {
			continue
		}
		if best == nil || s.CreatedAt.After(best.CreatedAt) {
			best = s
		}
	}
	return best, nil
}

func TestCreateSeason(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	s, err := svc.Create(context.Background(), &CreateSeasonRequest{
		Name:         "Summer 2026",
		StartDate:    "2026-06-01",
		EndDate:      "2026-08-31",
		MorningPrice: 3000,
		EveningPrice: 5000,
		IsActive:     true,
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if repo.seasons[s.ID] == nil {
		t.Fatal("expected season to be persisted")
	}
	if s.MorningPrice != 3000 || s.EveningPrice != 5000 {
		t.Fatalf("unexpected prices: %v %v", s.MorningPrice, s.EveningPrice)
	}
}

func TestCreateSeasonRejectsReversedRange(t *testing.T) {
	svc := NewService(newFakeRepo())

	_, err := svc.Create(context.Background(), &CreateSeasonRequest{
		Name:      "Backwards",
		StartDate: "2026-08-31",
		EndDate:   "2026-06-01",
	})
	if !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("expected ErrInvalidRange, got %v", err)
	}
}

func TestCreateSeasonRejectsBadDate(t *testing.T) {
	svc := NewService(newFakeRepo())

	_, err := svc.Create(context.Background(), &CreateSeasonRequest{
		Name:      "Bad",
		StartDate: "June 1st",
		EndDate:   "2026-08-31",
	})
	if !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}

func TestUpdateSeasonPartial(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	s, err := svc.Create(context.Background(), &CreateSeasonRequest{
		Name:         "Winter",
		StartDate:    "2026-12-01",
		EndDate:      "2027-02-28",
		MorningPrice: 2000,
		EveningPrice: 3500,
		IsActive:     true,
	})
	if err != nil {
		t.Fatalf("create err: %v", err)
	}

	price := 2500.0
	updated, err := svc.Update(context.Background(), s.ID, &UpdateSeasonRequest{MorningPrice: &price})
	if err != nil {
		t.Fatalf("update err: %v", err)
	}
	if updated.MorningPrice != 2500 {
		t.Fatalf("expected morning 2500, got %v", updated.MorningPrice)
	}
	if updated.EveningPrice != 3500 || updated.Name != "Winter" {
		t.Fatalf("untouched fields changed: %#v", updated)
	}
}

func TestUpdateSeasonRejectsRangeInversion(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	s, err := svc.Create(context.Background(), &CreateSeasonRequest{
		Name:      "Spring",
		StartDate: "2026-03-01",
		EndDate:   "2026-05-31",
	})
	if err != nil {
		t.Fatalf("create err: %v", err)
	}

	end := "2026-02-01"
	if _, err := svc.Update(context.Background(), s.ID, &UpdateSeasonRequest{EndDate: &end}); !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("expected ErrInvalidRange, got %v", err)
	}
}

func TestResolvePicksCoveringSeason(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	if _, err := svc.Create(context.Background(), &CreateSeasonRequest{
		Name:         "Summer",
		StartDate:    "2026-06-01",
		EndDate:      "2026-08-31",
		EveningPrice: 5000,
		IsActive:     true,
	}); err != nil {
		t.Fatalf("create err: %v", err)
	}

	s, err := svc.Resolve(context.Background(), time.Date(2026, 7, 15, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("resolve err: %v", err)
	}
	if s.Name != "Summer" {
		t.Fatalf("expected Summer, got %s", s.Name)
	}
}

func TestResolveOverlapPrefersNewest(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	old := &Season{
		ID: uuid.New(), Name: "Base", IsActive: true,
		StartDate: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC),
		CreatedAt: time.Now().Add(-time.Hour),
	}
	override := &Season{
		ID: uuid.New(), Name: "Eid Override", IsActive: true,
		StartDate: time.Date(2026, 5, 25, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 6, 5, 0, 0, 0, 0, time.UTC),
		CreatedAt: time.Now(),
	}
	repo.seasons[old.ID] = old
	repo.seasons[override.ID] = override

	s, err := svc.Resolve(context.Background(), time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("resolve err: %v", err)
	}
	if s.Name != "Eid Override" {
		t.Fatalf("expected newest overlapping season, got %s", s.Name)
	}
}

func TestResolveSkipsInactive(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	inactive := &Season{
		ID: uuid.New(), Name: "Disabled", IsActive: false,
		StartDate: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC),
		CreatedAt: time.Now(),
	}
	repo.seasons[inactive.ID] = inactive

	if _, err := svc.Resolve(context.Background(), time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)); !errors.Is(err, ErrNoSeasonForDate) {
		t.Fatalf("expected ErrNoSeasonForDate, got %v", err)
	}
}

func TestSeasonCoversBoundaries(t *testing.T) {
	s := &Season{
		StartDate: time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC),
	}

	if !s.Covers(time.Date(2026, 6, 1, 15, 30, 0, 0, time.UTC)) {
		t.Fatal("start date should be covered")
	}
	if !s.Covers(time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)) {
		t.Fatal("end date should be covered")
	}
	if s.Covers(time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatal("day after end should not be covered")
	}
}

func TestPriceForSlot(t *testing.T) {
	s := &Season{MorningPrice: 3000, EveningPrice: 5000}

	if got := s.PriceFor("MORNING"); got != 3000 {
		t.Fatalf("expected 3000, got %v", got)
	}
	if got := s.PriceFor("EVENING"); got != 5000 {
		t.Fatalf("expected 5000, got %v", got)
	}
}

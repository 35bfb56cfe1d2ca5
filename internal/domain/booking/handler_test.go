package booking

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/venuehall/venue-api/internal/middleware"
)

func newTestHandler(clientIDs ...uuid.UUID) (*Handler, *fakeRepo) {
	repo := newFakeRepo()
	svc := NewService(repo, newFakeClientRepo(clientIDs...))
	return NewHandler(svc), repo
}

func authedRequest(method, target string, body []byte) *http.Request {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, target, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	ctx := context.WithValue(req.Context(), middleware.UserIDKey, uuid.New())
	return req.WithContext(ctx)
}

func TestCreateBookingHandlerReturns201(t *testing.T) {
	clientID := uuid.New()
	h, repo := newTestHandler(clientID)

	body, _ := json.Marshal(CreateBookingRequest{
		ClientID:   clientID.String(),
		Date:       "2026-10-01",
		TimeSlot:   "EVENING",
		TotalPrice: 6000,
	})
	rr := httptest.NewRecorder()
	h.Create(rr, authedRequest(http.MethodPost, "/bookings", body))

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", rr.Code, rr.Body.String())
	}
	if len(repo.bookings) != 1 {
		t.Fatalf("expected 1 booking, got %d", len(repo.bookings))
	}
}

func TestCreateBookingHandlerRejectsUnknownSlot(t *testing.T) {
	clientID := uuid.New()
	h, _ := newTestHandler(clientID)

	body := []byte(`{"client_id":"` + clientID.String() + `","date":"2026-10-01","time_slot":"AFTERNOON"}`)
	rr := httptest.NewRecorder()
	h.Create(rr, authedRequest(http.MethodPost, "/bookings", body))

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestCreateBookingHandlerConflictReturns409(t *testing.T) {
	clientID := uuid.New()
	h, _ := newTestHandler(clientID)

	body, _ := json.Marshal(CreateBookingRequest{
		ClientID: clientID.String(),
		Date:     "2026-10-01",
		TimeSlot: "EVENING",
	})
	rr := httptest.NewRecorder()
	h.Create(rr, authedRequest(http.MethodPost, "/bookings", body))
	if rr.Code != http.StatusCreated {
		t.Fatalf("first create: expected 201, got %d", rr.Code)
	}

	rr = httptest.NewRecorder()
	h.Create(rr, authedRequest(http.MethodPost, "/bookings", body))
	if rr.Code != http.StatusConflict {
		t.Fatalf("second create: expected 409, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestPatchBookingWithIDInBody(t *testing.T) {
	clientID := uuid.New()
	h, repo := newTestHandler(clientID)

	createBody, _ := json.Marshal(CreateBookingRequest{
		ClientID:   clientID.String(),
		Date:       "2026-10-01",
		TimeSlot:   "EVENING",
		TotalPrice: 6000,
	})
	rr := httptest.NewRecorder()
	h.Create(rr, authedRequest(http.MethodPost, "/bookings", createBody))
	if rr.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d", rr.Code)
	}

	var created struct {
		Data struct {
			ID uuid.UUID `json:"id"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &created); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	patchBody := []byte(`{"id":"` + created.Data.ID.String() + `","status":"CONFIRMED"}`)
	rr = httptest.NewRecorder()
	h.Patch(rr, authedRequest(http.MethodPatch, "/bookings", patchBody))

	if rr.Code != http.StatusOK {
		t.Fatalf("patch: expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
	if repo.bookings[created.Data.ID].Status != StatusConfirmed {
		t.Fatalf("expected CONFIRMED, got %s", repo.bookings[created.Data.ID].Status)
	}
}

func TestPatchBookingWithoutIDReturns400(t *testing.T) {
	h, _ := newTestHandler()

	rr := httptest.NewRecorder()
	h.Patch(rr, authedRequest(http.MethodPatch, "/bookings", []byte(`{"status":"CONFIRMED"}`)))

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestDeleteBookingByQueryParam(t *testing.T) {
	clientID := uuid.New()
	h, repo := newTestHandler(clientID)

	createBody, _ := json.Marshal(CreateBookingRequest{
		ClientID: clientID.String(),
		Date:     "2026-10-01",
		TimeSlot: "MORNING",
	})
	rr := httptest.NewRecorder()
	h.Create(rr, authedRequest(http.MethodPost, "/bookings", createBody))
	if rr.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d", rr.Code)
	}

	var created struct {
		Data struct {
			ID uuid.UUID `json:"id"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &created); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	repo.payments[created.Data.ID] = []PaymentInfo{{ID: uuid.New(), BookingID: created.Data.ID, Amount: 500}}

	rr = httptest.NewRecorder()
	h.DeleteByQuery(rr, authedRequest(http.MethodDelete, "/bookings?id="+created.Data.ID.String(), nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("delete: expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
	if len(repo.bookings) != 0 {
		t.Fatal("expected booking to be removed")
	}
	if len(repo.payments[created.Data.ID]) != 0 {
		t.Fatal("expected payments to be removed with the booking")
	}
}

func TestDeleteBookingByQueryMissingIDReturns400(t *testing.T) {
	h, _ := newTestHandler()

	rr := httptest.NewRecorder()
	h.DeleteByQuery(rr, authedRequest(http.MethodDelete, "/bookings", nil))

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}

func TestListBookingsRejectsBadFromDate(t *testing.T) {
	h, _ := newTestHandler()

	rr := httptest.NewRecorder()
	h.List(rr, authedRequest(http.MethodGet, "/bookings?from=yesterday", nil))

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}

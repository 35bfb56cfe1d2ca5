package booking

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/venuehall/venue-api/internal/middleware"
	"github.com/venuehall/venue-api/internal/pkg/response"
	"github.com/venuehall/venue-api/internal/pkg/validator"
)

// Handler handles booking HTTP requests
type Handler struct {
	svc *Service
}

// NewHandler creates booking handler
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// List handles GET /bookings
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	var f ListFilter

	if s := r.URL.Query().Get("status"); s != "" {
		st := Status(s)
		f.Status = &st
	}
	if from := r.URL.Query().Get("from"); from != "" {
		t, err := ParseDate(from)
		if err != nil {
			response.BadRequest(w, "Invalid 'from' date")
			return
		}
		f.From = &t
	}
	if to := r.URL.Query().Get("to"); to != "" {
		t, err := ParseDate(to)
		if err != nil {
			response.BadRequest(w, "Invalid 'to' date")
			return
		}
		f.To = &t
	}

	items, err := h.svc.List(r.Context(), f)
	if err != nil {
		log.Error().Err(err).Msg("failed to list bookings")
		response.InternalError(w)
		return
	}

	response.OK(w, items)
}

// Create handles POST /bookings
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errors := validator.Validate(&req); errors != nil {
		response.ValidationError(w, errors)
		return
	}

	userID := middleware.GetUserID(r.Context())
	b, err := h.svc.Create(r.Context(), &req, userID)
	if err != nil {
		h.writeServiceError(w, err, "failed to create booking")
		return
	}

	response.Created(w, ToResponse(b))
}

// GetByID handles GET /bookings/{id}
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid booking ID")
		return
	}

	d, err := h.svc.GetDetail(r.Context(), id)
	if err != nil {
		if err == ErrBookingNotFound {
			response.NotFound(w, "Booking not found")
			return
		}
		log.Error().Err(err).Msg("failed to load booking")
		response.InternalError(w)
		return
	}

	payments, err := h.svc.PaymentsFor(r.Context(), d.ID)
	if err != nil {
		log.Error().Err(err).Msg("failed to load booking payments")
		response.InternalError(w)
		return
	}

	resp := DetailToResponse(d)
	resp.Payments = payments
	response.OK(w, resp)
}

// Put handles PUT /bookings/{id}
func (h *Handler) Put(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid booking ID")
		return
	}

	var req UpdateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errors := validator.Validate(&req); errors != nil {
		response.ValidationError(w, errors)
		return
	}

	b, err := h.svc.Update(r.Context(), id, &req)
	if err != nil {
		h.writeServiceError(w, err, "failed to update booking")
		return
	}

	response.OK(w, ToResponse(b))
}

// Patch handles PATCH /bookings, id in body
func (h *Handler) Patch(w http.ResponseWriter, r *http.Request) {
	var req PatchBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errors := validator.Validate(&req); errors != nil {
		response.ValidationError(w, errors)
		return
	}

	id, err := uuid.Parse(req.ID)
	if err != nil {
		response.BadRequest(w, "Invalid booking ID")
		return
	}

	b, err := h.svc.Update(r.Context(), id, &req.UpdateBookingRequest)
	if err != nil {
		h.writeServiceError(w, err, "failed to update booking")
		return
	}

	response.OK(w, ToResponse(b))
}

// DeleteByID handles DELETE /bookings/{id}
func (h *Handler) DeleteByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid booking ID")
		return
	}

	h.delete(w, r, id)
}

// DeleteByQuery handles DELETE /bookings?id=
func (h *Handler) DeleteByQuery(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("id")
	if raw == "" {
		response.BadRequest(w, "Missing booking id")
		return
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		response.BadRequest(w, "Invalid booking ID")
		return
	}

	h.delete(w, r, id)
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request, id uuid.UUID) {
	if err := h.svc.Delete(r.Context(), id); err != nil {
		if err == ErrBookingNotFound {
			response.NotFound(w, "Booking not found")
			return
		}
		log.Error().Err(err).Str("booking_id", id.String()).Msg("failed to delete booking")
		response.InternalError(w)
		return
	}

	response.OK(w, map[string]string{"message": "Booking deleted"})
}

func (h *Handler) writeServiceError(w http.ResponseWriter, err error, logMsg string) {
	switch err {
	case ErrBookingNotFound:
		response.NotFound(w, "Booking not found")
	case ErrClientNotFound:
		response.NotFound(w, "Client not found")
	case ErrInvalidDate:
		response.BadRequest(w, "Invalid date provided")
	case ErrNegativeAmount:
		response.BadRequest(w, "Price and paid amount must not be negative")
	case ErrPaidExceedsTotal:
		response.BadRequest(w, "Paid amount exceeds total price")
	case ErrSlotTaken:
		response.Conflict(w, "This date and time slot is already booked")
	default:
		log.Error().Err(err).Msg(logMsg)
		response.InternalError(w)
	}
}

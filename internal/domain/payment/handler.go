package payment

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/venuehall/venue-api/internal/middleware"
	"github.com/venuehall/venue-api/internal/pkg/response"
	"github.com/venuehall/venue-api/internal/pkg/validator"
)

// Handler handles payment HTTP requests
type Handler struct {
	repo Repository
}

// NewHandler creates payment handler
func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

// List handles GET /payments
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	payments, err := h.repo.List(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("failed to list payments")
		response.InternalError(w)
		return
	}

	items := make([]*PaymentResponse, len(payments))
	for i, p := range payments {
		items[i] = DetailToResponse(p)
	}

	response.OK(w, items)
}

// Create handles POST /payments
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreatePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errors := validator.Validate(&req); errors != nil {
		response.ValidationError(w, errors)
		return
	}

	bookingID, err := uuid.Parse(req.BookingID)
	if err != nil {
		response.BadRequest(w, "Invalid booking ID")
		return
	}

	p := &Payment{
		ID:        uuid.New(),
		BookingID: bookingID,
		StaffID:   middleware.GetUserID(r.Context()),
		Amount:    req.Amount,
		Method:    Method(req.Method),
		Type:      Type(req.Type),
		Notes:     sql.NullString{String: req.Notes, Valid: req.Notes != ""},
		CreatedAt: time.Now(),
	}

	if err := h.repo.Record(r.Context(), p); err != nil {
		switch err {
		case ErrBookingNotFound:
			response.NotFound(w, "Booking not found")
		case ErrExceedsTotal:
			response.BadRequest(w, "Payment would exceed booking total price")
		default:
			log.Error().Err(err).Str("booking_id", req.BookingID).Msg("failed to record payment")
			response.InternalError(w)
		}
		return
	}

	response.Created(w, ToResponse(p))
}

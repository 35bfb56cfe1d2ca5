package client

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/venuehall/venue-api/internal/pkg/response"
	"github.com/venuehall/venue-api/internal/pkg/validator"
)

// Handler handles client HTTP requests
type Handler struct {
	repo Repository
}

// NewHandler creates client handler
func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

// List handles GET /clients — clients with nested bookings and payments
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	clients, err := h.repo.List(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("failed to list clients")
		response.InternalError(w)
		return
	}

	items := make([]*ClientResponse, len(clients))
	for i, c := range clients {
		resp := ToResponse(c)

		bookings, err := h.repo.ListBookings(r.Context(), c.ID)
		if err != nil {
			log.Error().Err(err).Str("client_id", c.ID.String()).Msg("failed to load client bookings")
			response.InternalError(w)
			return
		}
		payments, err := h.repo.ListPayments(r.Context(), c.ID)
		if err != nil {
			log.Error().Err(err).Str("client_id", c.ID.String()).Msg("failed to load client payments")
			response.InternalError(w)
			return
		}

		resp.Bookings = bookings
		resp.Payments = payments
		items[i] = resp
	}

	response.OK(w, items)
}

// Create handles POST /clients
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errors := validator.Validate(&req); errors != nil {
		response.ValidationError(w, errors)
		return
	}

	now := time.Now()
	c := &Client{
		ID:          uuid.New(),
		FullName:    req.FullName,
		Email:       NullString(req.Email),
		PhoneNumber: req.PhoneNumber,
		GuestCount:  req.GuestCount,
		Notes:       NullString(req.Notes),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := h.repo.Create(r.Context(), c); err != nil {
		log.Error().Err(err).Str("full_name", req.FullName).Msg("failed to create client")
		response.InternalError(w)
		return
	}

	response.Created(w, ToResponse(c))
}

// GetByID handles GET /clients/{id} — client with bookings and financial totals
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid client ID")
		return
	}

	c, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		log.Error().Err(err).Msg("failed to load client")
		response.InternalError(w)
		return
	}
	if c == nil {
		response.NotFound(w, "Client not found")
		return
	}

	bookings, err := h.repo.ListBookings(r.Context(), id)
	if err != nil {
		log.Error().Err(err).Msg("failed to load client bookings")
		response.InternalError(w)
		return
	}
	payments, err := h.repo.ListPayments(r.Context(), id)
	if err != nil {
		log.Error().Err(err).Msg("failed to load client payments")
		response.InternalError(w)
		return
	}

	detail := &ClientDetailResponse{ClientResponse: *ToResponse(c)}
	detail.Bookings = bookings
	detail.Payments = payments
	// Cancelled bookings are excluded, matching the dashboard figures
	for _, b := range bookings {
		if b.Status == "CANCELLED" {
			continue
		}
		detail.TotalPrice += b.TotalPrice
		detail.TotalPaid += b.PaidAmount
	}
	detail.Balance = detail.TotalPrice - detail.TotalPaid

	response.OK(w, detail)
}

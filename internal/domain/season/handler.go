package season

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

// Handler handles pricing season HTTP requests
type Handler struct {
	svc  *Service
	repo Repository
}

// NewHandler creates pricing season handler
func NewHandler(svc *Service, repo Repository) *Handler {
	return &Handler{svc: svc, repo: repo}
}

// List handles GET /pricing-seasons
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	seasons, err := h.repo.List(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("failed to list pricing seasons")
		response.InternalError(w)
		return
	}

	items := make([]*SeasonResponse, len(seasons))
	for i, s := range seasons {
		items[i] = ToResponse(s)
	}

	response.OK(w, items)
}

// Create handles POST /pricing-seasons
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateSeasonRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errors := validator.Validate(&req); errors != nil {
		response.ValidationError(w, errors)
		return
	}

	s, err := h.svc.Create(r.Context(), &req)
	if err != nil {
		h.writeServiceError(w, err, "failed to create pricing season")
		return
	}

	response.Created(w, ToResponse(s))
}

// GetByID handles GET /pricing-seasons/{id}
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid season ID")
		return
	}

	s, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		log.Error().Err(err).Msg("failed to load pricing season")
		response.InternalError(w)
		return
	}
	if s == nil {
		response.NotFound(w, "Pricing season not found")
		return
	}

	response.OK(w, ToResponse(s))
}

// Update handles PUT /pricing-seasons/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid season ID")
		return
	}

	var req UpdateSeasonRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errors := validator.Validate(&req); errors != nil {
		response.ValidationError(w, errors)
		return
	}

	s, err := h.svc.Update(r.Context(), id, &req)
	if err != nil {
		h.writeServiceError(w, err, "failed to update pricing season")
		return
	}

	response.OK(w, ToResponse(s))
}

// Delete handles DELETE /pricing-seasons/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid season ID")
		return
	}

	if err := h.repo.Delete(r.Context(), id); err != nil {
		if err == ErrSeasonNotFound {
			response.NotFound(w, "Pricing season not found")
			return
		}
		log.Error().Err(err).Msg("failed to delete pricing season")
		response.InternalError(w)
		return
	}

	response.OK(w, map[string]string{"message": "Pricing season deleted"})
}

// Current handles GET /pricing-seasons/current?date= — season resolution
func (h *Handler) Current(w http.ResponseWriter, r *http.Request) {
	date := time.Now()
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := parseDate(raw)
		if err != nil {
			response.BadRequest(w, "Invalid date provided")
			return
		}
		date = parsed
	}

	s, err := h.svc.Resolve(r.Context(), date)
	if err != nil {
		if err == ErrNoSeasonForDate {
			response.NotFound(w, "No active season covers this date")
			return
		}
		log.Error().Err(err).Msg("failed to resolve pricing season")
		response.InternalError(w)
		return
	}

	response.OK(w, ToResponse(s))
}

func (h *Handler) writeServiceError(w http.ResponseWriter, err error, logMsg string) {
	switch err {
	case ErrSeasonNotFound:
		response.NotFound(w, "Pricing season not found")
	case ErrInvalidDate:
		response.BadRequest(w, "Invalid date provided")
	case ErrInvalidRange:
		response.BadRequest(w, "End date is before start date")
	case ErrNegativePrice:
		response.BadRequest(w, "Prices must not be negative")
	default:
		log.Error().Err(err).Msg(logMsg)
		response.InternalError(w)
	}
}

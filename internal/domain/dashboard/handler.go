package dashboard

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/venuehall/venue-api/internal/pkg/response"
)

// Handler handles dashboard HTTP requests
type Handler struct {
	repo *Repository
}

// NewHandler creates dashboard handler
func NewHandler(repo *Repository) *Handler {
	return &Handler{repo: repo}
}

// GetStats handles GET /dashboard/stats
func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.repo.GetStats(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("failed to load dashboard stats")
		response.InternalError(w)
		return
	}

	response.OK(w, stats)
}

// Today handles GET /dashboard/today
func (h *Handler) Today(w http.ResponseWriter, r *http.Request) {
	events, err := h.repo.TodaySchedule(r.Context(), time.Now())
	if err != nil {
		log.Error().Err(err).Msg("failed to load today's schedule")
		response.InternalError(w)
		return
	}

	response.OK(w, events)
}

// Upcoming handles GET /dashboard/upcoming
func (h *Handler) Upcoming(w http.ResponseWriter, r *http.Request) {
	events, err := h.repo.UpcomingEvents(r.Context(), time.Now())
	if err != nil {
		log.Error().Err(err).Msg("failed to load upcoming events")
		response.InternalError(w)
		return
	}

	response.OK(w, events)
}

// RecentPayments handles GET /dashboard/recent-payments
func (h *Handler) RecentPayments(w http.ResponseWriter, r *http.Request) {
	payments, err := h.repo.RecentPayments(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("failed to load recent payments")
		response.InternalError(w)
		return
	}

	response.OK(w, payments)
}

// Routes returns dashboard routes
func Routes(h *Handler, authMiddleware func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(authMiddleware)

	r.Get("/stats", h.GetStats)
	r.Get("/today", h.Today)
	r.Get("/upcoming", h.Upcoming)
	r.Get("/recent-payments", h.RecentPayments)

	return r
}

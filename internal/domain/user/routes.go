package user

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/venuehall/venue-api/internal/middleware"
)

// Routes returns user router
func (h *Handler) Routes(authMiddleware func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(authMiddleware)

	r.Get("/", h.List)
	r.With(middleware.RequireAdmin()).Post("/", h.Create)
	r.Patch("/me/language", h.UpdateLanguage)

	return r
}

package booking

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes returns booking router
func (h *Handler) Routes(authMiddleware func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(authMiddleware)

	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Patch("/", h.Patch)
	r.Delete("/", h.DeleteByQuery)
	r.Get("/export", h.Export)

	r.Route("/{id}", func(r chi.Router) {
		r.Get("/", h.GetByID)
		r.Put("/", h.Put)
		r.Delete("/", h.DeleteByID)
	})

	return r
}

package assistant

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers assistant introspection routes
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Route("/assistant", func(r chi.Router) {
		r.Get("/info", h.Info)
		r.Get("/status", h.Status)
		r.Get("/context", h.Context)
	})
}

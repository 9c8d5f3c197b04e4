package query

import (
	"github.com/go-chi/chi/v5"
)

// RegisterAssistantRoutes registers the assistant-mode query route
func RegisterAssistantRoutes(r chi.Router, h *AssistantHandler) {
	r.Post("/query", h.Query)
}

// RegisterSearchRoutes registers the search-mode query route
func RegisterSearchRoutes(r chi.Router, h *SearchHandler) {
	r.Post("/query", h.Query)
}

package index

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers the ingestion routes (raw-search deployment only)
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Post("/index", h.Index)
	r.Post("/index-sample", h.IndexSample)
	r.Delete("/tenant/{tenant_id}", h.DeleteTenant)
}

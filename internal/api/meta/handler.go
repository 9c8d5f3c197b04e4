package meta

import (
	"net/http"

	"github.com/parcelam/rag-gateway/internal/entity"
	"github.com/parcelam/rag-gateway/internal/pkg/response"
)

// Handler serves the service-metadata root and the liveness probe. Neither
// endpoint touches the upstream provider.
type Handler struct {
	service string
	version string
	mode    string
}

func NewHandler(service, version, mode string) *Handler {
	return &Handler{
		service: service,
		version: version,
		mode:    mode,
	}
}

// Root handles GET / - service metadata
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	response.Success(w, entity.ServiceMeta{
		Service: h.service,
		Status:  "running",
		Version: h.version,
		Mode:    h.mode,
	})
}

// Health handles GET /health - liveness probe
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	response.Success(w, entity.HealthResponse{
		Status: "healthy",
		Mode:   h.mode,
	})
}

package assistant

import (
	"net/http"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/parcelam/rag-gateway/internal/config"
	"github.com/parcelam/rag-gateway/internal/entity"
	"github.com/parcelam/rag-gateway/internal/pkg/response"
	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

const statusCacheKey = "assistant-status"

// Handler serves the assistant introspection endpoints consumed by the
// mobile frontend. The status probe result is cached so frontend polling
// does not turn into provider traffic.
type Handler struct {
	probe       StatusProbe
	cfg         config.AssistantConnectorConfig
	serviceName string
	statusCache *gocache.Cache
}

func NewHandler(probe StatusProbe, cfg config.AssistantConnectorConfig, serviceName string) *Handler {
	return &Handler{
		probe:       probe,
		cfg:         cfg,
		serviceName: serviceName,
		statusCache: gocache.New(cfg.StatusCacheTTL, 2*cfg.StatusCacheTTL),
	}
}

// Info handles GET /assistant/info - static configuration for display
func (h *Handler) Info(w http.ResponseWriter, r *http.Request) {
	response.Success(w, entity.AssistantInfo{
		Service:          h.serviceName,
		Assistant:        h.cfg.AssistantName,
		Host:             h.cfg.Url,
		APIKeyConfigured: h.cfg.APIKey != "",
	})
}

// Context handles GET /assistant/context - retrieval settings in effect
func (h *Handler) Context(w http.ResponseWriter, r *http.Request) {
	response.Success(w, entity.ContextSettings{
		TopK:        h.cfg.TopK,
		RerankModel: h.cfg.RerankModel,
		SnippetSize: h.cfg.SnippetSize,
	})
}

// Status handles GET /assistant/status - upstream reachability, cached
func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if cached, found := h.statusCache.Get(statusCacheKey); found {
		response.Success(w, cached.(*entity.AssistantStatus))
		return
	}

	status, err := h.probe.Status(ctx)
	if err != nil {
		ctxzap.Warn(ctx, "assistant status probe failed", zap.Error(err))
		// The probe still reports an unreachable status body; relay it with
		// 200 so the frontend can render the state instead of an error page.
	}

	h.statusCache.Set(statusCacheKey, status, gocache.DefaultExpiration)
	response.Success(w, status)
}

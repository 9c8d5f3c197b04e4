package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	assistantapi "github.com/parcelam/rag-gateway/internal/api/assistant"
	"github.com/parcelam/rag-gateway/internal/api/docs"
	indexapi "github.com/parcelam/rag-gateway/internal/api/index"
	"github.com/parcelam/rag-gateway/internal/api/meta"
	"github.com/parcelam/rag-gateway/internal/api/middleware"
	queryapi "github.com/parcelam/rag-gateway/internal/api/query"
	"go.uber.org/zap"
)

// SetupAssistantRouter configures the HTTP router for the assistant deployment
func SetupAssistantRouter(
	metaHandler *meta.Handler,
	queryHandler *queryapi.AssistantHandler,
	assistantHandler *assistantapi.Handler,
	logger *zap.Logger,
) http.Handler {
	r := baseRouter(logger)

	r.Get("/", metaHandler.Root)
	r.Get("/health", metaHandler.Health)

	queryapi.RegisterAssistantRoutes(r, queryHandler)
	assistantapi.RegisterRoutes(r, assistantHandler)

	return r
}

// SetupSearchRouter configures the HTTP router for the raw-search deployment
func SetupSearchRouter(
	metaHandler *meta.Handler,
	queryHandler *queryapi.SearchHandler,
	indexHandler *indexapi.Handler,
	logger *zap.Logger,
) http.Handler {
	r := baseRouter(logger)

	r.Get("/", metaHandler.Root)
	r.Get("/health", metaHandler.Health)

	queryapi.RegisterSearchRoutes(r, queryHandler)
	indexapi.RegisterRoutes(r, indexHandler)

	return r
}

func baseRouter(logger *zap.Logger) chi.Router {
	r := chi.NewRouter()

	// Middleware stack
	r.Use(chimiddleware.Recoverer)                 // Recover from panics
	r.Use(chimiddleware.RequestID)                 // Add request ID
	r.Use(middleware.Logger(logger))               // Log requests
	r.Use(middleware.CORS)                         // Handle CORS
	r.Use(chimiddleware.Timeout(60 * time.Second)) // Default timeout

	// Swagger documentation endpoints
	docs.RegisterRoutes(r)

	return r
}

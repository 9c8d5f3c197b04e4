package index

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/parcelam/rag-gateway/internal/entity"
	"github.com/parcelam/rag-gateway/internal/pkg/logger"
	"github.com/parcelam/rag-gateway/internal/pkg/response"
	"github.com/parcelam/rag-gateway/internal/pkg/validator"
	pkghttp "github.com/parcelam/rag-gateway/pkg/http"
	"go.uber.org/zap"
)

// Handler serves the ingestion surface of the deprecated raw-search
// deployment. Everything is a pass-through to the provider's record API.
type Handler struct {
	usecase   IndexUsecase
	validator *validator.Validator
}

func NewHandler(usecase IndexUsecase, validator *validator.Validator) *Handler {
	return &Handler{
		usecase:   usecase,
		validator: validator,
	}
}

// Index handles POST /index - bulk document ingestion for a tenant
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "Index")

	var req entity.IndexRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		ctxzap.Error(ctx, "failed to decode request body", zap.Error(err))
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.validator.ValidateIndex(&req); err != nil {
		ctxzap.Error(ctx, "failed to validate request", zap.Error(err))
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx = logger.AddFields(ctx, zap.String("tenant_id", req.TenantID))
	ctxzap.Info(ctx, "indexing documents", zap.Int("document_count", len(req.Documents)))

	indexed, err := h.usecase.Index(ctx, &req)
	if err != nil {
		h.handleError(ctx, w, err)
		return
	}

	response.Success(w, entity.IndexResponse{
		Success:  true,
		Indexed:  indexed,
		TenantID: req.TenantID,
	})
}

// IndexSample handles POST /index-sample - index the built-in sample corpus
func (h *Handler) IndexSample(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "IndexSample")

	tenantID := r.URL.Query().Get("tenant_id")
	if err := h.validator.ValidateTenantID(tenantID); err != nil {
		ctxzap.Error(ctx, "failed to validate request", zap.Error(err))
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx = logger.AddFields(ctx, zap.String("tenant_id", tenantID))
	ctxzap.Info(ctx, "indexing sample corpus")

	indexed, err := h.usecase.IndexSample(ctx, tenantID)
	if err != nil {
		h.handleError(ctx, w, err)
		return
	}

	response.Success(w, entity.IndexResponse{
		Success:  true,
		Indexed:  indexed,
		TenantID: tenantID,
		Message:  "Sample documents indexed. Wait 10 seconds before querying.",
	})
}

// DeleteTenant handles DELETE /tenant/{tenant_id} - wipe a tenant's namespace
func (h *Handler) DeleteTenant(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "DeleteTenant")

	tenantID := chi.URLParam(r, "tenant_id")
	if err := h.validator.ValidateTenantID(tenantID); err != nil {
		ctxzap.Error(ctx, "failed to validate request", zap.Error(err))
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx = logger.AddFields(ctx, zap.String("tenant_id", tenantID))
	ctxzap.Info(ctx, "deleting tenant data")

	if err := h.usecase.DeleteTenant(ctx, tenantID); err != nil {
		h.handleError(ctx, w, err)
		return
	}

	response.Success(w, entity.DeleteTenantResponse{
		Success:  true,
		TenantID: tenantID,
	})
}

func (h *Handler) handleError(ctx context.Context, w http.ResponseWriter, err error) {
	ctxzap.Error(ctx, "ingestion request failed", zap.Error(err))

	var httpErr *pkghttp.HTTPError
	var netErr *pkghttp.NetworkError
	switch {
	case errors.As(err, &httpErr), errors.As(err, &netErr):
		response.Error(w, http.StatusBadGateway, "upstream service failed")
	case errors.Is(err, entity.ErrMissingField), errors.Is(err, entity.ErrInvalidParameter):
		response.Error(w, http.StatusBadRequest, err.Error())
	default:
		response.Error(w, http.StatusInternalServerError, "internal server error")
	}
}

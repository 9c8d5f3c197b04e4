package query

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/parcelam/rag-gateway/internal/entity"
	"github.com/parcelam/rag-gateway/internal/pkg/logger"
	"github.com/parcelam/rag-gateway/internal/pkg/response"
	"github.com/parcelam/rag-gateway/internal/pkg/validator"
	pkghttp "github.com/parcelam/rag-gateway/pkg/http"
	"go.uber.org/zap"
)

// AssistantHandler serves POST /query in the assistant deployment.
type AssistantHandler struct {
	usecase   AssistantQueryUsecase
	validator *validator.Validator
}

func NewAssistantHandler(usecase AssistantQueryUsecase, validator *validator.Validator) *AssistantHandler {
	return &AssistantHandler{
		usecase:   usecase,
		validator: validator,
	}
}

// Query handles POST /query - forward the question to the hosted assistant
func (h *AssistantHandler) Query(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "AssistantQuery")

	req, ok := decodeQueryRequest(ctx, w, r, h.validator)
	if !ok {
		return
	}

	ctx = logger.AddFields(ctx, zap.String("tenant_id", req.TenantID))
	ctxzap.Info(ctx, "forwarding question to assistant")

	resp, err := h.usecase.Query(ctx, req)
	if err != nil {
		handleQueryError(ctx, w, err)
		return
	}

	ctxzap.Info(ctx, "question answered", zap.Int("citation_count", len(resp.Citations)))
	response.Success(w, resp)
}

// SearchHandler serves POST /query in the deprecated raw-search deployment.
type SearchHandler struct {
	usecase   SearchQueryUsecase
	validator *validator.Validator
}

func NewSearchHandler(usecase SearchQueryUsecase, validator *validator.Validator) *SearchHandler {
	return &SearchHandler{
		usecase:   usecase,
		validator: validator,
	}
}

// Query handles POST /query - provider-side search plus a local context answer
func (h *SearchHandler) Query(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "SearchQuery")

	req, ok := decodeQueryRequest(ctx, w, r, h.validator)
	if !ok {
		return
	}

	ctx = logger.AddFields(ctx, zap.String("tenant_id", req.TenantID))
	ctxzap.Info(ctx, "searching tenant namespace")

	resp, err := h.usecase.Query(ctx, req)
	if err != nil {
		handleQueryError(ctx, w, err)
		return
	}

	ctxzap.Info(ctx, "question answered", zap.Int("context_count", len(resp.Context)))
	response.Success(w, resp)
}

func decodeQueryRequest(ctx context.Context, w http.ResponseWriter, r *http.Request, v *validator.Validator) (*entity.QueryRequest, bool) {
	var req entity.QueryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		ctxzap.Error(ctx, "failed to decode request body", zap.Error(err))
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return nil, false
	}

	if err := v.ValidateQuery(&req); err != nil {
		ctxzap.Error(ctx, "failed to validate request", zap.Error(err))
		response.Error(w, http.StatusBadRequest, err.Error())
		return nil, false
	}

	return &req, true
}

func handleQueryError(ctx context.Context, w http.ResponseWriter, err error) {
	ctxzap.Error(ctx, "query failed", zap.Error(err))

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

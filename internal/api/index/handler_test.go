package index

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/parcelam/rag-gateway/internal/entity"
	"github.com/parcelam/rag-gateway/internal/pkg/validator"
	pkghttp "github.com/parcelam/rag-gateway/pkg/http"
)

type stubUsecase struct {
	indexed   int
	err       error
	calls     int
	deleted   []string
	deleteErr error
}

func (s *stubUsecase) Index(ctx context.Context, req *entity.IndexRequest) (int, error) {
	s.calls++
	if s.err != nil {
		return 0, s.err
	}
	if s.indexed == 0 {
		return len(req.Documents), nil
	}
	return s.indexed, nil
}

func (s *stubUsecase) IndexSample(ctx context.Context, tenantID string) (int, error) {
	s.calls++
	return len(entity.SampleParcelDocuments), s.err
}

func (s *stubUsecase) DeleteTenant(ctx context.Context, tenantID string) error {
	s.deleted = append(s.deleted, tenantID)
	return s.deleteErr
}

func newTestRouter(stub *stubUsecase) http.Handler {
	r := chi.NewRouter()
	RegisterRoutes(r, NewHandler(stub, validator.New()))
	return r
}

func TestIndex_Success(t *testing.T) {
	stub := &stubUsecase{}
	router := newTestRouter(stub)

	body := `{"tenant_id":"acme","documents":[{"_id":"doc1","content":"tracking help"}]}`
	req := httptest.NewRequest(http.MethodPost, "/index", strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp entity.IndexResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success || resp.Indexed != 1 || resp.TenantID != "acme" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestIndex_ValidationRejectedBeforeUpstreamCall(t *testing.T) {
	cases := []string{
		`{"tenant_id":"","documents":[{"content":"x"}]}`,
		`{"tenant_id":"acme","documents":[]}`,
		`{"tenant_id":"acme","documents":[{"_id":"d1"}]}`,
	}

	for _, body := range cases {
		stub := &stubUsecase{}
		router := newTestRouter(stub)

		req := httptest.NewRequest(http.MethodPost, "/index", strings.NewReader(body))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("body %q: expected 400, got %d", body, w.Code)
		}
		if stub.calls != 0 {
			t.Errorf("body %q: upstream called before validation", body)
		}
	}
}

func TestIndex_UpstreamFailureIsBadGateway(t *testing.T) {
	stub := &stubUsecase{
		err: fmt.Errorf("upsert batch starting at 0: %w", &pkghttp.HTTPError{StatusCode: 500, Message: "boom"}),
	}
	router := newTestRouter(stub)

	body := `{"tenant_id":"acme","documents":[{"content":"x"}]}`
	req := httptest.NewRequest(http.MethodPost, "/index", strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", w.Code)
	}
}

func TestIndexSample_RequiresTenantID(t *testing.T) {
	stub := &stubUsecase{}
	router := newTestRouter(stub)

	req := httptest.NewRequest(http.MethodPost, "/index-sample", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if stub.calls != 0 {
		t.Fatal("upstream called without tenant_id")
	}
}

func TestIndexSample_Success(t *testing.T) {
	stub := &stubUsecase{}
	router := newTestRouter(stub)

	req := httptest.NewRequest(http.MethodPost, "/index-sample?tenant_id=acme", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp entity.IndexResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Indexed != len(entity.SampleParcelDocuments) {
		t.Fatalf("expected %d indexed, got %d", len(entity.SampleParcelDocuments), resp.Indexed)
	}
	if resp.Message == "" {
		t.Fatal("expected indexing-lag hint message")
	}
}

func TestDeleteTenant_Success(t *testing.T) {
	stub := &stubUsecase{}
	router := newTestRouter(stub)

	req := httptest.NewRequest(http.MethodDelete, "/tenant/acme", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	if len(stub.deleted) != 1 || stub.deleted[0] != "acme" {
		t.Fatalf("expected acme deleted, got %v", stub.deleted)
	}

	var resp entity.DeleteTenantResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success || resp.TenantID != "acme" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

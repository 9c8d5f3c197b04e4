package meta

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/parcelam/rag-gateway/internal/entity"
)

func TestHealth_AlwaysHealthy(t *testing.T) {
	h := NewHandler("ParcelAm RAG API", "1.0.0", "assistant")

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	h.Health(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp entity.HealthResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Status != "healthy" {
		t.Fatalf("expected healthy, got %q", resp.Status)
	}
	if resp.Mode != "assistant" {
		t.Fatalf("expected assistant mode, got %q", resp.Mode)
	}
}

func TestRoot_ServiceMetadata(t *testing.T) {
	h := NewHandler("ParcelAm RAG API", "1.0.0", "search")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	h.Root(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp entity.ServiceMeta
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Service != "ParcelAm RAG API" || resp.Version != "1.0.0" || resp.Status != "running" {
		t.Fatalf("unexpected metadata: %+v", resp)
	}
	if resp.Mode != "search" {
		t.Fatalf("expected search mode, got %q", resp.Mode)
	}
}

package query

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/parcelam/rag-gateway/internal/entity"
	"github.com/parcelam/rag-gateway/internal/pkg/validator"
	pkghttp "github.com/parcelam/rag-gateway/pkg/http"
)

type stubAssistantUsecase struct {
	resp  *entity.AssistantQueryResponse
	err   error
	calls int
}

func (s *stubAssistantUsecase) Query(ctx context.Context, req *entity.QueryRequest) (*entity.AssistantQueryResponse, error) {
	s.calls++
	return s.resp, s.err
}

type stubSearchUsecase struct {
	resp  *entity.SearchQueryResponse
	err   error
	calls int
}

func (s *stubSearchUsecase) Query(ctx context.Context, req *entity.QueryRequest) (*entity.SearchQueryResponse, error) {
	s.calls++
	return s.resp, s.err
}

func postQuery(t *testing.T, handler http.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/query", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	handler(w, req)
	return w
}

func TestAssistantQuery_RelaysFields(t *testing.T) {
	stub := &stubAssistantUsecase{
		resp: &entity.AssistantQueryResponse{
			Answer: "Standard delivery takes 5-7 business days.",
			Citations: []entity.Citation{
				{Document: "delivery-times.pdf", Pages: []int{2}},
			},
			TenantID: "acme",
		},
	}
	h := NewAssistantHandler(stub, validator.New())

	w := postQuery(t, h.Query, `{"tenant_id":"acme","question":"how long?"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp map[string]any
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if resp["answer"] != "Standard delivery takes 5-7 business days." {
		t.Fatalf("answer not relayed: %v", resp["answer"])
	}
	citations, ok := resp["citations"].([]any)
	if !ok || len(citations) != 1 {
		t.Fatalf("citations not relayed: %v", resp["citations"])
	}
	if resp["tenant_id"] != "acme" {
		t.Fatalf("tenant_id not relayed: %v", resp["tenant_id"])
	}
}

func TestAssistantQuery_EmptyFieldsRejectedBeforeUpstreamCall(t *testing.T) {
	cases := []string{
		`{"tenant_id":"","question":"hi"}`,
		`{"tenant_id":"acme","question":""}`,
		`{"question":"hi"}`,
		`not json`,
	}

	for _, body := range cases {
		stub := &stubAssistantUsecase{}
		h := NewAssistantHandler(stub, validator.New())

		w := postQuery(t, h.Query, body)

		if w.Code != http.StatusBadRequest {
			t.Errorf("body %q: expected 400, got %d", body, w.Code)
		}
		if stub.calls != 0 {
			t.Errorf("body %q: upstream called %d times before validation", body, stub.calls)
		}
	}
}

func TestAssistantQuery_UpstreamFailureIsBadGateway(t *testing.T) {
	stub := &stubAssistantUsecase{
		err: fmt.Errorf("query assistant: %w", &pkghttp.HTTPError{StatusCode: 500, Message: "upstream down"}),
	}
	h := NewAssistantHandler(stub, validator.New())

	w := postQuery(t, h.Query, `{"tenant_id":"acme","question":"hi"}`)

	if w.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", w.Code)
	}

	var resp entity.ErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	if resp.Message != "upstream service failed" {
		t.Fatalf("unexpected message: %q", resp.Message)
	}
}

func TestAssistantQuery_NetworkFailureIsBadGateway(t *testing.T) {
	stub := &stubAssistantUsecase{
		err: fmt.Errorf("query assistant: %w", &pkghttp.NetworkError{Err: fmt.Errorf("connection refused")}),
	}
	h := NewAssistantHandler(stub, validator.New())

	w := postQuery(t, h.Query, `{"tenant_id":"acme","question":"hi"}`)

	if w.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", w.Code)
	}
}

func TestSearchQuery_RelaysContext(t *testing.T) {
	stub := &stubSearchUsecase{
		resp: &entity.SearchQueryResponse{
			Answer: "Based on the documentation:\n\n1. How to Track Your Parcel (Relevance: 92.0%)\n...",
			Context: []entity.Source{
				{ID: "doc1", Title: "How to Track Your Parcel", Content: "Enter your tracking number.", Score: 0.92},
			},
			TenantID: "acme",
		},
	}
	h := NewSearchHandler(stub, validator.New())

	w := postQuery(t, h.Query, `{"tenant_id":"acme","question":"tracking?"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp map[string]any
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	snippets, ok := resp["context"].([]any)
	if !ok || len(snippets) != 1 {
		t.Fatalf("context not relayed: %v", resp["context"])
	}
	if _, hasCitations := resp["citations"]; hasCitations {
		t.Fatal("search response must not carry citations field")
	}
}

func TestSearchQuery_ValidationBeforeUpstreamCall(t *testing.T) {
	stub := &stubSearchUsecase{}
	h := NewSearchHandler(stub, validator.New())

	w := postQuery(t, h.Query, `{"tenant_id":"  ","question":"hi"}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if stub.calls != 0 {
		t.Fatalf("upstream called before validation")
	}
}

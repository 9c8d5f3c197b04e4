package query

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/parcelam/rag-gateway/internal/entity"
	"go.uber.org/zap"
)

type stubAssistant struct {
	answer *entity.AssistantAnswer
	err    error
	calls  int
}

func (s *stubAssistant) Chat(ctx context.Context, tenantID, question string, filter map[string]any) (*entity.AssistantAnswer, error) {
	s.calls++
	return s.answer, s.err
}

type stubSearch struct {
	sources []entity.Source
	err     error
}

func (s *stubSearch) Search(ctx context.Context, tenantID, question string, filter map[string]any, topK int) ([]entity.Source, error) {
	return s.sources, s.err
}

func TestAssistantUsecase_RelaysAnswerAndCitations(t *testing.T) {
	stub := &stubAssistant{
		answer: &entity.AssistantAnswer{
			Answer: "Standard delivery takes 5-7 business days.",
			Citations: []entity.Citation{
				{Document: "delivery-times.pdf", Pages: []int{2}, Snippet: "5-7 business days"},
			},
		},
	}
	u := NewAssistantUsecase(stub, zap.NewNop())

	resp, err := u.Query(context.Background(), &entity.QueryRequest{TenantID: "acme", Question: "how long?"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.Answer != stub.answer.Answer {
		t.Fatalf("answer not relayed: %q", resp.Answer)
	}
	if len(resp.Citations) != 1 || resp.Citations[0].Document != "delivery-times.pdf" {
		t.Fatalf("citations not relayed: %+v", resp.Citations)
	}
	if resp.TenantID != "acme" {
		t.Fatalf("expected tenant acme, got %q", resp.TenantID)
	}
}

func TestAssistantUsecase_NilCitationsBecomeEmptyList(t *testing.T) {
	stub := &stubAssistant{answer: &entity.AssistantAnswer{Answer: "hi"}}
	u := NewAssistantUsecase(stub, zap.NewNop())

	resp, err := u.Query(context.Background(), &entity.QueryRequest{TenantID: "acme", Question: "q"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.Citations == nil {
		t.Fatal("expected empty citations slice, got nil")
	}
}

func TestAssistantUsecase_PropagatesError(t *testing.T) {
	wantErr := errors.New("boom")
	u := NewAssistantUsecase(&stubAssistant{err: wantErr}, zap.NewNop())

	_, err := u.Query(context.Background(), &entity.QueryRequest{TenantID: "acme", Question: "q"})
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected wrapped boom, got %v", err)
	}
}

func TestSearchUsecase_BuildsAnswerFromSources(t *testing.T) {
	stub := &stubSearch{
		sources: []entity.Source{
			{ID: "doc1", Title: "How to Track Your Parcel", Content: "Enter your tracking number.", Score: 0.92},
			{ID: "doc2", Title: "Delivery Time Estimates", Content: "Varies by service level.", Score: 0.81},
		},
	}
	u := NewSearchUsecase(stub, zap.NewNop())

	resp, err := u.Query(context.Background(), &entity.QueryRequest{TenantID: "acme", Question: "tracking?"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.HasPrefix(resp.Answer, "Based on the documentation:") {
		t.Fatalf("unexpected answer prefix: %q", resp.Answer)
	}
	if !strings.Contains(resp.Answer, "How to Track Your Parcel (Relevance: 92.0%)") {
		t.Fatalf("expected relevance line in answer, got: %q", resp.Answer)
	}
	if len(resp.Context) != 2 {
		t.Fatalf("expected 2 context snippets, got %d", len(resp.Context))
	}
}

func TestSearchUsecase_NoSources(t *testing.T) {
	u := NewSearchUsecase(&stubSearch{}, zap.NewNop())

	resp, err := u.Query(context.Background(), &entity.QueryRequest{TenantID: "acme", Question: "q"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.Answer != noResultsAnswer {
		t.Fatalf("expected fallback answer, got %q", resp.Answer)
	}
	if resp.Context == nil || len(resp.Context) != 0 {
		t.Fatalf("expected empty context slice, got %#v", resp.Context)
	}
}

func TestBuildContextAnswer_UsesAtMostThreeSources(t *testing.T) {
	sources := []entity.Source{
		{Title: "One", Content: "a", Score: 0.9},
		{Title: "Two", Content: "b", Score: 0.8},
		{Title: "Three", Content: "c", Score: 0.7},
		{Title: "Four", Content: "d", Score: 0.6},
	}

	answer := buildContextAnswer(sources)

	if strings.Contains(answer, "Four") {
		t.Fatalf("expected at most 3 sources in answer, got: %q", answer)
	}
	if !strings.Contains(answer, "3. Three") {
		t.Fatalf("expected third source in answer, got: %q", answer)
	}
}

func TestBuildContextAnswer_TruncatesLongContent(t *testing.T) {
	long := strings.Repeat("x", 1000)
	answer := buildContextAnswer([]entity.Source{{Title: "Doc", Content: long, Score: 0.5}})

	if strings.Contains(answer, strings.Repeat("x", 301)) {
		t.Fatalf("expected content truncated to %d chars", contextSnippetLimit)
	}
	if !strings.Contains(answer, strings.Repeat("x", 300)+"...") {
		t.Fatal("expected ellipsis after truncated content")
	}
}

func TestBuildContextAnswer_UntitledSource(t *testing.T) {
	answer := buildContextAnswer([]entity.Source{{Content: "text", Score: 0.5}})

	if !strings.Contains(answer, "1. Document") {
		t.Fatalf("expected fallback title, got: %q", answer)
	}
}

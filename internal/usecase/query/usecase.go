package query

import (
	"context"
	"fmt"
	"strings"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/parcelam/rag-gateway/internal/entity"
	"go.uber.org/zap"
)

const (
	// contextAnswerSources is how many top snippets go into the built answer.
	contextAnswerSources = 3
	// contextSnippetLimit bounds each snippet inside the built answer.
	contextSnippetLimit = 300

	noResultsAnswer = "I couldn't find relevant information to answer your question."
)

// AssistantUsecase forwards questions to the hosted assistant and relays the
// cited answer untouched.
type AssistantUsecase struct {
	connector AssistantConnector
	logger    *zap.Logger
}

func NewAssistantUsecase(connector AssistantConnector, logger *zap.Logger) *AssistantUsecase {
	return &AssistantUsecase{
		connector: connector,
		logger:    logger,
	}
}

func (u *AssistantUsecase) Query(ctx context.Context, req *entity.QueryRequest) (*entity.AssistantQueryResponse, error) {
	answer, err := u.connector.Chat(ctx, req.TenantID, req.Question, req.Filter)
	if err != nil {
		return nil, fmt.Errorf("query assistant: %w", err)
	}

	citations := answer.Citations
	if citations == nil {
		citations = []entity.Citation{}
	}

	return &entity.AssistantQueryResponse{
		Answer:    answer.Answer,
		Citations: citations,
		TenantID:  req.TenantID,
	}, nil
}

// SearchUsecase runs the raw-search path: provider-side retrieval and rerank,
// then a context-style answer built locally from the ranked snippets.
type SearchUsecase struct {
	connector SearchConnector
	logger    *zap.Logger
}

func NewSearchUsecase(connector SearchConnector, logger *zap.Logger) *SearchUsecase {
	return &SearchUsecase{
		connector: connector,
		logger:    logger,
	}
}

func (u *SearchUsecase) Query(ctx context.Context, req *entity.QueryRequest) (*entity.SearchQueryResponse, error) {
	sources, err := u.connector.Search(ctx, req.TenantID, req.Question, req.Filter, req.TopK)
	if err != nil {
		return nil, fmt.Errorf("search tenant namespace: %w", err)
	}

	ctxzap.Debug(ctx, "building context answer", zap.Int("source_count", len(sources)))

	if sources == nil {
		sources = []entity.Source{}
	}

	return &entity.SearchQueryResponse{
		Answer:   buildContextAnswer(sources),
		Context:  sources,
		TenantID: req.TenantID,
	}, nil
}

// buildContextAnswer assembles a readable answer from the top snippets.
// There is no LLM on this path.
func buildContextAnswer(sources []entity.Source) string {
	if len(sources) == 0 {
		return noResultsAnswer
	}

	var b strings.Builder
	b.WriteString("Based on the documentation:\n\n")

	for i, source := range sources {
		if i == contextAnswerSources {
			break
		}

		title := source.Title
		if title == "" {
			title = "Document"
		}

		fmt.Fprintf(&b, "%d. %s (Relevance: %.1f%%)\n", i+1, title, source.Score*100)
		fmt.Fprintf(&b, "%s...\n\n", truncate(source.Content, contextSnippetLimit))
	}

	return b.String()
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}

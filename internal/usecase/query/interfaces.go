package query

import (
	"context"

	"github.com/parcelam/rag-gateway/internal/entity"
)

type AssistantConnector interface {
	Chat(ctx context.Context, tenantID, question string, filter map[string]any) (*entity.AssistantAnswer, error)
}

type SearchConnector interface {
	Search(ctx context.Context, tenantID, question string, filter map[string]any, topK int) ([]entity.Source, error)
}

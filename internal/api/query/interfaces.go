package query

import (
	"context"

	"github.com/parcelam/rag-gateway/internal/entity"
)

type AssistantQueryUsecase interface {
	Query(ctx context.Context, req *entity.QueryRequest) (*entity.AssistantQueryResponse, error)
}

type SearchQueryUsecase interface {
	Query(ctx context.Context, req *entity.QueryRequest) (*entity.SearchQueryResponse, error)
}

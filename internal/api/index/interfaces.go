package index

import (
	"context"

	"github.com/parcelam/rag-gateway/internal/entity"
)

type IndexUsecase interface {
	Index(ctx context.Context, req *entity.IndexRequest) (int, error)
	IndexSample(ctx context.Context, tenantID string) (int, error)
	DeleteTenant(ctx context.Context, tenantID string) error
}

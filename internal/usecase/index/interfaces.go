package index

import (
	"context"

	"github.com/parcelam/rag-gateway/internal/entity"
)

type SearchConnector interface {
	Upsert(ctx context.Context, tenantID string, documents []entity.Document) error
	DeleteNamespace(ctx context.Context, tenantID string) error
}

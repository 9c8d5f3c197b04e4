package index

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/parcelam/rag-gateway/internal/entity"
	"go.uber.org/zap"
)

// Usecase handles document ingestion and tenant deletion for the deprecated
// raw-search deployment. All durable state lives upstream.
type Usecase struct {
	connector SearchConnector
	batchSize int
	logger    *zap.Logger
}

func NewUsecase(connector SearchConnector, batchSize int, logger *zap.Logger) *Usecase {
	return &Usecase{
		connector: connector,
		batchSize: batchSize,
		logger:    logger,
	}
}

// Index upserts the documents into the tenant's namespace in batches and
// returns how many were written. Documents without an ID get one assigned.
func (u *Usecase) Index(ctx context.Context, req *entity.IndexRequest) (int, error) {
	documents := make([]entity.Document, len(req.Documents))
	copy(documents, req.Documents)

	for i := range documents {
		if documents[i].ID == "" {
			documents[i].ID = uuid.NewString()
		}
	}

	indexed := 0
	for start := 0; start < len(documents); start += u.batchSize {
		end := start + u.batchSize
		if end > len(documents) {
			end = len(documents)
		}

		if err := u.connector.Upsert(ctx, req.TenantID, documents[start:end]); err != nil {
			return indexed, fmt.Errorf("upsert batch starting at %d: %w", start, err)
		}
		indexed += end - start
	}

	ctxzap.Info(ctx, "documents indexed",
		zap.String("tenant_id", req.TenantID),
		zap.Int("indexed", indexed),
	)

	return indexed, nil
}

// IndexSample indexes the built-in sample parcel corpus for a tenant.
func (u *Usecase) IndexSample(ctx context.Context, tenantID string) (int, error) {
	return u.Index(ctx, &entity.IndexRequest{
		TenantID:  tenantID,
		Documents: entity.SampleParcelDocuments,
	})
}

// DeleteTenant removes all records in the tenant's namespace upstream.
func (u *Usecase) DeleteTenant(ctx context.Context, tenantID string) error {
	if err := u.connector.DeleteNamespace(ctx, tenantID); err != nil {
		return fmt.Errorf("delete tenant namespace: %w", err)
	}

	ctxzap.Info(ctx, "tenant data deleted", zap.String("tenant_id", tenantID))
	return nil
}

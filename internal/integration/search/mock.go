package search

import (
	"context"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/parcelam/rag-gateway/internal/entity"
	"go.uber.org/zap"
)

// MockConnector is a stand-in search backend used when ENABLE_MOCKS is set.
type MockConnector struct {
	logger *zap.Logger
}

func NewMockConnector(logger *zap.Logger) *MockConnector {
	return &MockConnector{
		logger: logger,
	}
}

func (m *MockConnector) Search(ctx context.Context, tenantID, question string, filter map[string]any, topK int) ([]entity.Source, error) {
	ctxzap.Info(ctx, "[MOCK] searching tenant namespace",
		zap.String("tenant_id", tenantID),
		zap.String("question", question),
	)

	return []entity.Source{
		{
			ID:      "doc1",
			Title:   "How to Track Your Parcel",
			Content: "Parcel tracking allows customers to monitor their shipment in real-time.",
			Score:   0.92,
		},
		{
			ID:      "doc2",
			Title:   "Delivery Time Estimates",
			Content: "Package delivery times vary by service level.",
			Score:   0.81,
		},
	}, nil
}

func (m *MockConnector) Upsert(ctx context.Context, tenantID string, documents []entity.Document) error {
	ctxzap.Info(ctx, "[MOCK] upserting records",
		zap.String("tenant_id", tenantID),
		zap.Int("record_count", len(documents)),
	)
	return nil
}

func (m *MockConnector) DeleteNamespace(ctx context.Context, tenantID string) error {
	ctxzap.Info(ctx, "[MOCK] deleting tenant namespace",
		zap.String("tenant_id", tenantID),
	)
	return nil
}

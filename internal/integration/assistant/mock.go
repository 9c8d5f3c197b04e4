package assistant

import (
	"context"
	"fmt"
	"time"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/parcelam/rag-gateway/internal/entity"
	"go.uber.org/zap"
)

// MockConnector is a stand-in assistant used when ENABLE_MOCKS is set.
type MockConnector struct {
	logger *zap.Logger
}

func NewMockConnector(logger *zap.Logger) *MockConnector {
	return &MockConnector{
		logger: logger,
	}
}

func (m *MockConnector) Chat(ctx context.Context, tenantID, question string, filter map[string]any) (*entity.AssistantAnswer, error) {
	ctxzap.Info(ctx, "[MOCK] querying hosted assistant",
		zap.String("tenant_id", tenantID),
		zap.String("question", question),
	)

	return &entity.AssistantAnswer{
		Answer: fmt.Sprintf("Mock answer for tenant %s: standard delivery takes 5-7 business days.", tenantID),
		Citations: []entity.Citation{
			{
				Document: "delivery-times.pdf",
				Pages:    []int{2},
				Snippet:  "Standard (5-7 business days), Express (2-3 business days)",
			},
		},
	}, nil
}

func (m *MockConnector) Status(ctx context.Context) (*entity.AssistantStatus, error) {
	ctxzap.Info(ctx, "[MOCK] checking assistant status")

	return &entity.AssistantStatus{
		Assistant: "mock-assistant",
		Status:    "Ready",
		Reachable: true,
		CheckedAt: time.Now().UTC(),
	}, nil
}

package assistant

import (
	"context"

	"github.com/parcelam/rag-gateway/internal/entity"
)

type StatusProbe interface {
	Status(ctx context.Context) (*entity.AssistantStatus, error)
}

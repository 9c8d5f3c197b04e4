package validator

import (
	"fmt"
	"strings"

	"github.com/parcelam/rag-gateway/internal/entity"
)

// ValidateQuery validates QueryRequest
func (v *Validator) ValidateQuery(req *entity.QueryRequest) error {
	if strings.TrimSpace(req.TenantID) == "" {
		return fmt.Errorf("%w: tenant_id", entity.ErrMissingField)
	}

	if strings.TrimSpace(req.Question) == "" {
		return fmt.Errorf("%w: question", entity.ErrMissingField)
	}

	if req.TopK < 0 {
		return fmt.Errorf("%w: top_k must not be negative", entity.ErrInvalidParameter)
	}

	return nil
}

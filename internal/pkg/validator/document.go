package validator

import (
	"fmt"
	"strings"

	"github.com/parcelam/rag-gateway/internal/entity"
)

// ValidateIndex validates IndexRequest
func (v *Validator) ValidateIndex(req *entity.IndexRequest) error {
	if strings.TrimSpace(req.TenantID) == "" {
		return fmt.Errorf("%w: tenant_id", entity.ErrMissingField)
	}

	if len(req.Documents) == 0 {
		return fmt.Errorf("%w: documents", entity.ErrMissingField)
	}

	for i, doc := range req.Documents {
		if strings.TrimSpace(doc.Content) == "" {
			return fmt.Errorf("%w: documents[%d].content", entity.ErrMissingField, i)
		}
	}

	return nil
}

// ValidateTenantID validates a bare tenant identifier (path or query param)
func (v *Validator) ValidateTenantID(tenantID string) error {
	if strings.TrimSpace(tenantID) == "" {
		return fmt.Errorf("%w: tenant_id", entity.ErrMissingField)
	}

	return nil
}

package entity

// Document is one unit of ingestion for the raw-search deployment. The wire
// name "_id" matches the provider's record identifier field.
type Document struct {
	ID       string         `json:"_id,omitempty"`
	Title    string         `json:"title,omitempty"`
	Content  string         `json:"content"`
	Category string         `json:"category,omitempty"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// IndexRequest is the inbound body of POST /index.
type IndexRequest struct {
	TenantID  string     `json:"tenant_id"`
	Documents []Document `json:"documents"`
}

// IndexResponse reports how many documents were upserted for a tenant.
type IndexResponse struct {
	Success  bool   `json:"success"`
	Indexed  int    `json:"indexed"`
	TenantID string `json:"tenant_id"`
	Message  string `json:"message,omitempty"`
}

// DeleteTenantResponse is the body of DELETE /tenant/{tenant_id}.
type DeleteTenantResponse struct {
	Success  bool   `json:"success"`
	TenantID string `json:"tenant_id"`
}

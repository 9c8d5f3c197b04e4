package entity

// QueryRequest is the inbound body of POST /query in both deployments.
type QueryRequest struct {
	TenantID string         `json:"tenant_id"`
	Question string         `json:"question"`
	Filter   map[string]any `json:"filter,omitempty"`
	TopK     int            `json:"top_k,omitempty"`
}

// Citation references the source document that supported a generated answer.
// It is relayed from the assistant provider as-is.
type Citation struct {
	Document string `json:"document"`
	Pages    []int  `json:"pages,omitempty"`
	Snippet  string `json:"snippet,omitempty"`
}

// Source is one ranked snippet returned by the raw-search path.
type Source struct {
	ID       string         `json:"id"`
	Title    string         `json:"title"`
	Content  string         `json:"content"`
	Score    float64        `json:"score"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// AssistantQueryResponse relays the hosted assistant's answer.
type AssistantQueryResponse struct {
	Answer    string     `json:"answer"`
	Citations []Citation `json:"citations"`
	TenantID  string     `json:"tenant_id"`
}

// SearchQueryResponse carries the locally built context answer plus the raw
// snippets the caller may render itself.
type SearchQueryResponse struct {
	Answer   string   `json:"answer"`
	Context  []Source `json:"context"`
	TenantID string   `json:"tenant_id"`
}

// ErrorResponse is the error body shared by all endpoints.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

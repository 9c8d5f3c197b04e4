package entity

import "time"

// AssistantAnswer is what the assistant connector returns to the usecase.
type AssistantAnswer struct {
	Answer    string
	Citations []Citation
}

// AssistantStatus is the body of GET /assistant/status.
type AssistantStatus struct {
	Assistant string    `json:"assistant"`
	Status    string    `json:"status"`
	Reachable bool      `json:"reachable"`
	CheckedAt time.Time `json:"checked_at"`
}

// AssistantInfo is the body of GET /assistant/info, consumed by the mobile
// frontend for display only.
type AssistantInfo struct {
	Service          string `json:"service"`
	Assistant        string `json:"assistant"`
	Host             string `json:"host"`
	APIKeyConfigured bool   `json:"api_key_configured"`
}

// ContextSettings is the body of GET /assistant/context: the retrieval
// parameters in effect upstream. Purely informational.
type ContextSettings struct {
	TopK        int    `json:"top_k"`
	RerankModel string `json:"rerank_model"`
	SnippetSize int    `json:"snippet_size"`
}

// ServiceMeta is the body of GET /.
type ServiceMeta struct {
	Service string `json:"service"`
	Status  string `json:"status"`
	Version string `json:"version"`
	Mode    string `json:"mode"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status string `json:"status"`
	Mode   string `json:"mode"`
}

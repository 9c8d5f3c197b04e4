package search

import (
	"context"
	"fmt"
	"net/http"

	"github.com/avast/retry-go/v4"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/parcelam/rag-gateway/internal/config"
	"github.com/parcelam/rag-gateway/internal/entity"
	"github.com/parcelam/rag-gateway/internal/integration/common"
	pkghttp "github.com/parcelam/rag-gateway/pkg/http"
	"go.uber.org/zap"
)

type Connector struct {
	config    config.SearchConnectorConfig
	connector *pkghttp.Connector
	logger    *zap.Logger
}

func NewConnector(
	cfg config.SearchConnectorConfig,
	logger *zap.Logger,
) *Connector {
	return &Connector{
		connector: common.NewBaseConnector(cfg.HTTPClientConfig, logger),
		config:    cfg,
		logger:    logger,
	}
}

// provider wire format

type searchQuery struct {
	Inputs struct {
		Text string `json:"text"`
	} `json:"inputs"`
	TopK   int            `json:"top_k"`
	Filter map[string]any `json:"filter,omitempty"`
}

type searchRerank struct {
	Model      string   `json:"model"`
	TopN       int      `json:"top_n"`
	RankFields []string `json:"rank_fields"`
}

type searchRequest struct {
	Query  searchQuery  `json:"query"`
	Rerank searchRerank `json:"rerank"`
}

type searchHit struct {
	ID     string         `json:"_id"`
	Score  float64        `json:"_score"`
	Fields map[string]any `json:"fields"`
}

type searchResponse struct {
	Result struct {
		Hits []searchHit `json:"hits"`
	} `json:"result"`
}

type upsertRequest struct {
	Records []map[string]any `json:"records"`
}

// Search runs a reranked semantic search in the tenant's namespace and
// returns at most topK ranked sources. The provider is asked for twice as
// many hits so its reranker has candidates to discard.
// POST {host}/records/namespaces/{tenant}/search
func (c *Connector) Search(ctx context.Context, tenantID, question string, filter map[string]any, topK int) ([]entity.Source, error) {
	if topK <= 0 {
		topK = c.config.TopK
	}

	endpoint := fmt.Sprintf("/records/namespaces/%s/search", tenantID)

	req := searchRequest{
		Rerank: searchRerank{
			Model:      c.config.RerankModel,
			TopN:       topK,
			RankFields: []string{"content"},
		},
	}
	req.Query.Inputs.Text = question
	req.Query.TopK = topK * 2
	req.Query.Filter = filter

	ctxzap.Debug(ctx, "searching tenant namespace",
		zap.String("tenant_id", tenantID),
		zap.Int("top_k", topK),
	)

	var resp searchResponse
	if err := c.connector.DoRequest(ctx, http.MethodPost, endpoint, req, &resp); err != nil {
		ctxzap.Error(ctx, "search failed", zap.Error(err))
		return nil, err
	}

	hits := resp.Result.Hits
	if len(hits) > topK {
		hits = hits[:topK]
	}

	sources := make([]entity.Source, 0, len(hits))
	for _, hit := range hits {
		sources = append(sources, toSource(hit))
	}

	ctxzap.Debug(ctx, "search completed", zap.Int("hit_count", len(sources)))
	return sources, nil
}

// Upsert writes one batch of records into the tenant's namespace. Transient
// upstream failures are retried with backoff; the query path never retries.
// POST {host}/records/namespaces/{tenant}/upsert
func (c *Connector) Upsert(ctx context.Context, tenantID string, documents []entity.Document) error {
	endpoint := fmt.Sprintf("/records/namespaces/%s/upsert", tenantID)

	req := upsertRequest{Records: make([]map[string]any, 0, len(documents))}
	for _, doc := range documents {
		req.Records = append(req.Records, toRecord(doc))
	}

	ctxzap.Info(ctx, "upserting records",
		zap.String("tenant_id", tenantID),
		zap.Int("record_count", len(req.Records)),
	)

	err := retry.Do(
		func() error {
			return c.connector.DoRequest(ctx, http.MethodPost, endpoint, req, nil)
		},
		append(c.config.Retry.ToRetryOptions(), retry.Context(ctx))...,
	)
	if err != nil {
		ctxzap.Error(ctx, "upsert failed", zap.Error(err))
		return err
	}

	return nil
}

// DeleteNamespace removes every record belonging to the tenant.
// DELETE {host}/namespaces/{tenant}
func (c *Connector) DeleteNamespace(ctx context.Context, tenantID string) error {
	endpoint := fmt.Sprintf("/namespaces/%s", tenantID)

	ctxzap.Info(ctx, "deleting tenant namespace", zap.String("tenant_id", tenantID))

	if err := c.connector.DoRequest(ctx, http.MethodDelete, endpoint, nil, nil); err != nil {
		ctxzap.Error(ctx, "namespace deletion failed", zap.Error(err))
		return err
	}

	return nil
}

func toSource(hit searchHit) entity.Source {
	source := entity.Source{
		ID:    hit.ID,
		Title: "Untitled",
		Score: hit.Score,
	}

	metadata := make(map[string]any)
	for key, value := range hit.Fields {
		switch key {
		case "title":
			if s, ok := value.(string); ok {
				source.Title = s
			}
		case "content":
			if s, ok := value.(string); ok {
				source.Content = s
			}
		default:
			metadata[key] = value
		}
	}

	if len(metadata) > 0 {
		source.Metadata = metadata
	}

	return source
}

func toRecord(doc entity.Document) map[string]any {
	record := map[string]any{
		"_id":     doc.ID,
		"content": doc.Content,
	}

	if doc.Title != "" {
		record["title"] = doc.Title
	}
	if doc.Category != "" {
		record["category"] = doc.Category
	}
	for key, value := range doc.Metadata {
		if _, reserved := record[key]; !reserved {
			record[key] = value
		}
	}

	return record
}

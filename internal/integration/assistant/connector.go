package assistant

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/parcelam/rag-gateway/internal/config"
	"github.com/parcelam/rag-gateway/internal/entity"
	"github.com/parcelam/rag-gateway/internal/integration/common"
	pkghttp "github.com/parcelam/rag-gateway/pkg/http"
	"go.uber.org/zap"
)

type Connector struct {
	config    config.AssistantConnectorConfig
	connector *pkghttp.Connector
	logger    *zap.Logger
}

func NewConnector(
	cfg config.AssistantConnectorConfig,
	logger *zap.Logger,
) *Connector {
	return &Connector{
		connector: common.NewBaseConnector(cfg.HTTPClientConfig, logger),
		config:    cfg,
		logger:    logger,
	}
}

// provider wire format

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Messages []chatMessage  `json:"messages"`
	Filter   map[string]any `json:"filter,omitempty"`
}

type chatReference struct {
	File struct {
		Name string `json:"name"`
	} `json:"file"`
	Pages     []int `json:"pages"`
	Highlight struct {
		Content string `json:"content"`
	} `json:"highlight"`
}

type chatCitation struct {
	References []chatReference `json:"references"`
}

type chatResponse struct {
	Message   chatMessage    `json:"message"`
	Citations []chatCitation `json:"citations"`
}

type describeResponse struct {
	Name   string `json:"name"`
	Status string `json:"status"`
}

// Chat sends the question to the hosted assistant scoped to the tenant's
// namespace and relays the answer with its citations.
// POST {host}/assistant/chat/{assistant}
func (c *Connector) Chat(ctx context.Context, tenantID, question string, filter map[string]any) (*entity.AssistantAnswer, error) {
	endpoint := fmt.Sprintf("/assistant/chat/%s", c.config.AssistantName)

	scoped := map[string]any{"tenant_id": tenantID}
	for k, v := range filter {
		scoped[k] = v
	}

	req := chatRequest{
		Messages: []chatMessage{{Role: "user", Content: question}},
		Filter:   scoped,
	}

	ctxzap.Debug(ctx, "querying hosted assistant",
		zap.String("tenant_id", tenantID),
		zap.String("assistant", c.config.AssistantName),
	)

	var resp chatResponse
	if err := c.connector.DoRequest(ctx, http.MethodPost, endpoint, req, &resp); err != nil {
		ctxzap.Error(ctx, "assistant chat failed", zap.Error(err))
		return nil, err
	}

	answer := &entity.AssistantAnswer{
		Answer:    resp.Message.Content,
		Citations: toCitations(resp.Citations),
	}

	ctxzap.Debug(ctx, "assistant answered",
		zap.Int("answer_length", len(answer.Answer)),
		zap.Int("citation_count", len(answer.Citations)),
	)

	return answer, nil
}

// Status checks whether the assistant is reachable and ready.
// GET {host}/assistant/describe/{assistant}
func (c *Connector) Status(ctx context.Context) (*entity.AssistantStatus, error) {
	endpoint := fmt.Sprintf("/assistant/describe/%s", c.config.AssistantName)

	var resp describeResponse
	err := c.connector.DoRequest(ctx, http.MethodGet, endpoint, nil, &resp)
	if err != nil {
		return &entity.AssistantStatus{
			Assistant: c.config.AssistantName,
			Status:    "unreachable",
			Reachable: false,
			CheckedAt: time.Now().UTC(),
		}, err
	}

	return &entity.AssistantStatus{
		Assistant: resp.Name,
		Status:    resp.Status,
		Reachable: true,
		CheckedAt: time.Now().UTC(),
	}, nil
}

func toCitations(citations []chatCitation) []entity.Citation {
	result := make([]entity.Citation, 0, len(citations))
	for _, c := range citations {
		for _, ref := range c.References {
			result = append(result, entity.Citation{
				Document: ref.File.Name,
				Pages:    ref.Pages,
				Snippet:  ref.Highlight.Content,
			})
		}
	}
	return result
}

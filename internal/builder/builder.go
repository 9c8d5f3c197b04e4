package builder

import (
	"fmt"
	"net/http"
	"time"

	"github.com/parcelam/rag-gateway/internal/api"
	assistantapi "github.com/parcelam/rag-gateway/internal/api/assistant"
	indexapi "github.com/parcelam/rag-gateway/internal/api/index"
	"github.com/parcelam/rag-gateway/internal/api/meta"
	queryapi "github.com/parcelam/rag-gateway/internal/api/query"
	"github.com/parcelam/rag-gateway/internal/config"
	assistantconn "github.com/parcelam/rag-gateway/internal/integration/assistant"
	searchconn "github.com/parcelam/rag-gateway/internal/integration/search"
	"github.com/parcelam/rag-gateway/internal/pkg/validator"
	indexuc "github.com/parcelam/rag-gateway/internal/usecase/index"
	queryuc "github.com/parcelam/rag-gateway/internal/usecase/query"
	"go.uber.org/zap"
)

const (
	ModeAssistant = "assistant"
	ModeSearch    = "search"
)

// BuildAssistant assembles the assistant-mode gateway.
func BuildAssistant() (*App, error) {
	cfg, logger, err := loadBase()
	if err != nil {
		return nil, err
	}

	logger.Info("Building assistant gateway",
		zap.String("environment", cfg.Environment),
		zap.String("server_addr", cfg.ServerAddr),
		zap.String("assistant", cfg.AssistantConnectorCfg.AssistantName),
	)

	if !cfg.EnableMocks && cfg.AssistantConnectorCfg.Url == "" {
		return nil, fmt.Errorf("ASSISTANT_SERVICE_URL is required when mocks are disabled")
	}

	var connector interface {
		queryuc.AssistantConnector
		assistantapi.StatusProbe
	}
	if cfg.EnableMocks {
		logger.Info("Using mock assistant connector")
		connector = assistantconn.NewMockConnector(logger)
	} else {
		connector = assistantconn.NewConnector(cfg.AssistantConnectorCfg, logger)
	}

	v := validator.New()
	usecase := queryuc.NewAssistantUsecase(connector, logger)

	metaHandler := meta.NewHandler(cfg.ServiceName, cfg.ServiceVersion, ModeAssistant)
	queryHandler := queryapi.NewAssistantHandler(usecase, v)
	assistantHandler := assistantapi.NewHandler(connector, cfg.AssistantConnectorCfg, cfg.ServiceName)

	router := api.SetupAssistantRouter(metaHandler, queryHandler, assistantHandler, logger)
	logger.Info("HTTP router configured")

	return newApp(cfg, router, logger), nil
}

// BuildSearch assembles the deprecated raw-search gateway.
func BuildSearch() (*App, error) {
	cfg, logger, err := loadBase()
	if err != nil {
		return nil, err
	}

	logger.Info("Building search gateway",
		zap.String("environment", cfg.Environment),
		zap.String("server_addr", cfg.ServerAddr),
		zap.String("index", cfg.SearchConnectorCfg.IndexName),
	)

	if !cfg.EnableMocks && cfg.SearchConnectorCfg.Url == "" {
		return nil, fmt.Errorf("SEARCH_SERVICE_URL is required when mocks are disabled")
	}

	var connector interface {
		queryuc.SearchConnector
		indexuc.SearchConnector
	}
	if cfg.EnableMocks {
		logger.Info("Using mock search connector")
		connector = searchconn.NewMockConnector(logger)
	} else {
		connector = searchconn.NewConnector(cfg.SearchConnectorCfg, logger)
	}

	v := validator.New()
	queryUsecase := queryuc.NewSearchUsecase(connector, logger)
	indexUsecase := indexuc.NewUsecase(connector, cfg.SearchConnectorCfg.BatchSize, logger)

	metaHandler := meta.NewHandler(cfg.ServiceName, cfg.ServiceVersion, ModeSearch)
	queryHandler := queryapi.NewSearchHandler(queryUsecase, v)
	indexHandler := indexapi.NewHandler(indexUsecase, v)

	router := api.SetupSearchRouter(metaHandler, queryHandler, indexHandler, logger)
	logger.Info("HTTP router configured")

	return newApp(cfg, router, logger), nil
}

func loadBase() (*config.Config, *zap.Logger, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := setupLogger(cfg.LogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("setup logger: %w", err)
	}

	return cfg, logger, nil
}

func newApp(cfg *config.Config, router http.Handler, logger *zap.Logger) *App {
	server := &http.Server{
		Addr:         cfg.ServerAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.Info("Application built successfully",
		zap.String("environment", cfg.Environment),
	)

	return &App{
		server: server,
		logger: logger,
	}
}

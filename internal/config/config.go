package config

import (
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	pkgRetry "github.com/parcelam/rag-gateway/internal/pkg/retry"
	"github.com/joho/godotenv"
)

// Config holds the application configuration shared by both gateway binaries.
type Config struct {
	// Server configuration
	ServerAddr string `env:"SERVER_ADDR,notEmpty"`

	// Service identity, reported by GET /
	ServiceName    string `env:"SERVICE_NAME" envDefault:"ParcelAm RAG API"`
	ServiceVersion string `env:"SERVICE_VERSION" envDefault:"1.0.0"`

	// External service configurations
	AssistantConnectorCfg AssistantConnectorConfig `envPrefix:"ASSISTANT_"`
	SearchConnectorCfg    SearchConnectorConfig    `envPrefix:"SEARCH_"`

	// Logging configuration
	LogLevel string `env:"LOG_LEVEL,notEmpty"`

	// Mock configuration
	EnableMocks bool `env:"ENABLE_MOCKS" envDefault:"false"`

	// Environment (set from flag, not from env var)
	Environment string
}

// AssistantConnectorConfig configures the hosted-assistant deployment.
type AssistantConnectorConfig struct {
	HTTPClientConfig
	AssistantName  string        `env:"NAME" envDefault:"parcelam-assistant"`
	StatusCacheTTL time.Duration `env:"STATUS_CACHE_TTL" envDefault:"30s"`

	// Retrieval settings in effect upstream, reported by GET /assistant/context
	TopK        int    `env:"TOP_K" envDefault:"5"`
	RerankModel string `env:"RERANK_MODEL" envDefault:"bge-reranker-v2-m3"`
	SnippetSize int    `env:"SNIPPET_SIZE" envDefault:"300"`
}

// SearchConnectorConfig configures the deprecated raw-search deployment.
type SearchConnectorConfig struct {
	HTTPClientConfig
	IndexName   string               `env:"INDEX_NAME" envDefault:"parcel-rag-index"`
	TopK        int                  `env:"TOP_K" envDefault:"5"`
	RerankModel string               `env:"RERANK_MODEL" envDefault:"bge-reranker-v2-m3"`
	BatchSize   int                  `env:"BATCH_SIZE" envDefault:"96"`
	Retry       pkgRetry.RetryConfig `envPrefix:"RETRY_"`
}

// HTTPClientConfig is the shared outbound HTTP client configuration.
type HTTPClientConfig struct {
	RequestTimeout        time.Duration `env:"TIMEOUT" envDefault:"30s"`
	ConnTimeout           time.Duration `env:"CONN_TIMEOUT" envDefault:"10s"`
	KeepAlive             time.Duration `env:"KEEP_ALIVE" envDefault:"90s"`
	IdleConnTimeout       time.Duration `env:"IDLE_CONN_TIMEOUT" envDefault:"90s"`
	ResponseHeaderTimeout time.Duration `env:"RESPONSE_HEADER_TIMEOUT" envDefault:"10s"`
	APIKey                string        `env:"API_KEY"`
	// Required by the deployment that uses the connector; each builder checks
	// its own group so the sibling deployment's vars can stay unset.
	Url string `env:"SERVICE_URL"`
}

func LoadConfig() (*Config, error) {
	envFlag := flag.String("env", "local", "Environment to run (local, prod, or custom)")
	flag.Parse()

	envFile := getEnvFile(*envFlag)
	// Try to load env file, but don't fail if it's missing.
	// In containerized/prod environments variables are usually set externally.
	if err := godotenv.Load(envFile); err != nil {
		fmt.Printf("Warning: could not load %s file (this is ok if env vars are set externally): %v\n", envFile, err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	cfg.Environment = *envFlag

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func validateConfig(cfg *Config) error {
	if cfg.SearchConnectorCfg.TopK < 1 || cfg.SearchConnectorCfg.TopK > 50 {
		return fmt.Errorf("SEARCH_TOP_K must be between 1 and 50, got %d", cfg.SearchConnectorCfg.TopK)
	}

	if cfg.SearchConnectorCfg.BatchSize < 1 || cfg.SearchConnectorCfg.BatchSize > 1000 {
		return fmt.Errorf("SEARCH_BATCH_SIZE must be between 1 and 1000, got %d", cfg.SearchConnectorCfg.BatchSize)
	}

	return nil
}

func getEnvFile(environment string) string {
	switch environment {
	case "prod", "production":
		return ".env.prod"
	case "local", "dev", "development":
		return ".env.local"
	default:
		return fmt.Sprintf(".env.%s", environment)
	}
}

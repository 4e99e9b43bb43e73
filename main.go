package main

import (
	"log"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/relgraph-ai/relgraph-engine/pkg/config"
	"github.com/relgraph-ai/relgraph-engine/pkg/dataset"
	"github.com/relgraph-ai/relgraph-engine/pkg/handlers"
	"github.com/relgraph-ai/relgraph-engine/pkg/llm"
	"github.com/relgraph-ai/relgraph-engine/pkg/middleware"
	"github.com/relgraph-ai/relgraph-engine/pkg/predict"
	"github.com/relgraph-ai/relgraph-engine/pkg/services"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	cfg, err := config.Load(Version)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := newLogger(cfg.Env)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Configuration loaded",
		zap.String("environment", cfg.Env),
		zap.String("data_path", cfg.DataPath),
		zap.String("openai_model", cfg.Reasoning.OpenAIModel),
		zap.String("anthropic_model", cfg.Reasoning.AnthropicModel))

	// Ingest the dataset and build the initial schema snapshot. Both are
	// fatal at startup: the service is useless without a graph schema.
	tables, err := dataset.NewLoader(cfg.DataPath, logger).Load()
	if err != nil {
		logger.Fatal("Failed to ingest dataset", zap.Error(err))
	}

	store := services.NewSchemaStore()
	schema, err := services.NewSchemaBuilder(logger).Build(tables)
	if err != nil {
		logger.Fatal("Failed to build graph schema", zap.Error(err))
	}
	store.Swap(schema)

	// Reasoning providers are tried in order; exhaustion is fatal.
	client, err := llm.NegotiateClient(llm.DefaultStrategies(llm.ProviderConfig{
		OpenAIEndpoint:  cfg.Reasoning.OpenAIEndpoint,
		OpenAIModel:     cfg.Reasoning.OpenAIModel,
		OpenAIAPIKey:    cfg.Reasoning.OpenAIAPIKey,
		AnthropicModel:  cfg.Reasoning.AnthropicModel,
		AnthropicAPIKey: cfg.Reasoning.AnthropicAPIKey,
	}, logger), logger)
	if err != nil {
		logger.Fatal("No reasoning provider available", zap.Error(err))
	}

	translator := services.NewQueryTranslator(client, cfg.Reasoning.Temperature, logger)
	engine := predict.NewMockEngine(cfg.Predictive.MockSeed, logger)
	history := services.NewQueryHistory()
	timeout := time.Duration(cfg.Reasoning.TimeoutSeconds) * time.Second

	mux := http.NewServeMux()
	handlers.NewHealthHandler(cfg, logger).RegisterRoutes(mux)
	handlers.NewSchemaHandler(store, logger).RegisterRoutes(mux)
	handlers.NewTranslateHandler(store, translator, timeout, logger).RegisterRoutes(mux)
	handlers.NewPredictHandler(engine, history, logger).RegisterRoutes(mux)

	addr := cfg.BindAddr + ":" + cfg.Port
	logger.Info("Starting relgraph-engine",
		zap.String("addr", addr),
		zap.String("version", cfg.Version),
		zap.String("schema_version", schema.Version.String()))
	if err := http.ListenAndServe(addr, middleware.RequestLogger(logger)(mux)); err != nil {
		logger.Fatal("Server failed", zap.Error(err))
	}
}

func newLogger(env string) (*zap.Logger, error) {
	if env == "local" || env == "development" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

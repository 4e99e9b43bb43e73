// Package config loads engine configuration from config.yaml with
// environment-variable overrides. Secrets only come from the environment.
package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/relgraph-ai/relgraph-engine/pkg/apperrors"
)

// Config holds all configuration for relgraph-engine.
type Config struct {
	// Server configuration
	BindAddr string `yaml:"bind_addr" env:"BIND_ADDR" env-default:"127.0.0.1"`
	Port     string `yaml:"port" env:"PORT" env-default:"8080"`
	Env      string `yaml:"env" env:"ENVIRONMENT" env-default:"local"`
	Version  string `yaml:"-"` // Set at load time, not from config

	// DataPath points at the CSV file or directory to ingest at startup.
	DataPath string `yaml:"data_path" env:"DATA_PATH" env-default:"./data"`

	// Reasoning service (NL -> PQL translation)
	Reasoning ReasoningConfig `yaml:"reasoning"`

	// Predictive engine (query execution)
	Predictive PredictiveConfig `yaml:"predictive"`
}

// ReasoningConfig holds reasoning-service provider settings. Providers
// are tried in a fixed order (OpenAI, then Anthropic); a provider with no
// API key is skipped.
type ReasoningConfig struct {
	OpenAIEndpoint  string  `yaml:"openai_endpoint" env:"OPENAI_BASE_URL" env-default:"https://api.openai.com/v1"`
	OpenAIModel     string  `yaml:"openai_model" env:"OPENAI_MODEL" env-default:"gpt-4o-mini"`
	OpenAIAPIKey    string  `yaml:"-" env:"OPENAI_API_KEY"` // Secret - not in YAML
	AnthropicModel  string  `yaml:"anthropic_model" env:"ANTHROPIC_MODEL" env-default:"claude-sonnet-4-5"`
	AnthropicAPIKey string  `yaml:"-" env:"ANTHROPIC_API_KEY"` // Secret - not in YAML
	TimeoutSeconds  int     `yaml:"timeout_seconds" env:"REASONING_TIMEOUT_SECONDS" env-default:"30"`
	Temperature     float64 `yaml:"temperature" env:"REASONING_TEMPERATURE" env-default:"0.1"`
}

// HasCredentials reports whether at least one provider has an API key.
func (c *ReasoningConfig) HasCredentials() bool {
	return c.OpenAIAPIKey != "" || c.AnthropicAPIKey != ""
}

// PredictiveConfig holds predictive-engine settings.
type PredictiveConfig struct {
	// MockSeed seeds the built-in mock engine used when no real engine
	// is configured.
	MockSeed int64 `yaml:"mock_seed" env:"PREDICT_MOCK_SEED" env-default:"1"`
}

// Load reads configuration from config.yaml (when present) with
// environment variable overrides. The version parameter is injected at
// build time. Missing reasoning credentials are fatal at startup.
func Load(version string) (*Config, error) {
	cfg := &Config{Version: version}

	if _, err := os.Stat("config.yaml"); err == nil {
		if err := cleanenv.ReadConfig("config.yaml", cfg); err != nil {
			return nil, fmt.Errorf("read config.yaml: %w", err)
		}
	} else {
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return nil, fmt.Errorf("read environment: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the fatal-only startup conditions.
func (c *Config) Validate() error {
	if !c.Reasoning.HasCredentials() {
		return fmt.Errorf("set OPENAI_API_KEY or ANTHROPIC_API_KEY: %w", apperrors.ErrMissingCredentials)
	}
	if c.Reasoning.TimeoutSeconds <= 0 {
		return fmt.Errorf("reasoning timeout must be positive, got %d", c.Reasoning.TimeoutSeconds)
	}
	return nil
}

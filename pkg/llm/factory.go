package llm

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/relgraph-ai/relgraph-engine/pkg/apperrors"
)

// Provider strategy names, in default negotiation order.
const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
)

// ProviderStrategy names one way to construct a reasoning client.
type ProviderStrategy struct {
	Name  string
	Build func() (LLMClient, error)
}

// ProviderConfig carries the credentials and model settings for all known
// provider strategies. Strategies with no API key fail construction and the
// negotiation moves on to the next one.
type ProviderConfig struct {
	OpenAIEndpoint  string
	OpenAIModel     string
	OpenAIAPIKey    string
	AnthropicModel  string
	AnthropicAPIKey string
}

// DefaultStrategies returns the ordered list of connection strategies:
// OpenAI first, then Anthropic.
func DefaultStrategies(cfg ProviderConfig, logger *zap.Logger) []ProviderStrategy {
	return []ProviderStrategy{
		{
			Name: ProviderOpenAI,
			Build: func() (LLMClient, error) {
				return NewOpenAIClient(&OpenAIConfig{
					Endpoint: cfg.OpenAIEndpoint,
					Model:    cfg.OpenAIModel,
					APIKey:   cfg.OpenAIAPIKey,
				}, logger)
			},
		},
		{
			Name: ProviderAnthropic,
			Build: func() (LLMClient, error) {
				return NewAnthropicClient(&AnthropicConfig{
					Model:  cfg.AnthropicModel,
					APIKey: cfg.AnthropicAPIKey,
				}, logger)
			},
		},
	}
}

// NegotiateClient tries the given strategies in order and returns the first
// client that constructs successfully. Exhausting the list is a fatal
// configuration error, never a silent partial state.
func NegotiateClient(strategies []ProviderStrategy, logger *zap.Logger) (LLMClient, error) {
	for _, strategy := range strategies {
		client, err := strategy.Build()
		if err != nil {
			logger.Warn("reasoning provider unavailable",
				zap.String("provider", strategy.Name),
				zap.Error(err))
			continue
		}
		logger.Info("reasoning provider selected",
			zap.String("provider", strategy.Name),
			zap.String("model", client.GetModel()))
		return client, nil
	}
	return nil, fmt.Errorf("tried %d provider strategies: %w", len(strategies), apperrors.ErrNoProviderAvailable)
}

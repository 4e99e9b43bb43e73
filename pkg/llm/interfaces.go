// Package llm provides clients for the external reasoning service that
// performs the semantic half of query translation.
package llm

import (
	"context"
)

// LLMClient is the surface the translator needs from a reasoning service.
// Use this interface for dependency injection to enable mocking in tests.
type LLMClient interface {
	// GenerateResponse generates a chat completion response.
	GenerateResponse(ctx context.Context, prompt string, systemMessage string, temperature float64) (string, error)

	// GetModel returns the configured model name.
	GetModel() string

	// GetProvider returns the provider strategy name this client was built by.
	GetProvider() string
}

// Compile-time interface checks.
var (
	_ LLMClient = (*OpenAIClient)(nil)
	_ LLMClient = (*AnthropicClient)(nil)
	_ LLMClient = (*MockLLMClient)(nil)
)

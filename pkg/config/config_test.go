package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relgraph-ai/relgraph-engine/pkg/apperrors"
)

func TestLoad_EnvOnly(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "test-key")
	t.Setenv("DATA_PATH", "/tmp/dataset")
	t.Setenv("REASONING_TIMEOUT_SECONDS", "10")

	cfg, err := Load("test-version")
	require.NoError(t, err)

	assert.Equal(t, "test-version", cfg.Version)
	assert.Equal(t, "/tmp/dataset", cfg.DataPath)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 10, cfg.Reasoning.TimeoutSeconds)
	assert.Equal(t, "gpt-4o-mini", cfg.Reasoning.OpenAIModel)
}

func TestLoad_MissingCredentialsIsFatal(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("ANTHROPIC_API_KEY", "")

	_, err := Load("test")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrMissingCredentials))
}

func TestLoad_AnthropicOnlyIsEnough(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("ANTHROPIC_API_KEY", "test-key")

	cfg, err := Load("test")
	require.NoError(t, err)
	assert.True(t, cfg.Reasoning.HasCredentials())
}

func TestValidate_TimeoutMustBePositive(t *testing.T) {
	cfg := &Config{}
	cfg.Reasoning.OpenAIAPIKey = "k"
	cfg.Reasoning.TimeoutSeconds = 0

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "timeout")
}

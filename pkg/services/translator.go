package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/relgraph-ai/relgraph-engine/pkg/llm"
	"github.com/relgraph-ai/relgraph-engine/pkg/logging"
	"github.com/relgraph-ai/relgraph-engine/pkg/models"
	"github.com/relgraph-ai/relgraph-engine/pkg/prompts"
	"github.com/relgraph-ai/relgraph-engine/pkg/retry"
)

// Turn is one prior exchange in a translation conversation.
type Turn struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

// QueryTranslator turns natural-language questions into candidate PQL
// queries by delegating semantic interpretation to a reasoning service.
// The client is injected at construction; the translator holds no other
// state between calls, and no state at all between utterances.
type QueryTranslator struct {
	client      llm.LLMClient
	temperature float64
	logger      *zap.Logger
}

// NewQueryTranslator creates a translator backed by the given reasoning
// client. Temperature is kept low for near-deterministic output.
func NewQueryTranslator(client llm.LLMClient, temperature float64, logger *zap.Logger) *QueryTranslator {
	return &QueryTranslator{
		client:      client,
		temperature: temperature,
		logger:      logger.Named("translator"),
	}
}

// Translate converts an utterance into a TranslationResult against the
// given schema snapshot. Every failure (transport, timeout, malformed
// response) is recovered into a clarification-shaped result; Translate
// never returns an error and never panics past its boundary. The caller
// bounds the reasoning call through ctx.
func (t *QueryTranslator) Translate(ctx context.Context, schema *models.GraphSchema, utterance string, priorTurns []Turn) models.TranslationResult {
	systemPrompt, err := prompts.BuildTranslationSystemPrompt(schema)
	if err != nil {
		t.logger.Error("failed to build translation prompt", zap.Error(err))
		return clarificationResult(fmt.Sprintf("internal prompt error: %v", err))
	}

	userPrompt := buildUserPrompt(utterance, priorTurns)
	response, err := retry.DoWithResult(ctx, retry.DefaultConfig(), func() (string, error) {
		return t.client.GenerateResponse(ctx, userPrompt, systemPrompt, t.temperature)
	})
	if err != nil {
		t.logger.Warn("reasoning service failure",
			zap.String("utterance", logging.TruncateForLog(utterance)),
			zap.String("error", logging.SanitizeError(err)))
		return clarificationResult(fmt.Sprintf("translation service failure: %v", err))
	}

	result, ok := parseTranslationResponse(response)
	if !ok {
		t.logger.Warn("unparseable reasoning response",
			zap.String("utterance", logging.TruncateForLog(utterance)),
			zap.Int("response_len", len(response)))
		return clarificationResult(fmt.Sprintf("failed to parse reasoning response: %s", truncate(response, 200)))
	}

	result.Confidence = clampConfidence(result.Confidence)

	// Candidate queries always pass through validation. An invalid query
	// is still returned with halved confidence and the validation message
	// on record; callers decide whether to execute.
	if result.PQLQuery != nil {
		if valid, msg := ValidatePQL(*result.PQLQuery); !valid {
			result.Confidence /= 2
			result.Explanation += fmt.Sprintf(" (validation warning: %s)", msg)
		}
	}

	t.logger.Info("translation complete",
		zap.Float64("confidence", result.Confidence),
		zap.Bool("requires_clarification", result.RequiresClarification))
	return result
}

// buildUserPrompt folds prior turns into the user prompt ahead of the
// current utterance.
func buildUserPrompt(utterance string, priorTurns []Turn) string {
	if len(priorTurns) == 0 {
		return utterance
	}

	var sb strings.Builder
	sb.WriteString("Conversation so far:\n")
	for _, turn := range priorTurns {
		sb.WriteString(fmt.Sprintf("%s: %s\n", turn.Role, turn.Content))
	}
	sb.WriteString("\nCurrent question: ")
	sb.WriteString(utterance)
	return sb.String()
}

// parseTranslationResponse attempts a direct structured parse, then falls
// back to extracting a single embedded JSON object from surrounding text.
func parseTranslationResponse(response string) (models.TranslationResult, bool) {
	var result models.TranslationResult
	if err := json.Unmarshal([]byte(response), &result); err == nil {
		return result, true
	}

	result, err := llm.ParseJSONResponse[models.TranslationResult](response)
	if err != nil {
		return models.TranslationResult{}, false
	}
	return result, true
}

// clarificationResult is the well-formed shape every translation failure
// terminates in.
func clarificationResult(explanation string) models.TranslationResult {
	question := "I couldn't process that request. Could you rephrase it?"
	return models.TranslationResult{
		PQLQuery:              nil,
		QueryType:             models.QueryTypeError,
		Confidence:            0.0,
		Explanation:           explanation,
		RequiresClarification: true,
		ClarificationQuestion: &question,
		SuggestedEntities:     []string{},
	}
}

func clampConfidence(c float64) float64 {
	if c < 0 {
		return 0
	}
	if c > 1 {
		return 1
	}
	return c
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

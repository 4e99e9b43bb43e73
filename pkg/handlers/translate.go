package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/relgraph-ai/relgraph-engine/pkg/models"
	"github.com/relgraph-ai/relgraph-engine/pkg/services"
)

// Translator is the translation surface this handler needs. It matches
// services.QueryTranslator and enables stubbing in tests.
type Translator interface {
	Translate(ctx context.Context, schema *models.GraphSchema, utterance string, priorTurns []services.Turn) models.TranslationResult
}

// TranslateRequest is the POST /api/translate body.
type TranslateRequest struct {
	Question string          `json:"question"`
	History  []services.Turn `json:"history,omitempty"`
}

// TranslateResponse pairs the translation with the validator verdict.
// The translation is nested rather than embedded: TranslationResult has
// a custom UnmarshalJSON that would otherwise swallow the sibling fields
// when clients decode the response.
type TranslateResponse struct {
	Translation       models.TranslationResult `json:"translation"`
	IsValid           bool                     `json:"is_valid"`
	ValidationMessage string                   `json:"validation_message,omitempty"`
}

// TranslateHandler runs the translate -> validate round trip against the
// active schema snapshot. The snapshot is captured once per request, so a
// concurrent ingestion never changes it mid-flight.
type TranslateHandler struct {
	store      *services.SchemaStore
	translator Translator
	timeout    time.Duration
	logger     *zap.Logger
}

// NewTranslateHandler creates a new TranslateHandler. The timeout bounds
// the reasoning-service call.
func NewTranslateHandler(store *services.SchemaStore, translator Translator, timeout time.Duration, logger *zap.Logger) *TranslateHandler {
	return &TranslateHandler{
		store:      store,
		translator: translator,
		timeout:    timeout,
		logger:     logger,
	}
}

// RegisterRoutes registers the translate routes on the given mux.
func (h *TranslateHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/translate", h.Translate)
}

// Translate handles POST /api/translate.
func (h *TranslateHandler) Translate(w http.ResponseWriter, r *http.Request) {
	var req TranslateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = ErrorResponse(w, http.StatusBadRequest, "invalid_request", "request body must be JSON")
		return
	}
	if req.Question == "" {
		_ = ErrorResponse(w, http.StatusBadRequest, "invalid_request", "question is required")
		return
	}

	schema := h.store.Current()
	if schema == nil {
		_ = ErrorResponse(w, http.StatusConflict, "no_schema", "no dataset has been ingested")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	result := h.translator.Translate(ctx, schema, req.Question, req.History)

	resp := TranslateResponse{Translation: result}
	if result.PQLQuery != nil {
		resp.IsValid, resp.ValidationMessage = services.ValidatePQL(*result.PQLQuery)
	}

	if err := WriteJSON(w, http.StatusOK, resp); err != nil {
		h.logger.Error("Failed to encode translation response", zap.Error(err))
	}
}

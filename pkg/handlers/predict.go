package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/relgraph-ai/relgraph-engine/pkg/predict"
	"github.com/relgraph-ai/relgraph-engine/pkg/services"
)

// PredictRequest is the POST /api/predict body.
type PredictRequest struct {
	Query      string     `json:"query"`
	AnchorTime *time.Time `json:"anchor_time,omitempty"`
}

// PredictResponse carries the execution result.
type PredictResponse struct {
	Columns  []string `json:"columns"`
	Rows     [][]any  `json:"rows"`
	RowCount int      `json:"row_count"`
}

// PredictHandler executes validated queries against the predictive engine
// and records each execution in the history log.
type PredictHandler struct {
	engine  predict.PredictiveEngine
	history *services.QueryHistory
	logger  *zap.Logger
}

// NewPredictHandler creates a new PredictHandler.
func NewPredictHandler(engine predict.PredictiveEngine, history *services.QueryHistory, logger *zap.Logger) *PredictHandler {
	return &PredictHandler{engine: engine, history: history, logger: logger}
}

// RegisterRoutes registers the predict routes on the given mux.
func (h *PredictHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/predict", h.Predict)
	mux.HandleFunc("GET /api/history", h.History)
}

// Predict handles POST /api/predict. The query must pass validation
// before it reaches the engine.
func (h *PredictHandler) Predict(w http.ResponseWriter, r *http.Request) {
	var req PredictRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = ErrorResponse(w, http.StatusBadRequest, "invalid_request", "request body must be JSON")
		return
	}

	if valid, message := services.ValidatePQL(req.Query); !valid {
		_ = ErrorResponse(w, http.StatusBadRequest, "invalid_query", message)
		return
	}

	result, err := h.engine.Execute(r.Context(), req.Query, req.AnchorTime)
	if err != nil {
		h.logger.Error("Predictive engine execution failed", zap.Error(err))
		_ = ErrorResponse(w, http.StatusBadGateway, "execution_failed", err.Error())
		return
	}

	h.history.Append(services.HistoryEntry{
		Timestamp:  time.Now().UTC(),
		Query:      req.Query,
		AnchorTime: req.AnchorTime,
		RowCount:   result.RowCount(),
	})

	resp := PredictResponse{
		Columns:  result.Columns,
		Rows:     result.Rows,
		RowCount: result.RowCount(),
	}
	if err := WriteJSON(w, http.StatusOK, resp); err != nil {
		h.logger.Error("Failed to encode prediction response", zap.Error(err))
	}
}

// History handles GET /api/history.
func (h *PredictHandler) History(w http.ResponseWriter, r *http.Request) {
	if err := WriteJSON(w, http.StatusOK, h.history.Entries()); err != nil {
		h.logger.Error("Failed to encode history response", zap.Error(err))
	}
}

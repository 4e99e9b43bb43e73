package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/relgraph-ai/relgraph-engine/pkg/predict"
	"github.com/relgraph-ai/relgraph-engine/pkg/services"
)

func TestPredict_ValidQuery(t *testing.T) {
	history := services.NewQueryHistory()
	handler := NewPredictHandler(predict.NewMockEngine(1, zap.NewNop()), history, zap.NewNop())

	body := `{"query": "PREDICT COUNT(claims.*, 0, 30, days) FOR customers.customer_id=42"}`
	req := httptest.NewRequest(http.MethodPost, "/api/predict", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.Predict(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp PredictResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Columns)
	assert.Equal(t, len(resp.Rows), resp.RowCount)

	entries := history.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, resp.RowCount, entries[0].RowCount)
}

func TestPredict_InvalidQueryRejected(t *testing.T) {
	history := services.NewQueryHistory()
	handler := NewPredictHandler(predict.NewMockEngine(1, zap.NewNop()), history, zap.NewNop())

	body := `{"query": "SELECT * FROM claims"}`
	req := httptest.NewRequest(http.MethodPost, "/api/predict", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.Predict(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, history.Entries())
}

func TestHistoryEndpoint(t *testing.T) {
	history := services.NewQueryHistory()
	handler := NewPredictHandler(predict.NewMockEngine(1, zap.NewNop()), history, zap.NewNop())

	rec := httptest.NewRecorder()
	handler.History(rec, httptest.NewRequest(http.MethodGet, "/api/history", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var entries []services.HistoryEntry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entries))
	assert.Empty(t, entries)
}

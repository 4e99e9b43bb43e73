package predict

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestExecute_FraudQueryShape(t *testing.T) {
	engine := NewMockEngine(1, zap.NewNop())

	result, err := engine.Execute(context.Background(), "PREDICT claims.fraud_flag FOR claims.claim_id=12345", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"ENTITY", "ANCHOR_TIMESTAMP", "TARGET_PRED", "False_PROB", "True_PROB"}, result.Columns)
	assert.Equal(t, 1, result.RowCount())
}

func TestExecute_ForEachFansOut(t *testing.T) {
	engine := NewMockEngine(1, zap.NewNop())

	result, err := engine.Execute(context.Background(), "PREDICT COUNT(claims.*, 0, 30, days) FOR EACH customers.customer_id", nil)
	require.NoError(t, err)
	assert.Equal(t, 10, result.RowCount())
	assert.Equal(t, []string{"ENTITY", "ANCHOR_TIMESTAMP", "TARGET_PRED"}, result.Columns)
}

func TestExecute_AnchorTimeUsed(t *testing.T) {
	engine := NewMockEngine(1, zap.NewNop())
	anchor := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	result, err := engine.Execute(context.Background(), "PREDICT customers.age FOR customers.customer_id=5", &anchor)
	require.NoError(t, err)
	require.Equal(t, 1, result.RowCount())
	assert.Equal(t, anchor, result.Rows[0][1])
}

func TestExecute_DeterministicWithSeed(t *testing.T) {
	anchor := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	query := "PREDICT SUM(claims.claim_amount, 0, 90, days) FOR customers.customer_id=100"

	first, err := NewMockEngine(7, zap.NewNop()).Execute(context.Background(), query, &anchor)
	require.NoError(t, err)
	second, err := NewMockEngine(7, zap.NewNop()).Execute(context.Background(), query, &anchor)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestExecute_CancelledContext(t *testing.T) {
	engine := NewMockEngine(1, zap.NewNop())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := engine.Execute(ctx, "PREDICT a FOR b", nil)
	assert.Error(t, err)
}

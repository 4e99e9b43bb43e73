package predict

import (
	"context"
	"math/rand"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

// MockEngine simulates a predictive engine for demos and tests. It
// inspects the query text to pick a plausible result shape and fabricates
// values from a seeded source, so a fixed seed gives fixed output.
type MockEngine struct {
	mu     sync.Mutex
	rng    *rand.Rand
	logger *zap.Logger
}

var _ PredictiveEngine = (*MockEngine)(nil)

// NewMockEngine creates a mock engine with a deterministic seed.
func NewMockEngine(seed int64, logger *zap.Logger) *MockEngine {
	return &MockEngine{
		rng:    rand.New(rand.NewSource(seed)),
		logger: logger.Named("mock-engine"),
	}
}

// Execute fabricates a prediction result for the query.
func (e *MockEngine) Execute(ctx context.Context, query string, anchorTime *time.Time) (*ResultTable, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	anchor := time.Now().UTC()
	if anchorTime != nil {
		anchor = *anchorTime
	}

	upper := strings.ToUpper(query)
	forEach := strings.Contains(upper, "FOR EACH")
	entities := 1
	if forEach {
		entities = 10
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	var result *ResultTable
	switch {
	case strings.Contains(strings.ToLower(query), "fraud_flag"):
		result = &ResultTable{
			Columns: []string{"ENTITY", "ANCHOR_TIMESTAMP", "TARGET_PRED", "False_PROB", "True_PROB"},
		}
		for i := 1; i <= entities; i++ {
			trueProb := 0.3 + e.rng.Float64()*0.4
			result.Rows = append(result.Rows, []any{
				int64(i), anchor, trueProb > 0.5, 1 - trueProb, trueProb,
			})
		}
	case strings.Contains(upper, "COUNT"):
		result = &ResultTable{Columns: []string{"ENTITY", "ANCHOR_TIMESTAMP", "TARGET_PRED"}}
		for i := 1; i <= entities; i++ {
			result.Rows = append(result.Rows, []any{int64(i), anchor, int64(e.rng.Intn(11))})
		}
	case strings.Contains(upper, "SUM") || strings.Contains(upper, "AVG"):
		result = &ResultTable{Columns: []string{"ENTITY", "ANCHOR_TIMESTAMP", "TARGET_PRED"}}
		for i := 1; i <= entities; i++ {
			result.Rows = append(result.Rows, []any{int64(i), anchor, 1000 + e.rng.Float64()*49000})
		}
	default:
		result = &ResultTable{
			Columns: []string{"ENTITY", "ANCHOR_TIMESTAMP", "TARGET_PRED"},
			Rows:    [][]any{{int64(1), anchor, e.rng.Float64()}},
		}
	}

	e.logger.Debug("mock prediction executed",
		zap.String("query", query),
		zap.Int("rows", result.RowCount()))
	return result, nil
}

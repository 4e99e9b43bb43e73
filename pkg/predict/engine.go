// Package predict defines the execution collaborator: the external
// predictive engine that runs validated PQL queries. This core only
// produces and validates query strings; execution is delegated through
// the PredictiveEngine interface.
package predict

import (
	"context"
	"time"
)

// ResultTable is the tabular result of one prediction.
type ResultTable struct {
	Columns []string `json:"columns"`
	Rows    [][]any  `json:"rows"`
}

// RowCount returns the number of result rows.
func (r *ResultTable) RowCount() int {
	return len(r.Rows)
}

// PredictiveEngine executes a validated PQL query. The anchor time, when
// non-nil, is the reference timestamp the prediction window is measured
// from; nil means "now".
type PredictiveEngine interface {
	Execute(ctx context.Context, query string, anchorTime *time.Time) (*ResultTable, error)
}

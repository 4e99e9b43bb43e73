package models

// Column data types inferred by the profiler.
const (
	DTypeInteger   = "integer"
	DTypeFloat     = "float"
	DTypeBoolean   = "boolean"
	DTypeTimestamp = "timestamp"
	DTypeText      = "text"
)

// ColumnProfile holds per-column statistics computed by the profiler.
//
// Invariants: NullCount <= row count and UniqueCount <= row count of the
// profiled table.
type ColumnProfile struct {
	Name                  string  `json:"name"`
	DType                 string  `json:"dtype"`
	NullCount             int     `json:"null_count"`
	UniqueCount           int     `json:"unique_count"`
	NullPercentage        float64 `json:"null_percentage"`
	UniquePercentage      float64 `json:"unique_percentage"`
	IsPrimaryKeyCandidate bool    `json:"is_primary_key_candidate"`
	IsTemporal            bool    `json:"is_temporal"`
}

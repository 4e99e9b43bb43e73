package services

import (
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/relgraph-ai/relgraph-engine/pkg/models"
)

// TemporalColumn is one detected temporal column with its observed range.
type TemporalColumn struct {
	Name  string
	Range models.TemporalRange
}

// TemporalColumnDetector flags date/time-bearing columns. A column is
// temporal if its values are natively time-typed, or its name contains
// "date" or "time" and its values coerce to timestamps. Coercion never
// fails: unparsable entries are treated as nulls and only narrow the
// reported range.
type TemporalColumnDetector struct {
	logger *zap.Logger
}

// NewTemporalColumnDetector creates a new TemporalColumnDetector.
func NewTemporalColumnDetector(logger *zap.Logger) *TemporalColumnDetector {
	return &TemporalColumnDetector{logger: logger.Named("temporal")}
}

// Detect returns the temporal columns of a table in declared column
// order, each with the min/max over its successfully coerced values.
// Columns whose values never coerce are not temporal.
func (d *TemporalColumnDetector) Detect(table *models.Table) []TemporalColumn {
	var detected []TemporalColumn

	for _, col := range table.Columns {
		values := table.ColumnValues(col)
		native := isNativelyTemporal(values)
		if !native && !hasTemporalName(col) {
			continue
		}

		var (
			min, max time.Time
			coerced  int
		)
		for _, v := range values {
			ts, ok := coerceTimestamp(v)
			if !ok {
				continue
			}
			if coerced == 0 || ts.Before(min) {
				min = ts
			}
			if coerced == 0 || ts.After(max) {
				max = ts
			}
			coerced++
		}
		if coerced == 0 {
			continue
		}

		d.logger.Debug("temporal column detected",
			zap.String("table", table.Name),
			zap.String("column", col),
			zap.Time("min", min),
			zap.Time("max", max))
		detected = append(detected, TemporalColumn{
			Name:  col,
			Range: models.TemporalRange{Min: min, Max: max},
		})
	}
	return detected
}

// hasTemporalName reports whether the column name suggests a timestamp.
func hasTemporalName(column string) bool {
	lower := strings.ToLower(column)
	return strings.Contains(lower, "date") || strings.Contains(lower, "time")
}

// isNativelyTemporal reports whether every non-null value is time-typed,
// with at least one such value present.
func isNativelyTemporal(values []any) bool {
	seen := false
	for _, v := range values {
		if v == nil {
			continue
		}
		if _, ok := v.(time.Time); !ok {
			return false
		}
		seen = true
	}
	return seen
}

// coercionLayouts are tried in order when coercing strings to timestamps.
var coercionLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
}

// coerceTimestamp converts a value to a timestamp when possible. It never
// reports an error: values that cannot be coerced behave as nulls.
func coerceTimestamp(v any) (time.Time, bool) {
	switch val := v.(type) {
	case time.Time:
		return val, true
	case string:
		for _, layout := range coercionLayouts {
			if ts, err := time.Parse(layout, strings.TrimSpace(val)); err == nil {
				return ts, true
			}
		}
	}
	return time.Time{}, false
}

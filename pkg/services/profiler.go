// Package services contains the schema-inference and query-translation
// pipeline: profiling, temporal detection, relationship inference, graph
// schema assembly, translation, and validation.
package services

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/relgraph-ai/relgraph-engine/pkg/models"
)

// Lenient primary-key fallback thresholds. The strict rule (all-unique,
// no nulls, id-ish name) is tried first; these only apply when it finds
// nothing. TODO: validate the 95%/5% thresholds against real datasets.
const (
	lenientPKUniquePercent = 95.0
	lenientPKNullPercent   = 5.0
)

// TableProfiler computes per-column statistics and selects a primary-key
// candidate for each table. Profiling is a single read-only pass; output
// order follows the table's declared column order, so identical input
// always yields an identical result.
type TableProfiler struct {
	logger *zap.Logger
}

// NewTableProfiler creates a new TableProfiler.
func NewTableProfiler(logger *zap.Logger) *TableProfiler {
	return &TableProfiler{logger: logger.Named("profiler")}
}

// Profile computes a ColumnProfile per column in declared order and
// returns the selected primary key, or "" when no column qualifies.
// A missing primary key is not an error; the schema proceeds without one.
func (p *TableProfiler) Profile(table *models.Table) ([]models.ColumnProfile, string) {
	rowCount := table.RowCount()
	profiles := make([]models.ColumnProfile, 0, len(table.Columns))

	for _, col := range table.Columns {
		nullCount := 0
		distinct := make(map[string]struct{})
		var nonNull []any

		for _, row := range table.Rows {
			v := row[col]
			if v == nil {
				nullCount++
				continue
			}
			distinct[valueKey(v)] = struct{}{}
			nonNull = append(nonNull, v)
		}

		profile := models.ColumnProfile{
			Name:        col,
			DType:       inferDType(nonNull),
			NullCount:   nullCount,
			UniqueCount: len(distinct),
		}
		if rowCount > 0 {
			profile.NullPercentage = float64(nullCount) / float64(rowCount) * 100
			profile.UniquePercentage = float64(len(distinct)) / float64(rowCount) * 100
		}
		profile.IsPrimaryKeyCandidate = rowCount > 0 &&
			profile.UniqueCount == rowCount &&
			profile.NullCount == 0 &&
			hasIdentifierName(col)

		profiles = append(profiles, profile)
	}

	pk := selectPrimaryKey(profiles)
	if pk == "" {
		p.logger.Info("no primary key found", zap.String("table", table.Name))
	} else {
		p.logger.Debug("primary key selected",
			zap.String("table", table.Name),
			zap.String("column", pk))
	}
	return profiles, pk
}

// selectPrimaryKey applies the two-tier strategy: first column passing the
// strict rule wins; otherwise the first column passing the lenient
// uniqueness fallback.
func selectPrimaryKey(profiles []models.ColumnProfile) string {
	for _, profile := range profiles {
		if profile.IsPrimaryKeyCandidate {
			return profile.Name
		}
	}
	for _, profile := range profiles {
		if profile.UniquePercentage > lenientPKUniquePercent && profile.NullPercentage < lenientPKNullPercent {
			return profile.Name
		}
	}
	return ""
}

// hasIdentifierName reports whether the column name marks it as an
// identifier ("id" or "number", case-insensitive).
func hasIdentifierName(column string) bool {
	lower := strings.ToLower(column)
	return strings.Contains(lower, "id") || strings.Contains(lower, "number")
}

// valueKey builds a type-qualified distinctness key so that e.g. the
// string "1" and the integer 1 count as different values.
func valueKey(v any) string {
	return fmt.Sprintf("%T:%v", v, v)
}

// inferDType picks a column data type from the observed non-null values.
// Mixed-type columns degrade to text.
func inferDType(values []any) string {
	if len(values) == 0 {
		return models.DTypeText
	}

	dtype := dtypeOf(values[0])
	for _, v := range values[1:] {
		next := dtypeOf(v)
		if next == dtype {
			continue
		}
		// Integers widen to float when mixed with floats.
		if (dtype == models.DTypeInteger && next == models.DTypeFloat) ||
			(dtype == models.DTypeFloat && next == models.DTypeInteger) {
			dtype = models.DTypeFloat
			continue
		}
		return models.DTypeText
	}
	return dtype
}

func dtypeOf(v any) string {
	switch v.(type) {
	case int64:
		return models.DTypeInteger
	case float64:
		return models.DTypeFloat
	case bool:
		return models.DTypeBoolean
	case time.Time:
		return models.DTypeTimestamp
	default:
		return models.DTypeText
	}
}

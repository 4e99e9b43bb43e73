// Package dataset loads raw tabular data for profiling. It is the
// ingestion collaborator: it only produces read-only Tables and performs
// no inference of its own.
package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/relgraph-ai/relgraph-engine/pkg/apperrors"
	"github.com/relgraph-ai/relgraph-engine/pkg/models"
)

// Loader reads one CSV file or a directory of CSV files, one table per
// file, named after the file stem.
type Loader struct {
	path   string
	logger *zap.Logger
}

// NewLoader creates a loader for the given file or directory path.
func NewLoader(path string, logger *zap.Logger) *Loader {
	return &Loader{path: path, logger: logger.Named("dataset")}
}

// Load reads all tables from the configured path. Files load in sorted
// name order so repeated ingestion of the same dataset yields tables in
// the same order. An unreadable path or a dataset with zero usable tables
// is a fatal ingestion error.
func (l *Loader) Load() ([]*models.Table, error) {
	info, err := os.Stat(l.path)
	if err != nil {
		return nil, fmt.Errorf("stat dataset path %q: %w", l.path, err)
	}

	var paths []string
	if info.IsDir() {
		matches, err := filepath.Glob(filepath.Join(l.path, "*.csv"))
		if err != nil {
			return nil, fmt.Errorf("scan dataset directory %q: %w", l.path, err)
		}
		sort.Strings(matches)
		paths = matches
	} else {
		paths = []string{l.path}
	}

	if len(paths) == 0 {
		return nil, fmt.Errorf("no CSV files in %q: %w", l.path, apperrors.ErrNoUsableTables)
	}

	tables := make([]*models.Table, 0, len(paths))
	for _, p := range paths {
		table, err := l.loadTable(p)
		if err != nil {
			return nil, fmt.Errorf("load table from %q: %w", p, err)
		}
		l.logger.Info("table loaded",
			zap.String("table", table.Name),
			zap.Int("rows", table.RowCount()),
			zap.Int("columns", len(table.Columns)))
		tables = append(tables, table)
	}
	return tables, nil
}

func (l *Loader) loadTable(path string) (*models.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("file has no header row")
	}

	columns := records[0]
	table := &models.Table{
		Name:    tableName(path),
		Columns: columns,
		Rows:    make([]models.Row, 0, len(records)-1),
	}

	for _, record := range records[1:] {
		row := make(models.Row, len(columns))
		for i, col := range columns {
			if i < len(record) {
				row[col] = parseValue(record[i])
			} else {
				row[col] = nil
			}
		}
		table.Rows = append(table.Rows, row)
	}
	return table, nil
}

// tableName derives the table name from the file stem.
func tableName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// timestampLayouts are tried in order when parsing cell values.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
}

// parseValue converts one CSV cell into a typed value. Empty cells are
// nulls; otherwise int, float, bool, and timestamp parses are attempted in
// that order before falling back to the raw string.
func parseValue(cell string) any {
	trimmed := strings.TrimSpace(cell)
	if trimmed == "" {
		return nil
	}

	if i, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return f
	}
	switch strings.ToLower(trimmed) {
	case "true":
		return true
	case "false":
		return false
	}
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, trimmed); err == nil {
			return ts
		}
	}
	return trimmed
}

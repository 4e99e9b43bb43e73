package services

import (
	"fmt"
	"sort"
	"sync/atomic"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/relgraph-ai/relgraph-engine/pkg/apperrors"
	"github.com/relgraph-ai/relgraph-engine/pkg/models"
)

// SchemaBuilder combines profiling, temporal detection, and relationship
// inference into one immutable GraphSchema snapshot per dataset version.
type SchemaBuilder struct {
	profiler   *TableProfiler
	temporal   *TemporalColumnDetector
	inferencer *RelationshipInferencer
	logger     *zap.Logger
}

// NewSchemaBuilder creates a SchemaBuilder with the full inference pipeline.
func NewSchemaBuilder(logger *zap.Logger) *SchemaBuilder {
	return &SchemaBuilder{
		profiler:   NewTableProfiler(logger),
		temporal:   NewTemporalColumnDetector(logger),
		inferencer: NewRelationshipInferencer(logger),
		logger:     logger.Named("schema"),
	}
}

// Build runs the inference pipeline over the ingested tables and returns
// a new snapshot with a fresh version ID. A dataset with zero tables is a
// fatal ingestion error; a table without a primary key is not.
func (b *SchemaBuilder) Build(tables []*models.Table) (*models.GraphSchema, error) {
	if len(tables) == 0 {
		return nil, apperrors.ErrNoUsableTables
	}

	schema := &models.GraphSchema{
		Version:    uuid.New(),
		TableNames: make([]string, 0, len(tables)),
		Tables:     make(map[string]*models.TableSchema, len(tables)),
	}

	for _, table := range tables {
		if _, exists := schema.Tables[table.Name]; exists {
			return nil, fmt.Errorf("duplicate table name %q", table.Name)
		}

		profiles, pk := b.profiler.Profile(table)
		temporal := b.temporal.Detect(table)

		ts := &models.TableSchema{
			Name:            table.Name,
			RowCount:        table.RowCount(),
			ColumnCount:     len(table.Columns),
			ColumnNames:     append([]string{}, table.Columns...),
			Columns:         make(map[string]models.ColumnProfile, len(profiles)),
			PrimaryKey:      pk,
			ForeignKeys:     []string{},
			TemporalColumns: make([]string, 0, len(temporal)),
			TemporalRanges:  make(map[string]models.TemporalRange, len(temporal)),
		}

		temporalNames := make(map[string]bool, len(temporal))
		for _, tc := range temporal {
			temporalNames[tc.Name] = true
			ts.TemporalColumns = append(ts.TemporalColumns, tc.Name)
			ts.TemporalRanges[tc.Name] = tc.Range
		}
		sort.Strings(ts.TemporalColumns)

		for _, profile := range profiles {
			profile.IsTemporal = temporalNames[profile.Name]
			ts.Columns[profile.Name] = profile
		}

		schema.TableNames = append(schema.TableNames, table.Name)
		schema.Tables[table.Name] = ts
	}

	schema.Relationships = b.inferencer.Infer(schema)

	// Record each table's foreign-key columns from the inferred edges.
	for _, rel := range schema.Relationships {
		src := schema.Tables[rel.SrcTable]
		src.ForeignKeys = append(src.ForeignKeys, rel.FKey)
	}
	for _, ts := range schema.Tables {
		sort.Strings(ts.ForeignKeys)
	}

	b.logger.Info("graph schema built",
		zap.String("version", schema.Version.String()),
		zap.Int("tables", len(schema.Tables)),
		zap.Int("relationships", len(schema.Relationships)))
	return schema, nil
}

// SchemaStore holds the active GraphSchema snapshot. Replacement is
// wholesale and atomic: readers observe either the old version or the new
// one in its entirety, never a partial update.
type SchemaStore struct {
	current atomic.Pointer[models.GraphSchema]
}

// NewSchemaStore creates an empty store.
func NewSchemaStore() *SchemaStore {
	return &SchemaStore{}
}

// Swap installs a new snapshot as the active schema.
func (s *SchemaStore) Swap(schema *models.GraphSchema) {
	s.current.Store(schema)
}

// Current returns the active snapshot, or nil before the first ingestion.
func (s *SchemaStore) Current() *models.GraphSchema {
	return s.current.Load()
}

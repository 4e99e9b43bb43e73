package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// TemporalRange is the observed min/max over the successfully coerced
// values of a temporal column.
type TemporalRange struct {
	Min time.Time `json:"min"`
	Max time.Time `json:"max"`
}

// TableSchema describes one profiled table inside a GraphSchema.
type TableSchema struct {
	Name            string                   `json:"name"`
	RowCount        int                      `json:"row_count"`
	ColumnCount     int                      `json:"column_count"`
	ColumnNames     []string                 `json:"column_names"` // declared order
	Columns         map[string]ColumnProfile `json:"columns"`
	PrimaryKey      string                   `json:"primary_key,omitempty"` // empty when no PK was found
	ForeignKeys     []string                 `json:"foreign_keys"`          // sorted
	TemporalColumns []string                 `json:"temporal_columns"`      // sorted
	TemporalRanges  map[string]TemporalRange `json:"temporal_ranges,omitempty"`
}

// Relationship is one inferred foreign-key edge between two tables.
//
// Invariant: DstKey equals the destination table's primary key.
type Relationship struct {
	SrcTable string `json:"src_table"`
	FKey     string `json:"fkey"`
	DstTable string `json:"dst_table"`
	DstKey   string `json:"dst_key"`
}

// GraphSchema is one immutable snapshot of the inferred relational graph
// for a dataset version. A new ingestion produces a wholly new snapshot;
// existing snapshots are never mutated or merged.
type GraphSchema struct {
	Version       uuid.UUID               `json:"version"`
	TableNames    []string                `json:"table_names"` // ingestion order
	Tables        map[string]*TableSchema `json:"tables"`
	Relationships []Relationship          `json:"relationships"` // deterministic order
}

// Table returns the schema for the named table, or nil if unknown.
func (g *GraphSchema) Table(name string) *TableSchema {
	return g.Tables[name]
}

// SchemaArtifact is the serialized form of a GraphSchema handed to
// external collaborators. It is a deterministic function of the input
// tables: map keys marshal sorted, and all slices carry a fixed order.
type SchemaArtifact struct {
	Tables        map[string]TableArtifact `json:"tables"`
	Relationships []Relationship           `json:"relationships"`
}

// TableArtifact is the per-table section of a SchemaArtifact.
type TableArtifact struct {
	RowCount        int                       `json:"row_count"`
	ColumnCount     int                       `json:"column_count"`
	Columns         map[string]ColumnArtifact `json:"columns"`
	PrimaryKey      string                    `json:"primary_key,omitempty"`
	ForeignKeys     []string                  `json:"foreign_keys"`
	TemporalColumns []string                  `json:"temporal_columns"`
}

// ColumnArtifact is the per-column section of a SchemaArtifact.
type ColumnArtifact struct {
	DType            string  `json:"dtype"`
	NullCount        int     `json:"null_count"`
	NullPercentage   float64 `json:"null_percentage"`
	UniqueCount      int     `json:"unique_count"`
	UniquePercentage float64 `json:"unique_percentage"`
}

// Artifact builds the serialized artifact for this snapshot.
func (g *GraphSchema) Artifact() *SchemaArtifact {
	artifact := &SchemaArtifact{
		Tables:        make(map[string]TableArtifact, len(g.Tables)),
		Relationships: append([]Relationship{}, g.Relationships...),
	}

	for name, table := range g.Tables {
		ta := TableArtifact{
			RowCount:        table.RowCount,
			ColumnCount:     table.ColumnCount,
			Columns:         make(map[string]ColumnArtifact, len(table.Columns)),
			PrimaryKey:      table.PrimaryKey,
			ForeignKeys:     append([]string{}, table.ForeignKeys...),
			TemporalColumns: append([]string{}, table.TemporalColumns...),
		}
		for colName, profile := range table.Columns {
			ta.Columns[colName] = ColumnArtifact{
				DType:            profile.DType,
				NullCount:        profile.NullCount,
				NullPercentage:   profile.NullPercentage,
				UniqueCount:      profile.UniqueCount,
				UniquePercentage: profile.UniquePercentage,
			}
		}
		artifact.Tables[name] = ta
	}
	return artifact
}

// MarshalArtifact serializes the snapshot's artifact as indented JSON.
func (g *GraphSchema) MarshalArtifact() ([]byte, error) {
	data, err := json.MarshalIndent(g.Artifact(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal schema artifact: %w", err)
	}
	return data, nil
}

// ParseArtifact parses a serialized schema artifact.
func ParseArtifact(data []byte) (*SchemaArtifact, error) {
	var artifact SchemaArtifact
	if err := json.Unmarshal(data, &artifact); err != nil {
		return nil, fmt.Errorf("parse schema artifact: %w", err)
	}
	return &artifact, nil
}

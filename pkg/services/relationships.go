package services

import (
	"strings"

	"go.uber.org/zap"

	"github.com/relgraph-ai/relgraph-engine/pkg/models"
)

// RelationshipInferencer derives foreign-key edges across tables from
// column naming. It only reads an already-built schema, so inference is a
// deterministic function of the table and column declaration order.
type RelationshipInferencer struct {
	logger *zap.Logger
}

// NewRelationshipInferencer creates a new RelationshipInferencer.
func NewRelationshipInferencer(logger *zap.Logger) *RelationshipInferencer {
	return &RelationshipInferencer{logger: logger.Named("relationships")}
}

// Infer scans every table's columns in declared order. A column whose
// name contains "id" and that is not its own table's primary key is a
// foreign-key candidate: its "_id" suffix is stripped and the base name is
// resolved against table names as exact match, then +"s", then y->"ies".
// The first matching form wins. Unresolvable candidates are skipped
// silently; that is expected, not an error.
func (ri *RelationshipInferencer) Infer(schema *models.GraphSchema) []models.Relationship {
	relationships := make([]models.Relationship, 0)

	for _, tableName := range schema.TableNames {
		table := schema.Tables[tableName]
		for _, col := range table.ColumnNames {
			if !strings.Contains(strings.ToLower(col), "id") || col == table.PrimaryKey {
				continue
			}

			base := stripIDSuffix(col)
			dstName, ok := resolveDestination(base, schema)
			if !ok {
				ri.logger.Debug("no destination table for foreign-key candidate",
					zap.String("table", tableName),
					zap.String("column", col))
				continue
			}

			dst := schema.Tables[dstName]
			if dst.PrimaryKey == "" {
				// Without a destination primary key there is no valid
				// dst_key, so the edge cannot be recorded.
				ri.logger.Debug("destination table has no primary key",
					zap.String("table", tableName),
					zap.String("column", col),
					zap.String("destination", dstName))
				continue
			}

			relationships = append(relationships, models.Relationship{
				SrcTable: tableName,
				FKey:     col,
				DstTable: dstName,
				DstKey:   dst.PrimaryKey,
			})
		}
	}
	return relationships
}

// stripIDSuffix removes a trailing "_id" (any case) from a column name to
// obtain the candidate base table name.
func stripIDSuffix(column string) string {
	if len(column) >= 3 && strings.EqualFold(column[len(column)-3:], "_id") {
		return column[:len(column)-3]
	}
	return column
}

// resolveDestination tries the naming forms in order: exact table name,
// base+"s", and for bases ending in "y" the "ies" plural. The first form
// that names an existing table wins; later forms are not tried.
func resolveDestination(base string, schema *models.GraphSchema) (string, bool) {
	candidates := []string{base, base + "s"}
	if strings.HasSuffix(base, "y") {
		candidates = append(candidates, base[:len(base)-1]+"ies")
	}

	for _, candidate := range candidates {
		if _, ok := schema.Tables[candidate]; ok {
			return candidate, true
		}
	}
	return "", false
}

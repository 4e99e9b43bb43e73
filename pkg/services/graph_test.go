package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/relgraph-ai/relgraph-engine/pkg/apperrors"
	"github.com/relgraph-ai/relgraph-engine/pkg/models"
)

func TestBuild_AssemblesSchema(t *testing.T) {
	claims := makeTable("claims",
		[]string{"claim_id", "customer_id", "claim_date"},
		models.Row{"claim_id": int64(1), "customer_id": int64(1), "claim_date": "2024-01-10"},
		models.Row{"claim_id": int64(2), "customer_id": int64(2), "claim_date": "2024-02-20"},
	)

	schema, err := NewSchemaBuilder(zap.NewNop()).Build([]*models.Table{customersTable(), claims})
	require.NoError(t, err)

	assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", schema.Version.String())
	assert.Equal(t, []string{"customers", "claims"}, schema.TableNames)

	claimsSchema := schema.Table("claims")
	require.NotNil(t, claimsSchema)
	assert.Equal(t, 2, claimsSchema.RowCount)
	assert.Equal(t, 3, claimsSchema.ColumnCount)
	assert.Equal(t, "claim_id", claimsSchema.PrimaryKey)
	assert.Equal(t, []string{"customer_id"}, claimsSchema.ForeignKeys)
	assert.Equal(t, []string{"claim_date"}, claimsSchema.TemporalColumns)
	assert.True(t, claimsSchema.Columns["claim_date"].IsTemporal)
	assert.False(t, claimsSchema.Columns["claim_id"].IsTemporal)

	rng, ok := claimsSchema.TemporalRanges["claim_date"]
	require.True(t, ok)
	assert.Equal(t, 10, rng.Min.Day())
	assert.Equal(t, 20, rng.Max.Day())
}

func TestBuild_EmptyDatasetIsFatal(t *testing.T) {
	_, err := NewSchemaBuilder(zap.NewNop()).Build(nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrNoUsableTables))
}

func TestBuild_DuplicateTableName(t *testing.T) {
	_, err := NewSchemaBuilder(zap.NewNop()).Build([]*models.Table{customersTable(), customersTable()})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate table name")
}

func TestBuild_NewVersionPerIngestion(t *testing.T) {
	builder := NewSchemaBuilder(zap.NewNop())

	first, err := builder.Build([]*models.Table{customersTable()})
	require.NoError(t, err)
	second, err := builder.Build([]*models.Table{customersTable()})
	require.NoError(t, err)

	assert.NotEqual(t, first.Version, second.Version, "each ingestion produces a wholly new snapshot")
}

func TestArtifact_RoundTrip(t *testing.T) {
	schema := buildTestSchema(t, customersTable(), claimsTable())

	data, err := schema.MarshalArtifact()
	require.NoError(t, err)

	parsed, err := models.ParseArtifact(data)
	require.NoError(t, err)
	assert.Equal(t, schema.Artifact(), parsed, "re-parsing the artifact yields a structurally identical schema")
}

func TestArtifact_Deterministic(t *testing.T) {
	schema := buildTestSchema(t, customersTable(), claimsTable())

	first, err := schema.MarshalArtifact()
	require.NoError(t, err)
	second, err := schema.MarshalArtifact()
	require.NoError(t, err)
	assert.Equal(t, string(first), string(second))
}

func TestSchemaStore_AtomicReplacement(t *testing.T) {
	store := NewSchemaStore()
	assert.Nil(t, store.Current(), "no snapshot before first ingestion")

	first := buildTestSchema(t, customersTable())
	store.Swap(first)
	assert.Same(t, first, store.Current())

	second := buildTestSchema(t, customersTable(), claimsTable())
	store.Swap(second)
	assert.Same(t, second, store.Current(), "replacement is wholesale")
	assert.Len(t, first.TableNames, 1, "old snapshot is untouched")
}

package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/relgraph-ai/relgraph-engine/pkg/apperrors"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestLoad_Directory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "customers.csv", "customer_id,name\n1,Ada\n2,Grace\n")
	writeFile(t, dir, "claims.csv", "claim_id,customer_id,claim_amount,claim_date\n10,1,125.50,2024-01-15\n11,2,,2024-02-01\n")
	writeFile(t, dir, "notes.txt", "not a table")

	tables, err := NewLoader(dir, zap.NewNop()).Load()
	require.NoError(t, err)
	require.Len(t, tables, 2)

	// Sorted file order: claims before customers.
	assert.Equal(t, "claims", tables[0].Name)
	assert.Equal(t, "customers", tables[1].Name)

	claims := tables[0]
	assert.Equal(t, []string{"claim_id", "customer_id", "claim_amount", "claim_date"}, claims.Columns)
	require.Equal(t, 2, claims.RowCount())
	assert.Equal(t, int64(10), claims.Rows[0]["claim_id"])
	assert.Equal(t, 125.50, claims.Rows[0]["claim_amount"])
	assert.Nil(t, claims.Rows[1]["claim_amount"], "empty cell becomes null")

	ts, ok := claims.Rows[0]["claim_date"].(time.Time)
	require.True(t, ok, "date cell parses to time.Time")
	assert.Equal(t, 2024, ts.Year())
}

func TestLoad_SingleFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "policies.csv", "policy_id,active\n100,true\n101,false\n")

	tables, err := NewLoader(filepath.Join(dir, "policies.csv"), zap.NewNop()).Load()
	require.NoError(t, err)
	require.Len(t, tables, 1)
	assert.Equal(t, "policies", tables[0].Name)
	assert.Equal(t, true, tables[0].Rows[0]["active"])
	assert.Equal(t, false, tables[0].Rows[1]["active"])
}

func TestLoad_MissingPath(t *testing.T) {
	_, err := NewLoader("/does/not/exist", zap.NewNop()).Load()
	require.Error(t, err)
}

func TestLoad_EmptyDirectory(t *testing.T) {
	_, err := NewLoader(t.TempDir(), zap.NewNop()).Load()
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrNoUsableTables))
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected any
	}{
		{name: "integer", input: "42", expected: int64(42)},
		{name: "float", input: "3.14", expected: 3.14},
		{name: "bool", input: "TRUE", expected: true},
		{name: "string", input: "Approved", expected: "Approved"},
		{name: "empty is null", input: "", expected: nil},
		{name: "whitespace is null", input: "   ", expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseValue(tt.input)
			if got != tt.expected {
				t.Errorf("parseValue(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

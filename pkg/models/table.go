package models

// Row maps column names to cell values. Cell values are one of:
// string, int64, float64, bool, time.Time, or nil for a null.
type Row map[string]any

// Table is an ingested tabular dataset. Tables are read-only after
// ingestion; a new upload produces new Table values, never a mutation.
type Table struct {
	Name    string   `json:"name"`
	Columns []string `json:"columns"` // declared order, preserved from the source
	Rows    []Row    `json:"rows"`
}

// RowCount returns the number of records in the table.
func (t *Table) RowCount() int {
	return len(t.Rows)
}

// ColumnValues returns the values of one column in row order.
// Missing cells are reported as nil.
func (t *Table) ColumnValues(column string) []any {
	values := make([]any, 0, len(t.Rows))
	for _, row := range t.Rows {
		values = append(values, row[column])
	}
	return values
}

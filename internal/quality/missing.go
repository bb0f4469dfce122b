package quality

import (
	"dqagent/internal/dataset"
)

// CheckMissing computes per-column missing counts and ratios over every row.
// The summary is keyed by the table's actual columns, whatever they are; the
// check is schema-agnostic. Ratios are 0.0 for an empty table.
func (e *Engine) CheckMissing(t *dataset.Table) *MissingSummary {
	totalRows := t.RowCount()

	missingByColumn := make(map[string]int, t.ColumnCount())
	ratioByColumn := make(map[string]float64, t.ColumnCount())

	for _, column := range t.Columns() {
		count := 0
		for i := 0; i < totalRows; i++ {
			if t.Cell(i, column).IsAbsent() {
				count++
			}
		}
		missingByColumn[column] = count
		if totalRows > 0 {
			ratioByColumn[column] = float64(count) / float64(totalRows)
		} else {
			ratioByColumn[column] = 0.0
		}
	}

	return &MissingSummary{
		TotalRows:            totalRows,
		TotalColumns:         t.ColumnCount(),
		MissingByColumn:      missingByColumn,
		MissingRatioByColumn: ratioByColumn,
	}
}

// CollectMissingRows returns every row with at least one absent field, in
// original row order, each carrying the list of columns that were absent in
// table column order.
func (e *Engine) CollectMissingRows(t *dataset.Table) []RowIssue {
	issues := []RowIssue{}

	for i := 0; i < t.RowCount(); i++ {
		row := t.Row(i)

		var missing []string
		for _, column := range t.Columns() {
			if row.Cell(column).IsAbsent() {
				missing = append(missing, column)
			}
		}
		if len(missing) == 0 {
			continue
		}

		issues = append(issues, RowIssue{
			RowIndex:       i,
			Values:         row.Values(),
			MissingColumns: missing,
		})
	}

	return issues
}

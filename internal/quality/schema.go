package quality

import (
	"sort"

	"dqagent/internal/dataset"
)

// CheckSchema compares the table's columns against the configured required
// set. Both difference lists come back sorted so the report is stable
// regardless of source column order.
func (e *Engine) CheckSchema(t *dataset.Table) *SchemaSummary {
	present := make(map[string]struct{}, t.ColumnCount())
	for _, column := range t.Columns() {
		present[column] = struct{}{}
	}

	required := make(map[string]struct{}, len(e.opts.RequiredColumns))
	for _, column := range e.opts.RequiredColumns {
		required[column] = struct{}{}
	}

	missingRequired := make([]string, 0)
	for column := range required {
		if _, ok := present[column]; !ok {
			missingRequired = append(missingRequired, column)
		}
	}
	sort.Strings(missingRequired)

	extra := make([]string, 0)
	for column := range present {
		if _, ok := required[column]; !ok {
			extra = append(extra, column)
		}
	}
	sort.Strings(extra)

	return &SchemaSummary{
		RequiredColumns:        e.opts.RequiredColumns,
		MissingRequiredColumns: missingRequired,
		ExtraColumns:           extra,
	}
}

package quality

import (
	"time"

	"dqagent/internal/dataset"
)

// dateLayouts are the formats a date cell may arrive in, tried in order.
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"2006.01.02",
	"20060102",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
}

// parseDate parses a date cell's textual value. Absent and non-text cells
// report false; parse failure is a data condition, never an error.
func parseDate(c dataset.Cell) (time.Time, bool) {
	if c.Kind() != dataset.KindText {
		return time.Time{}, false
	}
	text, _ := c.Text()
	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, text); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}

// sameCalendarDay reports whether two instants fall on the same calendar
// date, ignoring time-of-day.
func sameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// CheckDatetime counts parse successes and failures per configured datetime
// column. Absent cells count as failures, like the unparseable values they
// behave as everywhere else; a column the table lacks counts 0/0.
func (e *Engine) CheckDatetime(t *dataset.Table) *DatetimeSummary {
	success := make(map[string]int, len(e.opts.DatetimeColumns))
	fail := make(map[string]int, len(e.opts.DatetimeColumns))

	for _, column := range e.opts.DatetimeColumns {
		success[column] = 0
		fail[column] = 0
		if !t.HasColumn(column) {
			continue
		}
		for i := 0; i < t.RowCount(); i++ {
			if _, ok := parseDate(t.Cell(i, column)); ok {
				success[column]++
			} else {
				fail[column]++
			}
		}
	}

	return &DatetimeSummary{
		DatetimeColumns:   e.opts.DatetimeColumns,
		ParseSuccessCount: success,
		ParseFailCount:    fail,
	}
}

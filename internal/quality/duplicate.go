package quality

import (
	"strconv"

	"dqagent/internal/dataset"
)

// CollectDuplicateRows returns every row whose key-column value is shared by
// at least one other row: keep=none semantics, all members of a group are
// reported, in original row order. A table without the key column yields an
// empty result, and rows with an absent key never group with each other.
func (e *Engine) CollectDuplicateRows(t *dataset.Table) []RowIssue {
	issues := []RowIssue{}

	key := e.opts.KeyColumn
	if key == "" || !t.HasColumn(key) {
		return issues
	}

	counts := make(map[string]int)
	for i := 0; i < t.RowCount(); i++ {
		if canonical, ok := duplicateKey(t.Cell(i, key)); ok {
			counts[canonical]++
		}
	}

	code := "duplicate_" + key

	for i := 0; i < t.RowCount(); i++ {
		canonical, ok := duplicateKey(t.Cell(i, key))
		if !ok || counts[canonical] < 2 {
			continue
		}
		issues = append(issues, RowIssue{
			RowIndex: i,
			Values:   t.Row(i).Values(),
			Issues:   []string{code},
		})
	}

	return issues
}

// duplicateKey canonicalizes a key cell for grouping. Numeric-coercible
// values group numerically so "1" and "1.0" collide; everything else groups
// on the raw text. Absent cells do not group at all.
func duplicateKey(c dataset.Cell) (string, bool) {
	if c.IsAbsent() {
		return "", false
	}
	if v, ok := c.Number(); ok {
		return "n:" + strconv.FormatFloat(v, 'g', -1, 64), true
	}
	text, _ := c.Text()
	return "t:" + text, true
}

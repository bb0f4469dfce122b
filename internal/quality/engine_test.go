package quality

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dqagent/internal/dataset"
)

// TestEngineRunEndToEnd drives the full engine over the two-row repeated
// order scenario: same order ID twice, second row negative with a bad date.
func TestEngineRunEndToEnd(t *testing.T) {
	table := salesTable(
		salesRow("1", "1", "10", "10", "2024-01-01"),
		salesRow("1", "-1", "10", "-10", "bad"),
	)
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	report := testEngine(t).Run(table, base)

	assert.True(t, report.HasFile)
	assert.NotEmpty(t, report.Message)
	require.NotNil(t, report.RowIssues)

	// Both occurrences of the repeated order ID are flagged.
	require.Len(t, report.RowIssues.Duplicates, 2)
	assert.Equal(t, 0, report.RowIssues.Duplicates[0].RowIndex)
	assert.Equal(t, 1, report.RowIssues.Duplicates[1].RowIndex)

	// The second row carries exactly the three violated rules, in order.
	require.Len(t, report.RowIssues.BusinessRule, 1)
	assert.Equal(t, 1, report.RowIssues.BusinessRule[0].RowIndex)
	assert.Equal(t,
		[]string{RuleQuantityNonPositive, RuleAmountNonPositive, RuleInvalidDateFormat},
		report.RowIssues.BusinessRule[0].Issues)

	// No missing values, and with two points the IQR fences are degenerate.
	assert.Empty(t, report.RowIssues.Missing)
	for column, count := range report.Outlier.OutlierCountByColumn {
		assert.Zero(t, count, "column %s", column)
	}

	require.NotNil(t, report.Missing)
	assert.Equal(t, 2, report.Missing.TotalRows)
	assert.Equal(t, 0, report.Missing.MissingByColumn["order_id"])
}

func TestEngineRunIdempotent(t *testing.T) {
	table := salesTable(
		salesRow("1", "2", "3", "6", "2024-01-01"),
		salesRow("2", "-1", "3", "-3", "2024-01-02"),
		salesRow("3", "", "3", "9", "bad"),
	)
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	engine := testEngine(t)

	first, err := json.Marshal(engine.Run(table, base))
	require.NoError(t, err)
	second, err := json.Marshal(engine.Run(table, base))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestEngineRunEmptyTable(t *testing.T) {
	table := dataset.New([]string{"order_id", "order_date", "quantity", "unit_price", "amount"})

	report := testEngine(t).Run(table, time.Time{})

	assert.True(t, report.HasFile)
	assert.Equal(t, 0, report.Missing.TotalRows)
	assert.Empty(t, report.RowIssues.Missing)
	assert.Empty(t, report.RowIssues.Duplicates)
	assert.Empty(t, report.RowIssues.BusinessRule)
}

func TestNewLoadFailureReport(t *testing.T) {
	report := NewLoadFailureReport("no file today")

	assert.False(t, report.HasFile)
	assert.Equal(t, "no file today", report.Message)
	assert.Nil(t, report.Missing)
	assert.Nil(t, report.Schema)
	assert.Nil(t, report.Datetime)
	assert.Nil(t, report.Outlier)
	assert.Nil(t, report.RowIssues)
}

func TestNewEngineDefaults(t *testing.T) {
	engine := NewEngine(nil, Options{})

	assert.NotNil(t, engine.logger)
	assert.Equal(t, 1.5, engine.opts.IQRMultiplier)
}

func TestReportJSONShape(t *testing.T) {
	report := testEngine(t).Run(salesTable(salesRow("1", "2", "3", "6", "2024-01-01")), time.Time{})

	data, err := json.Marshal(report)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Contains(t, decoded, "has_file")
	assert.Contains(t, decoded, "message")
	assert.Contains(t, decoded, "missing")
	assert.Contains(t, decoded, "outlier")
	assert.Contains(t, decoded, "row_issues")

	rowIssues := decoded["row_issues"].(map[string]any)
	assert.Contains(t, rowIssues, "missing")
	assert.Contains(t, rowIssues, "duplicates")
	assert.Contains(t, rowIssues, "business_rule")
}

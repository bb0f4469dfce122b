package quality

import (
	"log/slog"
	"time"

	"dqagent/internal/dataset"
)

// successMessage is the fixed message for a run that reached the checks.
const successMessage = "sales file checked successfully"

// Options configures the engine for one schema. Column lists and the
// multiplier come from external configuration; the engine holds no ambient
// state beyond them.
type Options struct {
	RequiredColumns []string
	NumericColumns  []string
	DatetimeColumns []string
	KeyColumn       string
	DateColumn      string
	IQRMultiplier   float64
}

// DefaultOptions returns the ABC Shop sales schema the agent ships with.
func DefaultOptions() Options {
	return Options{
		RequiredColumns: []string{"order_id", "order_date", "customer_id", "product_id", "quantity", "unit_price", "amount"},
		NumericColumns:  []string{"quantity", "unit_price", "amount"},
		DatetimeColumns: []string{"order_date"},
		KeyColumn:       "order_id",
		DateColumn:      "order_date",
		IQRMultiplier:   1.5,
	}
}

// Engine runs the quality checks over one table per call. It is stateless
// across runs; the same engine and table always produce the same report.
type Engine struct {
	logger *slog.Logger
	opts   Options
}

// NewEngine creates an engine for the given schema options. A nil logger
// falls back to slog.Default; a non-positive IQR multiplier falls back
// to 1.5.
func NewEngine(logger *slog.Logger, opts Options) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	if opts.IQRMultiplier <= 0 {
		opts.IQRMultiplier = 1.5
	}
	return &Engine{logger: logger, opts: opts}
}

// Run executes every check over the table and assembles the report.
// baseDate is the reference calendar date for the non-base-date rule; the
// zero time disables that rule. Run never fails: loader problems are
// handled before the engine, per-cell problems are data conditions.
func (e *Engine) Run(t *dataset.Table, baseDate time.Time) *Report {
	started := time.Now()

	report := &Report{
		HasFile:  true,
		Message:  successMessage,
		Missing:  e.CheckMissing(t),
		Schema:   e.CheckSchema(t),
		Datetime: e.CheckDatetime(t),
		Outlier:  e.CheckOutliers(t),
		RowIssues: &RowIssues{
			Missing:      e.CollectMissingRows(t),
			Duplicates:   e.CollectDuplicateRows(t),
			BusinessRule: e.CollectRuleViolations(t, baseDate),
		},
	}

	e.logger.Info("quality checks completed",
		slog.Int("rows", t.RowCount()),
		slog.Int("columns", t.ColumnCount()),
		slog.Int("missing_rows", len(report.RowIssues.Missing)),
		slog.Int("duplicate_rows", len(report.RowIssues.Duplicates)),
		slog.Int("business_rule_rows", len(report.RowIssues.BusinessRule)),
		slog.Duration("duration", time.Since(started)))

	return report
}

// Package quality implements the data-quality engine for the daily sales
// table: missing-value, duplicate, IQR-outlier, and business-rule checks,
// plus the schema and datetime-parse summaries, assembled into one Report
// per run.
//
// Every check follows the same column-absent policy: a column the table does
// not carry behaves as always-absent (zero counts, never-comparable fields),
// not as an error. Per-cell coercion failures are data conditions folded
// into counts and codes; the engine itself never fails once it has a table.
package quality

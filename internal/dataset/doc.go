// Package dataset provides the in-memory table model used by the quality
// engine, plus loaders for the daily sales files.
//
// A Table is an ordered set of named columns over rows of Cells. A Cell is a
// tagged union of three variants: a number, a text value, or an absent value.
// Coercion rules are explicit: asking a text cell for its numeric value
// either succeeds or reports failure, it never errors. A column that does
// not exist in the table behaves as always-absent for every row; the checks
// in the quality package rely on that policy.
//
// Loaders exist for CSV (the primary daily format) and XLSX. Both produce
// identical tables for equivalent content: the first row is the header, blank
// or NA-marker cells load as absent, everything else loads as text.
package dataset

package dataset

import (
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

// CellKind identifies which variant a Cell holds.
type CellKind int

const (
	KindAbsent CellKind = iota
	KindNumber
	KindText
)

// Cell is a single table value: a number, a text value, or absent.
// The zero value is an absent cell.
type Cell struct {
	kind CellKind
	num  float64
	text string
}

// Absent returns the absent cell.
func Absent() Cell {
	return Cell{kind: KindAbsent}
}

// Number returns a numeric cell.
func Number(v float64) Cell {
	return Cell{kind: KindNumber, num: v}
}

// Text returns a text cell.
func Text(s string) Cell {
	return Cell{kind: KindText, text: s}
}

// missingMarkers are raw values that load as absent, matching how the daily
// exports encode nulls.
var missingMarkers = map[string]struct{}{
	"":     {},
	"na":   {},
	"n/a":  {},
	"null": {},
	"nan":  {},
	"none": {},
}

// FromRaw classifies a raw string value from a loader into a cell.
// Whitespace is trimmed; blank and NA-marker values become absent.
func FromRaw(raw string) Cell {
	trimmed := strings.TrimSpace(raw)
	if _, ok := missingMarkers[strings.ToLower(trimmed)]; ok {
		return Absent()
	}
	return Text(trimmed)
}

// Kind reports the variant this cell holds.
func (c Cell) Kind() CellKind {
	return c.kind
}

// IsAbsent reports whether the cell holds no value.
func (c Cell) IsAbsent() bool {
	return c.kind == KindAbsent
}

// Number returns the cell's numeric value. Text cells are coerced; a text
// value that does not parse as a number reports false, as does an absent
// cell. Coercion failure is a data condition, not an error.
func (c Cell) Number() (float64, bool) {
	switch c.kind {
	case KindNumber:
		return c.num, true
	case KindText:
		v, err := cast.ToFloat64E(c.text)
		if err != nil {
			return 0, false
		}
		return v, true
	default:
		return 0, false
	}
}

// Text returns the cell's textual value. Numbers render with the shortest
// representation that round-trips; absent cells report false.
func (c Cell) Text() (string, bool) {
	switch c.kind {
	case KindNumber:
		return strconv.FormatFloat(c.num, 'f', -1, 64), true
	case KindText:
		return c.text, true
	default:
		return "", false
	}
}

// Value returns the cell as a JSON-friendly value: float64, string, or nil.
func (c Cell) Value() any {
	switch c.kind {
	case KindNumber:
		return c.num
	case KindText:
		return c.text
	default:
		return nil
	}
}

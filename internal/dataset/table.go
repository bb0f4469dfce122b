package dataset

// Table is an ordered, read-only collection of rows over named columns.
// Column order is the order of the source header; row order is the order of
// the source file. Tables are built once by a loader and never mutated by
// the checks.
type Table struct {
	columns []string
	index   map[string]int
	rows    [][]Cell
}

// New creates an empty table with the given column order.
func New(columns []string) *Table {
	index := make(map[string]int, len(columns))
	for i, name := range columns {
		index[name] = i
	}
	return &Table{columns: columns, index: index}
}

// AppendRow adds a row. Short rows are padded with absent cells; extra
// cells beyond the column count are dropped.
func (t *Table) AppendRow(cells []Cell) {
	row := make([]Cell, len(t.columns))
	for i := range row {
		if i < len(cells) {
			row[i] = cells[i]
		} else {
			row[i] = Absent()
		}
	}
	t.rows = append(t.rows, row)
}

// Columns returns the column names in source order.
func (t *Table) Columns() []string {
	return t.columns
}

// ColumnCount returns the number of columns.
func (t *Table) ColumnCount() int {
	return len(t.columns)
}

// RowCount returns the number of rows.
func (t *Table) RowCount() int {
	return len(t.rows)
}

// HasColumn reports whether the table contains the named column.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Cell returns the value at (row, column). A column the table does not have
// behaves as always-absent; this is the engine-wide column-absent policy,
// not a lookup failure.
func (t *Table) Cell(row int, column string) Cell {
	i, ok := t.index[column]
	if !ok {
		return Absent()
	}
	return t.rows[row][i]
}

// Row returns a view of the row at the given positional index.
func (t *Table) Row(i int) Row {
	return Row{table: t, idx: i}
}

// Row is a lightweight view of one table row. Index is the row's original
// position in the source file; it is the row's identity in reports.
type Row struct {
	table *Table
	idx   int
}

// Index returns the row's original positional index.
func (r Row) Index() int {
	return r.idx
}

// Cell returns the row's value for the named column.
func (r Row) Cell(column string) Cell {
	return r.table.Cell(r.idx, column)
}

// Values returns the row as a column-name to JSON-friendly-value mapping.
// Absent cells map to nil so the rendered row keeps its full shape.
func (r Row) Values() map[string]any {
	values := make(map[string]any, len(r.table.columns))
	for _, name := range r.table.columns {
		values[name] = r.Cell(name).Value()
	}
	return values
}

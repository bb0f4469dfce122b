package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"dqagent/internal/errors"
)

// Load reads the file at path into a table, choosing the parser by
// extension (.csv or .xlsx). A missing file is reported with code
// FILE_NOT_FOUND, anything that opens but fails to parse with
// FILE_UNREADABLE; both are terminal for the run.
func Load(path string) (*Table, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Newf(errors.CodeFileNotFound, "no sales file at %s", path)
		}
		return nil, errors.Wrap(err, errors.CodeFileUnreadable, fmt.Sprintf("cannot stat %s", path))
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return LoadXLSX(path)
	default:
		return LoadCSV(path)
	}
}

// LoadCSV parses a CSV file whose first record is the header. Short records
// pad with absent cells; a record longer than the header is a parse error.
func LoadCSV(path string) (*Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeFileUnreadable, fmt.Sprintf("failed to open %s", path))
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, errors.New(errors.CodeFileUnreadable, fmt.Sprintf("%s is empty", path))
	}
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeFileUnreadable, fmt.Sprintf("failed to read header of %s", path))
	}

	table := New(trimHeader(header))

	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, errors.CodeFileUnreadable, fmt.Sprintf("failed to parse %s", path))
		}
		if len(record) > table.ColumnCount() {
			return nil, errors.Newf(errors.CodeFileUnreadable,
				"%s line %d has %d fields, header has %d", path, line, len(record), table.ColumnCount())
		}
		table.AppendRow(classify(record))
	}

	slog.Debug("loaded CSV file",
		slog.String("path", path),
		slog.Int("rows", table.RowCount()),
		slog.Int("columns", table.ColumnCount()))

	return table, nil
}

// LoadXLSX parses the first sheet of an Excel workbook the same way LoadCSV
// parses a CSV: first row is the header, every cell value classified as text
// or absent. Trailing cells excelize omits on ragged rows pad as absent.
func LoadXLSX(path string) (*Table, error) {
	workbook, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeFileUnreadable, fmt.Sprintf("failed to open %s", path))
	}
	defer workbook.Close()

	sheets := workbook.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New(errors.CodeFileUnreadable, fmt.Sprintf("%s has no sheets", path))
	}

	rows, err := workbook.GetRows(sheets[0])
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeFileUnreadable, fmt.Sprintf("failed to read sheet %q of %s", sheets[0], path))
	}
	if len(rows) == 0 {
		return nil, errors.New(errors.CodeFileUnreadable, fmt.Sprintf("%s is empty", path))
	}

	table := New(trimHeader(rows[0]))
	for _, row := range rows[1:] {
		table.AppendRow(classify(row))
	}

	slog.Debug("loaded XLSX file",
		slog.String("path", path),
		slog.String("sheet", sheets[0]),
		slog.Int("rows", table.RowCount()),
		slog.Int("columns", table.ColumnCount()))

	return table, nil
}

func trimHeader(header []string) []string {
	columns := make([]string, len(header))
	for i, name := range header {
		columns[i] = strings.TrimSpace(name)
	}
	return columns
}

func classify(record []string) []Cell {
	cells := make([]Cell, len(record))
	for i, raw := range record {
		cells[i] = FromRaw(raw)
	}
	return cells
}

package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"dqagent/internal/errors"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadCSV(t *testing.T) {
	path := writeFile(t, "sales_2024_01_01.csv",
		"order_id,quantity,amount\nA-1,2,20\nA-2,,15\n")

	table, err := LoadCSV(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"order_id", "quantity", "amount"}, table.Columns())
	assert.Equal(t, 2, table.RowCount())

	quantity, ok := table.Cell(0, "quantity").Number()
	assert.True(t, ok)
	assert.Equal(t, 2.0, quantity)
	assert.True(t, table.Cell(1, "quantity").IsAbsent())
}

func TestLoadCSVShortRecordPads(t *testing.T) {
	path := writeFile(t, "short.csv", "a,b,c\n1,2\n")

	table, err := LoadCSV(path)
	require.NoError(t, err)
	assert.True(t, table.Cell(0, "c").IsAbsent())
}

func TestLoadCSVLongRecordFails(t *testing.T) {
	path := writeFile(t, "long.csv", "a,b\n1,2,3\n")

	_, err := LoadCSV(path)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.CodeFileUnreadable))
}

func TestLoadCSVEmptyFileFails(t *testing.T) {
	path := writeFile(t, "empty.csv", "")

	_, err := LoadCSV(path)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.CodeFileUnreadable))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "sales_2024_01_01.csv"))
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.CodeFileNotFound))
}

func TestLoadXLSXMatchesCSV(t *testing.T) {
	dir := t.TempDir()
	xlsxPath := filepath.Join(dir, "sales_2024_01_01.xlsx")

	workbook := excelize.NewFile()
	sheet := workbook.GetSheetName(0)
	require.NoError(t, workbook.SetSheetRow(sheet, "A1", &[]any{"order_id", "quantity", "amount"}))
	require.NoError(t, workbook.SetSheetRow(sheet, "A2", &[]any{"A-1", "2", "20"}))
	require.NoError(t, workbook.SetSheetRow(sheet, "A3", &[]any{"A-2", "", "15"}))
	require.NoError(t, workbook.SaveAs(xlsxPath))

	csvPath := filepath.Join(dir, "sales_2024_01_01.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte("order_id,quantity,amount\nA-1,2,20\nA-2,,15\n"), 0o644))

	fromXLSX, err := Load(xlsxPath)
	require.NoError(t, err)
	fromCSV, err := Load(csvPath)
	require.NoError(t, err)

	require.Equal(t, fromCSV.Columns(), fromXLSX.Columns())
	require.Equal(t, fromCSV.RowCount(), fromXLSX.RowCount())
	for i := 0; i < fromCSV.RowCount(); i++ {
		assert.Equal(t, fromCSV.Row(i).Values(), fromXLSX.Row(i).Values())
	}
}

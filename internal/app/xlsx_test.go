package app

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeXLSX(t *testing.T, path string) {
	t.Helper()

	workbook := excelize.NewFile()
	sheet := workbook.GetSheetName(0)
	require.NoError(t, workbook.SetSheetRow(sheet, "A1", &[]any{"order_id", "order_date", "quantity", "unit_price", "amount"}))
	require.NoError(t, workbook.SetSheetRow(sheet, "A2", &[]any{"1", "2024-01-01", "2", "5", "10"}))
	require.NoError(t, workbook.SaveAs(path))
}

package xlsxparser_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ginjaninja78/sales-analyzer/internal/types"
	"github.com/ginjaninja78/sales-analyzer/internal/xlsxparser"
)

// writeWorkbook builds a single-sheet workbook from string rows and
// returns its path.
func writeWorkbook(t *testing.T, rows [][]interface{}) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}

	path := filepath.Join(t.TempDir(), "sales.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

// TestParse tests reading a workbook into the shared raw row sequence.
func TestParse(t *testing.T) {
	path := writeWorkbook(t, [][]interface{}{
		{"product_name", "quantity", "unit_price"},
		{"Laptop", "5", "999.99"},
		{"Mouse", "2", "10.00"},
	})

	data, err := xlsxparser.Parse(path)
	require.NoError(t, err)

	assert.Equal(t, "Sheet1", data.SheetName)
	assert.Equal(t, 2, data.RowCount)

	require.Len(t, data.Rows, 2)
	assert.Equal(t, 1, data.Rows[0].Index)
	assert.Equal(t, "Laptop", data.Rows[0].Fields[types.ColumnProductName])
	assert.Equal(t, "999.99", data.Rows[0].Fields[types.ColumnUnitPrice])
	assert.Equal(t, "Mouse", data.Rows[1].Fields[types.ColumnProductName])
}

// TestParseMissingColumnIsFatal tests that a header row missing a required
// column rejects the whole workbook.
func TestParseMissingColumnIsFatal(t *testing.T) {
	path := writeWorkbook(t, [][]interface{}{
		{"product_name", "quantity"},
		{"Laptop", "5"},
	})

	_, err := xlsxparser.Parse(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required column(s): unit_price")
}

// TestParseTruncatedTrailingCell tests that a short row still carries every
// column: a truncated trailing cell is an empty value, not a missing
// column.
func TestParseTruncatedTrailingCell(t *testing.T) {
	path := writeWorkbook(t, [][]interface{}{
		{"product_name", "quantity", "unit_price"},
		{"Laptop", "5"},
	})

	data, err := xlsxparser.Parse(path)
	require.NoError(t, err)
	require.Len(t, data.Rows, 1)

	value, ok := data.Rows[0].Fields[types.ColumnUnitPrice]
	assert.True(t, ok)
	assert.Equal(t, "", value)
}

// TestParseMissingFile tests that an absent workbook is a fatal error.
func TestParseMissingFile(t *testing.T) {
	_, err := xlsxparser.Parse(filepath.Join(t.TempDir(), "nope.xlsx"))
	require.Error(t, err)
}

// TestParseUnknownSheet tests selecting a sheet that does not exist.
func TestParseUnknownSheet(t *testing.T) {
	path := writeWorkbook(t, [][]interface{}{
		{"product_name", "quantity", "unit_price"},
	})

	_, err := xlsxparser.ParseSheet(path, "Q3 Numbers")
	require.Error(t, err)
}

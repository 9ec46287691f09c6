// =============================================================================
// Sales Analyzer - XLSX Row Source
// =============================================================================
//
// Some teams export their sales data as XLSX workbooks rather than
// delimited text. This module reads a workbook sheet into the same raw row
// sequence the CSV source produces, so the rest of the pipeline does not
// care which format the export arrived in.
//
// FAILURE MODEL:
//   Mirrors the CSV source: unreadable workbook, missing sheet, or a header
//   row missing a required sales column are all fatal. Cell-level problems
//   are left to the record parser.
//
// =============================================================================

package xlsxparser

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ginjaninja78/sales-analyzer/internal/types"
)

// =============================================================================
// WORKBOOK DATA STRUCTURE
// =============================================================================

// WorkbookData represents a parsed XLSX sales export.
type WorkbookData struct {
	// Headers contains the column headers from the first row of the sheet.
	Headers []string

	// Rows contains the data rows with their 1-based data row numbers.
	Rows []types.RawRow

	// SourceFile is the path to the source workbook.
	SourceFile string

	// SheetName is the sheet the rows were read from.
	SheetName string

	// RowCount is the total number of data rows (excluding the header).
	RowCount int
}

// =============================================================================
// PARSER FUNCTIONS
// =============================================================================

// Parse reads the first sheet of an XLSX workbook as a sales export.
func Parse(filePath string) (*WorkbookData, error) {
	return ParseSheet(filePath, "")
}

// ParseSheet reads a specific sheet of an XLSX workbook as a sales export.
// An empty sheetName selects the first sheet in the workbook.
//
// The first row of the sheet is treated as the header row; every required
// sales column must be present or the whole file is rejected.
func ParseSheet(filePath, sheetName string) (*WorkbookData, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	if sheetName == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("workbook has no sheets")
		}
		sheetName = sheets[0]
	}

	allRows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheetName, err)
	}

	if len(allRows) == 0 {
		return nil, fmt.Errorf("sheet %q is empty", sheetName)
	}

	headers := make([]string, len(allRows[0]))
	for i, h := range allRows[0] {
		headers[i] = strings.TrimSpace(h)
	}

	if missing := types.MissingColumns(headers); len(missing) > 0 {
		return nil, fmt.Errorf("missing required column(s): %s", strings.Join(missing, ", "))
	}

	rows := make([]types.RawRow, 0, len(allRows)-1)
	for rowIndex := 1; rowIndex < len(allRows); rowIndex++ {
		row := allRows[rowIndex]

		if isRowEmpty(row) {
			continue
		}

		fields := make(map[string]string, len(headers))
		for colIndex, header := range headers {
			// excelize truncates trailing empty cells, so short rows are
			// normal here. The sheet structurally has every column, so a
			// truncated cell is an empty value, not a missing column.
			value := ""
			if colIndex < len(row) {
				value = strings.TrimSpace(row[colIndex])
			}
			fields[header] = value
		}

		rows = append(rows, types.RawRow{Index: rowIndex, Fields: fields})
	}

	return &WorkbookData{
		Headers:    headers,
		Rows:       rows,
		SourceFile: filePath,
		SheetName:  sheetName,
		RowCount:   len(rows),
	}, nil
}

// isRowEmpty checks if a row contains only empty cells.
func isRowEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// =============================================================================
// Sales Analyzer - CSV Row Source
// =============================================================================
//
// This module reads delimited sales exports and turns them into the raw row
// sequence consumed by the ingestion pipeline. It handles:
//   - Different delimiters (comma, pipe, tab, etc.)
//   - Extra header rows before the data
//   - Quoted fields with lazy quoting
//
// FAILURE MODEL:
//   Everything this module returns an error for is fatal to the run: a file
//   that cannot be opened, a file that cannot be read as CSV, or a header
//   row missing one of the required sales columns. Per-row content problems
//   are never detected here; rows are handed to the record parser as-is.
//
// =============================================================================

package csvparser

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ginjaninja78/sales-analyzer/internal/config"
	"github.com/ginjaninja78/sales-analyzer/internal/types"
)

// =============================================================================
// CSV DATA STRUCTURE
// =============================================================================

// CSVData represents a fully parsed sales export.
type CSVData struct {
	// Headers contains the column headers, taken from the last header row.
	Headers []string

	// Rows contains the data rows with their 1-based data row numbers.
	Rows []types.RawRow

	// SourceFile is the path to the source file.
	SourceFile string

	// RowCount is the total number of data rows (excluding headers).
	RowCount int
}

// =============================================================================
// PARSER FUNCTIONS
// =============================================================================

// Parse reads a delimited sales export and returns the materialized rows.
//
// PARAMETERS:
//   - filePath: The path to the input file.
//   - settings: The CSV parsing settings from the configuration.
//
// RETURNS:
//   - A pointer to the CSVData struct containing the parsed rows.
//   - An error if the file cannot be read or the required columns are
//     absent from the header. Both are fatal; no partial data is returned.
func Parse(filePath string, settings config.CSVSettings) (*CSVData, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	csvReader := csv.NewReader(bufio.NewReader(file))
	configureReader(csvReader, settings)

	allRows, err := csvReader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}

	if len(allRows) == 0 {
		return nil, fmt.Errorf("file is empty")
	}

	headers, err := extractHeaders(allRows, settings)
	if err != nil {
		return nil, err
	}

	rows := extractDataRows(allRows, headers, settings)

	return &CSVData{
		Headers:    headers,
		Rows:       rows,
		SourceFile: filePath,
		RowCount:   len(rows),
	}, nil
}

// configureReader configures the CSV reader based on the settings.
func configureReader(reader *csv.Reader, settings config.CSVSettings) {
	switch settings.Delimiter {
	case "\\t", "tab", "TAB":
		reader.Comma = '\t'
	case "|", "pipe", "PIPE":
		reader.Comma = '|'
	case ";", "semicolon":
		reader.Comma = ';'
	default:
		if len(settings.Delimiter) > 0 {
			reader.Comma = rune(settings.Delimiter[0])
		} else {
			reader.Comma = ','
		}
	}

	// Rows with missing trailing fields still reach the record parser,
	// which reports the absent column with the row number.
	reader.FieldsPerRecord = -1

	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
}

// extractHeaders returns the column headers and verifies that every
// required sales column is present. A missing column is a fatal error:
// the premise "this is sales data shaped as expected" is violated, so no
// per-row analysis happens at all.
func extractHeaders(allRows [][]string, settings config.CSVSettings) ([]string, error) {
	if len(allRows) < settings.HeaderRows {
		return nil, fmt.Errorf("file has fewer rows than header_rows setting")
	}

	// Column names come from the last header row; earlier rows are titles
	// or export metadata.
	headers := cleanHeaders(allRows[settings.HeaderRows-1])

	if missing := types.MissingColumns(headers); len(missing) > 0 {
		return nil, fmt.Errorf("missing required column(s): %s", strings.Join(missing, ", "))
	}

	return headers, nil
}

// cleanHeaders trims whitespace from header values.
func cleanHeaders(headers []string) []string {
	cleaned := make([]string, len(headers))
	for i, header := range headers {
		cleaned[i] = strings.TrimSpace(header)
	}
	return cleaned
}

// extractDataRows converts the slices after the header into RawRows.
// Data row numbering is 1-based and counts every physical data row,
// including empty rows that are skipped, so reported row numbers line up
// with the file the user is looking at.
func extractDataRows(allRows [][]string, headers []string, settings config.CSVSettings) []types.RawRow {
	startIndex := settings.DataStartRow - 1
	if startIndex < settings.HeaderRows {
		startIndex = settings.HeaderRows
	}

	if startIndex >= len(allRows) {
		return []types.RawRow{}
	}

	rows := make([]types.RawRow, 0, len(allRows)-startIndex)

	for rowIndex := startIndex; rowIndex < len(allRows); rowIndex++ {
		row := allRows[rowIndex]

		if isRowEmpty(row) {
			continue
		}

		rows = append(rows, toRawRow(row, headers, rowIndex-startIndex+1))
	}

	return rows
}

// toRawRow maps one physical row onto the header columns. Columns absent
// from a short row are left out of the map entirely, so the record parser
// can distinguish a missing column from an empty value.
func toRawRow(row []string, headers []string, dataRowNumber int) types.RawRow {
	fields := make(map[string]string, len(headers))
	for colIndex, header := range headers {
		if colIndex < len(row) {
			fields[header] = strings.TrimSpace(row[colIndex])
		}
	}
	return types.RawRow{Index: dataRowNumber, Fields: fields}
}

// isRowEmpty checks if a row contains only empty values.
func isRowEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// =============================================================================
// STREAMING PARSER FOR LARGE FILES
// =============================================================================

// StreamingParser provides memory-efficient parsing for large exports.
// Instead of loading the entire file into memory, it yields rows one at a
// time. It satisfies the ingestion pipeline's RowSource interface.
//
// USAGE:
//   parser, err := NewStreamingParser(filePath, settings)
//   if err != nil {
//       return err
//   }
//   defer parser.Close()
//
//   for parser.Next() {
//       row := parser.Row()
//       // Process the row...
//   }
//
//   if err := parser.Err(); err != nil {
//       return err
//   }
type StreamingParser struct {
	file          *os.File
	reader        *csv.Reader
	headers       []string
	currentRow    types.RawRow
	dataRowNumber int
	err           error
	settings      config.CSVSettings
}

// NewStreamingParser opens a sales export for streaming and validates its
// header row. Header validation happens eagerly so a malformed file fails
// before any rows are consumed.
func NewStreamingParser(filePath string, settings config.CSVSettings) (*StreamingParser, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	reader := csv.NewReader(bufio.NewReader(file))
	configureReader(reader, settings)

	parser := &StreamingParser{
		file:     file,
		reader:   reader,
		settings: settings,
	}

	if err := parser.readHeaders(); err != nil {
		file.Close()
		return nil, err
	}

	if err := parser.skipToDataStart(); err != nil {
		file.Close()
		return nil, err
	}

	return parser, nil
}

// readHeaders consumes the header rows and validates the column names.
func (p *StreamingParser) readHeaders() error {
	var lastHeaderRow []string

	for i := 0; i < p.settings.HeaderRows; i++ {
		row, err := p.reader.Read()
		if err == io.EOF {
			return fmt.Errorf("unexpected end of file while reading headers")
		}
		if err != nil {
			return fmt.Errorf("error reading header row %d: %w", i+1, err)
		}
		lastHeaderRow = row
	}

	headers := cleanHeaders(lastHeaderRow)
	if missing := types.MissingColumns(headers); len(missing) > 0 {
		return fmt.Errorf("missing required column(s): %s", strings.Join(missing, ", "))
	}

	p.headers = headers
	return nil
}

// skipToDataStart discards rows between the headers and the data start row.
func (p *StreamingParser) skipToDataStart() error {
	for skipped := p.settings.HeaderRows; skipped < p.settings.DataStartRow-1; skipped++ {
		_, err := p.reader.Read()
		if err == io.EOF {
			return nil // No data rows
		}
		if err != nil {
			return fmt.Errorf("error skipping to data start: %w", err)
		}
	}
	return nil
}

// Next advances to the next row. Returns false when there are no more rows.
func (p *StreamingParser) Next() bool {
	if p.err != nil {
		return false
	}

	row, err := p.reader.Read()
	if err == io.EOF {
		return false
	}
	if err != nil {
		p.err = fmt.Errorf("error reading row %d: %w", p.dataRowNumber+1, err)
		return false
	}

	p.dataRowNumber++

	// Skip empty rows; they still consume a row number.
	if isRowEmpty(row) {
		return p.Next()
	}

	p.currentRow = toRawRow(row, p.headers, p.dataRowNumber)
	return true
}

// Row returns the current row. Only valid after Next returned true.
func (p *StreamingParser) Row() types.RawRow {
	return p.currentRow
}

// Headers returns the validated column headers.
func (p *StreamingParser) Headers() []string {
	return p.headers
}

// Err returns any error that occurred during streaming.
func (p *StreamingParser) Err() error {
	return p.err
}

// Close closes the underlying file.
func (p *StreamingParser) Close() error {
	return p.file.Close()
}

// =============================================================================
// Sales Analyzer - Shared Types
// =============================================================================
//
// This package contains shared types used across multiple modules to avoid
// import cycles. Types defined here are used by:
//   - csvparser
//   - xlsxparser
//   - sales
//
// =============================================================================

package types

// =============================================================================
// COLUMN NAMES
// =============================================================================

// The three columns every sales export must carry. The order of this list
// matters: missing-column diagnostics report the first absent column in
// this order.
const (
	ColumnProductName = "product_name"
	ColumnQuantity    = "quantity"
	ColumnUnitPrice   = "unit_price"
)

// RequiredColumns lists the columns a row source must provide, in the fixed
// order used for missing-column reporting.
var RequiredColumns = []string{
	ColumnProductName,
	ColumnQuantity,
	ColumnUnitPrice,
}

// =============================================================================
// RAW ROW
// =============================================================================

// RawRow represents a single unparsed record from a sales export.
// A RawRow is ephemeral: it is produced by a row source (CSV or XLSX) and
// consumed exactly once by the record parser.
type RawRow struct {
	// Index is the 1-based data row number (header rows excluded).
	// Useful for error reporting.
	Index int

	// Fields contains the raw string values keyed by column header.
	Fields map[string]string
}

// =============================================================================
// HEADER VALIDATION
// =============================================================================

// MissingColumns returns the required columns absent from the given headers,
// in reporting order. An empty result means the header row is usable.
func MissingColumns(headers []string) []string {
	present := make(map[string]bool, len(headers))
	for _, h := range headers {
		present[h] = true
	}

	var missing []string
	for _, col := range RequiredColumns {
		if !present[col] {
			missing = append(missing, col)
		}
	}

	return missing
}

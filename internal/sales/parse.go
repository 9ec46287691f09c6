// =============================================================================
// Sales Analyzer - Record Parser
// =============================================================================
//
// This module converts one raw row from a sales export into either a
// validated Sale record or a Rejection carrying the reason the row could
// not be used.
//
// VALIDATION STRATEGY:
//   Validation happens in a fixed order so diagnostics are deterministic:
//   1. Presence of all required columns (first absent column is reported)
//   2. Non-empty product name after trimming
//   3. Safe decimal parse of quantity and unit_price
//   4. Positivity of both numeric fields; quantity must also be integral
//
// ERROR HANDLING:
//   - Failures are returned as Rejection values, never as errors or panics
//   - Processing of other rows is unaffected by a rejected row
//   - All monetary arithmetic is exact decimal, never binary floating point
//
// =============================================================================

package sales

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ginjaninja78/sales-analyzer/internal/types"
)

// =============================================================================
// SALE AND REJECTION TYPES
// =============================================================================

// Sale is a validated, parsed sales transaction. A Sale is only ever
// constructed by ParseRow, so its invariants hold by construction:
// ProductName is non-empty and trimmed, Quantity is a positive whole
// number, UnitPrice is positive, and Revenue equals Quantity * UnitPrice
// exactly.
type Sale struct {
	// ProductName is the trimmed product identifier. Grouping during
	// aggregation is case-sensitive exact match on this value.
	ProductName string

	// Quantity is the number of units sold. Always a positive integer
	// value, kept as a decimal so revenue arithmetic stays exact.
	Quantity decimal.Decimal

	// UnitPrice is the price per unit. Always strictly positive.
	UnitPrice decimal.Decimal

	// Revenue is Quantity * UnitPrice, computed once at parse time.
	Revenue decimal.Decimal
}

// Rejection records why one raw row could not become a Sale.
type Rejection struct {
	// Row is the 1-based data row number of the rejected record.
	Row int

	// Reason is a human-readable description of the validation failure.
	Reason string
}

// String formats the rejection the way it appears in logs and reports.
func (r Rejection) String() string {
	return fmt.Sprintf("row %d: %s", r.Row, r.Reason)
}

// =============================================================================
// RECORD PARSING
// =============================================================================

// ParseRow validates a single raw row and converts it into a Sale.
//
// PARAMETERS:
//   - row: The raw row to parse, as produced by a row source.
//
// RETURNS:
//   - The parsed Sale and a nil Rejection on success.
//   - A zero Sale and a non-nil Rejection describing the first validation
//     failure otherwise.
//
// ParseRow is a pure function of its input: no I/O, no logging, no shared
// state. Callers decide how rejections are surfaced.
func ParseRow(row types.RawRow) (Sale, *Rejection) {
	// Required columns must be present before any field-level checks.
	// The first missing column (in fixed order) is the one reported.
	for _, col := range types.RequiredColumns {
		if _, ok := row.Fields[col]; !ok {
			return Sale{}, reject(row, "missing column %s", col)
		}
	}

	name := strings.TrimSpace(row.Fields[types.ColumnProductName])
	if name == "" {
		return Sale{}, reject(row, "missing product name")
	}

	quantity, rej := parseDecimalField(row, types.ColumnQuantity)
	if rej != nil {
		return Sale{}, rej
	}
	if !quantity.IsInteger() {
		return Sale{}, reject(row, "quantity must be a whole number")
	}

	unitPrice, rej := parseDecimalField(row, types.ColumnUnitPrice)
	if rej != nil {
		return Sale{}, rej
	}

	return Sale{
		ProductName: name,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
		Revenue:     quantity.Mul(unitPrice),
	}, nil
}

// parseDecimalField performs the shared safe-parse step for the numeric
// columns: trim, reject empty, reject non-numeric, reject non-positive.
func parseDecimalField(row types.RawRow, field string) (decimal.Decimal, *Rejection) {
	raw := row.Fields[field]
	cleaned := strings.TrimSpace(raw)

	if cleaned == "" {
		return decimal.Zero, reject(row, "missing %s value", field)
	}

	value, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, reject(row, "Invalid %s value: '%s'. Must be a number.", field, raw)
	}

	if value.Sign() <= 0 {
		// Echo the trimmed input rather than value.String(): the decimal
		// type drops trailing zeros, and the diagnostic should show the
		// number at the scale the user wrote it ("-2.50", not "-2.5").
		return decimal.Zero, reject(row, "%s must be positive, got %s", field, cleaned)
	}

	return value, nil
}

// reject builds a Rejection for the given row.
func reject(row types.RawRow, format string, args ...interface{}) *Rejection {
	return &Rejection{
		Row:    row.Index,
		Reason: fmt.Sprintf(format, args...),
	}
}

// =============================================================================
// Sales Analyzer - Ingestion Pipeline
// =============================================================================
//
// This module drives the record parser over every row of a sales export,
// collecting valid Sales and Rejections. It is deliberately tolerant of
// partial failure: one malformed row never prevents analysis of the
// remaining valid rows.
//
// ERROR CLASSES:
//   - Row-level (non-fatal): recorded as a Rejection, processing continues
//   - Pipeline-level (fatal): the row source itself cannot be read; surfaced
//     as a single error from IngestStream, with no partial results
//
// =============================================================================

package sales

import (
	"fmt"

	"github.com/ginjaninja78/sales-analyzer/internal/types"
)

// =============================================================================
// ROW SOURCE INTERFACE
// =============================================================================

// RowSource is a streaming supplier of raw rows. The CSV streaming parser
// implements it; any future row source only needs these three methods.
//
// USAGE:
//   for src.Next() {
//       row := src.Row()
//       // ...
//   }
//   if err := src.Err(); err != nil {
//       // the source failed mid-stream
//   }
type RowSource interface {
	// Next advances to the next row. Returns false when there are no more
	// rows or the source has failed.
	Next() bool

	// Row returns the current row. Only valid after Next returned true.
	Row() types.RawRow

	// Err returns the error that stopped iteration, or nil on clean EOF.
	Err() error
}

// =============================================================================
// BATCH INGESTION
// =============================================================================

// Ingest parses every row in order, splitting the input into valid Sales
// and Rejections.
//
// PARAMETERS:
//   - rows: The materialized row sequence, in original file order.
//
// RETURNS:
//   - Sales in input order (a later row's sale never precedes an earlier one's).
//   - Rejections in input order.
//
// An empty row sequence is not an error at this layer: it yields empty
// slices and lets the caller decide how to report "no data".
func Ingest(rows []types.RawRow) ([]Sale, []Rejection) {
	validSales := make([]Sale, 0, len(rows))
	var rejections []Rejection

	for _, row := range rows {
		sale, rejection := ParseRow(row)
		if rejection != nil {
			rejections = append(rejections, *rejection)
			continue
		}
		validSales = append(validSales, sale)
	}

	return validSales, rejections
}

// =============================================================================
// STREAMING INGESTION
// =============================================================================

// IngestStream parses rows from a streaming source without materializing
// the whole file first. Semantics match Ingest, with one addition: if the
// source itself fails mid-stream, the failure is fatal and no partial
// results are returned.
func IngestStream(src RowSource) ([]Sale, []Rejection, error) {
	var validSales []Sale
	var rejections []Rejection

	for src.Next() {
		sale, rejection := ParseRow(src.Row())
		if rejection != nil {
			rejections = append(rejections, *rejection)
			continue
		}
		validSales = append(validSales, sale)
	}

	if err := src.Err(); err != nil {
		return nil, nil, fmt.Errorf("row source failed: %w", err)
	}

	return validSales, rejections, nil
}

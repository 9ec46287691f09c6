// =============================================================================
// Sales Analyzer - Main Entry Point
// =============================================================================
//
// sales-analyzer turns raw sales exports (CSV or XLSX) into plain-text
// revenue reports: total revenue, average order value, and the top products
// by revenue. Rows that fail validation are logged and skipped rather than
// aborting the run.
//
// The binary is a thin shell around the cmd package, which wires the Cobra
// commands:
//   analyze   - process every export in the input directory and write reports
//   validate  - check a single export for rejections without writing anything
//   version   - show build metadata
//
// The pipeline itself lives under internal/: csvparser and xlsxparser read
// files into rows, sales validates them, analysis aggregates, and report
// renders the output.
//
// =============================================================================

package main

import (
	"github.com/ginjaninja78/sales-analyzer/cmd"
)

func main() {
	cmd.Execute()
}

// =============================================================================
// Sales Analyzer - Analysis Pipeline
// =============================================================================
//
// This module orchestrates the analysis of a single sales export, from raw
// file to rendered report.
//
// ANALYSIS PIPELINE:
//   1. Read the export into raw rows (CSV or XLSX source)
//   2. Ingest: parse and validate every row, collecting Sales and Rejections
//   3. Aggregate: total revenue, average order value, top products
//   4. Render the report
//   5. Write the report and rejection log to the output directory
//   6. Archive the processed input file
//
// ERROR CLASSES:
//   A Result with Error set means the run was fatal for that file (source
//   unreadable, required columns absent). Rejections are not errors: a run
//   that completes with N rejections is a successful run, and the caller
//   decides how to surface the diagnostics.
//
// =============================================================================

package analyzer

import (
	"fmt"
	"time"

	"github.com/ginjaninja78/sales-analyzer/internal/analysis"
	"github.com/ginjaninja78/sales-analyzer/internal/config"
	"github.com/ginjaninja78/sales-analyzer/internal/csvparser"
	"github.com/ginjaninja78/sales-analyzer/internal/logging"
	"github.com/ginjaninja78/sales-analyzer/internal/report"
	"github.com/ginjaninja78/sales-analyzer/internal/sales"
	"github.com/ginjaninja78/sales-analyzer/internal/types"
	"github.com/ginjaninja78/sales-analyzer/internal/xlsxparser"
	"github.com/ginjaninja78/sales-analyzer/pkg/utils"
)

// =============================================================================
// RESULT STRUCTURE
// =============================================================================

// Result represents the outcome of analyzing a single file.
type Result struct {
	// SourcePath is the input file that was analyzed.
	SourcePath string

	// ReportPath is the path of the written report file.
	// Empty on failure or in dry-run mode.
	ReportPath string

	// RejectionLogPath is the path of the written rejection log.
	// Empty when there were no rejections or in dry-run mode.
	RejectionLogPath string

	// ReportText is the rendered report.
	ReportText string

	// Report is the computed analysis.
	Report analysis.Report

	// Rejections are the per-row diagnostics collected during ingestion.
	Rejections []sales.Rejection

	// Success indicates whether the analysis completed.
	Success bool

	// Error contains the fatal error if the analysis did not complete.
	Error error

	// Stats contains processing statistics.
	Stats Stats
}

// Stats contains statistics about one analysis run.
type Stats struct {
	// RowsRead is the number of data rows read from the source.
	RowsRead int

	// SalesParsed is the number of rows that became valid Sales.
	SalesParsed int

	// RowsRejected is the number of rows rejected during ingestion.
	RowsRejected int

	// Elapsed is the time taken to analyze the file.
	Elapsed time.Duration
}

// =============================================================================
// ANALYZER STRUCTURE
// =============================================================================

// Analyzer handles the analysis of a single sales export.
type Analyzer struct {
	sourcePath string
	cfg        *config.Config
	fm         *utils.FileManager

	// DryRun computes and renders the report but skips writing output
	// files and archiving the input.
	DryRun bool
}

// New creates an Analyzer for one input file.
func New(sourcePath string, cfg *config.Config) *Analyzer {
	return &Analyzer{
		sourcePath: sourcePath,
		cfg:        cfg,
		fm:         utils.NewFileManager(cfg.InputDir, cfg.OutputDir, cfg.InputArchiveDir),
	}
}

// =============================================================================
// MAIN PROCESSING FUNCTION
// =============================================================================

// Run executes the analysis pipeline for the file.
func (a *Analyzer) Run() Result {
	startTime := time.Now()
	result := Result{
		SourcePath: a.sourcePath,
	}

	log := logging.L().With().Str("source", a.sourcePath).Logger()
	log.Info().Msg("analyzing sales export")

	// =========================================================================
	// STEP 1: READ THE EXPORT
	// =========================================================================
	// Both sources fail as a whole on an unreadable file or a header row
	// missing a required column. No partial analysis happens in that case.

	rows, err := a.readRows()
	if err != nil {
		result.Error = err
		result.Stats.Elapsed = time.Since(startTime)
		return result
	}

	result.Stats.RowsRead = len(rows)
	log.Debug().Int("rows", len(rows)).Msg("export loaded")

	// =========================================================================
	// STEP 2: INGEST
	// =========================================================================

	validSales, rejections := sales.Ingest(rows)
	result.Rejections = rejections
	result.Stats.SalesParsed = len(validSales)
	result.Stats.RowsRejected = len(rejections)

	for _, rejection := range rejections {
		log.Warn().Int("row", rejection.Row).Msg(rejection.Reason)
	}

	// =========================================================================
	// STEP 3: AGGREGATE
	// =========================================================================

	result.Report = analysis.AggregateTopN(validSales, a.cfg.ReportSettings.TopProducts)

	// =========================================================================
	// STEP 4: RENDER
	// =========================================================================

	formatter := report.NewFormatter(a.cfg.ReportSettings.CurrencySymbol)
	result.ReportText = formatter.Render(result.Report, rejections)

	// =========================================================================
	// STEP 5: WRITE OUTPUT FILES
	// =========================================================================

	if !a.DryRun {
		reportPath, err := a.fm.WriteReportFile(
			result.ReportText,
			a.cfg.ReportSettings.FileNameFormat,
			a.sourcePath,
		)
		if err != nil {
			result.Error = err
			result.Stats.Elapsed = time.Since(startTime)
			return result
		}
		result.ReportPath = reportPath

		logPath, err := a.fm.WriteRejectionLog(rejectionLines(rejections), reportPath)
		if err != nil {
			result.Error = err
			result.Stats.Elapsed = time.Since(startTime)
			return result
		}
		result.RejectionLogPath = logPath
	}

	// =========================================================================
	// STEP 6: ARCHIVE THE INPUT
	// =========================================================================

	if !a.DryRun && a.cfg.ArchiveProcessed {
		archived, err := a.fm.ArchiveInputFile(a.sourcePath)
		if err != nil {
			// The analysis itself succeeded; a failed archive move is
			// logged but does not fail the run.
			log.Warn().Err(err).Msg("failed to archive input file")
		} else {
			log.Debug().Str("archived", archived).Msg("input file archived")
		}
	}

	result.Success = true
	result.Stats.Elapsed = time.Since(startTime)

	log.Info().
		Int("rows", result.Stats.RowsRead).
		Int("sales", result.Stats.SalesParsed).
		Int("rejected", result.Stats.RowsRejected).
		Dur("elapsed", result.Stats.Elapsed).
		Msg("analysis complete")

	return result
}

// readRows loads the export through the source matching its extension.
func (a *Analyzer) readRows() ([]types.RawRow, error) {
	if utils.IsXLSX(a.sourcePath) {
		data, err := xlsxparser.Parse(a.sourcePath)
		if err != nil {
			return nil, fmt.Errorf("failed to read workbook %s: %w", a.sourcePath, err)
		}
		return data.Rows, nil
	}

	data, err := csvparser.Parse(a.sourcePath, a.cfg.CSVSettings)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", a.sourcePath, err)
	}
	return data.Rows, nil
}

// rejectionLines formats rejections for the rejection log file.
func rejectionLines(rejections []sales.Rejection) []string {
	lines := make([]string, len(rejections))
	for i, rejection := range rejections {
		lines[i] = rejection.String()
	}
	return lines
}

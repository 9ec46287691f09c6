// =============================================================================
// Sales Analyzer - Analyze Command
// =============================================================================
//
// This file defines the 'analyze' command, the main command of the tool.
// It runs the full pipeline over one or more sales exports and prints the
// rendered report.
//
// COMMAND USAGE:
//   sales-analyzer analyze [flags]
//
// FLAGS:
//   --file      : Analyze a single file instead of scanning the input directory
//   --dry-run   : Compute and print the report without writing files or archiving
//   --top       : Override the configured number of ranked products
//
// EXIT BEHAVIOR:
//   Row-level rejections never fail the command; they are reported in the
//   output. The command fails only on fatal errors: an unreadable export or
//   one missing the required columns.
//
// =============================================================================

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/sales-analyzer/internal/analyzer"
	"github.com/ginjaninja78/sales-analyzer/internal/config"
	"github.com/ginjaninja78/sales-analyzer/pkg/utils"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

// analyzeFile is the path to a single file to analyze.
var analyzeFile string

// dryRun computes reports without writing output files.
var dryRun bool

// topOverride overrides the configured top-products count when > 0.
var topOverride int

// =============================================================================
// ANALYZE COMMAND DEFINITION
// =============================================================================

// analyzeCmd represents the 'analyze' command.
var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze sales exports and print summary statistics",
	Long: `The analyze command reads sales exports, validates every record, and
computes total revenue, average order value, and the top products by revenue.

With no flags, every CSV and XLSX file in the configured input directory is
analyzed. Rows that fail validation are reported and skipped; one malformed
row never prevents analysis of the remaining valid rows.

On successful analysis:
  - The rendered report is printed and written to the output directory
  - Rejected rows are written to a rejection log next to the report
  - The input file is moved to the input archive

On fatal error (unreadable file, missing required columns):
  - No statistics are computed for that file
  - The input file stays where it is
  - Remaining files are still analyzed`,

	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return runAnalyze(cfg)
	},
}

// =============================================================================
// INITIALIZATION
// =============================================================================

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVar(
		&analyzeFile,
		"file",
		"",
		"Analyze a single file instead of scanning the input directory",
	)

	analyzeCmd.Flags().BoolVar(
		&dryRun,
		"dry-run",
		false,
		"Compute and print the report without writing files or archiving",
	)

	analyzeCmd.Flags().IntVar(
		&topOverride,
		"top",
		0,
		"Override the configured number of ranked products",
	)
}

// =============================================================================
// MAIN PROCESSING FUNCTION
// =============================================================================

// runAnalyze resolves the input files and analyzes them one at a time.
func runAnalyze(cfg *config.Config) error {
	if topOverride > 0 {
		cfg.ReportSettings.TopProducts = topOverride
	}

	inputFiles, err := resolveInputFiles(cfg)
	if err != nil {
		return err
	}

	if len(inputFiles) == 0 {
		fmt.Println("No sales exports found in the input directory.")
		return nil
	}

	var failures []string

	for _, file := range inputFiles {
		a := analyzer.New(file, cfg)
		a.DryRun = dryRun

		result := a.Run()
		if !result.Success {
			failures = append(failures, fmt.Sprintf("%s: %v", file, result.Error))
			fmt.Printf("  ✗ %s: %v\n", file, result.Error)
			continue
		}

		fmt.Print(result.ReportText)
		if result.ReportPath != "" {
			fmt.Printf("Report written to %s\n", result.ReportPath)
		}
		if result.RejectionLogPath != "" {
			fmt.Printf("Rejections written to %s\n", result.RejectionLogPath)
		}
	}

	if len(failures) > 0 {
		return fmt.Errorf("failed to analyze %d of %d file(s)", len(failures), len(inputFiles))
	}

	return nil
}

// resolveInputFiles returns the files to analyze: the --file argument if
// given, otherwise every recognized export in the input directory.
func resolveInputFiles(cfg *config.Config) ([]string, error) {
	if analyzeFile != "" {
		if !utils.FileExists(analyzeFile) {
			return nil, fmt.Errorf("file not found: %s", analyzeFile)
		}
		return []string{analyzeFile}, nil
	}

	fm := utils.NewFileManager(cfg.InputDir, cfg.OutputDir, cfg.InputArchiveDir)
	return fm.DiscoverInputFiles()
}

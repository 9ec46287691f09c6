// =============================================================================
// Sales Analyzer - Validate Command
// =============================================================================
//
// This file defines the 'validate' command, which checks a sales export for
// record-level problems without computing any statistics. CSV files are
// streamed so very large exports can be checked without loading them into
// memory.
//
// COMMAND USAGE:
//   sales-analyzer validate --file <path>
//
// =============================================================================

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/sales-analyzer/internal/config"
	"github.com/ginjaninja78/sales-analyzer/internal/csvparser"
	"github.com/ginjaninja78/sales-analyzer/internal/sales"
	"github.com/ginjaninja78/sales-analyzer/internal/xlsxparser"
	"github.com/ginjaninja78/sales-analyzer/pkg/utils"
)

// validateFile is the path to the file to validate.
var validateFile string

// validateCmd represents the 'validate' command.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a sales export without computing statistics",
	Long: `The validate command parses a sales export and reports every row that
would be rejected during analysis, without computing any statistics. Useful
for checking an export before handing it to a scheduled analyze run.

The command fails only on fatal problems (unreadable file, missing required
columns). Row-level rejections are listed and the command still exits
successfully, mirroring the analyze command's partial-failure tolerance.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return runValidate(cfg)
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringVar(
		&validateFile,
		"file",
		"",
		"Path to the file to validate (required)",
	)
	validateCmd.MarkFlagRequired("file")
}

// runValidate checks one export and prints its rejection diagnostics.
func runValidate(cfg *config.Config) error {
	validSales, rejections, err := validateRows(cfg)
	if err != nil {
		return err
	}

	fmt.Printf("%s: %d valid record(s), %d rejected\n", validateFile, len(validSales), len(rejections))
	for _, rejection := range rejections {
		fmt.Printf("  %s\n", rejection.String())
	}

	return nil
}

// validateRows runs ingestion over the export. CSV input goes through the
// streaming parser; XLSX workbooks are materialized since the workbook
// format is not row-streamable.
func validateRows(cfg *config.Config) ([]sales.Sale, []sales.Rejection, error) {
	if utils.IsXLSX(validateFile) {
		data, err := xlsxparser.Parse(validateFile)
		if err != nil {
			return nil, nil, err
		}
		validSales, rejections := sales.Ingest(data.Rows)
		return validSales, rejections, nil
	}

	src, err := csvparser.NewStreamingParser(validateFile, cfg.CSVSettings)
	if err != nil {
		return nil, nil, err
	}
	defer src.Close()

	return sales.IngestStream(src)
}

// =============================================================================
// Sales Analyzer - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. The root command is
// the base command that all other commands (analyze, validate, version) are
// attached to.
//
// COBRA CLI STRUCTURE:
//   rootCmd (sales-analyzer)
//   ├── analyzeCmd (sales-analyzer analyze)
//   ├── validateCmd (sales-analyzer validate)
//   └── versionCmd (sales-analyzer version)
//
// CONFIGURATION:
//   The root command is responsible for:
//   1. Setting up global flags (--config, --verbose)
//   2. Loading the configuration file
//   3. Setting up logging
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/sales-analyzer/internal/config"
	"github.com/ginjaninja78/sales-analyzer/internal/logging"
	"github.com/ginjaninja78/sales-analyzer/pkg/utils"
)

// =============================================================================
// GLOBAL FLAGS
// =============================================================================

// cfgFile holds the path to the configuration file.
// This can be overridden using the --config flag.
var cfgFile string

// verbose enables debug logging when set to true.
var verbose bool

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "sales-analyzer",
	Short: "Sales Analyzer - Summary statistics from delimited sales exports",
	Long: `Sales Analyzer is a CLI tool that reads delimited sales exports
(product_name, quantity, unit_price), validates every record, and computes
summary statistics: total revenue, average order value, and the top products
by revenue.

Key Features:
  - Exact decimal money arithmetic, no floating-point drift
  - Partial-failure tolerant ingestion: one bad row never blocks the rest
  - CSV and XLSX input with configurable delimiters
  - Automatic archival of successfully analyzed exports

Example Usage:
  sales-analyzer analyze                     # Analyze all files in the input directory
  sales-analyzer analyze --file sales.csv    # Analyze a single file
  sales-analyzer validate --file sales.csv   # Report rejections without computing statistics`,

	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// =============================================================================
// INITIALIZATION
// =============================================================================

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"config.yaml",
		"Path to the configuration file",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output for debugging",
	)
}

// =============================================================================
// SHARED HELPERS
// =============================================================================

// loadConfig loads the configuration and initializes logging. A missing
// config file is only an error when the user pointed --config at it
// explicitly; the default path falls back to built-in defaults so the tool
// works out of the box.
func loadConfig() (*config.Config, error) {
	var cfg *config.Config

	if !utils.FileExists(cfgFile) {
		if rootCmd.PersistentFlags().Changed("config") {
			return nil, fmt.Errorf("config file not found: %s", cfgFile)
		}
		cfg = config.Default()
	} else {
		loaded, err := config.Load(cfgFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	logging.Init(cfg.LogLevel, verbose)

	return cfg, nil
}

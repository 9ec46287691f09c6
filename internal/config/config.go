// =============================================================================
// Sales Analyzer - Configuration Module
// =============================================================================
//
// This module is responsible for loading and managing the application
// configuration. A single YAML file (config.yaml by default) controls
// directories, CSV parsing settings, report settings, and logging.
//
// ARCHITECTURE:
//   The configuration system is designed to be:
//   - Self-defaulting: every unset option gets a sensible default
//   - Validated: required directories are created on load
//   - Flat: one file, no per-source overrides needed for a single schema
//
// =============================================================================

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// =============================================================================
// MAIN CONFIGURATION STRUCTURE
// =============================================================================

// Config holds the full application configuration, loaded from config.yaml.
type Config struct {
	// =========================================================================
	// DIRECTORY SETTINGS
	// =========================================================================

	// InputDir is the directory scanned for sales exports to analyze.
	// Default: "./input"
	InputDir string `yaml:"input_dir"`

	// OutputDir is the directory where rendered reports and rejection logs
	// are written.
	// Default: "./output"
	OutputDir string `yaml:"output_dir"`

	// InputArchiveDir is the directory where successfully analyzed exports
	// are moved. Files are only moved after a successful run.
	// Default: "./input_archive"
	InputArchiveDir string `yaml:"input_archive_dir"`

	// =========================================================================
	// CSV PARSING SETTINGS
	// =========================================================================

	// CSVSettings contains settings for parsing delimited input files.
	CSVSettings CSVSettings `yaml:"csv_settings"`

	// =========================================================================
	// REPORT SETTINGS
	// =========================================================================

	// ReportSettings controls how the analysis report is computed and named.
	ReportSettings ReportSettings `yaml:"report_settings"`

	// =========================================================================
	// LOGGING SETTINGS
	// =========================================================================

	// LogLevel controls the verbosity of logging.
	// Valid values: "debug", "info", "warn", "error"
	// Default: "info"
	LogLevel string `yaml:"log_level"`

	// =========================================================================
	// PROCESSING SETTINGS
	// =========================================================================

	// ArchiveProcessed determines whether input files are moved to the
	// archive directory after successful analysis.
	// Default: true
	ArchiveProcessed bool `yaml:"archive_processed"`
}

// =============================================================================
// CSV SETTINGS STRUCTURE
// =============================================================================

// CSVSettings contains settings for parsing delimited input files.
type CSVSettings struct {
	// Delimiter is the character used to separate fields.
	// Common values: "," (comma), "|" (pipe), "\t" (tab)
	// Default: ","
	Delimiter string `yaml:"delimiter"`

	// HeaderRows is the number of header rows in the file. Column names are
	// taken from the last header row.
	// Default: 1
	HeaderRows int `yaml:"header_rows"`

	// DataStartRow is the 1-based row number where the data begins.
	// Default: HeaderRows + 1
	DataStartRow int `yaml:"data_start_row"`
}

// =============================================================================
// REPORT SETTINGS STRUCTURE
// =============================================================================

// ReportSettings controls report computation and output naming.
type ReportSettings struct {
	// TopProducts is the maximum number of products in the revenue ranking.
	// Default: 5
	TopProducts int `yaml:"top_products"`

	// CurrencySymbol is prepended to monetary amounts in the rendered
	// report. Presentation only; it never affects the computed values.
	// Default: "$"
	CurrencySymbol string `yaml:"currency_symbol"`

	// FileNameFormat defines the name of the written report file.
	// Placeholders:
	//   {uuid}      - A random UUID
	//   {timestamp} - Current timestamp (YYYYMMDD_HHMMSS)
	//   {source}    - Base name of the analyzed input file, without extension
	// Default: "{source}_{timestamp}.txt"
	FileNameFormat string `yaml:"file_name_format"`
}

// =============================================================================
// CONFIGURATION LOADING
// =============================================================================

// Load reads the configuration from a YAML file, applies defaults, and
// ensures the configured directories exist.
//
// PARAMETERS:
//   - configPath: The path to the configuration file.
//
// RETURNS:
//   - A pointer to the Config struct.
//   - An error if the file cannot be read or parsed.
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// Default returns the configuration used when no config file is present.
func Default() *Config {
	cfg := &Config{ArchiveProcessed: true}
	applyDefaults(cfg)
	return cfg
}

// applyDefaults sets default values for any unset configuration options.
func applyDefaults(cfg *Config) {
	if cfg.InputDir == "" {
		cfg.InputDir = "./input"
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "./output"
	}
	if cfg.InputArchiveDir == "" {
		cfg.InputArchiveDir = "./input_archive"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	// CSV settings defaults.
	if cfg.CSVSettings.Delimiter == "" {
		cfg.CSVSettings.Delimiter = ","
	}
	if cfg.CSVSettings.HeaderRows == 0 {
		cfg.CSVSettings.HeaderRows = 1
	}
	if cfg.CSVSettings.DataStartRow == 0 {
		cfg.CSVSettings.DataStartRow = cfg.CSVSettings.HeaderRows + 1
	}

	// Report settings defaults.
	if cfg.ReportSettings.TopProducts == 0 {
		cfg.ReportSettings.TopProducts = 5
	}
	if cfg.ReportSettings.CurrencySymbol == "" {
		cfg.ReportSettings.CurrencySymbol = "$"
	}
	if cfg.ReportSettings.FileNameFormat == "" {
		cfg.ReportSettings.FileNameFormat = "{source}_{timestamp}.txt"
	}
}

// validate checks the configuration and creates required directories.
func validate(cfg *Config) error {
	if cfg.CSVSettings.HeaderRows < 1 {
		return fmt.Errorf("header_rows must be at least 1")
	}
	if cfg.CSVSettings.DataStartRow <= cfg.CSVSettings.HeaderRows {
		return fmt.Errorf("data_start_row must follow the header rows")
	}
	if cfg.ReportSettings.TopProducts < 1 {
		return fmt.Errorf("top_products must be at least 1")
	}

	dirs := []string{cfg.InputDir, cfg.OutputDir}
	for _, dir := range dirs {
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return fmt.Errorf("failed to create directory %s: %w", dir, err)
			}
		}
	}

	return nil
}

// =============================================================================
// Sales Analyzer - Logging Module
// =============================================================================
//
// Structured logging for the analyzer using zerolog. Commands configure the
// global logger once at startup; everything else calls L().
//
// =============================================================================

package logging

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

var logger zerolog.Logger

func init() {
	logger = zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}).With().Timestamp().Logger().Level(zerolog.InfoLevel)
}

// Init configures the global logger.
//
// PARAMETERS:
//   - level: One of "debug", "info", "warn", "error". Unknown values fall
//     back to "info".
//   - verbose: Forces the level down to debug regardless of level.
func Init(level string, verbose bool) {
	l := parseLevel(level)
	if verbose {
		l = zerolog.DebugLevel
	}

	logger = zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}).With().Timestamp().Logger().Level(l)
}

// L returns the global logger.
func L() *zerolog.Logger {
	return &logger
}

// SetLogger overrides the global logger. Useful for tests.
func SetLogger(l zerolog.Logger) {
	logger = l
}

// parseLevel maps a config string onto a zerolog level.
func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

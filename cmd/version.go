// =============================================================================
// Sales Analyzer - Version Command
// =============================================================================
//
// Reports which build of the analyzer is installed. Useful when comparing
// report output across machines, since rounding and ranking behavior can
// change between releases.
//
// =============================================================================

package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// =============================================================================
// BUILD METADATA
// =============================================================================
// Release builds stamp these via ldflags; a plain `go build` leaves the
// defaults in place:
//   go build -ldflags "-X 'cmd.Version=1.2.0' -X 'cmd.BuildDate=2026-08-31'"

// Version is the analyzer release version.
var Version = "1.0.0"

// BuildDate is when this binary was produced.
var BuildDate = "unknown"

// versionCmd prints the build metadata and the Go runtime it was compiled with.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the analyzer version and build details",
	Long: `Show the analyzer release version, when the binary was built, and the
Go runtime it was compiled with. Include this output when reporting
discrepancies between generated reports.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Sales Analyzer")
		fmt.Printf("Version:    %s\n", Version)
		fmt.Printf("Build Date: %s\n", BuildDate)
		fmt.Printf("Go Version: %s\n", runtime.Version())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// =============================================================================
// Sales Analyzer - File Manager Utility
// =============================================================================
//
// This module provides the file handling around the analysis core:
//   - Input file discovery (delimited and XLSX exports)
//   - Report and rejection log output
//   - Archival of successfully processed inputs
//   - Output file naming
//
// ARCHIVAL STRATEGY:
//   - Input files are moved to the input archive after successful analysis
//   - Failed files remain in their original location
//   - Rejection logs are created next to the report in the output directory
//
// =============================================================================

package utils

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// FILE MANAGER
// =============================================================================

// FileManager handles file operations for the analyzer.
type FileManager struct {
	// InputDir is the directory where input files are placed.
	InputDir string

	// OutputDir is the directory where reports are written.
	OutputDir string

	// InputArchiveDir is the directory for archived input files.
	InputArchiveDir string
}

// NewFileManager creates a new FileManager with the specified directories.
func NewFileManager(inputDir, outputDir, inputArchiveDir string) *FileManager {
	return &FileManager{
		InputDir:        inputDir,
		OutputDir:       outputDir,
		InputArchiveDir: inputArchiveDir,
	}
}

// =============================================================================
// DIRECTORY MANAGEMENT
// =============================================================================

// EnsureDirectories creates all required directories if they don't exist.
func (fm *FileManager) EnsureDirectories() error {
	dirs := []string{
		fm.InputDir,
		fm.OutputDir,
		fm.InputArchiveDir,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return nil
}

// =============================================================================
// FILE DISCOVERY
// =============================================================================

// inputExtensions are the file extensions treated as sales exports.
var inputExtensions = map[string]bool{
	".csv":  true,
	".xlsx": true,
}

// DiscoverInputFiles scans the input directory for sales exports.
//
// RETURNS:
//   - A sorted slice of file paths with a recognized extension.
//   - An error if the directory cannot be read.
func (fm *FileManager) DiscoverInputFiles() ([]string, error) {
	entries, err := os.ReadDir(fm.InputDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read input directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if inputExtensions[ext] {
			files = append(files, filepath.Join(fm.InputDir, entry.Name()))
		}
	}

	return files, nil
}

// IsXLSX reports whether the path points at an XLSX workbook.
func IsXLSX(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".xlsx")
}

// =============================================================================
// ARCHIVAL
// =============================================================================

// ArchiveInputFile moves a processed input file to the input archive.
//
// PARAMETERS:
//   - filePath: The path to the file to archive.
//
// RETURNS:
//   - The path the file was moved to.
//   - An error if the move fails.
//
// If a file with the same name already exists in the archive, a timestamp
// suffix is added so nothing is overwritten.
func (fm *FileManager) ArchiveInputFile(filePath string) (string, error) {
	if err := os.MkdirAll(fm.InputArchiveDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create archive directory: %w", err)
	}

	target := filepath.Join(fm.InputArchiveDir, filepath.Base(filePath))
	if FileExists(target) {
		ext := filepath.Ext(target)
		base := strings.TrimSuffix(target, ext)
		target = fmt.Sprintf("%s_%s%s", base, time.Now().Format("20060102_150405"), ext)
	}

	if err := moveFile(filePath, target); err != nil {
		return "", fmt.Errorf("failed to archive %s: %w", filePath, err)
	}

	return target, nil
}

// =============================================================================
// OUTPUT WRITING
// =============================================================================

// WriteReportFile writes a rendered report into the output directory using
// the configured name format and returns the written path.
func (fm *FileManager) WriteReportFile(content, nameFormat, sourcePath string) (string, error) {
	if err := os.MkdirAll(fm.OutputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	name := GenerateOutputFileName(nameFormat, sourcePath)
	outPath := filepath.Join(fm.OutputDir, name)

	if err := os.WriteFile(outPath, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("failed to write report: %w", err)
	}

	return outPath, nil
}

// WriteRejectionLog writes the per-row rejection diagnostics next to the
// report. Nothing is written when there are no rejections; the returned
// path is empty in that case.
func (fm *FileManager) WriteRejectionLog(lines []string, reportPath string) (string, error) {
	if len(lines) == 0 {
		return "", nil
	}

	logPath := strings.TrimSuffix(reportPath, filepath.Ext(reportPath)) + "_rejections.log"

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Rejected %d row(s) during ingestion\n", len(lines)))
	b.WriteString(fmt.Sprintf("Generated: %s\n\n", time.Now().Format(time.RFC3339)))
	for _, line := range lines {
		b.WriteString(line + "\n")
	}

	if err := os.WriteFile(logPath, []byte(b.String()), 0644); err != nil {
		return "", fmt.Errorf("failed to write rejection log: %w", err)
	}

	return logPath, nil
}

// =============================================================================
// FILE NAMING
// =============================================================================

// GenerateOutputFileName expands the name format placeholders.
//
// PLACEHOLDERS:
//   {uuid}      - A random UUID
//   {timestamp} - Current timestamp (YYYYMMDD_HHMMSS)
//   {source}    - Base name of the analyzed input file, without extension
func GenerateOutputFileName(format, sourcePath string) string {
	source := strings.TrimSuffix(filepath.Base(sourcePath), filepath.Ext(sourcePath))

	name := format
	name = strings.ReplaceAll(name, "{uuid}", uuid.New().String())
	name = strings.ReplaceAll(name, "{timestamp}", time.Now().Format("20060102_150405"))
	name = strings.ReplaceAll(name, "{source}", source)

	return name
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// FileExists reports whether the path exists.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// moveFile renames src to dst, falling back to copy-and-remove when the
// rename crosses filesystems.
func moveFile(src, dst string) error {
	if err := os.Rename(src, dst); err == nil {
		return nil
	}

	if err := copyFile(src, dst); err != nil {
		return err
	}
	return os.Remove(src)
}

// copyFile copies src to dst, preserving nothing but the contents.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}

	return out.Sync()
}

package utils_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/sales-analyzer/pkg/utils"
)

// newManager builds a FileManager rooted in a fresh temp dir.
func newManager(t *testing.T) *utils.FileManager {
	t.Helper()
	dir := t.TempDir()
	fm := utils.NewFileManager(
		filepath.Join(dir, "input"),
		filepath.Join(dir, "output"),
		filepath.Join(dir, "input_archive"),
	)
	require.NoError(t, fm.EnsureDirectories())
	return fm
}

// TestDiscoverInputFiles tests that only recognized export extensions are
// picked up.
func TestDiscoverInputFiles(t *testing.T) {
	fm := newManager(t)

	for _, name := range []string{"a.csv", "b.xlsx", "c.CSV", "notes.txt", "report.pdf"} {
		require.NoError(t, os.WriteFile(filepath.Join(fm.InputDir, name), []byte("x"), 0644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(fm.InputDir, "sub.csv"), 0755))

	files, err := fm.DiscoverInputFiles()
	require.NoError(t, err)

	require.Len(t, files, 3)
	for _, f := range files {
		ext := strings.ToLower(filepath.Ext(f))
		assert.Contains(t, []string{".csv", ".xlsx"}, ext)
	}
}

// TestIsXLSX tests the extension check used to route files to a source.
func TestIsXLSX(t *testing.T) {
	assert.True(t, utils.IsXLSX("sales.xlsx"))
	assert.True(t, utils.IsXLSX("SALES.XLSX"))
	assert.False(t, utils.IsXLSX("sales.csv"))
}

// TestArchiveInputFile tests that processed files are moved, not copied.
func TestArchiveInputFile(t *testing.T) {
	fm := newManager(t)

	src := filepath.Join(fm.InputDir, "sales.csv")
	require.NoError(t, os.WriteFile(src, []byte("data"), 0644))

	target, err := fm.ArchiveInputFile(src)
	require.NoError(t, err)

	assert.False(t, utils.FileExists(src))
	assert.True(t, utils.FileExists(target))
	assert.Equal(t, fm.InputArchiveDir, filepath.Dir(target))
}

// TestArchiveInputFileCollision tests that an existing archived file is
// never overwritten; the new one gets a timestamp suffix.
func TestArchiveInputFileCollision(t *testing.T) {
	fm := newManager(t)

	existing := filepath.Join(fm.InputArchiveDir, "sales.csv")
	require.NoError(t, os.WriteFile(existing, []byte("old"), 0644))

	src := filepath.Join(fm.InputDir, "sales.csv")
	require.NoError(t, os.WriteFile(src, []byte("new"), 0644))

	target, err := fm.ArchiveInputFile(src)
	require.NoError(t, err)

	assert.NotEqual(t, existing, target)
	old, err := os.ReadFile(existing)
	require.NoError(t, err)
	assert.Equal(t, "old", string(old))
}

// TestWriteReportFile tests report output with the name format expanded.
func TestWriteReportFile(t *testing.T) {
	fm := newManager(t)

	path, err := fm.WriteReportFile("report body", "{source}_report.txt", "/exports/q3_sales.csv")
	require.NoError(t, err)

	assert.Equal(t, "q3_sales_report.txt", filepath.Base(path))
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "report body", string(content))
}

// TestWriteRejectionLog tests that diagnostics land next to the report and
// that no file appears when there is nothing to log.
func TestWriteRejectionLog(t *testing.T) {
	fm := newManager(t)

	reportPath := filepath.Join(fm.OutputDir, "q3_sales.txt")

	logPath, err := fm.WriteRejectionLog([]string{"row 2: missing product name"}, reportPath)
	require.NoError(t, err)
	assert.Equal(t, "q3_sales_rejections.log", filepath.Base(logPath))

	content, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "row 2: missing product name")

	// No rejections, no file.
	logPath, err = fm.WriteRejectionLog(nil, reportPath)
	require.NoError(t, err)
	assert.Empty(t, logPath)
}

// TestGenerateOutputFileName tests placeholder expansion.
func TestGenerateOutputFileName(t *testing.T) {
	name := utils.GenerateOutputFileName("{source}.txt", "/exports/q3_sales.csv")
	assert.Equal(t, "q3_sales.txt", name)

	name = utils.GenerateOutputFileName("{uuid}.txt", "q3.csv")
	assert.NotContains(t, name, "{uuid}")
	assert.True(t, strings.HasSuffix(name, ".txt"))

	name = utils.GenerateOutputFileName("{source}_{timestamp}.txt", "q3.csv")
	assert.NotContains(t, name, "{timestamp}")
	assert.True(t, strings.HasPrefix(name, "q3_"))
}

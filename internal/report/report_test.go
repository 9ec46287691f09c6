package report_test

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/ginjaninja78/sales-analyzer/internal/analysis"
	"github.com/ginjaninja78/sales-analyzer/internal/report"
	"github.com/ginjaninja78/sales-analyzer/internal/sales"
)

// TestFormatCurrency tests thousands grouping and fixed two-decimal output.
func TestFormatCurrency(t *testing.T) {
	f := report.NewFormatter("$")

	tests := []struct {
		amount string
		want   string
	}{
		{"0", "$0.00"},
		{"4999.95", "$4,999.95"},
		{"999.9", "$999.90"},
		{"1234567.8", "$1,234,567.80"},
		{"1000000", "$1,000,000.00"},
		{"-1234.5", "-$1,234.50"},
	}

	for _, tc := range tests {
		got := f.FormatCurrency(decimal.RequireFromString(tc.amount))
		assert.Equal(t, tc.want, got, "amount %s", tc.amount)
	}
}

// TestFormatCurrencySymbol tests that the configured symbol is used.
func TestFormatCurrencySymbol(t *testing.T) {
	f := report.NewFormatter("€")
	assert.Equal(t, "€12.00", f.FormatCurrency(decimal.RequireFromString("12")))
}

// TestRender tests the full report layout for a populated analysis.
func TestRender(t *testing.T) {
	f := report.NewFormatter("$")

	rep := analysis.Report{
		TotalRevenue:      decimal.RequireFromString("5019.95"),
		AverageOrderValue: decimal.RequireFromString("2509.98"),
		SaleCount:         2,
		TopProducts: []analysis.ProductRevenue{
			{ProductName: "Laptop", Revenue: decimal.RequireFromString("4999.95")},
			{ProductName: "Mouse", Revenue: decimal.RequireFromString("20.00")},
		},
	}

	out := f.Render(rep, nil)

	assert.Contains(t, out, "SALES ANALYSIS REPORT")
	assert.Contains(t, out, "Total Revenue: $5,019.95")
	assert.Contains(t, out, "Average Order Value: $2,509.98")
	assert.Contains(t, out, "Top 2 Products by Revenue:")
	assert.Contains(t, out, "1. Laptop")
	assert.Contains(t, out, "$4,999.95")
	assert.Contains(t, out, "2. Mouse")

	// Ranking order is preserved in the rendered text.
	assert.Less(t, strings.Index(out, "Laptop"), strings.Index(out, "Mouse"))
}

// TestRenderNoData tests the empty-analysis rendering: the zero average is
// presented as "no data", never as a computed value.
func TestRenderNoData(t *testing.T) {
	f := report.NewFormatter("$")

	out := f.Render(analysis.Report{
		TotalRevenue:      decimal.Zero,
		AverageOrderValue: decimal.Zero,
	}, nil)

	assert.Contains(t, out, "Total Revenue: $0.00")
	assert.Contains(t, out, "Average Order Value: no data")
	assert.Contains(t, out, "No valid product data found.")
}

// TestRenderRejections tests that rejection diagnostics are listed.
func TestRenderRejections(t *testing.T) {
	f := report.NewFormatter("$")

	out := f.Render(analysis.Report{SaleCount: 1}, []sales.Rejection{
		{Row: 2, Reason: "missing product name"},
		{Row: 5, Reason: "quantity must be a whole number"},
	})

	assert.Contains(t, out, "Skipped 2 row(s):")
	assert.Contains(t, out, "row 2: missing product name")
	assert.Contains(t, out, "row 5: quantity must be a whole number")
}

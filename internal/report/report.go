// =============================================================================
// Sales Analyzer - Report Formatter
// =============================================================================
//
// This module renders the analysis output for humans. It is presentation
// only: currency symbols, thousands separators, and column alignment live
// here, never in the aggregation core. The core hands over exact numeric
// data; the formatter decides how it looks.
//
// =============================================================================

package report

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ginjaninja78/sales-analyzer/internal/analysis"
	"github.com/ginjaninja78/sales-analyzer/internal/sales"
)

// ruleWidth is the width of the horizontal rules in the rendered report.
const ruleWidth = 60

// =============================================================================
// FORMATTER
// =============================================================================

// Formatter renders analysis reports as plain text.
type Formatter struct {
	// CurrencySymbol is prepended to every monetary amount.
	CurrencySymbol string
}

// NewFormatter creates a Formatter with the given currency symbol.
func NewFormatter(currencySymbol string) *Formatter {
	return &Formatter{CurrencySymbol: currencySymbol}
}

// =============================================================================
// RENDERING
// =============================================================================

// Render produces the full text report: headline figures, the product
// ranking, and any per-row rejection diagnostics collected during
// ingestion.
func (f *Formatter) Render(rep analysis.Report, rejections []sales.Rejection) string {
	var b strings.Builder

	b.WriteString("\n" + strings.Repeat("=", ruleWidth) + "\n")
	b.WriteString("SALES ANALYSIS REPORT\n")
	b.WriteString(strings.Repeat("=", ruleWidth) + "\n")

	b.WriteString(fmt.Sprintf("\nTotal Revenue: %s\n", f.FormatCurrency(rep.TotalRevenue)))
	if rep.SaleCount == 0 {
		b.WriteString("Average Order Value: no data\n")
	} else {
		b.WriteString(fmt.Sprintf("Average Order Value: %s\n", f.FormatCurrency(rep.AverageOrderValue)))
	}

	b.WriteString(fmt.Sprintf("\nTop %d Products by Revenue:\n", len(rep.TopProducts)))
	b.WriteString(strings.Repeat("-", ruleWidth) + "\n")

	if len(rep.TopProducts) == 0 {
		b.WriteString("No valid product data found.\n")
	} else {
		for rank, product := range rep.TopProducts {
			b.WriteString(fmt.Sprintf("%d. %-40s %15s\n",
				rank+1,
				product.ProductName,
				f.FormatCurrency(product.Revenue),
			))
		}
	}

	if len(rejections) > 0 {
		b.WriteString(fmt.Sprintf("\nSkipped %d row(s):\n", len(rejections)))
		b.WriteString(strings.Repeat("-", ruleWidth) + "\n")
		for _, rejection := range rejections {
			b.WriteString(rejection.String() + "\n")
		}
	}

	b.WriteString(strings.Repeat("=", ruleWidth) + "\n")

	return b.String()
}

// FormatCurrency formats an exact decimal amount as a currency string with
// a thousands-separated integer part and two fractional digits.
// Example: 4999.95 -> "$4,999.95".
func (f *Formatter) FormatCurrency(amount decimal.Decimal) string {
	fixed := amount.StringFixed(2)

	negative := strings.HasPrefix(fixed, "-")
	if negative {
		fixed = fixed[1:]
	}

	parts := strings.SplitN(fixed, ".", 2)
	grouped := groupThousands(parts[0])

	out := f.CurrencySymbol + grouped + "." + parts[1]
	if negative {
		out = "-" + out
	}
	return out
}

// groupThousands inserts commas every three digits from the right.
func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(",")
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// =============================================================================
// Sales Analyzer - Aggregator
// =============================================================================
//
// This module computes the summary statistics over a collection of validated
// Sales: total revenue, average order value, and the top products ranked by
// summed revenue.
//
// DESIGN NOTES:
//   - All arithmetic is exact decimal. Totals never accumulate binary
//     floating-point drift.
//   - The average is rounded half away from zero to 2 decimal places, the
//     conventional behavior for displayed currency. Banker's rounding is
//     intentionally not used.
//   - Ranking ties are broken by ascending product name so output is
//     deterministic and testable.
//   - Aggregate is a pure function: no I/O, no mutation of its input.
//
// =============================================================================

package analysis

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/ginjaninja78/sales-analyzer/internal/sales"
)

// =============================================================================
// CONSTANTS
// =============================================================================

// DefaultTopN is the number of ranked products reported when the caller
// does not configure one.
const DefaultTopN = 5

// currencyPlaces is the number of fractional digits kept in the average
// order value.
const currencyPlaces = 2

// =============================================================================
// REPORT TYPES
// =============================================================================

// ProductRevenue is one entry in the top-products ranking.
type ProductRevenue struct {
	// ProductName is the exact product name the revenue was grouped under.
	ProductName string

	// Revenue is the summed revenue of every Sale sharing the product name.
	Revenue decimal.Decimal
}

// Report is the aggregate output of the analysis.
type Report struct {
	// TotalRevenue is the exact sum of every Sale's revenue.
	// Zero when there are no sales.
	TotalRevenue decimal.Decimal

	// AverageOrderValue is TotalRevenue divided by the sale count, rounded
	// half away from zero to 2 decimal places. Zero when there are no
	// sales; callers decide whether to present that as "no data" rather
	// than a computed average.
	AverageOrderValue decimal.Decimal

	// TopProducts is the ranking of distinct products by summed revenue,
	// descending, ties broken by ascending product name. At most N entries
	// (fewer if fewer distinct products exist).
	TopProducts []ProductRevenue

	// SaleCount is the number of valid sales the report was computed from.
	SaleCount int
}

// =============================================================================
// AGGREGATION
// =============================================================================

// Aggregate computes a Report over the given sales with the default
// top-products length.
func Aggregate(s []sales.Sale) Report {
	return AggregateTopN(s, DefaultTopN)
}

// AggregateTopN computes a Report over the given sales, keeping at most
// topN entries in the product ranking.
//
// PARAMETERS:
//   - s: The validated sales to aggregate. Order does not affect the result.
//   - topN: The maximum length of the product ranking. Values < 1 fall back
//     to DefaultTopN.
//
// RETURNS:
//   - The computed Report. Never fails: zero sales yield a zero report.
func AggregateTopN(s []sales.Sale, topN int) Report {
	if topN < 1 {
		topN = DefaultTopN
	}

	report := Report{
		TotalRevenue:      decimal.Zero,
		AverageOrderValue: decimal.Zero,
		SaleCount:         len(s),
	}

	// Sum total revenue and per-product revenue in a single pass.
	byProduct := make(map[string]decimal.Decimal)
	for _, sale := range s {
		report.TotalRevenue = report.TotalRevenue.Add(sale.Revenue)
		byProduct[sale.ProductName] = byProduct[sale.ProductName].Add(sale.Revenue)
	}

	// Average order value. Division by zero is an explicit edge case: with
	// no sales the defined result is zero, never an arithmetic failure.
	if len(s) > 0 {
		count := decimal.NewFromInt(int64(len(s)))
		report.AverageOrderValue = report.TotalRevenue.DivRound(count, currencyPlaces)
	}

	report.TopProducts = rankProducts(byProduct, topN)

	return report
}

// rankProducts orders the per-product totals descending by revenue, ties
// ascending by name, and truncates to topN entries.
func rankProducts(byProduct map[string]decimal.Decimal, topN int) []ProductRevenue {
	ranked := make([]ProductRevenue, 0, len(byProduct))
	for name, revenue := range byProduct {
		ranked = append(ranked, ProductRevenue{ProductName: name, Revenue: revenue})
	}

	sort.Slice(ranked, func(i, j int) bool {
		cmp := ranked[i].Revenue.Cmp(ranked[j].Revenue)
		if cmp != 0 {
			return cmp > 0
		}
		return ranked[i].ProductName < ranked[j].ProductName
	})

	if len(ranked) > topN {
		ranked = ranked[:topN]
	}

	return ranked
}

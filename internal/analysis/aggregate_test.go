package analysis_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/sales-analyzer/internal/analysis"
	"github.com/ginjaninja78/sales-analyzer/internal/sales"
)

// sale builds a Sale with the given name and revenue. Quantity and unit
// price are irrelevant to aggregation, which reads only name and revenue.
func sale(name, revenue string) sales.Sale {
	return sales.Sale{
		ProductName: name,
		Revenue:     decimal.RequireFromString(revenue),
	}
}

// TestAggregateTotals tests total revenue and average order value over a
// simple collection.
func TestAggregateTotals(t *testing.T) {
	report := analysis.Aggregate([]sales.Sale{
		sale("Laptop", "4999.95"),
		sale("Mouse", "20.00"),
	})

	assert.Equal(t, 2, report.SaleCount)
	assert.True(t, report.TotalRevenue.Equal(decimal.RequireFromString("5019.95")))
	assert.Equal(t, "2509.98", report.AverageOrderValue.StringFixed(2))
}

// TestAggregateEmpty tests that zero sales yield the defined zero report,
// never an arithmetic failure.
func TestAggregateEmpty(t *testing.T) {
	report := analysis.Aggregate(nil)

	assert.Equal(t, 0, report.SaleCount)
	assert.True(t, report.TotalRevenue.IsZero())
	assert.True(t, report.AverageOrderValue.IsZero())
	assert.Empty(t, report.TopProducts)
}

// TestAggregateAverageRounding tests conventional half-up rounding at two
// decimal places: 10 / 3 is 3.33, and a .005 tie rounds away from zero to
// the next cent instead of to even.
func TestAggregateAverageRounding(t *testing.T) {
	// total 10, count 3 -> 3.33 (not 3.333... and not banker's 3.34)
	report := analysis.Aggregate([]sales.Sale{
		sale("A", "4"),
		sale("B", "3"),
		sale("C", "3"),
	})
	assert.Equal(t, "3.33", report.AverageOrderValue.StringFixed(2))

	// total 10.01, count 2 -> 5.005 -> 5.01 (banker's rounding would give 5.00)
	report = analysis.Aggregate([]sales.Sale{
		sale("A", "5.00"),
		sale("B", "5.01"),
	})
	assert.Equal(t, "5.01", report.AverageOrderValue.StringFixed(2))
}

// TestAggregateGroupsByProduct tests that revenue for repeated product
// names is combined into a single ranking entry.
func TestAggregateGroupsByProduct(t *testing.T) {
	report := analysis.Aggregate([]sales.Sale{
		sale("Pen", "10"),
		sale("Pad", "8"),
		sale("Pen", "5"),
	})

	require.Len(t, report.TopProducts, 2)
	assert.Equal(t, "Pen", report.TopProducts[0].ProductName)
	assert.True(t, report.TopProducts[0].Revenue.Equal(decimal.RequireFromString("15")))
	assert.Equal(t, "Pad", report.TopProducts[1].ProductName)
}

// TestAggregateRankingOrder tests descending revenue order with ties broken
// by ascending product name.
func TestAggregateRankingOrder(t *testing.T) {
	report := analysis.Aggregate([]sales.Sale{
		sale("Zebra", "50"),
		sale("Apple", "50"),
		sale("Mango", "70"),
	})

	require.Len(t, report.TopProducts, 3)
	assert.Equal(t, "Mango", report.TopProducts[0].ProductName)
	assert.Equal(t, "Apple", report.TopProducts[1].ProductName)
	assert.Equal(t, "Zebra", report.TopProducts[2].ProductName)
}

// TestAggregateCaseSensitiveGrouping tests that grouping is exact-match:
// differently cased names are distinct products.
func TestAggregateCaseSensitiveGrouping(t *testing.T) {
	report := analysis.Aggregate([]sales.Sale{
		sale("pen", "10"),
		sale("Pen", "5"),
	})

	assert.Len(t, report.TopProducts, 2)
}

// TestAggregateTopNTruncation tests that the ranking is cut to N entries.
func TestAggregateTopNTruncation(t *testing.T) {
	input := []sales.Sale{
		sale("A", "1"), sale("B", "2"), sale("C", "3"), sale("D", "4"),
		sale("E", "5"), sale("F", "6"), sale("G", "7"),
	}

	report := analysis.Aggregate(input)
	require.Len(t, report.TopProducts, analysis.DefaultTopN)
	assert.Equal(t, "G", report.TopProducts[0].ProductName)
	assert.Equal(t, "C", report.TopProducts[4].ProductName)

	report = analysis.AggregateTopN(input, 2)
	require.Len(t, report.TopProducts, 2)
	assert.Equal(t, "G", report.TopProducts[0].ProductName)
	assert.Equal(t, "F", report.TopProducts[1].ProductName)
}

// TestAggregateTopNFallback tests that a nonsensical topN falls back to the
// default instead of producing an empty ranking.
func TestAggregateTopNFallback(t *testing.T) {
	report := analysis.AggregateTopN([]sales.Sale{sale("A", "1")}, -3)
	assert.Len(t, report.TopProducts, 1)
}

// TestAggregateExactness tests that summing many small revenues stays
// exact, with no floating-point drift in the total.
func TestAggregateExactness(t *testing.T) {
	var input []sales.Sale
	for i := 0; i < 100; i++ {
		input = append(input, sale("Pen", "0.10"))
	}

	report := analysis.Aggregate(input)
	assert.True(t, report.TotalRevenue.Equal(decimal.RequireFromString("10")))
	assert.Equal(t, "0.10", report.AverageOrderValue.StringFixed(2))
}

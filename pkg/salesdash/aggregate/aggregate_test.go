package aggregate

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/salesdash-go/pkg/salesdash/models"
)

var fixedNow = func() time.Time { return time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC) }

func rec(date, product, category, customer, region string, amount float64, units int) models.Record {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	return models.Record{
		Date:        d,
		Product:     product,
		Category:    category,
		Customer:    customer,
		Region:      region,
		SalesAmount: decimal.NewFromFloat(amount),
		Units:       units,
		Price:       decimal.Zero,
	}
}

func testOptions() Options {
	opts := DefaultOptions()
	opts.Now = fixedNow
	return opts
}

func kpiByTitle(t *testing.T, b *models.AnalyticsBundle, title string) models.KPI {
	t.Helper()
	for _, k := range b.KPI {
		if k.Title == title {
			return k
		}
	}
	t.Fatalf("KPI %q not found", title)
	return models.KPI{}
}

func TestBuild_SingleRecord(t *testing.T) {
	records := []models.Record{rec("2024-01-15", "iPhone 15", "Electronics", "John Doe", "North America", 999, 1)}

	b := Build(records, testOptions())

	assert.Equal(t, 999.0, kpiByTitle(t, b, TitleTotalRevenue).Raw)
	assert.Equal(t, "$999.00", kpiByTitle(t, b, TitleTotalRevenue).Value)
	assert.Equal(t, 1.0, kpiByTitle(t, b, TitleTotalOrders).Raw)
	assert.Equal(t, 1.0, kpiByTitle(t, b, TitleActiveCustomers).Raw)
	assert.Equal(t, "$999.00", kpiByTitle(t, b, TitleAvgOrderValue).Value)

	assert.Equal(t, []models.CategorySummary{{Name: "Electronics", Value: 100, Sales: 999, Color: Palette[0]}}, b.Categories)
	assert.Equal(t, []models.RegionalSummary{{Region: "North America", Sales: 999, Customers: 1}}, b.Regions)
	require.Len(t, b.TopProducts, 1)
	assert.Equal(t, models.ProductSummary{
		ID: 1, Name: "iPhone 15", Category: "Electronics", Sales: 999, Units: 1, Trend: models.TrendUnknown,
	}, b.TopProducts[0])
}

func TestBuild_NoRecords(t *testing.T) {
	b := Build(nil, testOptions())

	avg := kpiByTitle(t, b, TitleAvgOrderValue)
	assert.Equal(t, models.NotAvailable, avg.Value)
	assert.Equal(t, 0.0, avg.Raw)
	assert.Equal(t, 0.0, kpiByTitle(t, b, TitleTotalOrders).Raw)
	assert.Equal(t, "$0.00", kpiByTitle(t, b, TitleTotalRevenue).Value)

	assert.Empty(t, b.Categories)
	assert.Empty(t, b.Regions)
	assert.Empty(t, b.TopProducts)

	require.Len(t, b.SalesOverview.MonthlyRevenue, 6)
	for _, m := range b.SalesOverview.MonthlyRevenue {
		assert.True(t, m.Empty)
		assert.Zero(t, m.Revenue)
		assert.Zero(t, m.AvgOrder)
	}
	assert.Equal(t, "2025-01", b.Revenue[0].Date)
}

func TestBuild_KPIChangeUnavailable(t *testing.T) {
	b := Build([]models.Record{rec("2024-01-15", "A", "X", "c", "r", 10, 1)}, testOptions())
	for _, k := range b.KPI {
		assert.Nil(t, k.Change, k.Title)
		assert.Equal(t, models.TrendUnknown, k.Trend, k.Title)
	}
}

func TestBuild_LargeNumbersAreGrouped(t *testing.T) {
	var records []models.Record
	for i := 0; i < 1500; i++ {
		records = append(records, rec("2024-02-01", "A", "X", "c", "r", 1000, 1))
	}
	b := Build(records, testOptions())
	assert.Equal(t, "$1,500,000.00", kpiByTitle(t, b, TitleTotalRevenue).Value)
	assert.Equal(t, "1,500", kpiByTitle(t, b, TitleTotalOrders).Value)
}

func TestBuild_Idempotent(t *testing.T) {
	records := []models.Record{
		rec("2024-01-15", "A", "Electronics", "ann", "EU", 120, 1),
		rec("2024-02-10", "B", "Books", "bob", "US", 30, 2),
		rec("2024-03-05", "C", "Garden", "cy", "EU", 50, 1),
	}
	first := Build(records, testOptions())
	second := Build(records, testOptions())
	assert.Equal(t, first, second)
}

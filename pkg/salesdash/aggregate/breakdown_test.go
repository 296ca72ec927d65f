package aggregate

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/salesdash-go/pkg/salesdash/models"
)

func TestCategories_SharesAndTotals(t *testing.T) {
	records := []models.Record{
		rec("2024-01-01", "A", "Electronics", "a", "EU", 333.33, 1),
		rec("2024-01-02", "B", "Books", "b", "EU", 333.33, 1),
		rec("2024-01-03", "C", "Garden", "c", "EU", 333.34, 1),
		rec("2024-01-04", "D", "Books", "d", "EU", 100, 1),
	}

	got := categories(records, 5)
	require.Len(t, got, 3)
	assert.Equal(t, []string{"Electronics", "Books", "Garden"}, []string{got[0].Name, got[1].Name, got[2].Name})
	assert.Equal(t, []string{Palette[0], Palette[1], Palette[2]}, []string{got[0].Color, got[1].Color, got[2].Color})

	var sales float64
	var share int
	for _, c := range got {
		sales += c.Sales
		share += c.Value
	}
	total := ComputeTotals(records).Revenue.InexactFloat64()
	assert.InDelta(t, total, sales, 1e-9)
	assert.GreaterOrEqual(t, share, 99)
	assert.LessOrEqual(t, share, 101)
}

func TestCategories_TopN(t *testing.T) {
	names := []string{"c1", "c2", "c3", "c4", "c5", "c6", "c7"}
	var records []models.Record
	for i, n := range names {
		records = append(records, rec("2024-01-01", "p", n, "x", "r", float64(10*(i+1)), 1))
	}

	got := categories(records, 5)
	require.Len(t, got, 5)
	assert.Equal(t, "c7", got[0].Name)
	assert.Equal(t, "c3", got[4].Name)
	// colors follow first-seen order, not rank
	assert.Equal(t, Palette[6%len(Palette)], got[0].Color)
	// shares are against the grand total of all categories
	assert.Equal(t, int(math.Round(70.0/280*100)), got[0].Value)
}

func TestRegions(t *testing.T) {
	records := []models.Record{
		rec("2024-01-01", "A", "X", "ann", "EU", 10, 1),
		rec("2024-01-02", "B", "X", "bob", "US", 20, 1),
		rec("2024-01-03", "C", "X", "ann", "EU", 5, 1),
		rec("2024-01-04", "D", "X", "cy", "EU", 1, 1),
	}

	assert.Equal(t, []models.RegionalSummary{
		{Region: "EU", Sales: 16, Customers: 2},
		{Region: "US", Sales: 20, Customers: 1},
	}, regions(records))
}

func TestTopProducts_MergesAndRanks(t *testing.T) {
	records := []models.Record{
		rec("2024-01-01", "Desk", "Furniture", "a", "EU", 100, 1),
		rec("2024-01-02", "Lamp", "Lighting", "b", "EU", 150, 3),
		rec("2024-01-03", "Desk", "Office", "c", "EU", 75, 2),
	}

	got := topProducts(records, 8)
	require.Len(t, got, 2)
	assert.Equal(t, models.ProductSummary{ID: 1, Name: "Desk", Category: "Furniture", Sales: 175, Units: 3, Trend: models.TrendUnknown}, got[0])
	assert.Equal(t, "Lamp", got[1].Name)
	assert.Equal(t, 2, got[1].ID)
	assert.False(t, got[0].MetricsAvailable)
	assert.Nil(t, got[0].Growth)
	assert.Nil(t, got[0].Rating)
}

func TestTopProducts_Limit(t *testing.T) {
	var records []models.Record
	for i := 0; i < 12; i++ {
		records = append(records, rec("2024-01-01", string(rune('A'+i)), "X", "c", "r", float64(i+1), 1))
	}

	got := topProducts(records, 8)
	require.Len(t, got, 8)
	assert.Equal(t, "L", got[0].Name)
	assert.Equal(t, "E", got[7].Name)
}

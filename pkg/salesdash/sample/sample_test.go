package sample

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBundle(t *testing.T) {
	b, err := Bundle()
	require.NoError(t, err)

	require.Len(t, b.KPI, 4)
	assert.Equal(t, "Total Revenue", b.KPI[0].Title)
	require.NotNil(t, b.KPI[0].Change)
	assert.Equal(t, 12.5, *b.KPI[0].Change)

	assert.Len(t, b.Revenue, 12)
	assert.Len(t, b.SalesOverview.MonthlyRevenue, 6)
	assert.Len(t, b.SalesOverview.DailySales, 7)
	assert.Len(t, b.Categories, 5)
	assert.Len(t, b.Regions, 6)
	require.Len(t, b.TopProducts, 8)

	p := b.TopProducts[3]
	assert.Equal(t, "down", p.Trend)
	require.NotNil(t, p.Growth)
	assert.Equal(t, -3.2, *p.Growth)
	assert.True(t, p.MetricsAvailable)
}

func TestBundleReturnsCopies(t *testing.T) {
	a := MustBundle()
	b := MustBundle()

	a.Categories[0].Name = "changed"
	assert.Equal(t, "Electronics", b.Categories[0].Name)
}

package aggregate

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/ukaji3/salesdash-go/pkg/salesdash/models"
)

// Palette is the fixed category color cycle.
var Palette = []string{"#3b82f6", "#06b6d4", "#8b5cf6", "#10b981", "#f59e0b"}

var hundred = decimal.NewFromInt(100)

type categoryTotal struct {
	name  string
	sales decimal.Decimal
}

// categories groups by category in first-seen order. Shares are computed
// against all categories; when there are more than limit, the largest
// limit categories are kept.
func categories(records []models.Record, limit int) []models.CategorySummary {
	index := make(map[string]int)
	var groups []categoryTotal
	total := decimal.Zero

	for _, r := range records {
		i, ok := index[r.Category]
		if !ok {
			i = len(groups)
			index[r.Category] = i
			groups = append(groups, categoryTotal{name: r.Category, sales: decimal.Zero})
		}
		groups[i].sales = groups[i].sales.Add(r.SalesAmount)
		total = total.Add(r.SalesAmount)
	}

	out := make([]models.CategorySummary, len(groups))
	for i, g := range groups {
		out[i] = models.CategorySummary{
			Name:  g.name,
			Value: int(g.sales.Div(total).Mul(hundred).Round(0).IntPart()),
			Sales: g.sales.InexactFloat64(),
			Color: Palette[i%len(Palette)],
		}
	}

	if len(out) > limit {
		sort.SliceStable(out, func(i, j int) bool { return out[i].Sales > out[j].Sales })
		out = out[:limit]
	}
	return out
}

type regionTotal struct {
	name      string
	sales     decimal.Decimal
	customers map[string]struct{}
}

// regions groups by region in first-seen order. Growth needs a prior
// period, so it is reported as unavailable.
func regions(records []models.Record) []models.RegionalSummary {
	index := make(map[string]int)
	var groups []*regionTotal

	for _, r := range records {
		i, ok := index[r.Region]
		if !ok {
			i = len(groups)
			index[r.Region] = i
			groups = append(groups, &regionTotal{name: r.Region, sales: decimal.Zero, customers: make(map[string]struct{})})
		}
		groups[i].sales = groups[i].sales.Add(r.SalesAmount)
		groups[i].customers[r.Customer] = struct{}{}
	}

	out := make([]models.RegionalSummary, len(groups))
	for i, g := range groups {
		out[i] = models.RegionalSummary{
			Region:    g.name,
			Sales:     g.sales.InexactFloat64(),
			Customers: len(g.customers),
		}
	}
	return out
}

type productTotal struct {
	name     string
	category string
	sales    decimal.Decimal
	units    int
}

// topProducts merges records by product name and ranks by sales. Growth,
// rating and trend are not present in sales rows and stay unavailable.
func topProducts(records []models.Record, limit int) []models.ProductSummary {
	index := make(map[string]int)
	var groups []productTotal

	for _, r := range records {
		i, ok := index[r.Product]
		if !ok {
			i = len(groups)
			index[r.Product] = i
			groups = append(groups, productTotal{name: r.Product, category: r.Category, sales: decimal.Zero})
		}
		groups[i].sales = groups[i].sales.Add(r.SalesAmount)
		groups[i].units += r.Units
	}

	sort.SliceStable(groups, func(i, j int) bool { return groups[i].sales.GreaterThan(groups[j].sales) })
	if len(groups) > limit {
		groups = groups[:limit]
	}

	out := make([]models.ProductSummary, len(groups))
	for i, g := range groups {
		out[i] = models.ProductSummary{
			ID:       i + 1,
			Name:     g.name,
			Category: g.category,
			Sales:    g.sales.InexactFloat64(),
			Units:    g.units,
			Trend:    models.TrendUnknown,
		}
	}
	return out
}

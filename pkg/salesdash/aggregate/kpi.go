package aggregate

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/ukaji3/salesdash-go/pkg/salesdash/models"
)

// KPI titles, in display order.
const (
	TitleTotalRevenue    = "Total Revenue"
	TitleTotalOrders     = "Total Orders"
	TitleAvgOrderValue   = "Avg Order Value"
	TitleActiveCustomers = "Active Customers"
)

const kpiDescription = "from uploaded data"

var printer = message.NewPrinter(language.English)

// Totals are the headline numbers behind the KPI cards.
type Totals struct {
	Revenue         decimal.Decimal
	Orders          int
	AvgOrderValue   decimal.Decimal
	UniqueCustomers int
}

// HasOrders reports whether the average order value is defined.
func (t Totals) HasOrders() bool {
	return t.Orders > 0
}

// ComputeTotals sums revenue and counts orders and distinct customers.
// With no records the average is zero rather than a division by zero.
func ComputeTotals(records []models.Record) Totals {
	t := Totals{Revenue: decimal.Zero, AvgOrderValue: decimal.Zero}
	customers := make(map[string]struct{})

	for _, r := range records {
		t.Revenue = t.Revenue.Add(r.SalesAmount)
		customers[r.Customer] = struct{}{}
	}
	t.Orders = len(records)
	t.UniqueCustomers = len(customers)

	if t.HasOrders() {
		t.AvgOrderValue = t.Revenue.Div(decimal.NewFromInt(int64(t.Orders)))
	}
	return t
}

func kpis(records []models.Record) []models.KPI {
	t := ComputeTotals(records)

	avgValue := models.NotAvailable
	if t.HasOrders() {
		avgValue = formatMoney(t.AvgOrderValue)
	}

	return []models.KPI{
		newKPI(TitleTotalRevenue, formatMoney(t.Revenue), t.Revenue.InexactFloat64()),
		newKPI(TitleTotalOrders, formatCount(t.Orders), float64(t.Orders)),
		newKPI(TitleAvgOrderValue, avgValue, t.AvgOrderValue.InexactFloat64()),
		newKPI(TitleActiveCustomers, formatCount(t.UniqueCustomers), float64(t.UniqueCustomers)),
	}
}

// newKPI builds a card for a single snapshot: there is no prior period, so
// the change is unavailable.
func newKPI(title, value string, raw float64) models.KPI {
	return models.KPI{
		Title:       title,
		Value:       value,
		Raw:         raw,
		Trend:       models.TrendUnknown,
		Description: kpiDescription,
	}
}

func formatMoney(d decimal.Decimal) string {
	return printer.Sprintf("$%.2f", d.InexactFloat64())
}

func formatCount(n int) string {
	return printer.Sprintf("%d", n)
}

package aggregate

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ukaji3/salesdash-go/pkg/salesdash/models"
)

var weekdays = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// dailySales sums sales per weekday, Monday first.
func dailySales(records []models.Record, loc *time.Location) []models.DailySales {
	totals := make([]decimal.Decimal, len(weekdays))
	for i := range totals {
		totals[i] = decimal.Zero
	}

	for _, r := range records {
		idx := (int(r.Date.In(loc).Weekday()) + 6) % 7
		totals[idx] = totals[idx].Add(r.SalesAmount)
	}

	out := make([]models.DailySales, len(weekdays))
	for i, day := range weekdays {
		out[i] = models.DailySales{Day: day, Sales: totals[i].InexactFloat64()}
	}
	return out
}

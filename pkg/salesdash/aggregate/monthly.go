package aggregate

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ukaji3/salesdash-go/pkg/salesdash/models"
)

type bucket struct {
	label   string
	key     string
	revenue decimal.Decimal
	orders  int
}

func (b bucket) monthly() models.MonthlyRevenue {
	m := models.MonthlyRevenue{
		Month:   b.label,
		Revenue: b.revenue.InexactFloat64(),
		Orders:  b.orders,
	}
	if b.orders == 0 {
		m.Empty = true
		return m
	}
	m.AvgOrder = b.revenue.Div(decimal.NewFromInt(int64(b.orders))).InexactFloat64()
	return m
}

func (b bucket) point() models.RevenuePoint {
	revenue := b.revenue.InexactFloat64()
	return models.RevenuePoint{
		Date:    b.key,
		Revenue: revenue,
		Target:  b.revenue.Mul(decimal.NewFromFloat(targetRatio)).InexactFloat64(),
		Orders:  b.orders,
	}
}

func monthlySeries(records []models.Record, opts Options) ([]models.MonthlyRevenue, []models.RevenuePoint) {
	var buckets []bucket
	switch opts.MonthlyMode {
	case MonthlyRecent:
		buckets = recentBuckets(records, opts.location())
	default:
		buckets = calendarBuckets(records, opts)
	}

	monthly := make([]models.MonthlyRevenue, 0, len(buckets))
	revenue := make([]models.RevenuePoint, 0, len(buckets))
	for _, b := range buckets {
		monthly = append(monthly, b.monthly())
		revenue = append(revenue, b.point())
	}
	return monthly, revenue
}

// calendarBuckets groups by month of year into Jan..Jun. Records from later
// months do not appear in the series. Empty months keep zero placeholders.
func calendarBuckets(records []models.Record, opts Options) []bucket {
	loc := opts.location()
	year := referenceYear(records, loc, opts.now)

	buckets := make([]bucket, monthBuckets)
	for i := range buckets {
		first := time.Date(year, time.Month(i+1), 1, 0, 0, 0, 0, loc)
		buckets[i] = bucket{
			label:   first.Format("Jan"),
			key:     first.Format("2006-01"),
			revenue: decimal.Zero,
		}
	}

	for _, r := range records {
		idx := int(r.Date.In(loc).Month()) - 1
		if idx >= monthBuckets {
			continue
		}
		buckets[idx].revenue = buckets[idx].revenue.Add(r.SalesAmount)
		buckets[idx].orders++
	}
	return buckets
}

// recentBuckets groups by year-month, ascending, keeping the latest buckets.
func recentBuckets(records []models.Record, loc *time.Location) []bucket {
	index := make(map[string]int)
	var buckets []bucket

	for _, r := range records {
		d := r.Date.In(loc)
		key := d.Format("2006-01")
		i, ok := index[key]
		if !ok {
			i = len(buckets)
			index[key] = i
			buckets = append(buckets, bucket{label: d.Format("Jan 2006"), key: key, revenue: decimal.Zero})
		}
		buckets[i].revenue = buckets[i].revenue.Add(r.SalesAmount)
		buckets[i].orders++
	}

	sort.Slice(buckets, func(i, j int) bool { return buckets[i].key < buckets[j].key })
	if len(buckets) > monthBuckets {
		buckets = buckets[len(buckets)-monthBuckets:]
	}
	return buckets
}

// referenceYear is the year of the latest record, or of now without records.
func referenceYear(records []models.Record, loc *time.Location, now func() time.Time) int {
	if len(records) == 0 {
		return now().In(loc).Year()
	}
	latest := records[0].Date
	for _, r := range records[1:] {
		if r.Date.After(latest) {
			latest = r.Date
		}
	}
	return latest.In(loc).Year()
}

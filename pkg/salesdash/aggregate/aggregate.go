// Package aggregate folds normalized sales records into chart-ready summaries.
package aggregate

import (
	"fmt"
	"time"

	"github.com/ukaji3/salesdash-go/pkg/salesdash/models"
)

// MonthlyMode selects how records are bucketed into the monthly series.
type MonthlyMode string

const (
	// MonthlyCalendar buckets by month of year into the fixed months Jan..Jun.
	MonthlyCalendar MonthlyMode = "calendar"
	// MonthlyRecent buckets by year-month and keeps the most recent buckets.
	MonthlyRecent MonthlyMode = "recent"
)

// monthBuckets is the number of buckets in the monthly series.
const monthBuckets = 6

// targetRatio derives the revenue target shown next to each monthly bucket.
const targetRatio = 0.9

// Options configures aggregation.
type Options struct {
	// TopCategories caps the category breakdown.
	TopCategories int
	// TopProducts caps the top products list.
	TopProducts int
	// MonthlyMode selects the monthly bucketing.
	MonthlyMode MonthlyMode
	// Location is the zone months and weekdays are computed in (UTC when nil).
	Location *time.Location
	// Now supplies the reference year when there are no records (time.Now when nil).
	Now func() time.Time
}

// DefaultOptions returns default aggregation options.
func DefaultOptions() Options {
	return Options{
		TopCategories: 5,
		TopProducts:   8,
		MonthlyMode:   MonthlyCalendar,
	}
}

// ParseMonthlyMode maps a name to a MonthlyMode.
func ParseMonthlyMode(s string) (MonthlyMode, error) {
	switch MonthlyMode(s) {
	case MonthlyCalendar, MonthlyRecent:
		return MonthlyMode(s), nil
	default:
		return "", fmt.Errorf("invalid monthly mode: %s (must be calendar or recent)", s)
	}
}

func (o Options) location() *time.Location {
	if o.Location == nil {
		return time.UTC
	}
	return o.Location
}

func (o Options) now() time.Time {
	if o.Now == nil {
		return time.Now()
	}
	return o.Now()
}

// Build aggregates records into an analytics bundle. The result is fully
// determined by records and opts; nothing in it is randomized.
func Build(records []models.Record, opts Options) *models.AnalyticsBundle {
	defaults := DefaultOptions()
	if opts.TopCategories <= 0 {
		opts.TopCategories = defaults.TopCategories
	}
	if opts.TopProducts <= 0 {
		opts.TopProducts = defaults.TopProducts
	}
	if opts.MonthlyMode == "" {
		opts.MonthlyMode = defaults.MonthlyMode
	}

	monthly, revenue := monthlySeries(records, opts)

	return &models.AnalyticsBundle{
		KPI:     kpis(records),
		Revenue: revenue,
		SalesOverview: models.SalesOverview{
			MonthlyRevenue: monthly,
			DailySales:     dailySales(records, opts.location()),
		},
		Categories:  categories(records, opts.TopCategories),
		Regions:     regions(records),
		TopProducts: topProducts(records, opts.TopProducts),
	}
}

package models

// MonthlyRevenue is one bucket of the monthly revenue series.
type MonthlyRevenue struct {
	// Month is the bucket label ("Jan", or "2024-01" for year-month buckets).
	Month string `json:"month"`
	// Revenue is the summed sales amount.
	Revenue float64 `json:"revenue"`
	// Orders is the number of records in the bucket.
	Orders int `json:"orders"`
	// AvgOrder is Revenue / Orders, zero for an empty bucket.
	AvgOrder float64 `json:"avgOrder"`
	// Empty marks a bucket with no records (placeholder zeros).
	Empty bool `json:"empty"`
}

// RevenuePoint is one point of the revenue-vs-target series.
type RevenuePoint struct {
	// Date is the year-month key ("2024-01").
	Date string `json:"date"`
	// Revenue is the bucket revenue.
	Revenue float64 `json:"revenue"`
	// Target is the derived target for the bucket.
	Target float64 `json:"target"`
	// Orders is the bucket order count.
	Orders int `json:"orders"`
}

// DailySales is the sales total for one weekday.
type DailySales struct {
	// Day is the weekday label ("Mon".."Sun").
	Day string `json:"day"`
	// Sales is the summed sales amount for that weekday.
	Sales float64 `json:"sales"`
}

// SalesOverview groups the monthly and weekday series.
type SalesOverview struct {
	MonthlyRevenue []MonthlyRevenue `json:"monthlyRevenue"`
	DailySales     []DailySales     `json:"dailySales"`
}

package models

// AnalyticsBundle is the complete aggregated output handed to presentation.
type AnalyticsBundle struct {
	// KPI holds the headline metric cards.
	KPI []KPI `json:"kpi"`
	// Revenue is the revenue-vs-target series.
	Revenue []RevenuePoint `json:"revenue"`
	// SalesOverview holds the monthly and weekday series.
	SalesOverview SalesOverview `json:"salesOverview"`
	// Categories is the category breakdown.
	Categories []CategorySummary `json:"categories"`
	// Regions is the regional breakdown.
	Regions []RegionalSummary `json:"regions"`
	// TopProducts is the top products list.
	TopProducts []ProductSummary `json:"topProducts"`
}

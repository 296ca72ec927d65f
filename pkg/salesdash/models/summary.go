package models

// CategorySummary is one slice of the category breakdown.
type CategorySummary struct {
	// Name is the category name.
	Name string `json:"name"`
	// Value is the share of total sales in whole percent.
	Value int `json:"value"`
	// Sales is the summed sales amount.
	Sales float64 `json:"sales"`
	// Color is the palette color assigned to the category.
	Color string `json:"color"`
}

// RegionalSummary is one row of the regional breakdown.
type RegionalSummary struct {
	// Region is the region name.
	Region string `json:"region"`
	// Sales is the summed sales amount.
	Sales float64 `json:"sales"`
	// Growth is the growth in percent (nil if unavailable).
	Growth *float64 `json:"growth"`
	// GrowthAvailable is false when Growth cannot be derived from the input.
	GrowthAvailable bool `json:"growthAvailable"`
	// Customers is the number of distinct customers.
	Customers int `json:"customers"`
}

// ProductSummary is one entry of the top products list.
type ProductSummary struct {
	// ID is the 1-based rank.
	ID int `json:"id"`
	// Name is the product name.
	Name string `json:"name"`
	// Category is the category of the first record seen for the product.
	Category string `json:"category"`
	// Sales is the summed sales amount.
	Sales float64 `json:"sales"`
	// Units is the summed unit count.
	Units int `json:"units"`
	// Growth is the growth in percent (nil if unavailable).
	Growth *float64 `json:"growth"`
	// Rating is the average rating (nil if unavailable).
	Rating *float64 `json:"rating"`
	// Trend is up, down or unknown.
	Trend string `json:"trend"`
	// MetricsAvailable is false when Growth, Rating and Trend are not derived from data.
	MetricsAvailable bool `json:"metricsAvailable"`
}

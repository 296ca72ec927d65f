package models

// Trend values used by KPIs and products.
const (
	TrendUp      = "up"
	TrendDown    = "down"
	TrendUnknown = "unknown"
)

// NotAvailable is the display value of a KPI that has no meaningful number.
const NotAvailable = "N/A"

// KPI is one headline metric card.
type KPI struct {
	// Title is the card title (e.g., "Total Revenue").
	Title string `json:"title"`
	// Value is the formatted display value (e.g., "$2,847,392.00").
	Value string `json:"value"`
	// Raw is the unformatted number behind Value.
	Raw float64 `json:"raw"`
	// Change is the period-over-period change in percent (nil if unavailable).
	Change *float64 `json:"change"`
	// Trend is up, down or unknown.
	Trend string `json:"trend"`
	// Description is a short caption shown under the value.
	Description string `json:"description"`
}

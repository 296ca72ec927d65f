package models

// ChartSeries describes one series of an exported chart.
type ChartSeries struct {
	// Name is the series display name.
	Name string `json:"name"`
	// NameRange is the range reference for the series name.
	NameRange string `json:"name_range,omitempty"`
	// XRange is the range reference for category (X axis) values.
	XRange string `json:"x_range,omitempty"`
	// YRange is the range reference for values.
	YRange string `json:"y_range"`
}

// Chart describes a native chart placed on an exported sheet.
type Chart struct {
	// Sheet is the sheet the chart is drawn on.
	Sheet string `json:"sheet"`
	// Cell is the top-left anchor cell (e.g., "H2").
	Cell string `json:"cell"`
	// ChartType is the chart type (Line, Pie, Col).
	ChartType string `json:"chart_type"`
	// Title is the chart title.
	Title string `json:"title,omitempty"`
	// YAxisTitle is the Y-axis title.
	YAxisTitle string `json:"y_axis_title,omitempty"`
	// Series is the list of series included in the chart.
	Series []ChartSeries `json:"series"`
}

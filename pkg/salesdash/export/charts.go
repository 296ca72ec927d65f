package export

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/salesdash-go/pkg/salesdash/models"
)

// Chart types understood by addChart.
const (
	ChartLine = "Line"
	ChartPie  = "Pie"
	ChartCol  = "Col"
)

var chartTypes = map[string]excelize.ChartType{
	ChartLine: excelize.Line,
	ChartPie:  excelize.Pie,
	ChartCol:  excelize.Col,
}

// Charts returns the charts drawn for b. Sections without rows get no chart.
func Charts(b *models.AnalyticsBundle) []models.Chart {
	var charts []models.Chart

	if n := len(b.Revenue); n > 0 {
		// date | revenue | target | orders
		charts = append(charts, models.Chart{
			Sheet:      SheetRevenue,
			Cell:       anchor(4),
			ChartType:  ChartLine,
			Title:      "Revenue vs Target",
			YAxisTitle: "Revenue",
			Series: []models.ChartSeries{
				series(SheetRevenue, "Revenue", 2, 1, n),
				series(SheetRevenue, "Target", 3, 1, n),
			},
		})
	}

	if n := len(b.Categories); n > 0 {
		// name | value | sales | color
		charts = append(charts, models.Chart{
			Sheet:     SheetCategories,
			Cell:      anchor(4),
			ChartType: ChartPie,
			Title:     "Sales by Category",
			Series: []models.ChartSeries{
				series(SheetCategories, "Sales", 3, 1, n),
			},
		})
	}

	if n := len(b.SalesOverview.DailySales); n > 0 {
		// day | sales
		charts = append(charts, models.Chart{
			Sheet:      SheetDailySales,
			Cell:       anchor(2),
			ChartType:  ChartCol,
			Title:      "Sales by Weekday",
			YAxisTitle: "Sales",
			Series: []models.ChartSeries{
				series(SheetDailySales, "Sales", 2, 1, n),
			},
		})
	}

	return charts
}

func addChart(f *excelize.File, c models.Chart) error {
	typ, ok := chartTypes[c.ChartType]
	if !ok {
		return fmt.Errorf("unsupported chart type %q", c.ChartType)
	}

	chart := &excelize.Chart{
		Type:  typ,
		Title: []excelize.RichTextRun{{Text: c.Title}},
		Legend: excelize.ChartLegend{
			Position: "bottom",
		},
	}
	if c.YAxisTitle != "" {
		chart.YAxis.Title = []excelize.RichTextRun{{Text: c.YAxisTitle}}
	}
	for _, s := range c.Series {
		chart.Series = append(chart.Series, excelize.ChartSeries{
			Name:       s.NameRange,
			Categories: s.XRange,
			Values:     s.YRange,
		})
	}

	return f.AddChart(c.Sheet, c.Cell, chart)
}

// series builds a series over rows 2..n+1 of valueCol, labelled by catCol.
func series(sheet, name string, valueCol, catCol, n int) models.ChartSeries {
	return models.ChartSeries{
		Name:      name,
		NameRange: ref(sheet, valueCol, 1, 1),
		XRange:    ref(sheet, catCol, 2, n+1),
		YRange:    ref(sheet, valueCol, 2, n+1),
	}
}

func ref(sheet string, col, first, last int) string {
	from, _ := excelize.CoordinatesToCellName(col, first, true)
	quoted := "'" + strings.ReplaceAll(sheet, "'", "''") + "'!"
	if first == last {
		return quoted + from
	}
	to, _ := excelize.CoordinatesToCellName(col, last, true)
	return quoted + from + ":" + to
}

// anchor places a chart one column right of a table with cols columns.
func anchor(cols int) string {
	cell, _ := excelize.CoordinatesToCellName(cols+2, 2)
	return cell
}

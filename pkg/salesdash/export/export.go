// Package export writes analytics bundles to xlsx workbooks.
package export

import (
	"fmt"
	"io"
	"reflect"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/salesdash-go/pkg/salesdash/models"
)

// Sheet names, one per bundle section.
const (
	SheetKPI            = "KPI Metrics"
	SheetRevenue        = "Revenue Analysis"
	SheetMonthlyRevenue = "Monthly Revenue"
	SheetDailySales     = "Daily Sales"
	SheetCategories     = "Product Categories"
	SheetRegions        = "Regional Sales"
	SheetTopProducts    = "Top Products"
)

// Options configures an export.
type Options struct {
	// Charts adds native charts next to the revenue, category and daily tables.
	Charts bool
}

type section struct {
	sheet string
	items interface{}
}

func sections(b *models.AnalyticsBundle) []section {
	return []section{
		{SheetKPI, b.KPI},
		{SheetRevenue, b.Revenue},
		{SheetMonthlyRevenue, b.SalesOverview.MonthlyRevenue},
		{SheetDailySales, b.SalesOverview.DailySales},
		{SheetCategories, b.Categories},
		{SheetRegions, b.Regions},
		{SheetTopProducts, b.TopProducts},
	}
}

// Workbook builds a workbook for b. The caller must Close it.
func Workbook(b *models.AnalyticsBundle, opts Options) (*excelize.File, error) {
	f := excelize.NewFile()
	secs := sections(b)

	for i, sec := range secs {
		if i == 0 {
			if err := f.SetSheetName(f.GetSheetName(0), sec.sheet); err != nil {
				f.Close()
				return nil, err
			}
		} else if _, err := f.NewSheet(sec.sheet); err != nil {
			f.Close()
			return nil, err
		}

		headers, rows := table(sec.items)
		if err := writeTable(f, sec.sheet, headers, rows); err != nil {
			f.Close()
			return nil, fmt.Errorf("sheet %q: %w", sec.sheet, err)
		}
	}

	if opts.Charts {
		for _, c := range Charts(b) {
			if err := addChart(f, c); err != nil {
				f.Close()
				return nil, fmt.Errorf("chart on %q: %w", c.Sheet, err)
			}
		}
	}

	f.SetActiveSheet(0)
	return f, nil
}

// Write writes the workbook for b to w.
func Write(w io.Writer, b *models.AnalyticsBundle, opts Options) error {
	f, err := Workbook(b, opts)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.WriteTo(w)
	return err
}

// SaveAs writes the workbook for b to path.
func SaveAs(path string, b *models.AnalyticsBundle, opts Options) error {
	f, err := Workbook(b, opts)
	if err != nil {
		return err
	}
	defer f.Close()

	return f.SaveAs(path)
}

// DefaultFileName returns the download name for an export made at t.
func DefaultFileName(t time.Time) string {
	return "sales-data-" + t.Format("2006-01-02") + ".xlsx"
}

func writeTable(f *excelize.File, sheet string, headers []string, rows [][]interface{}) error {
	header := make([]interface{}, len(headers))
	for i, h := range headers {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

// table flattens a slice of structs into a header row of JSON field names
// and one value row per item. Nil pointers become nil cells.
func table(items interface{}) ([]string, [][]interface{}) {
	v := reflect.ValueOf(items)
	typ := v.Type().Elem()

	var headers []string
	var fields []int
	for i := 0; i < typ.NumField(); i++ {
		name := jsonName(typ.Field(i))
		if name == "" {
			continue
		}
		headers = append(headers, name)
		fields = append(fields, i)
	}

	rows := make([][]interface{}, v.Len())
	for i := range rows {
		item := v.Index(i)
		row := make([]interface{}, len(fields))
		for j, idx := range fields {
			fv := item.Field(idx)
			if fv.Kind() == reflect.Ptr {
				if fv.IsNil() {
					continue
				}
				fv = fv.Elem()
			}
			row[j] = fv.Interface()
		}
		rows[i] = row
	}
	return headers, rows
}

func jsonName(f reflect.StructField) string {
	tag := f.Tag.Get("json")
	if tag == "-" || !f.IsExported() {
		return ""
	}
	name, _, _ := strings.Cut(tag, ",")
	if name == "" {
		return f.Name
	}
	return name
}

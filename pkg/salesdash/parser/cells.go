package parser

import (
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ExtractCells reads the raw cell values of a sheet.
// Number formats are not applied, so numeric cells keep their stored value
// and dates come back as serial numbers.
func ExtractCells(f *excelize.File, sheetName string) ([][]string, error) {
	return f.GetRows(sheetName, excelize.Options{RawCellValue: true})
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func parseValue(s string) interface{} {
	s = strings.TrimSpace(s)
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	// Try float
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	// Return as string
	return s
}

// Package normalize coerces reconciled raw values into typed sales records.
package normalize

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// currencySymbols may prefix an amount and are stripped before parsing.
const currencySymbols = "$€£¥"

// dateLayouts is tried in order for string dates.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"2006/01/02",
	"2006-01",

	// US style, as browsers read slash dates
	"01/02/2006 15:04:05",
	"01/02/2006 15:04",
	"01/02/2006",
	"1/2/2006",
	"01-02-2006",
	"1/2/06",

	"Jan 2, 2006",
	"January 2, 2006",
	"Jan 2 2006",
	"2 Jan 2006",
	"02 Jan 2006",
	"2 January 2006",
	"Mon Jan 2 2006",
	"Mon, 02 Jan 2006 15:04:05 MST",
}

// MaxAmount bounds the magnitude of amounts and prices. Larger values are
// rejected so that sums over a whole upload stay finite as float64.
const MaxAmount = 1e15

// minAmountExponent is the smallest decimal exponent kept exactly. Values
// with a finer scale are rounded through float64.
const minAmountExponent = -20

// ParseAmount parses a monetary amount. Numbers are accepted as-is; strings
// may carry surrounding spaces and a leading currency symbol. Non-finite
// values, values beyond MaxAmount and anything else fail.
func ParseAmount(v interface{}) (decimal.Decimal, bool) {
	switch t := v.(type) {
	case int64:
		if !inAmountRange(float64(t)) {
			return decimal.Zero, false
		}
		return decimal.NewFromInt(t), true
	case int:
		return ParseAmount(int64(t))
	case float64:
		if !inAmountRange(t) {
			return decimal.Zero, false
		}
		return decimal.NewFromFloat(t), true
	case string:
		s := strings.TrimSpace(t)
		s = strings.TrimLeft(s, currencySymbols)
		s = strings.TrimSpace(s)
		if s == "" {
			return decimal.Zero, false
		}
		// ParseFloat bounds the exponent before decimal sees it.
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || !inAmountRange(f) {
			return decimal.Zero, false
		}
		d, err := decimal.NewFromString(s)
		if err != nil {
			return decimal.Zero, false
		}
		if d.Exponent() < minAmountExponent {
			d = decimal.NewFromFloat(f)
		}
		return d, true
	default:
		return decimal.Zero, false
	}
}

func inAmountRange(f float64) bool {
	return !math.IsNaN(f) && math.Abs(f) <= MaxAmount
}

// ParsePrice parses a unit price with the same rules as ParseAmount.
func ParsePrice(v interface{}) (decimal.Decimal, bool) {
	return ParseAmount(v)
}

// ParseUnits parses a unit count. Finite fractional values truncate toward
// zero. Counts beyond the int32 range fail.
func ParseUnits(v interface{}) (int, bool) {
	switch t := v.(type) {
	case int64:
		if t > math.MaxInt32 || t < math.MinInt32 {
			return 0, false
		}
		return int(t), true
	case int:
		return ParseUnits(int64(t))
	case float64:
		if math.IsNaN(t) || t > math.MaxInt32 || t < math.MinInt32 {
			return 0, false
		}
		return int(math.Trunc(t)), true
	case string:
		s := strings.TrimSpace(t)
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return ParseUnits(i)
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		return ParseUnits(f)
	default:
		return 0, false
	}
}

// ParseDate parses an order date. Numbers are spreadsheet serial dates.
// Strings are tried against dateLayouts in loc (UTC when nil).
func ParseDate(v interface{}, loc *time.Location) (time.Time, bool) {
	if loc == nil {
		loc = time.UTC
	}

	switch t := v.(type) {
	case time.Time:
		return t, !t.IsZero()
	case int64:
		return serialDate(float64(t), loc)
	case float64:
		return serialDate(t, loc)
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return time.Time{}, false
		}
		for _, layout := range dateLayouts {
			if d, err := time.ParseInLocation(layout, s, loc); err == nil {
				return d, true
			}
		}
		return time.Time{}, false
	default:
		return time.Time{}, false
	}
}

// serialDate converts an Excel serial number to a wall-clock time in loc.
func serialDate(serial float64, loc *time.Location) (time.Time, bool) {
	if math.IsNaN(serial) || math.IsInf(serial, 0) || serial <= 0 {
		return time.Time{}, false
	}
	d, err := excelize.ExcelDateToTime(serial, false)
	if err != nil {
		return time.Time{}, false
	}
	return time.Date(d.Year(), d.Month(), d.Day(), d.Hour(), d.Minute(), d.Second(), d.Nanosecond(), loc), true
}

// ParseText returns the trimmed text form of a value.
func ParseText(v interface{}) (string, bool) {
	var s string
	switch t := v.(type) {
	case nil:
		return "", false
	case string:
		s = t
	case float64:
		s = strconv.FormatFloat(t, 'f', -1, 64)
	default:
		s = fmt.Sprint(t)
	}
	s = strings.TrimSpace(s)
	return s, s != ""
}

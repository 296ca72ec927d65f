// Package reconcile maps heterogeneous column names onto canonical sales fields.
package reconcile

import (
	"strings"

	"github.com/ukaji3/salesdash-go/pkg/salesdash/models"
)

// Field is a canonical field name used across all upload sources.
type Field string

const (
	// FieldSalesAmount is the order amount; rows without a positive one are dropped.
	FieldSalesAmount Field = "salesAmount"
	// FieldDate is the order date.
	FieldDate Field = "date"
	// FieldProduct is the product name.
	FieldProduct Field = "product"
	// FieldCategory is the product category.
	FieldCategory Field = "category"
	// FieldCustomer identifies the buyer.
	FieldCustomer Field = "customer"
	// FieldRegion is the sales region, country or state.
	FieldRegion Field = "region"
	// FieldUnits is the number of units sold.
	FieldUnits Field = "units"
	// FieldPrice is the unit price.
	FieldPrice Field = "price"
)

// Fields lists every canonical field in reconciliation order.
var Fields = []Field{
	FieldSalesAmount,
	FieldDate,
	FieldProduct,
	FieldCategory,
	FieldCustomer,
	FieldRegion,
	FieldUnits,
	FieldPrice,
}

// synonyms maps each canonical field to the lower-case header names that
// carry it, in priority order. The first present header wins.
var synonyms = map[Field][]string{
	FieldSalesAmount: {"sales amount", "amount", "revenue", "sales"},
	FieldDate:        {"date", "order date"},
	FieldProduct:     {"product", "product name", "item"},
	FieldCategory:    {"category", "product category"},
	FieldCustomer:    {"customer", "customer name"},
	FieldRegion:      {"region", "country", "state"},
	FieldUnits:       {"units"},
	FieldPrice:       {"price"},
}

// Values holds the raw value resolved for each canonical field.
// Absent fields have no entry.
type Values map[Field]interface{}

// Synonyms returns the accepted header names for a field, in priority order.
func Synonyms(field Field) []string {
	return append([]string(nil), synonyms[field]...)
}

// Lookup returns the value of the first synonym of field present in row.
// Keys are compared case-insensitively. Nil values and blank strings count
// as absent so the next synonym is tried.
func Lookup(row models.RawRow, field Field) (interface{}, bool) {
	keys := foldKeys(row)
	return lookupFolded(row, keys, field)
}

// Reconcile resolves every canonical field of row.
func Reconcile(row models.RawRow) Values {
	keys := foldKeys(row)
	values := make(Values, len(Fields))
	for _, field := range Fields {
		if v, ok := lookupFolded(row, keys, field); ok {
			values[field] = v
		}
	}
	return values
}

// foldKeys indexes the row's keys by their trimmed lower-case form.
// The first key wins when two keys fold to the same name.
func foldKeys(row models.RawRow) map[string]string {
	keys := make(map[string]string, len(row))
	for k := range row {
		folded := strings.ToLower(strings.TrimSpace(k))
		if prev, ok := keys[folded]; !ok || k < prev {
			keys[folded] = k
		}
	}
	return keys
}

func lookupFolded(row models.RawRow, keys map[string]string, field Field) (interface{}, bool) {
	for _, name := range synonyms[field] {
		key, ok := keys[name]
		if !ok {
			continue
		}
		if v := row[key]; present(v) {
			return v, true
		}
	}
	return nil, false
}

func present(v interface{}) bool {
	switch t := v.(type) {
	case nil:
		return false
	case string:
		return strings.TrimSpace(t) != ""
	default:
		return true
	}
}

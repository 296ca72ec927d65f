package normalize

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ukaji3/salesdash-go/pkg/salesdash/models"
	"github.com/ukaji3/salesdash-go/pkg/salesdash/reconcile"
)

// Stats counts the outcome of normalizing one upload.
type Stats struct {
	// Rows is the number of raw rows seen.
	Rows int `json:"rows"`
	// Kept is the number of rows that produced a record.
	Kept int `json:"kept"`
	// Dropped is the number of rows without a positive sales amount.
	Dropped int `json:"dropped"`
}

// Empty reports whether no row survived normalization.
func (s Stats) Empty() bool {
	return s.Kept == 0
}

// Normalizer converts reconciled values into records.
type Normalizer struct {
	now func() time.Time
	loc *time.Location
}

// New creates a Normalizer. now supplies the substitute for missing dates
// and loc the zone string dates are read in; nil selects time.Now and UTC.
func New(now func() time.Time, loc *time.Location) *Normalizer {
	if now == nil {
		now = time.Now
	}
	if loc == nil {
		loc = time.UTC
	}
	return &Normalizer{now: now, loc: loc}
}

// Record builds a record from reconciled values. It returns false when the
// sales amount is missing, not numeric or not positive.
func (n *Normalizer) Record(values reconcile.Values) (models.Record, bool) {
	return n.record(values, n.now())
}

// Records reconciles and normalizes every row. Rows failing the sales amount
// rule are dropped and counted; they are not an error.
func (n *Normalizer) Records(rows []models.RawRow) ([]models.Record, Stats) {
	now := n.now()
	stats := Stats{Rows: len(rows)}
	records := make([]models.Record, 0, len(rows))

	for _, row := range rows {
		rec, ok := n.record(reconcile.Reconcile(row), now)
		if !ok {
			stats.Dropped++
			continue
		}
		records = append(records, rec)
	}

	stats.Kept = len(records)
	return records, stats
}

func (n *Normalizer) record(values reconcile.Values, now time.Time) (models.Record, bool) {
	amount, ok := ParseAmount(values[reconcile.FieldSalesAmount])
	if !ok || !amount.IsPositive() {
		return models.Record{}, false
	}

	rec := models.Record{
		SalesAmount: amount,
		Product:     textOr(values[reconcile.FieldProduct], models.DefaultProduct),
		Category:    textOr(values[reconcile.FieldCategory], models.DefaultCategory),
		Customer:    textOr(values[reconcile.FieldCustomer], models.DefaultCustomer),
		Region:      textOr(values[reconcile.FieldRegion], models.DefaultRegion),
		Units:       1,
		Price:       decimal.Zero,
	}

	if d, ok := ParseDate(values[reconcile.FieldDate], n.loc); ok {
		rec.Date = d
	} else {
		rec.Date = now.In(n.loc)
	}
	if u, ok := ParseUnits(values[reconcile.FieldUnits]); ok {
		rec.Units = u
	}
	if p, ok := ParsePrice(values[reconcile.FieldPrice]); ok {
		rec.Price = p
	}

	return rec, true
}

func textOr(v interface{}, fallback string) string {
	if s, ok := ParseText(v); ok {
		return s
	}
	return fallback
}

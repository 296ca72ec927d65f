// Package metrics records upload processing metrics in a Prometheus registry.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/ukaji3/salesdash-go/pkg/salesdash"
	"github.com/ukaji3/salesdash-go/pkg/salesdash/normalize"
)

// Metrics implements salesdash.Recorder.
type Metrics struct {
	registry *prometheus.Registry

	// UploadsTotal counts uploads by outcome
	UploadsTotal *prometheus.CounterVec
	// RowsTotal counts normalized rows by result (kept or dropped)
	RowsTotal *prometheus.CounterVec
	// ProcessingDuration tracks time spent on accepted uploads
	ProcessingDuration prometheus.Histogram
}

var _ salesdash.Recorder = (*Metrics)(nil)

// New creates metrics registered on a private registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		UploadsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "salesdash_uploads_total",
				Help: "Total number of processed uploads",
			},
			[]string{"outcome"},
		),
		RowsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "salesdash_rows_total",
				Help: "Total number of normalized rows",
			},
			[]string{"result"},
		),
		ProcessingDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "salesdash_processing_seconds",
				Help:    "Upload processing duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),
	}
}

// Registry returns the registry holding the metrics.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveUpload records one finished upload.
func (m *Metrics) ObserveUpload(outcome salesdash.Outcome, stats normalize.Stats, elapsed time.Duration) {
	m.UploadsTotal.WithLabelValues(string(outcome)).Inc()
	if outcome == salesdash.OutcomeRejected {
		return
	}

	m.RowsTotal.WithLabelValues("kept").Add(float64(stats.Kept))
	m.RowsTotal.WithLabelValues("dropped").Add(float64(stats.Dropped))
	m.ProcessingDuration.Observe(elapsed.Seconds())
}

// WriteToTextfile dumps the metrics in the text exposition format, for the
// node exporter textfile collector.
func (m *Metrics) WriteToTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}

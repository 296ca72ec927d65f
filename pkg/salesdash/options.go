// Package salesdash turns uploaded sales files into dashboard analytics.
package salesdash

import (
	"log/slog"
	"time"

	"github.com/ukaji3/salesdash-go/pkg/salesdash/aggregate"
	"github.com/ukaji3/salesdash-go/pkg/salesdash/parser"
)

// DefaultMaxFileSize is the largest upload accepted by default (10 MiB).
const DefaultMaxFileSize int64 = 10 << 20

// Options configures upload processing.
type Options struct {
	// Format forces the file format. If empty, it is detected from the
	// file name and content.
	Format parser.Format
	// MaxFileSize is the largest accepted file in bytes. Zero means no limit.
	MaxFileSize int64
	// Aggregate configures the summaries.
	Aggregate aggregate.Options
	// Location is the zone dates are read and bucketed in (UTC when nil).
	Location *time.Location
	// Now is the processing clock (time.Now when nil). It supplies the date
	// of rows without a usable one.
	Now func() time.Time
	// Logger receives pipeline logs (discarded when nil).
	Logger *slog.Logger
	// Recorder observes upload outcomes (ignored when nil).
	Recorder Recorder
}

// DefaultOptions returns default processing options.
func DefaultOptions() Options {
	return Options{
		MaxFileSize: DefaultMaxFileSize,
		Aggregate:   aggregate.DefaultOptions(),
	}
}

func (o Options) now() time.Time {
	if o.Now != nil {
		return o.Now()
	}
	return time.Now()
}

func (o Options) location() *time.Location {
	if o.Location != nil {
		return o.Location
	}
	return time.UTC
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.New(slog.DiscardHandler)
}

func (o Options) aggregateOptions(now time.Time) aggregate.Options {
	agg := o.Aggregate
	agg.Location = o.location()
	agg.Now = func() time.Time { return now }
	return agg
}

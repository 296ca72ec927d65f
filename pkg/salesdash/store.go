package salesdash

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/semaphore"

	"github.com/ukaji3/salesdash-go/pkg/salesdash/aggregate"
	"github.com/ukaji3/salesdash-go/pkg/salesdash/models"
	"github.com/ukaji3/salesdash-go/pkg/salesdash/normalize"
)

// Snapshot is the analytics a dashboard currently shows. Snapshots and the
// bundles they carry are never modified after they are published.
type Snapshot struct {
	// ID identifies the load that produced the snapshot.
	ID uuid.UUID `json:"id"`
	// Source is the uploaded file name or "sample".
	Source string `json:"source"`
	// Uploaded is false while the initial dataset is shown.
	Uploaded bool `json:"uploaded"`
	// LoadedAt is when the snapshot was published.
	LoadedAt time.Time `json:"loadedAt"`
	// Bundle is the analytics bundle.
	Bundle *models.AnalyticsBundle `json:"bundle"`
}

// SampleSource is the Source of the initial snapshot.
const SampleSource = "sample"

// Store holds the current analytics of one dashboard. It is the only place
// the bundle is replaced, and it processes one upload at a time.
type Store struct {
	current atomic.Pointer[Snapshot]
	uploads *semaphore.Weighted
	initial *models.AnalyticsBundle
	opts    Options
}

// NewStore creates a Store showing initial. A nil initial bundle is replaced
// by the aggregate of no records.
func NewStore(initial *models.AnalyticsBundle, opts Options) *Store {
	if initial == nil {
		initial = aggregate.Build(nil, opts.aggregateOptions(opts.now()))
	}
	s := &Store{
		uploads: semaphore.NewWeighted(1),
		initial: initial,
		opts:    opts,
	}
	s.publish(initial, SampleSource, false)
	return s
}

// Current returns the snapshot being shown.
func (s *Store) Current() *Snapshot {
	return s.current.Load()
}

// Bundle returns the bundle being shown.
func (s *Store) Bundle() *models.AnalyticsBundle {
	return s.Current().Bundle
}

// Set replaces the current analytics with an uploaded bundle.
func (s *Store) Set(bundle *models.AnalyticsBundle, source string) *Snapshot {
	return s.publish(bundle, source, true)
}

// Reset restores the initial dataset.
func (s *Store) Reset() *Snapshot {
	return s.publish(s.initial, SampleSource, false)
}

// Upload processes r and, on success, makes its bundle current. On failure
// the current snapshot is left untouched. An upload submitted while another
// is running is rejected with ErrUploadInProgress.
func (s *Store) Upload(ctx context.Context, source string, r io.Reader) (*Result, error) {
	if !s.uploads.TryAcquire(1) {
		s.opts.logger().WarnContext(ctx, "upload rejected", slog.String("source", source))
		observe(s.opts, OutcomeRejected, normalize.Stats{}, time.Now())
		return nil, ErrUploadInProgress
	}
	defer s.uploads.Release(1)

	res, err := Process(ctx, source, r, s.opts)
	if err != nil {
		return nil, err
	}
	s.Set(res.Bundle, source)
	return res, nil
}

func (s *Store) publish(bundle *models.AnalyticsBundle, source string, uploaded bool) *Snapshot {
	snap := &Snapshot{
		ID:       uuid.New(),
		Source:   source,
		Uploaded: uploaded,
		LoadedAt: s.opts.now(),
		Bundle:   bundle,
	}
	s.current.Store(snap)
	return snap
}

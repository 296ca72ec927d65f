package salesdash

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/ukaji3/salesdash-go/pkg/salesdash/aggregate"
	"github.com/ukaji3/salesdash-go/pkg/salesdash/models"
	"github.com/ukaji3/salesdash-go/pkg/salesdash/normalize"
	"github.com/ukaji3/salesdash-go/pkg/salesdash/parser"
)

// Result is the outcome of processing one upload.
type Result struct {
	// Source is the uploaded file name.
	Source string `json:"source"`
	// Format is the format the file was parsed as.
	Format parser.Format `json:"format"`
	// Stats counts parsed, kept and dropped rows.
	Stats normalize.Stats `json:"stats"`
	// Bundle is the aggregated analytics.
	Bundle *models.AnalyticsBundle `json:"bundle"`
}

// Process reads, parses, normalizes and aggregates one uploaded file.
// Read and parse failures are returned as *StageError. Rows without a
// positive sales amount are dropped, not reported. A file that leaves no
// rows still yields a bundle; Result.Stats.Empty reports that case.
func Process(ctx context.Context, source string, r io.Reader, opts Options) (*Result, error) {
	start := time.Now()
	logger := opts.logger().With(slog.String("source", source))

	content, err := ReadAll(ctx, r, opts.MaxFileSize)
	if err != nil {
		logger.ErrorContext(ctx, "failed to read upload", slog.String("error", err.Error()))
		observe(opts, OutcomeReadFailure, normalize.Stats{}, start)
		return nil, NewStageError(StageRead, source, err)
	}
	logger.DebugContext(ctx, "upload read", slog.Int("bytes", len(content)))

	return process(ctx, source, content, opts, start)
}

// ProcessBytes runs the pipeline on content that is already in memory.
func ProcessBytes(ctx context.Context, source string, content []byte, opts Options) (*Result, error) {
	return process(ctx, source, content, opts, time.Now())
}

func process(ctx context.Context, source string, content []byte, opts Options, start time.Time) (*Result, error) {
	logger := opts.logger().With(slog.String("source", source))

	format := opts.Format
	if format == "" {
		detected, err := parser.DetectFormat(source, content)
		if err != nil {
			logger.ErrorContext(ctx, "failed to detect format", slog.String("error", err.Error()))
			observe(opts, OutcomeParseFailure, normalize.Stats{}, start)
			return nil, NewStageError(StageParse, source, err)
		}
		format = detected
	}

	rows, err := parser.Parse(format, content)
	if err != nil {
		logger.ErrorContext(ctx, "failed to parse upload",
			slog.String("format", string(format)),
			slog.String("error", err.Error()))
		observe(opts, OutcomeParseFailure, normalize.Stats{}, start)
		return nil, NewStageError(StageParse, source, err)
	}
	logger.DebugContext(ctx, "upload parsed", slog.String("format", string(format)), slog.Int("rows", len(rows)))

	now := opts.now()
	n := normalize.New(func() time.Time { return now }, opts.location())
	records, stats := n.Records(rows)

	bundle := aggregate.Build(records, opts.aggregateOptions(now))

	outcome := OutcomeSuccess
	if stats.Empty() {
		outcome = OutcomeEmpty
	}
	observe(opts, outcome, stats, start)

	logger.InfoContext(ctx, "upload processed",
		slog.String("format", string(format)),
		slog.Int("rows", stats.Rows),
		slog.Int("kept", stats.Kept),
		slog.Int("dropped", stats.Dropped),
		slog.Duration("duration", time.Since(start)))

	return &Result{
		Source: source,
		Format: format,
		Stats:  stats,
		Bundle: bundle,
	}, nil
}

func observe(opts Options, outcome Outcome, stats normalize.Stats, start time.Time) {
	if opts.Recorder != nil {
		opts.Recorder.ObserveUpload(outcome, stats, time.Since(start))
	}
}

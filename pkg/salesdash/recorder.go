package salesdash

import (
	"time"

	"github.com/ukaji3/salesdash-go/pkg/salesdash/normalize"
)

// Outcome classifies how an upload ended.
type Outcome string

const (
	// OutcomeSuccess is an upload that kept at least one row.
	OutcomeSuccess Outcome = "success"
	// OutcomeEmpty is an upload that parsed but kept no rows.
	OutcomeEmpty Outcome = "empty"
	// OutcomeReadFailure is an upload whose stream could not be read.
	OutcomeReadFailure Outcome = "read_failure"
	// OutcomeParseFailure is an upload whose content could not be decoded.
	OutcomeParseFailure Outcome = "parse_failure"
	// OutcomeRejected is an upload refused because another was in progress.
	OutcomeRejected Outcome = "rejected"
)

// Recorder observes finished uploads.
type Recorder interface {
	ObserveUpload(outcome Outcome, stats normalize.Stats, elapsed time.Duration)
}

package salesdash

import (
	"errors"
	"fmt"
)

// ErrFileTooLarge indicates the upload exceeds the configured size limit.
var ErrFileTooLarge = errors.New("file too large")

// ErrUploadInProgress indicates an upload was submitted while another one
// was still being processed.
var ErrUploadInProgress = errors.New("another upload is in progress")

// Stage is the pipeline stage an upload failed in.
type Stage string

const (
	// StageRead covers reading the file stream into memory.
	StageRead Stage = "read"
	// StageParse covers format detection and decoding.
	StageParse Stage = "parse"
)

// StageError represents a terminal failure of one upload.
type StageError struct {
	Stage  Stage
	Source string
	Err    error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s failure for %q: %v", e.Stage, e.Source, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// NewStageError creates a new StageError.
func NewStageError(stage Stage, source string, err error) *StageError {
	return &StageError{
		Stage:  stage,
		Source: source,
		Err:    err,
	}
}

// IsReadFailure reports whether err is a failure to read the file.
func IsReadFailure(err error) bool {
	return stageOf(err) == StageRead
}

// IsParseFailure reports whether err is a failure to decode the file.
func IsParseFailure(err error) bool {
	return stageOf(err) == StageParse
}

func stageOf(err error) Stage {
	var se *StageError
	if errors.As(err, &se) {
		return se.Stage
	}
	return ""
}

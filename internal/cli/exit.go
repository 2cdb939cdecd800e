package cli

import (
	"errors"
	"fmt"

	"github.com/specialistvlad/clustersort/internal/cluster"
	"github.com/specialistvlad/clustersort/internal/fsutil"
	"github.com/specialistvlad/clustersort/internal/table"
)

// Process exit codes.
const (
	ExitOK              = 0
	ExitFailure         = 1
	ExitUsage           = 2
	ExitUnreadableInput = 3
	ExitMalformedInput  = 4
	ExitColumnNotFound  = 5
	ExitRowTooShort     = 6
	ExitUnmappedLabel   = 7
	ExitWriteFailure    = 8
)

// ExitError is a custom error type that includes a specific exit code.
// An empty Message means the cause has already been reported.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	switch {
	case e.Message != "":
		return e.Message
	case e.Err != nil:
		return e.Err.Error()
	default:
		return fmt.Sprintf("exit status %d", e.Code)
	}
}

// Unwrap returns the underlying cause.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCode maps err to the process exit status.
func ExitCode(err error) int {
	var exitErr *ExitError
	switch {
	case err == nil:
		return ExitOK
	case errors.As(err, &exitErr):
		return exitErr.Code
	// Read-back failures carry both write and read causes; the write wins.
	case errors.Is(err, fsutil.ErrWriteFailure):
		return ExitWriteFailure
	case errors.Is(err, fsutil.ErrUnreadableInput):
		return ExitUnreadableInput
	case errors.Is(err, table.ErrMalformedInput):
		return ExitMalformedInput
	case errors.Is(err, table.ErrColumnNotFound):
		return ExitColumnNotFound
	case errors.Is(err, cluster.ErrRowTooShort):
		return ExitRowTooShort
	case errors.Is(err, cluster.ErrUnmappedLabel):
		return ExitUnmappedLabel
	default:
		return ExitFailure
	}
}

// Reported wraps an error that has already been logged, so the entrypoint
// exits with the matching code without printing it again.
func Reported(err error) *ExitError {
	return &ExitError{Code: ExitCode(err), Err: err}
}

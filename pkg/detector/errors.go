package detector

import (
	"errors"
	"fmt"
)

// ErrorKind is the taxonomy of errors that can surface out of Detect. Every
// other failure is recovered locally: a language analyzer that returns an
// error or panics is left out of the profile's Languages without a note,
// and a malformed manifest, a build-system read failure or a VCS read
// failure becomes a Note on the returned profile instead.
type ErrorKind string

// Surfaced error kinds.
const (
	// ErrorKindRootUnreadable means the root path does not exist, is not a
	// directory, or could not be opened.
	ErrorKindRootUnreadable ErrorKind = "root_unreadable"

	// ErrorKindCancelled means the caller's context was cancelled before
	// detection completed.
	ErrorKindCancelled ErrorKind = "cancelled"
)

var (
	errRootUnreadable = errors.New("root path is not a readable directory")
	errCancelled      = errors.New("detection cancelled")
)

// DetectorError is the tagged error type Detect returns. Only
// ErrorKindRootUnreadable and ErrorKindCancelled ever reach a caller;
// everything else is handled inside Detect as described on ErrorKind.
type DetectorError struct {
	Kind  ErrorKind
	Cause error
}

// Error implements the error interface.
func (e *DetectorError) Error() string {
	return fmt.Sprintf("%s: %v", e.Kind, e.Cause)
}

// Unwrap exposes the underlying cause for errors.Is/errors.As.
func (e *DetectorError) Unwrap() error {
	return e.Cause
}

func newRootUnreadableError(cause error) *DetectorError {
	return &DetectorError{Kind: ErrorKindRootUnreadable, Cause: fmt.Errorf("%w: %w", errRootUnreadable, cause)}
}

func newCancelledError(cause error) *DetectorError {
	return &DetectorError{Kind: ErrorKindCancelled, Cause: fmt.Errorf("%w: %w", errCancelled, cause)}
}

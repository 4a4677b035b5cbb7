package postpilot

import (
	"context"
	"errors"
	"fmt"
)

// Error kind constants for classification and matching
const (
	// KindValidation indicates a required field was missing. The schedule
	// never starts running.
	KindValidation = "validation"

	// KindRejectedContent indicates the content gate declined the caption.
	// Informational only; no publish occurs.
	KindRejectedContent = "rejected_content"

	// KindPreviewFailure indicates the media could not be opened for
	// preview. Non-fatal; the schedule continues.
	KindPreviewFailure = "preview_failure"

	// KindPersistence indicates the post history could not be written. The
	// post is still considered published.
	KindPersistence = "persistence"

	// KindCanceled indicates the schedule was canceled, typically while
	// waiting for its slot.
	KindCanceled = "canceled"

	// KindUnexpected is the default classification for anything else.
	KindUnexpected = "unexpected"
)

// ScheduleError is a structured error with a kind so callers can distinguish
// the failure modes of a schedule run. It supports Go's error wrapping
// patterns with Unwrap().
type ScheduleError struct {
	Kind    string `json:"kind"`
	Cause   string `json:"cause"`
	Wrapped error  `json:"-"`
}

// Error implements the error interface
func (e *ScheduleError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Cause)
}

// Unwrap implements the error unwrapping interface for errors.Is and errors.As
func (e *ScheduleError) Unwrap() error {
	return e.Wrapped
}

// NewScheduleError creates a new ScheduleError with the specified kind and cause.
func NewScheduleError(kind, cause string) *ScheduleError {
	return &ScheduleError{Kind: kind, Cause: cause}
}

// WrapScheduleError wraps an underlying error with a kind.
func WrapScheduleError(kind string, err error) *ScheduleError {
	return &ScheduleError{Kind: kind, Cause: err.Error(), Wrapped: err}
}

// ClassifyError attempts to classify a regular error into a ScheduleError
func ClassifyError(err error) *ScheduleError {
	// If the error is already a ScheduleError, return it
	var schedErr *ScheduleError
	if errors.As(err, &schedErr) {
		return schedErr
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return &ScheduleError{
			Kind:    KindCanceled,
			Cause:   err.Error(),
			Wrapped: err,
		}
	}
	return &ScheduleError{
		Kind:    KindUnexpected,
		Cause:   err.Error(),
		Wrapped: err,
	}
}

// IsKind reports whether err classifies as a ScheduleError of the given kind.
func IsKind(err error, kind string) bool {
	if err == nil {
		return false
	}
	return ClassifyError(err).Kind == kind
}

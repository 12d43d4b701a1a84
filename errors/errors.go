package errors

import "fmt"

// ErrorCode identifies a failure class in the generation pipeline.
type ErrorCode string

const (
	ErrValidation   ErrorCode = "VALIDATION"    // 400: missing request fields
	ErrSearch       ErrorCode = "SEARCH"        // 502: search collaborator failed
	ErrGeneration   ErrorCode = "GENERATION"    // 502: completion collaborator failed
	ErrPersist      ErrorCode = "PERSIST"       // 500: history file write failed
	ErrCorruptState ErrorCode = "CORRUPT_STATE" // 500: malformed history file on load
	ErrNotFound     ErrorCode = "NOT_FOUND"     // 404
	ErrExportEmpty  ErrorCode = "EXPORT_EMPTY"  // 409: nothing to export
)

// AppError is a structured error with a code, an HTTP status and a message.
// Every failure in the pipeline is terminal for its request; none of these
// trigger retries.
type AppError struct {
	Code    ErrorCode
	Status  int
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap exposes the underlying collaborator error, if any.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// NewValidation creates a 400 error for a request with missing fields.
func NewValidation(msg string) *AppError {
	return &AppError{
		Code:    ErrValidation,
		Status:  400,
		Message: msg,
	}
}

// NewSearch wraps a search collaborator failure. The request is aborted;
// there is no retry.
func NewSearch(err error) *AppError {
	return &AppError{
		Code:    ErrSearch,
		Status:  502,
		Message: fmt.Sprintf("search failed: %v", err),
		Cause:   err,
	}
}

// NewGeneration wraps a completion failure. One failed completion aborts the
// whole request; nothing partial is kept.
func NewGeneration(err error) *AppError {
	return &AppError{
		Code:    ErrGeneration,
		Status:  502,
		Message: fmt.Sprintf("content generation failed: %v", err),
		Cause:   err,
	}
}

// NewPersist wraps a history write failure. In-memory state may now diverge
// from durable state.
func NewPersist(err error) *AppError {
	return &AppError{
		Code:    ErrPersist,
		Status:  500,
		Message: fmt.Sprintf("failed to persist history: %v", err),
		Cause:   err,
	}
}

// NewCorruptState wraps a malformed history file. Loading degrades to an
// empty collection instead of crashing.
func NewCorruptState(err error) *AppError {
	return &AppError{
		Code:    ErrCorruptState,
		Status:  500,
		Message: fmt.Sprintf("history file is corrupt: %v", err),
		Cause:   err,
	}
}

// NewNotFound creates a 404 error for an unknown content id.
func NewNotFound(id string) *AppError {
	return &AppError{
		Code:    ErrNotFound,
		Status:  404,
		Message: fmt.Sprintf("content not found: %s", id),
	}
}

// NewExportEmpty creates a 409 error for exporting an empty history.
func NewExportEmpty() *AppError {
	return &AppError{
		Code:    ErrExportEmpty,
		Status:  409,
		Message: "no content to export",
	}
}

// Is checks whether err is an AppError with the given code.
func Is(err error, code ErrorCode) bool {
	if aErr, ok := err.(*AppError); ok {
		return aErr.Code == code
	}
	return false
}

// StatusOf returns the HTTP status for err, defaulting to 500.
func StatusOf(err error) int {
	if aErr, ok := err.(*AppError); ok && aErr.Status != 0 {
		return aErr.Status
	}
	return 500
}

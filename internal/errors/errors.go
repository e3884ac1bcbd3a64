package errors

import "fmt"

// Error codes
const (
	ErrCodeConfig     = "CONFIG_ERROR"
	ErrCodeSourceRead = "SOURCE_READ_ERROR"
	ErrCodeEmptyDeck  = "EMPTY_DECK"
	ErrCodeInternal   = "INTERNAL_ERROR"
)

// Exit statuses used by the binary. Every startup failure is terminal.
const (
	ExitConfig     = 2
	ExitSourceRead = 3
	ExitEmptyDeck  = 4
	ExitInternal   = 1
)

// AppError represents a startup failure with an error code and process exit status
type AppError struct {
	Code     string // Error code (e.g., "CONFIG_ERROR", "EMPTY_DECK")
	Message  string // Human-readable error message
	ExitCode int    // Process exit status
	Err      error  // Wrapped underlying error (optional)
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for error wrapping support
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new CONFIG_ERROR
func NewConfigError(reason string, err error) *AppError {
	return &AppError{
		Code:     ErrCodeConfig,
		Message:  reason,
		ExitCode: ExitConfig,
		Err:      err,
	}
}

// NewSourceReadError creates a new SOURCE_READ_ERROR for the given path
func NewSourceReadError(path string, err error) *AppError {
	return &AppError{
		Code:     ErrCodeSourceRead,
		Message:  fmt.Sprintf("cannot read deck source %s", path),
		ExitCode: ExitSourceRead,
		Err:      err,
	}
}

// NewEmptyDeckError creates a new EMPTY_DECK error
func NewEmptyDeckError() *AppError {
	return &AppError{
		Code:     ErrCodeEmptyDeck,
		Message:  "no question;answer rows found in the given files",
		ExitCode: ExitEmptyDeck,
	}
}

// NewInternalError creates a new INTERNAL_ERROR
func NewInternalError(err error) *AppError {
	return &AppError{
		Code:     ErrCodeInternal,
		Message:  "internal error",
		ExitCode: ExitInternal,
		Err:      err,
	}
}

// ExitCode returns the exit status carried by err, or ExitInternal when err
// is not an *AppError.
func ExitCode(err error) int {
	var appErr *AppError
	if As(err, &appErr) {
		return appErr.ExitCode
	}
	return ExitInternal
}

package errors

import (
	stderrors "errors"
	"fmt"
)

// CodedError is the structured error type for minigrep.
// It carries enough context for the CLI to pick an exit status, render a
// message on stderr and log the failure.
type CodedError struct {
	// Code is the unique error code (e.g., "ERR_201_FILE_NOT_FOUND").
	Code string

	// Message is the human-readable error message.
	Message string

	// Category is derived from the code.
	Category Category

	// Details contains additional context as key-value pairs.
	Details map[string]string

	// Cause is the underlying error that caused this error.
	Cause error

	// Suggestion is an actionable hint for the user.
	Suggestion string
}

// Error implements the error interface.
func (e *CodedError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for error chain support.
func (e *CodedError) Unwrap() error {
	return e.Cause
}

// Is checks if this error matches the target error by code.
// This enables errors.Is() against the sentinel errors of other packages.
func (e *CodedError) Is(target error) bool {
	if t, ok := target.(*CodedError); ok {
		return e.Code == t.Code
	}
	return false
}

// WithDetail adds a key-value detail to the error.
// Returns the error for method chaining.
func (e *CodedError) WithDetail(key, value string) *CodedError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// WithSuggestion adds an actionable suggestion for the user.
// Returns the error for method chaining.
func (e *CodedError) WithSuggestion(suggestion string) *CodedError {
	e.Suggestion = suggestion
	return e
}

// New creates a new CodedError with the given code and message.
func New(code string, message string, cause error) *CodedError {
	return &CodedError{
		Code:     code,
		Message:  message,
		Category: categoryFromCode(code),
		Cause:    cause,
	}
}

// Wrap creates a CodedError from an existing error.
// The error's message becomes the CodedError message.
func Wrap(code string, err error) *CodedError {
	if err == nil {
		return nil
	}
	return New(code, err.Error(), err)
}

// ArgumentError creates a command line argument error.
func ArgumentError(code, message string) *CodedError {
	return New(code, message, nil)
}

// IOError creates an I/O-related error.
func IOError(code, message string, cause error) *CodedError {
	return New(code, message, cause)
}

// ConfigError creates a settings-related error.
func ConfigError(message string, cause error) *CodedError {
	return New(ErrCodeSettingsInvalid, message, cause)
}

// As returns the first CodedError in err's chain.
func As(err error) (*CodedError, bool) {
	var ce *CodedError
	if stderrors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}

// GetCode extracts the error code from a CodedError.
// Returns empty string if err carries no CodedError.
func GetCode(err error) string {
	if ce, ok := As(err); ok {
		return ce.Code
	}
	return ""
}

// GetCategory extracts the category from a CodedError.
// Returns empty string if err carries no CodedError.
func GetCategory(err error) Category {
	if ce, ok := As(err); ok {
		return ce.Category
	}
	return ""
}

// ExitCode maps an error to the process exit status.
// Argument errors exit with 1, every other failure with 2.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	if GetCategory(err) == CategoryArgument {
		return ExitArgument
	}
	return ExitFailure
}

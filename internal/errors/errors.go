package apperrors

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"
)

// Application exit codes define the standard exit statuses for the application.
// These codes are used to signal the outcome of the program execution to the OS.
const (
	ExitSuccess       = 0   // Indicates successful execution.
	ExitErrorGeneric  = 1   // Indicates a generic error.
	ExitErrorTimeout  = 2   // Indicates the operation timed out.
	ExitErrorMismatch = 3   // Indicates a result mismatch between algorithms.
	ExitErrorConfig   = 4   // Indicates a configuration error.
	ExitErrorCanceled = 130 // Indicates the operation was canceled (e.g., SIGINT).
)

// ConfigError represents a user configuration error, such as invalid flags or
// values. It indicates that the application cannot proceed due to incorrect
// user input.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
//
// Parameters:
//   - format: A format string (see fmt.Sprintf).
//   - a: Arguments to be formatted into the string.
//
// Returns:
//   - error: A new ConfigError instance containing the formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// InvalidArgumentError is the single domain error kind of the Fibonacci
// engine. It is returned when an index or count parameter is negative.
// It is always surfaced to the caller synchronously and immediately:
// never retried, never silently corrected, never logged and swallowed.
type InvalidArgumentError struct {
	// Param is the name of the offending parameter (e.g. "n", "count").
	Param string
	// Value is the rejected value.
	Value int
}

// Error returns a formatted message describing the invalid argument.
func (e InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %q: %d (must be a non-negative integer)", e.Param, e.Value)
}

// NewInvalidArgument creates an InvalidArgumentError for the given parameter
// name and rejected value.
func NewInvalidArgument(param string, value int) error {
	return InvalidArgumentError{Param: param, Value: value}
}

// IsInvalidArgument reports whether err is (or wraps) an InvalidArgumentError.
func IsInvalidArgument(err error) bool {
	var target InvalidArgumentError
	return errors.As(err, &target)
}

// CalculationError encapsulates a calculation error while preserving the
// original cause. This allows for structured error handling and inspection
// of what went wrong during the Fibonacci calculation.
type CalculationError struct {
	// Cause is the underlying error that triggered this calculation error.
	Cause error
}

// Error returns the error message from the underlying cause.
func (e CalculationError) Error() string { return e.Cause.Error() }

// Unwrap returns the original wrapped error, allowing for error chain
// inspection (e.g., using errors.Is or errors.As).
func (e CalculationError) Unwrap() error { return e.Cause }

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// This allows the wrapped error to be unwrapped with errors.Unwrap() and
// checked with errors.Is() and errors.As().
//
// Parameters:
//   - err: The error to wrap.
//   - format: A format string for the context message.
//   - args: Arguments for the format string.
//
// Returns:
//   - error: The wrapped error, or nil if err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// IsContextError checks if the error is a context cancellation or deadline
// exceeded error.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// ColorProvider supplies ANSI color codes for error reporting. It decouples
// this package from the presentation layer's theme handling.
type ColorProvider interface {
	Red() string
	Yellow() string
	Reset() string
}

// HandleCalculationError reports a calculation failure to the user and maps
// the error to a process exit code. Deadline errors map to the timeout code,
// explicit cancellation to the canceled code, invalid arguments to the
// config code, and everything else to the generic code.
//
// Parameters:
//   - err: The error to handle.
//   - duration: How long the calculation ran before failing.
//   - out: The writer for the error report.
//   - colors: Color codes for the report.
//
// Returns:
//   - int: The exit code corresponding to the error kind.
func HandleCalculationError(err error, duration time.Duration, out io.Writer, colors ColorProvider) int {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		fmt.Fprintf(out, "\n%sCalculation timed out after %s.%s\n", colors.Red(), duration, colors.Reset())
		return ExitErrorTimeout
	case errors.Is(err, context.Canceled):
		fmt.Fprintf(out, "\n%sCalculation canceled.%s\n", colors.Yellow(), colors.Reset())
		return ExitErrorCanceled
	case IsInvalidArgument(err):
		fmt.Fprintf(out, "\n%sError: %v%s\n", colors.Red(), err, colors.Reset())
		return ExitErrorConfig
	default:
		fmt.Fprintf(out, "\n%sCalculation failed: %v%s\n", colors.Red(), err, colors.Reset())
		return ExitErrorGeneric
	}
}

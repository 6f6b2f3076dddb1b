package apperrors

import (
	"context"
	"errors"
	"flag"
	"fmt"
)

// Application exit codes define the standard exit statuses for the application.
// These codes are used to signal the outcome of the program execution to the OS.
const (
	ExitSuccess       = 0   // Indicates successful execution.
	ExitErrorGeneric  = 1   // Indicates a generic error (file access, parsing, rendering).
	ExitErrorUsage    = 2   // Indicates a command-line usage error.
	ExitErrorConfig   = 4   // Indicates a configuration error.
	ExitErrorCanceled = 130 // Indicates the operation was canceled (e.g., SIGINT).
)

// UsageError reports a malformed invocation, such as a missing or extra
// positional argument. The usage text has already been printed when it is
// returned.
type UsageError struct {
	// Message explains what was wrong with the invocation.
	Message string
}

// Error returns the error message for a UsageError.
func (e UsageError) Error() string { return e.Message }

// NewUsageError creates a new UsageError with a formatted message.
func NewUsageError(format string, a ...any) error {
	return UsageError{Message: fmt.Sprintf(format, a...)}
}

// ConfigError represents a user configuration error, such as invalid flag
// values or an unreadable configuration file. It indicates that the
// application cannot proceed due to incorrect user input.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
//
// Returns:
//   - string: The error message string.
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

// FileError reports a failure to access the input log file.
type FileError struct {
	// Path is the file that could not be accessed.
	Path string
	// Op is the attempted operation ("open", "read").
	Op string
	// Cause is the underlying error, usually an *os.PathError.
	Cause error
}

// Error returns a formatted message naming the operation and path.
func (e FileError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Cause)
}

// Unwrap returns the underlying cause.
func (e FileError) Unwrap() error { return e.Cause }

// ParseError reports a failure while scanning the input log. Line is the
// 1-based line number at which scanning stopped, or 0 when unknown.
type ParseError struct {
	Path  string
	Line  int
	Cause error
}

// Error returns a formatted message naming the file and line.
func (e ParseError) Error() string {
	name := e.Path
	if name == "" {
		name = "<input>"
	}
	if e.Line > 0 {
		return fmt.Sprintf("parse %s:%d: %v", name, e.Line, e.Cause)
	}
	return fmt.Sprintf("parse %s: %v", name, e.Cause)
}

// Unwrap returns the underlying cause.
func (e ParseError) Unwrap() error { return e.Cause }

// RenderError encapsulates a failure of a chart display backend while
// preserving the original cause.
type RenderError struct {
	// Backend names the display backend ("terminal", "browser").
	Backend string
	// Cause is the underlying error that triggered this render error.
	Cause error
}

// Error returns the error message prefixed with the backend name.
func (e RenderError) Error() string {
	return fmt.Sprintf("%s display: %v", e.Backend, e.Cause)
}

// Unwrap returns the original wrapped error.
func (e RenderError) Unwrap() error { return e.Cause }

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

// IsContextError checks if the error is a context cancellation or deadline exceeded error.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// ExitCodeFor maps an error returned anywhere in the pipeline to the
// process exit status. A nil error and flag.ErrHelp both map to ExitSuccess.
func ExitCodeFor(err error) int {
	if err == nil || errors.Is(err, flag.ErrHelp) {
		return ExitSuccess
	}

	var usageErr UsageError
	if errors.As(err, &usageErr) {
		return ExitErrorUsage
	}
	var configErr ConfigError
	if errors.As(err, &configErr) {
		return ExitErrorConfig
	}
	if IsContextError(err) {
		return ExitErrorCanceled
	}
	return ExitErrorGeneric
}

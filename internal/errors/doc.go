// Package apperrors defines the application's structured error types and
// the mapping from error kinds to process exit codes. Configuration errors,
// invalid engine arguments, and calculation failures are distinct types so
// callers can branch with errors.As, and every type supports Go's wrapping
// conventions (Unwrap, errors.Is).
package apperrors

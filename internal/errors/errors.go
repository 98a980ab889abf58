// Package errors provides sentinel errors for the relay CLI.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for known conditions.
var (
	// ErrValidation indicates invalid configuration or command input.
	ErrValidation = errors.New("validation error")

	// ErrTagEnumeration indicates the tag snapshot could not be produced.
	// This is fatal to version resolution: deciding "highest" against a
	// partial tag set could advance latest pointers incorrectly.
	ErrTagEnumeration = errors.New("tag enumeration failed")

	// ErrPublish indicates a publish stage failed.
	ErrPublish = errors.New("publish failed")

	// ErrNotFound indicates a repository, chart, or artifact was not found.
	ErrNotFound = errors.New("not found")
)

// ExitError wraps an error with a process exit code.
type ExitError struct {
	Err  error
	Code int

	// Printed marks that the command layer already reported the error,
	// so main must not print it a second time.
	Printed bool
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the wrapped error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates an ExitError with the given error and exit code.
func NewExitError(err error, code int) *ExitError {
	return &ExitError{Err: err, Code: code}
}

// Wrap prefixes an error chain with a sentinel so callers can classify it
// with errors.Is while keeping the original cause.
func Wrap(sentinel, err error, msg string) error {
	return fmt.Errorf("%s: %w: %w", msg, sentinel, err)
}

// StageError captures a publish-stage failure with enough context to report
// the stage independently of its siblings.
type StageError struct {
	// Stage is the stage name, e.g. "images" or "chart".
	Stage string

	// Cause is the underlying failure.
	Cause error
}

// Error implements the error interface.
func (e *StageError) Error() string {
	return fmt.Sprintf("stage %s: %v", e.Stage, e.Cause)
}

// Unwrap returns the underlying error.
func (e *StageError) Unwrap() error {
	return e.Cause
}

// Is reports ErrPublish for any stage error.
func (e *StageError) Is(target error) bool {
	return target == ErrPublish
}

// Package cmd provides CLI command implementations.
package cmd

import (
	"errors"

	rerrors "github.com/relaykit/cli/internal/errors"
)

// Exit codes.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError = 1

	// ExitValidationError indicates invalid configuration or input.
	ExitValidationError = 2

	// ExitEnumerationError indicates the tag snapshot could not be taken.
	ExitEnumerationError = 3

	// ExitPublishError indicates at least one publish stage failed.
	ExitPublishError = 4

	// ExitNotFound indicates a repository or artifact was not found.
	ExitNotFound = 5
)

// ExitCodeName returns the name of the exit code.
func ExitCodeName(code int) string {
	switch code {
	case ExitSuccess:
		return "Success"
	case ExitGeneralError:
		return "General Error"
	case ExitValidationError:
		return "Validation Error"
	case ExitEnumerationError:
		return "Tag Enumeration Error"
	case ExitPublishError:
		return "Publish Error"
	case ExitNotFound:
		return "Not Found"
	default:
		return "Unknown"
	}
}

// ExitCodeFromError determines the appropriate exit code for an error.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *rerrors.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	switch {
	case errors.Is(err, rerrors.ErrValidation):
		return ExitValidationError
	case errors.Is(err, rerrors.ErrTagEnumeration):
		return ExitEnumerationError
	case errors.Is(err, rerrors.ErrPublish):
		return ExitPublishError
	case errors.Is(err, rerrors.ErrNotFound):
		return ExitNotFound
	default:
		return ExitGeneralError
	}
}

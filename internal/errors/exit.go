package errors

import "errors"

// Exit codes returned by the CLI.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError = 1

	// ExitValidationError indicates the project options are invalid.
	ExitValidationError = 2

	// ExitNotFound indicates a file the command needs does not exist.
	ExitNotFound = 5

	// ExitPackagingError indicates the bundled version table is broken.
	ExitPackagingError = 6

	// ExitDrift indicates the lock file is out of date.
	ExitDrift = 7

	// ExitCredentialsError indicates repository credentials are missing.
	ExitCredentialsError = 8
)

// ExitError wraps an error with an exit code.
type ExitError struct {
	// Code is the process exit code.
	Code int

	// Err is the underlying error.
	Err error

	// Printed marks errors the command layer already reported to the user.
	Printed bool
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	if e.Err == nil {
		return ExitCodeName(e.Code)
	}
	return e.Err.Error()
}

// Unwrap returns the wrapped error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCodeFromError determines the exit code for an error.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	switch {
	case errors.Is(err, ErrValidation):
		return ExitValidationError
	case errors.Is(err, ErrNotFound):
		return ExitNotFound
	case errors.Is(err, ErrPackaging):
		return ExitPackagingError
	case errors.Is(err, ErrDrift):
		return ExitDrift
	case errors.Is(err, ErrCredentials):
		return ExitCredentialsError
	default:
		return ExitGeneralError
	}
}

// ExitCodeName returns the name of the exit code.
func ExitCodeName(code int) string {
	switch code {
	case ExitSuccess:
		return "Success"
	case ExitGeneralError:
		return "General Error"
	case ExitValidationError:
		return "Validation Error"
	case ExitNotFound:
		return "Not Found"
	case ExitPackagingError:
		return "Packaging Error"
	case ExitDrift:
		return "Drift Detected"
	case ExitCredentialsError:
		return "Missing Credentials"
	default:
		return "Unknown"
	}
}

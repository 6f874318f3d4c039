package errors

import "errors"

// Sentinel errors for known conditions.
var (
	// ErrValidation indicates the project options failed validation.
	ErrValidation = errors.New("validation error")

	// ErrNotFound indicates a project file, lock file or resource was not found.
	ErrNotFound = errors.New("not found")

	// ErrPackaging indicates the bundled version table is missing or incomplete.
	ErrPackaging = errors.New("packaging error")

	// ErrCredentials indicates a repository credential could not be resolved.
	ErrCredentials = errors.New("missing credentials")

	// ErrDrift indicates the lock file no longer matches the current resolution.
	ErrDrift = errors.New("configuration drift")
)

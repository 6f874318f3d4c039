// Package cmdtypes provides shared types for the cmd package and its sub-packages.
// It is separate from internal/cmd to avoid import cycles between internal/cmd
// and its sub-packages (internal/cmd/config, internal/cmd/repository).
package cmdtypes

import (
	oerrors "github.com/bitfist/jcefbuild/internal/errors"

	"github.com/bitfist/jcefbuild/internal/config"
)

// GlobalConfig holds CLI-wide configuration resolved during PersistentPreRunE.
// It is populated once at startup and passed explicitly into every sub-command
// constructor.
type GlobalConfig struct {
	Paths *config.Paths

	// ProjectFile is the resolved project file path.
	ProjectFile string

	// ProjectFileSource records which layer supplied ProjectFile.
	ProjectFileSource config.ConfigSource

	// VersionsFile overrides the bundled version table when set.
	VersionsFile string

	Verbose bool
}

// Exit codes, aliased from internal/errors.
const (
	ExitSuccess          = oerrors.ExitSuccess
	ExitGeneralError     = oerrors.ExitGeneralError
	ExitValidationError  = oerrors.ExitValidationError
	ExitNotFound         = oerrors.ExitNotFound
	ExitPackagingError   = oerrors.ExitPackagingError
	ExitDrift            = oerrors.ExitDrift
	ExitCredentialsError = oerrors.ExitCredentialsError
)

// ExitError is a type alias to internal/errors.ExitError.
type ExitError = oerrors.ExitError

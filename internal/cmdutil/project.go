package cmdutil

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bitfist/jcefbuild/internal/buildconf"
	"github.com/bitfist/jcefbuild/internal/cmdtypes"
	"github.com/bitfist/jcefbuild/internal/config"
	"github.com/bitfist/jcefbuild/internal/emit"
	oerrors "github.com/bitfist/jcefbuild/internal/errors"
	"github.com/bitfist/jcefbuild/internal/output"
	"github.com/bitfist/jcefbuild/internal/repository"
	"github.com/bitfist/jcefbuild/internal/versions"
)

// Project is one fully resolved project.
type Project struct {
	// Config is the loaded project file (empty when none exists).
	Config *config.ProjectConfig

	// Options are the settled options with their sources.
	Options *config.ResolvedOptions

	Table *versions.Table
	Build *buildconf.Resolved

	// Repositories are the project file's and the requested repositories.
	Repositories []repository.Repository

	// Requested are the --repository names with their credentials.
	Requested []repository.Authenticated

	// Document is what resolve prints and lock writes.
	Document *emit.Document
}

// LoadProjectConfig loads the project file named by cfg.
// A missing file is an error only when it was named explicitly.
func LoadProjectConfig(cfg *cmdtypes.GlobalConfig) (*config.Loader, *config.ProjectConfig, error) {
	if cfg == nil || cfg.Paths == nil {
		return nil, nil, &oerrors.ExitError{Code: oerrors.ExitGeneralError, Err: fmt.Errorf("configuration not loaded")}
	}

	loader := config.NewLoader()
	projectCfg, found, err := loader.Load(cfg.ProjectFile)
	if err != nil {
		return nil, nil, err
	}
	if !found {
		if cfg.ProjectFileSource != config.SourceDefault {
			return nil, nil, oerrors.NewNotFoundError(
				"project file not found",
				cfg.ProjectFile,
				fmt.Sprintf("The path came from the %s; run 'jcefbuild config init' to create a project file", cfg.ProjectFileSource))
		}
		output.Debug("no project file, using flags and environment only", "path", cfg.ProjectFile)
	}
	return loader, projectCfg, nil
}

// LoadVersions returns the table from path, or the bundled table when path is empty.
func LoadVersions(path string) (*versions.Table, error) {
	if path == "" {
		return versions.Load()
	}
	output.Debug("using external version table", "path", path)
	return versions.LoadFile(path)
}

// RepositoryLookup creates a credential lookup for the project in cfg.
func RepositoryLookup(cfg *cmdtypes.GlobalConfig) (*repository.Lookup, error) {
	userProps, err := config.UserGradleProperties()
	if err != nil {
		output.Debug("no user gradle.properties", "error", err)
		userProps = ""
	}
	return repository.NewLookup(repository.LookupPaths{
		ProjectProperties: cfg.Paths.GradleProperties,
		UserProperties:    userProps,
		EnvFile:           cfg.Paths.EnvFile,
	})
}

// ResolveProject executes the pipeline shared by resolve, lock and diff:
// load the project file, settle options, resolve the build configuration and
// the requested repositories.
func ResolveProject(cmd *cobra.Command, cfg *cmdtypes.GlobalConfig, flags *ResolveFlags) (*Project, error) {
	loader, projectCfg, err := LoadProjectConfig(cfg)
	if err != nil {
		return nil, err
	}

	resolvedOpts, err := config.ResolveOptions(config.ResolveOptionsInput{
		ProjectDir:  cfg.Paths.ProjectDir,
		ProjectFile: cfg.ProjectFile,
		Flags:       flags.Overrides(cmd),
		Config:      projectCfg,
		Loader:      loader,
	})
	if err != nil {
		return nil, err
	}
	config.LogResolvedValues(resolvedOpts.Values)

	table, err := LoadVersions(cfg.VersionsFile)
	if err != nil {
		return nil, err
	}

	build, err := buildconf.Resolve(resolvedOpts.Options, table)
	if err != nil {
		return nil, err
	}

	// Listing a repository needs no credentials; the Gradle fragment reads them
	// at build time. Only repositories requested on the command line are checked.
	repos, err := repository.List(append(append([]string{}, resolvedOpts.Repositories...), flags.Repositories...))
	if err != nil {
		return nil, err
	}
	var requested []repository.Authenticated
	if len(flags.Repositories) > 0 {
		lookup, err := RepositoryLookup(cfg)
		if err != nil {
			return nil, err
		}
		requested, err = repository.Resolve(flags.Repositories, lookup)
		if err != nil {
			return nil, err
		}
	}

	projLog := output.ProjectLogger(resolvedOpts.Name)
	projLog.Debug("resolved",
		"mode", build.Mode,
		"dependencies", len(build.Dependencies),
		"flags", len(build.CompilerFlags),
		"repositories", len(repos),
		"requested", len(requested),
	)

	return &Project{
		Config:       projectCfg,
		Options:      resolvedOpts,
		Table:        table,
		Build:        build,
		Repositories: repos,
		Requested:    requested,
		Document:     emit.NewDocument(resolvedOpts.Name, table, build, repos),
	}, nil
}

package buildconf

import (
	"fmt"
	"path/filepath"
	"strings"

	oerrors "github.com/bitfist/jcefbuild/internal/errors"
	"github.com/bitfist/jcefbuild/internal/versions"
)

// ErrMissingOutputPath is returned when Options.OutputPath is empty.
var ErrMissingOutputPath = fmt.Errorf("typescript output path is not set: %w", oerrors.ErrValidation)

// Resolve maps opts and the version table onto a build configuration.
//
// All preconditions are checked before anything is computed, so a failed
// resolution never exposes a partial flag set.
func Resolve(opts Options, table *versions.Table) (*Resolved, error) {
	if err := checkTable(table); err != nil {
		return nil, err
	}
	if err := Validate(opts); err != nil {
		return nil, err
	}

	outputPath, err := absoluteOutputPath(opts)
	if err != nil {
		return nil, err
	}

	r := &Resolved{
		Mode:       opts.Mode.String(),
		Plugins:    []string{PluginJava, PluginSpringBoot, PluginDependencyManagement},
		BOMImports: []string{GroupSpringBoot + ":" + ArtifactDependenciesBOM + ":" + table.SpringBoot},
		Encoding:   SourceEncoding,
		Tasks:      []string{TaskBootBuildInfo},

		// Empty rather than nil so serialized output is stable across modes.
		RuntimeArguments: []RuntimeArgument{},
	}

	r.Dependencies = []Dependency{
		{Scope: ScopeImplementation, Group: GroupBitfist, Artifact: ArtifactStarter, Version: table.Jcef},
		{Scope: ScopeAnnotationProcessor, Group: GroupBitfist, Artifact: ArtifactStarter, Version: table.Jcef},
		{Scope: ScopeAnnotationProcessor, Group: GroupSpringBoot, Artifact: ArtifactAutoconfigureProcessor, Version: table.SpringBoot},
	}

	flags := newFlagSet()

	switch opts.Mode {
	case ModeDevelopment:
		r.Dependencies = append(r.Dependencies, Dependency{
			Scope:    ScopeImplementation,
			Group:    GroupSpringBoot,
			Artifact: ArtifactStarterWeb,
		})
		flags.add(FlagServiceType, ServiceTypeWeb)
		for _, f := range opts.endpoint().flags() {
			flags.add(f.Key, f.Value)
		}
		if opts.WebCommunicationEnabled() {
			flags.add(FlagWebCommunicationEnabled, "true")
			r.RuntimeArguments = append(r.RuntimeArguments,
				RuntimeArgument{Key: ArgWebCommunicationEnabled, Value: "true"},
				RuntimeArgument{Key: ArgFrontendURI, Value: opts.WebCommunication.frontend()},
			)
		}
	default:
		flags.add(FlagServiceType, ServiceTypeQuery)
	}

	flags.add(FlagParameters, "")
	flags.add(FlagOutputPath, outputPath)

	if flags.err != nil {
		return nil, flags.err
	}
	r.CompilerFlags = flags.list
	return r, nil
}

// Validate checks opts without resolving them.
func Validate(opts Options) error {
	if strings.TrimSpace(opts.OutputPath) == "" {
		return &oerrors.DetailError{
			Type:    "validation failed",
			Message: "typescript output path is not set",
			Field:   "typescriptOutputPath",
			Hint:    "Set typescriptOutputPath in jcef.yaml or pass --output-path",
			Cause:   ErrMissingOutputPath,
		}
	}

	switch opts.Mode {
	case ModeProduction:
		if opts.WebCommunicationEnabled() {
			return optionError("webCommunication.enabled",
				"web communication requires development mode",
				"Set developmentMode: true or disable webCommunication")
		}
	case ModeDevelopment:
		if err := opts.endpoint().validate(); err != nil {
			return err
		}
		if opts.WebCommunicationEnabled() {
			if err := validateAbsoluteURI("webCommunication.frontendUri", opts.WebCommunication.frontend()); err != nil {
				return err
			}
		}
	default:
		return optionError("developmentMode", fmt.Sprintf("unknown %s", opts.Mode), "")
	}
	return nil
}

func checkTable(table *versions.Table) error {
	if table == nil {
		return oerrors.NewPackagingError("version table was not loaded", "")
	}
	for _, key := range []string{versions.KeySpringBoot, versions.KeyJcef} {
		if _, ok := table.Get(key); !ok {
			return oerrors.NewPackagingError(
				fmt.Sprintf("property '%s' is empty in %s", key, versions.ResourceName), key)
		}
	}
	return nil
}

func absoluteOutputPath(opts Options) (string, error) {
	p := strings.TrimSpace(opts.OutputPath)
	if filepath.IsAbs(p) {
		return filepath.Clean(p), nil
	}
	if opts.ProjectDir != "" {
		p = filepath.Join(opts.ProjectDir, p)
	}
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", fmt.Errorf("resolving output path %q: %w", opts.OutputPath, err)
	}
	return abs, nil
}

func optionError(field, message, hint string) error {
	return oerrors.NewValidationError(message, "", field, hint)
}

// flagSet collects compiler flags in insertion order and rejects duplicate keys.
type flagSet struct {
	list []CompilerFlag
	seen map[string]struct{}
	err  error
}

func newFlagSet() *flagSet {
	return &flagSet{seen: make(map[string]struct{})}
}

func (s *flagSet) add(key, value string) {
	if s.err != nil {
		return
	}
	if _, dup := s.seen[key]; dup {
		s.err = fmt.Errorf("compiler flag %q emitted twice", key)
		return
	}
	s.seen[key] = struct{}{}
	s.list = append(s.list, CompilerFlag{Key: key, Value: value})
}

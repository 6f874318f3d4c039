package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/bitfist/jcefbuild/internal/buildconf"
	oerrors "github.com/bitfist/jcefbuild/internal/errors"
	"github.com/bitfist/jcefbuild/internal/output"
)

// ConfigSource indicates where a configuration value came from.
type ConfigSource string

const (
	// SourceFlag indicates value came from command-line flag.
	SourceFlag ConfigSource = "flag"
	// SourceEnv indicates value came from environment variable.
	SourceEnv ConfigSource = "env"
	// SourceConfig indicates value came from the project file.
	SourceConfig ConfigSource = "config"
	// SourceDefault indicates value is the built-in default.
	SourceDefault ConfigSource = "default"
)

// ResolvedValue is one option value together with its origin.
type ResolvedValue struct {
	Key    string
	Value  string
	Source ConfigSource
	// Shadowed contains values that were overridden by higher precedence.
	Shadowed map[ConfigSource]string
}

// ResolveProjectFileOptions contains options for project file resolution.
type ResolveProjectFileOptions struct {
	// FlagValue is the --project-file flag value (empty if not set).
	FlagValue string
	// ProjectDir is the project directory used for the default path.
	ProjectDir string
}

// ResolveProjectFileResult contains the resolved project file and its source.
type ResolveProjectFileResult struct {
	// ProjectFile is the resolved project file path.
	ProjectFile string
	// Source indicates where the path came from.
	Source ConfigSource
	// Shadowed contains values that were overridden by higher precedence.
	Shadowed map[ConfigSource]string
}

// ResolveProjectFile resolves the project file path using precedence:
// (1) --project-file flag, (2) JCEF_PROJECT_FILE env, (3) <project dir>/jcef.yaml
func ResolveProjectFile(opts ResolveProjectFileOptions) (ResolveProjectFileResult, error) {
	result := ResolveProjectFileResult{
		Shadowed: make(map[ConfigSource]string),
	}

	envValue := os.Getenv("JCEF_PROJECT_FILE")

	paths, err := ProjectPaths(opts.ProjectDir)
	if err != nil {
		return result, err
	}
	defaultPath := paths.ProjectFile

	if opts.FlagValue != "" {
		result.ProjectFile = opts.FlagValue
		result.Source = SourceFlag
		if envValue != "" {
			result.Shadowed[SourceEnv] = envValue
		}
		result.Shadowed[SourceDefault] = defaultPath
	} else if envValue != "" {
		result.ProjectFile = envValue
		result.Source = SourceEnv
		result.Shadowed[SourceDefault] = defaultPath
	} else {
		result.ProjectFile = defaultPath
		result.Source = SourceDefault
	}

	return result, nil
}

// ResolveOptionsInput holds every layer that feeds option resolution.
type ResolveOptionsInput struct {
	// ProjectDir anchors relative output paths.
	ProjectDir string

	// ProjectFile is the file the config came from, for error locations.
	ProjectFile string

	// Flags holds explicitly set command-line values keyed by option key.
	Flags map[string]string

	// Config is the loaded project file. May be nil.
	Config *ProjectConfig

	// Loader answers which keys were present in the file and in the environment.
	Loader *Loader
}

// ResolvedOptions is the settled option set of one project.
type ResolvedOptions struct {
	// Values lists every option in a fixed order.
	Values []ResolvedValue

	// Options is the input for buildconf.Resolve.
	Options buildconf.Options

	// Repositories are the GitHub Packages repositories from the project file.
	Repositories []string

	// Name labels the project in log output.
	Name string
}

// Value returns the resolved value for key.
func (r *ResolvedOptions) Value(key string) ResolvedValue {
	for _, v := range r.Values {
		if v.Key == key {
			return v
		}
	}
	return ResolvedValue{Key: key}
}

// optionKeys fixes the resolution and logging order.
var optionKeys = []string{
	KeyOutputPath,
	KeyDevelopmentMode,
	KeyHost,
	KeyPort,
	KeyURI,
	KeyWebCommunication,
	KeyFrontendURI,
}

// ResolveOptions resolves every option using precedence flag > env > config > default
// and converts the result into buildconf.Options.
func ResolveOptions(in ResolveOptionsInput) (*ResolvedOptions, error) {
	cfg := in.Config
	if cfg == nil {
		cfg = &ProjectConfig{}
	}

	fileValues := map[string]string{
		KeyOutputPath:       cfg.TypescriptOutputPath,
		KeyDevelopmentMode:  strconv.FormatBool(cfg.DevelopmentMode),
		KeyHost:             cfg.Development.Host,
		KeyPort:             portString(cfg.Development.Port),
		KeyURI:              cfg.Development.URI,
		KeyWebCommunication: strconv.FormatBool(cfg.WebCommunication.Enabled),
		KeyFrontendURI:      cfg.WebCommunication.FrontendURI,
	}
	defaults := map[string]string{
		KeyDevelopmentMode:  "false",
		KeyHost:             buildconf.DefaultHost,
		KeyPort:             strconv.Itoa(buildconf.DefaultPort),
		KeyWebCommunication: "false",
		KeyFrontendURI:      buildconf.DefaultFrontendURI,
	}

	result := &ResolvedOptions{Repositories: cfg.Repositories, Name: cfg.Name}
	for _, key := range optionKeys {
		rv := ResolvedValue{Key: key, Shadowed: make(map[ConfigSource]string)}

		candidates := []struct {
			source ConfigSource
			value  string
			ok     bool
		}{
			{SourceFlag, in.Flags[key], in.Flags[key] != ""},
			{SourceEnv, "", false},
			{SourceConfig, fileValues[key], fileValues[key] != "" && (in.Loader == nil || in.Loader.IsSetInFile(key))},
			{SourceDefault, defaults[key], defaults[key] != ""},
		}
		if in.Loader != nil {
			candidates[1].value, candidates[1].ok = in.Loader.Env(key)
		}

		for _, c := range candidates {
			if !c.ok {
				continue
			}
			if rv.Source == "" {
				rv.Value = c.value
				rv.Source = c.source
				continue
			}
			if c.source != SourceDefault {
				rv.Shadowed[c.source] = c.value
			}
		}
		result.Values = append(result.Values, rv)
	}

	if result.Name == "" {
		result.Name = filepath.Base(in.ProjectDir)
	}

	opts, err := toOptions(result, in)
	if err != nil {
		return nil, err
	}
	result.Options = opts
	return result, nil
}

func toOptions(r *ResolvedOptions, in ResolveOptionsInput) (buildconf.Options, error) {
	opts := buildconf.Options{
		ProjectDir: in.ProjectDir,
		OutputPath: r.Value(KeyOutputPath).Value,
	}

	dev, err := parseBool(r.Value(KeyDevelopmentMode), in.ProjectFile)
	if err != nil {
		return opts, err
	}
	if dev {
		opts.Mode = buildconf.ModeDevelopment
	}

	uri := r.Value(KeyURI)
	host := r.Value(KeyHost)
	port := r.Value(KeyPort)
	if uri.Source != "" {
		// Any explicitly set host or port conflicts, even one equal to its default.
		if host.Source != SourceDefault || port.Source != SourceDefault {
			return opts, oerrors.NewValidationError(
				"development.uri cannot be combined with development.host or development.port",
				in.ProjectFile, KeyURI,
				"Use either host/port or uri")
		}
		opts.Endpoint = buildconf.URI{Value: uri.Value}
	} else {
		p, err := strconv.Atoi(port.Value)
		if err != nil {
			return opts, oerrors.NewValidationError(
				fmt.Sprintf("development port %q is not a number (from %s)", port.Value, port.Source),
				in.ProjectFile, KeyPort, "")
		}
		opts.Endpoint = buildconf.HostPort{Host: host.Value, Port: p}
	}

	web, err := parseBool(r.Value(KeyWebCommunication), in.ProjectFile)
	if err != nil {
		return opts, err
	}
	opts.WebCommunication = buildconf.WebCommunication{
		Enabled:     web,
		FrontendURI: r.Value(KeyFrontendURI).Value,
	}
	if !web && r.Value(KeyFrontendURI).Source != SourceDefault {
		output.Warn("frontend URI is set but web communication is disabled",
			"source", r.Value(KeyFrontendURI).Source)
	}

	return opts, nil
}

func parseBool(v ResolvedValue, location string) (bool, error) {
	b, err := strconv.ParseBool(strings.TrimSpace(v.Value))
	if err != nil {
		return false, oerrors.NewValidationError(
			fmt.Sprintf("%s must be true or false, got %q (from %s)", v.Key, v.Value, v.Source),
			location, v.Key, "")
	}
	return b, nil
}

func portString(port int) string {
	if port == 0 {
		return ""
	}
	return strconv.Itoa(port)
}

// LogResolvedValues logs configuration resolution at DEBUG level.
func LogResolvedValues(values []ResolvedValue) {
	for _, v := range values {
		output.Debug("config value resolved",
			"key", v.Key,
			"value", v.Value,
			"source", v.Source,
		)
		for source, shadowed := range v.Shadowed {
			output.Debug("  shadowed by higher precedence",
				"key", v.Key,
				"shadowed_source", source,
				"shadowed_value", shadowed,
			)
		}
	}
}

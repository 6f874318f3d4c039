package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/viper"

	oerrors "github.com/bitfist/jcefbuild/internal/errors"
)

// Environment variable prefix for jcefbuild configuration.
const envPrefix = "JCEF"

// Option keys shared by the file, env and flag layers.
const (
	KeyOutputPath       = "typescriptOutputPath"
	KeyDevelopmentMode  = "developmentMode"
	KeyHost             = "development.host"
	KeyPort             = "development.port"
	KeyURI              = "development.uri"
	KeyWebCommunication = "webCommunication.enabled"
	KeyFrontendURI      = "webCommunication.frontendUri"
)

// envVars maps option keys to their environment variables.
var envVars = map[string]string{
	KeyOutputPath:       "JCEF_OUTPUT_PATH",
	KeyDevelopmentMode:  "JCEF_DEVELOPMENT_MODE",
	KeyHost:             "JCEF_DEVELOPMENT_HOST",
	KeyPort:             "JCEF_DEVELOPMENT_PORT",
	KeyURI:              "JCEF_DEVELOPMENT_URI",
	KeyWebCommunication: "JCEF_WEB_COMMUNICATION",
	KeyFrontendURI:      "JCEF_FRONTEND_URI",
}

// EnvVar returns the environment variable bound to key.
func EnvVar(key string) string {
	return envVars[key]
}

// Loader reads the project file and the JCEF_* environment.
// File and environment are kept in separate viper instances so the resolver
// can tell where each value came from.
type Loader struct {
	v   *viper.Viper
	env *viper.Viper
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	env := viper.New()
	env.SetEnvPrefix(envPrefix)
	env.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	for key, name := range envVars {
		_ = env.BindEnv(key, name)
	}

	return &Loader{v: viper.New(), env: env}
}

// Load reads the project file at path.
// A missing file is not an error: the returned config is empty and found is false.
func (l *Loader) Load(path string) (cfg *ProjectConfig, found bool, err error) {
	expandedPath, err := ExpandPath(path)
	if err != nil {
		return nil, false, fmt.Errorf("expanding project file path: %w", err)
	}

	l.v.SetConfigFile(expandedPath)
	l.v.SetConfigType("yaml")

	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
			return &ProjectConfig{}, false, nil
		}
		return nil, false, &oerrors.DetailError{
			Type:     "validation failed",
			Message:  "project file is not valid YAML",
			Location: expandedPath,
			Hint:     "Run 'jcefbuild config vet' for details",
			Cause:    fmt.Errorf("%w: %w", oerrors.ErrValidation, err),
		}
	}

	var c ProjectConfig
	if err := l.v.Unmarshal(&c); err != nil {
		return nil, true, &oerrors.DetailError{
			Type:     "validation failed",
			Message:  fmt.Sprintf("project file has a field of the wrong type: %v", err),
			Location: expandedPath,
			Cause:    oerrors.ErrValidation,
		}
	}

	return &c, true, nil
}

// IsSetInFile reports whether key was present in the loaded project file.
func (l *Loader) IsSetInFile(key string) bool {
	return l.v.InConfig(key)
}

// Env returns the environment value for key, if set and non-empty.
func (l *Loader) Env(key string) (string, bool) {
	if !l.env.IsSet(key) {
		return "", false
	}
	value := strings.TrimSpace(l.env.GetString(key))
	return value, value != ""
}

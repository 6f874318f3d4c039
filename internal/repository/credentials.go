package repository

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/magiconair/properties"

	oerrors "github.com/bitfist/jcefbuild/internal/errors"
	"github.com/bitfist/jcefbuild/internal/output"
)

// Credential names. Project properties win over environment variables.
const (
	PropertyUser = "GPR_USER"
	PropertyKey  = "GPR_KEY"
	EnvActor     = "GITHUB_ACTOR"
	EnvToken     = "GITHUB_TOKEN"
)

const redacted = "********"

// Secret is a credential value that never renders in clear text.
type Secret string

// String implements fmt.Stringer.
func (s Secret) String() string {
	if s == "" {
		return ""
	}
	return redacted
}

// GoString implements fmt.GoStringer.
func (s Secret) GoString() string {
	return fmt.Sprintf("repository.Secret(%q)", s.String())
}

// MarshalText implements encoding.TextMarshaler for yaml and json output.
func (s Secret) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Reveal returns the clear text value.
func (s Secret) Reveal() string {
	return string(s)
}

// Credentials authenticate against a GitHub Packages repository.
type Credentials struct {
	Username string `json:"username" yaml:"username"`
	Password Secret `json:"password" yaml:"password"`

	// UsernameSource and PasswordSource name where each value was found.
	UsernameSource string `json:"usernameSource" yaml:"usernameSource"`
	PasswordSource string `json:"passwordSource" yaml:"passwordSource"`
}

// LookupPaths are the files credentials are read from. Empty paths are skipped.
type LookupPaths struct {
	// ProjectProperties is <project>/gradle.properties.
	ProjectProperties string

	// UserProperties is ~/.gradle/gradle.properties.
	UserProperties string

	// EnvFile is <project>/.env.
	EnvFile string
}

type propertyFile struct {
	path  string
	props *properties.Properties
}

// Lookup finds credential values in gradle.properties files, the process
// environment and a .env file, in that order.
type Lookup struct {
	files  []propertyFile
	dotenv map[string]string
}

// NewLookup reads every existing file in paths. Missing files are skipped.
func NewLookup(paths LookupPaths) (*Lookup, error) {
	l := &Lookup{dotenv: map[string]string{}}

	loader := &properties.Loader{Encoding: properties.ISO_8859_1, DisableExpansion: true}
	for _, path := range []string{paths.ProjectProperties, paths.UserProperties} {
		if path == "" {
			continue
		}
		props, err := loader.LoadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			output.Debug("gradle properties not found", "path", path)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		l.files = append(l.files, propertyFile{path: path, props: props})
	}

	if paths.EnvFile != "" {
		env, err := godotenv.Read(paths.EnvFile)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			output.Debug("env file not found", "path", paths.EnvFile)
		case err != nil:
			return nil, fmt.Errorf("reading %s: %w", paths.EnvFile, err)
		default:
			l.dotenv = env
		}
	}

	return l, nil
}

// Credentials returns the username and password for repository.
func (l *Lookup) Credentials(repository string) (Credentials, error) {
	var c Credentials
	var ok bool

	c.Username, c.UsernameSource, ok = l.find(PropertyUser, EnvActor)
	if !ok {
		return Credentials{}, missingCredential(repository, "username", PropertyUser, EnvActor)
	}

	var password string
	password, c.PasswordSource, ok = l.find(PropertyKey, EnvToken)
	if !ok {
		return Credentials{}, missingCredential(repository, "password", PropertyKey, EnvToken)
	}
	c.Password = Secret(password)

	output.Debug("repository credentials resolved",
		"repository", repository,
		"username_source", c.UsernameSource,
		"password_source", c.PasswordSource,
	)
	return c, nil
}

// find returns the first non-empty value of property, then env.
func (l *Lookup) find(property, env string) (value, source string, ok bool) {
	for _, f := range l.files {
		if v, found := f.props.Get(property); found && v != "" {
			return v, f.path, true
		}
	}
	if v, found := os.LookupEnv(env); found && v != "" {
		return v, "env:" + env, true
	}
	if v := l.dotenv[env]; v != "" {
		return v, ".env:" + env, true
	}
	return "", "", false
}

func missingCredential(repository, what, property, env string) error {
	return oerrors.NewCredentialsError(
		fmt.Sprintf("no %s for repository %s", what, repository),
		map[string]string{
			"repository": repository,
			"property":   property,
			"env":        env,
		},
		fmt.Sprintf("Set %s in gradle.properties or export %s", property, env),
	)
}

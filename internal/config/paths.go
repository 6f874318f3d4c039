package config

import (
	"os"
	"path/filepath"
)

// File names inside a project directory.
const (
	ProjectFileName      = "jcef.yaml"
	LockFileName         = "jcef.lock.yaml"
	EnvFileName          = ".env"
	GradlePropertiesName = "gradle.properties"
)

// Paths contains the standard filesystem paths of one project.
type Paths struct {
	// ProjectDir is the absolute project directory.
	ProjectDir string

	// ProjectFile is the default project file (<dir>/jcef.yaml).
	ProjectFile string

	// LockFile is the lock file (<dir>/jcef.lock.yaml).
	LockFile string

	// EnvFile is the optional dotenv file (<dir>/.env).
	EnvFile string

	// GradleProperties is the project gradle.properties.
	GradleProperties string
}

// ProjectPaths returns the paths for projectDir. An empty projectDir means the
// working directory.
func ProjectPaths(projectDir string) (*Paths, error) {
	if projectDir == "" {
		projectDir = "."
	}
	expanded, err := ExpandPath(projectDir)
	if err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(expanded)
	if err != nil {
		return nil, err
	}

	return &Paths{
		ProjectDir:       abs,
		ProjectFile:      filepath.Join(abs, ProjectFileName),
		LockFile:         filepath.Join(abs, LockFileName),
		EnvFile:          filepath.Join(abs, EnvFileName),
		GradleProperties: filepath.Join(abs, GradlePropertiesName),
	}, nil
}

// UserGradleProperties returns ~/.gradle/gradle.properties, honouring GRADLE_USER_HOME.
func UserGradleProperties() (string, error) {
	if home := os.Getenv("GRADLE_USER_HOME"); home != "" {
		return filepath.Join(home, GradlePropertiesName), nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".gradle", GradlePropertiesName), nil
}

// ExpandPath expands ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if len(path) == 0 {
		return path, nil
	}

	if path[0] != '~' {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	if len(path) == 1 {
		return homeDir, nil
	}

	// Handle ~/path/to/something
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:]), nil
	}

	// Handle ~username (not supported, return as-is)
	return path, nil
}

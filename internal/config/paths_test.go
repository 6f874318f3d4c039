package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPath(t *testing.T) {
	homeDir, err := os.UserHomeDir()
	require.NoError(t, err, "should get home directory")

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "empty string", input: "", expected: ""},
		{name: "no tilde", input: "/absolute/path", expected: "/absolute/path"},
		{name: "relative path without tilde", input: "relative/path", expected: "relative/path"},
		{name: "tilde only", input: "~", expected: homeDir},
		{name: "tilde with slash", input: "~/projects/app", expected: filepath.Join(homeDir, "projects", "app")},
		{name: "tilde username pattern (not expanded)", input: "~username/file", expected: "~username/file"},
		{name: "tilde in middle (not expanded)", input: "/path/~/file", expected: "/path/~/file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ExpandPath(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestProjectPaths(t *testing.T) {
	dir := t.TempDir()

	paths, err := ProjectPaths(dir)
	require.NoError(t, err)

	assert.Equal(t, dir, paths.ProjectDir)
	assert.Equal(t, filepath.Join(dir, "jcef.yaml"), paths.ProjectFile)
	assert.Equal(t, filepath.Join(dir, "jcef.lock.yaml"), paths.LockFile)
	assert.Equal(t, filepath.Join(dir, ".env"), paths.EnvFile)
	assert.Equal(t, filepath.Join(dir, "gradle.properties"), paths.GradleProperties)
}

func TestProjectPaths_DefaultsToWorkingDir(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)

	paths, err := ProjectPaths("")
	require.NoError(t, err)
	assert.Equal(t, wd, paths.ProjectDir)
}

func TestUserGradleProperties(t *testing.T) {
	t.Setenv("GRADLE_USER_HOME", "/opt/gradle-home")

	path, err := UserGradleProperties()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/opt/gradle-home", "gradle.properties"), path)
}

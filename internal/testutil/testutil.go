// Package testutil provides test helpers for CLI tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// envVars lists every environment variable jcefbuild reads.
var envVars = []string{
	"JCEF_PROJECT_FILE",
	"JCEF_OUTPUT_PATH",
	"JCEF_DEVELOPMENT_MODE",
	"JCEF_DEVELOPMENT_HOST",
	"JCEF_DEVELOPMENT_PORT",
	"JCEF_DEVELOPMENT_URI",
	"JCEF_WEB_COMMUNICATION",
	"JCEF_FRONTEND_URI",
	"GITHUB_ACTOR",
	"GITHUB_TOKEN",
}

// IsolateEnv blanks every variable jcefbuild reads and points
// GRADLE_USER_HOME at an empty directory, so the developer's machine cannot
// leak into a test.
func IsolateEnv(t *testing.T) {
	t.Helper()
	for _, name := range envVars {
		t.Setenv(name, "")
	}
	t.Setenv("GRADLE_USER_HOME", t.TempDir())
}

// WriteFile creates a file with the given content in the specified directory.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create parent dirs for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write file %s: %v", path, err)
	}
	return path
}

// ProjectDir creates a project directory. A non-empty projectFile is written
// as its jcef.yaml.
func ProjectDir(t *testing.T, projectFile string) string {
	t.Helper()
	dir := t.TempDir()
	if projectFile != "" {
		WriteFile(t, dir, "jcef.yaml", projectFile)
	}
	return dir
}

package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/bitfist/jcefbuild/internal/errors"
)

func TestResolve_ProductionArgs(t *testing.T) {
	isolateEnv(t)
	dir := newProject(t, "typescriptOutputPath: ts\n")

	out, err := execute(t, "-C", dir, "resolve", "-o", "args")
	require.NoError(t, err)
	assert.Equal(t,
		"-Ajcef.output.service.type=query\n-parameters\n-Ajcef.output.path="+filepath.Join(dir, "ts")+"\n",
		out)
}

func TestResolve_DevelopmentFlags(t *testing.T) {
	isolateEnv(t)
	dir := newProject(t, "typescriptOutputPath: ts\n")

	out, err := execute(t, "-C", dir, "resolve", "-o", "args",
		"--dev", "--uri", "http://backend:9000", "--web-communication")
	require.NoError(t, err)
	assert.Contains(t, out, "-Ajcef.output.service.type=web\n")
	assert.Contains(t, out, "-Ajcef.output.web.uri=http://backend:9000\n")
	assert.Contains(t, out, "-Ajcef.web.communication.enabled=true\n")
	assert.NotContains(t, out, "jcef.output.web.port")
}

func TestResolve_EnvOverridesFile(t *testing.T) {
	isolateEnv(t)
	dir := newProject(t, "typescriptOutputPath: from-file\n")
	t.Setenv("JCEF_OUTPUT_PATH", "/abs/from-env")

	out, err := execute(t, "-C", dir, "resolve", "-o", "json")
	require.NoError(t, err)

	var doc struct {
		Build struct {
			CompilerFlags []struct {
				Key   string `json:"key"`
				Value string `json:"value"`
			} `json:"compilerFlags"`
		} `json:"build"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	flags := doc.Build.CompilerFlags
	require.NotEmpty(t, flags)
	last := flags[len(flags)-1]
	assert.Equal(t, "jcef.output.path", last.Key)
	assert.Equal(t, "/abs/from-env", last.Value)
}

func TestResolve_ProjectFileFromEnv(t *testing.T) {
	isolateEnv(t)
	dir := newProject(t, "")
	other := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(other, []byte("name: custom\ntypescriptOutputPath: /abs/ts\n"), 0o644))
	t.Setenv("JCEF_PROJECT_FILE", other)

	out, err := execute(t, "-C", dir, "resolve", "-o", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "project: custom")
}

func TestResolve_Errors(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		args     []string
		exitCode int
	}{
		{
			name:     "missing output path",
			args:     []string{"resolve"},
			exitCode: oerrors.ExitValidationError,
		},
		{
			name:     "invalid format",
			content:  "typescriptOutputPath: ts\n",
			args:     []string{"resolve", "-o", "xml"},
			exitCode: oerrors.ExitValidationError,
		},
		{
			name:     "web communication in production",
			content:  "typescriptOutputPath: ts\n",
			args:     []string{"resolve", "--web-communication"},
			exitCode: oerrors.ExitValidationError,
		},
		{
			name:     "port out of range",
			content:  "typescriptOutputPath: ts\n",
			args:     []string{"resolve", "--dev", "--port", "70000"},
			exitCode: oerrors.ExitValidationError,
		},
		{
			name:     "explicit project file missing",
			args:     []string{"resolve", "--project-file", "does-not-exist.yaml"},
			exitCode: oerrors.ExitNotFound,
		},
		{
			name:     "repository without credentials",
			content:  "typescriptOutputPath: ts\n",
			args:     []string{"resolve", "--repository", "bitfist/jcef"},
			exitCode: oerrors.ExitCredentialsError,
		},
		{
			name:     "broken versions file",
			content:  "typescriptOutputPath: ts\n",
			args:     []string{"resolve", "--versions-file", "missing.properties"},
			exitCode: oerrors.ExitNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolateEnv(t)
			dir := newProject(t, tt.content)

			_, err := execute(t, append([]string{"-C", dir}, tt.args...)...)
			require.Error(t, err)
			assert.Equal(t, tt.exitCode, oerrors.ExitCodeFromError(err))
		})
	}
}

func TestResolve_FileRepositoriesWithoutCredentials(t *testing.T) {
	isolateEnv(t)
	dir := newProject(t, "typescriptOutputPath: ts\nrepositories:\n  - bitfist/jcef-spring-boot-starter\n")

	out, err := execute(t, "-C", dir, "resolve", "-o", "args")
	require.NoError(t, err)
	assert.Contains(t, out, "-parameters")

	out, err = execute(t, "-C", dir, "resolve", "-o", "gradle")
	require.NoError(t, err)
	assert.Contains(t, out, `url = uri("https://maven.pkg.github.com/bitfist/jcef-spring-boot-starter")`)
}

func TestResolve_RequestedRepositoryWithCredentials(t *testing.T) {
	isolateEnv(t)
	dir := newProject(t, "typescriptOutputPath: ts\n")

	_, err := execute(t, "-C", dir, "resolve", "--repository", "bitfist/jcef-spring-boot-starter")
	require.Error(t, err)
	assert.Equal(t, oerrors.ExitCredentialsError, oerrors.ExitCodeFromError(err))

	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"),
		[]byte("GITHUB_ACTOR=octocat\nGITHUB_TOKEN=ghp_secret\n"), 0o600))

	out, err := execute(t, "-C", dir, "resolve", "-o", "gradle", "--repository", "bitfist/jcef-spring-boot-starter")
	require.NoError(t, err)
	assert.Contains(t, out, `url = uri("https://maven.pkg.github.com/bitfist/jcef-spring-boot-starter")`)
	assert.NotContains(t, out, "ghp_secret")
}

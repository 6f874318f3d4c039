package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	oerrors "github.com/bitfist/jcefbuild/internal/errors"
	"github.com/bitfist/jcefbuild/internal/testutil"
)

func clearCredentialEnv(t *testing.T) {
	t.Helper()
	t.Setenv(EnvActor, "")
	t.Setenv(EnvToken, "")
}

func TestGitHub(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		url     string
		wantErr bool
	}{
		{name: "owner and repo", input: "bitfist/jcef", url: "https://maven.pkg.github.com/bitfist/jcef"},
		{name: "surrounding spaces", input: " bitfist/jcef ", url: "https://maven.pkg.github.com/bitfist/jcef"},
		{name: "missing owner", input: "jcef", wantErr: true},
		{name: "too many parts", input: "a/b/c", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, err := GitHub(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, oerrors.ErrValidation))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.url, repo.URL)
		})
	}
}

func TestLookup_Precedence(t *testing.T) {
	clearCredentialEnv(t)
	dir := t.TempDir()

	project := testutil.WriteFile(t, dir, "project.properties", "GPR_USER=project-user\n")
	user := testutil.WriteFile(t, dir, "user.properties", "GPR_USER=home-user\nGPR_KEY=home-key\n")
	t.Setenv(EnvToken, "env-token")

	lookup, err := NewLookup(LookupPaths{ProjectProperties: project, UserProperties: user})
	require.NoError(t, err)

	creds, err := lookup.Credentials("bitfist/jcef")
	require.NoError(t, err)
	assert.Equal(t, "project-user", creds.Username)
	assert.Equal(t, project, creds.UsernameSource)
	assert.Equal(t, "home-key", creds.Password.Reveal(), "property wins over env")
	assert.Equal(t, user, creds.PasswordSource)
}

func TestLookup_EnvFallback(t *testing.T) {
	clearCredentialEnv(t)
	t.Setenv(EnvActor, "octocat")
	t.Setenv(EnvToken, "ghp_secret")

	lookup, err := NewLookup(LookupPaths{
		ProjectProperties: filepath.Join(t.TempDir(), "missing.properties"),
	})
	require.NoError(t, err)

	creds, err := lookup.Credentials("bitfist/jcef")
	require.NoError(t, err)
	assert.Equal(t, "octocat", creds.Username)
	assert.Equal(t, "env:GITHUB_ACTOR", creds.UsernameSource)
	assert.Equal(t, "ghp_secret", creds.Password.Reveal())
}

func TestLookup_DotenvDoesNotOverrideEnv(t *testing.T) {
	clearCredentialEnv(t)
	dir := t.TempDir()
	envFile := testutil.WriteFile(t, dir, ".env", "GITHUB_ACTOR=from-dotenv\nGITHUB_TOKEN=dotenv-token\n")
	t.Setenv(EnvActor, "from-env")

	lookup, err := NewLookup(LookupPaths{EnvFile: envFile})
	require.NoError(t, err)

	creds, err := lookup.Credentials("bitfist/jcef")
	require.NoError(t, err)
	assert.Equal(t, "from-env", creds.Username)
	assert.Equal(t, "dotenv-token", creds.Password.Reveal())
	assert.Equal(t, ".env:GITHUB_TOKEN", creds.PasswordSource)
}

func TestLookup_Missing(t *testing.T) {
	clearCredentialEnv(t)
	t.Setenv(EnvActor, "octocat")

	lookup, err := NewLookup(LookupPaths{})
	require.NoError(t, err)

	_, err = lookup.Credentials("bitfist/jcef")
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrCredentials))
	assert.Contains(t, err.Error(), EnvToken)
	assert.Contains(t, err.Error(), PropertyKey)
}

func TestList(t *testing.T) {
	clearCredentialEnv(t)

	repos, err := List([]string{"b/two", " a/one ", "b/two", ""})
	require.NoError(t, err)
	assert.Equal(t, []Repository{
		{Name: "a/one", URL: BaseURL + "a/one"},
		{Name: "b/two", URL: BaseURL + "b/two"},
	}, repos)

	repos, err = List(nil)
	require.NoError(t, err)
	assert.Nil(t, repos)

	_, err = List([]string{"not-a-repo"})
	assert.True(t, errors.Is(err, oerrors.ErrValidation))
}

func TestResolve(t *testing.T) {
	t.Run("no repositories needs no credentials", func(t *testing.T) {
		clearCredentialEnv(t)
		lookup, err := NewLookup(LookupPaths{})
		require.NoError(t, err)

		repos, err := Resolve([]string{"", " "}, lookup)
		require.NoError(t, err)
		assert.Empty(t, repos)
	})

	t.Run("sorted and unique", func(t *testing.T) {
		clearCredentialEnv(t)
		t.Setenv(EnvActor, "octocat")
		t.Setenv(EnvToken, "token")
		lookup, err := NewLookup(LookupPaths{})
		require.NoError(t, err)

		repos, err := Resolve([]string{"b/two", "a/one", "b/two"}, lookup)
		require.NoError(t, err)
		require.Len(t, repos, 2)
		assert.Equal(t, "a/one", repos[0].Name)
		assert.Equal(t, "b/two", repos[1].Name)
	})

	t.Run("missing credentials", func(t *testing.T) {
		clearCredentialEnv(t)
		lookup, err := NewLookup(LookupPaths{})
		require.NoError(t, err)

		_, err = Resolve([]string{"a/one"}, lookup)
		require.Error(t, err)
		assert.True(t, errors.Is(err, oerrors.ErrCredentials))
		assert.Contains(t, err.Error(), EnvActor)
	})
}

func TestSecret_Redacted(t *testing.T) {
	creds := Credentials{Username: "octocat", Password: Secret("ghp_secret")}

	assert.Equal(t, "********", creds.Password.String())
	assert.NotContains(t, fmt.Sprintf("%v", creds), "ghp_secret")
	assert.NotContains(t, fmt.Sprintf("%#v", creds), "ghp_secret")

	j, err := json.Marshal(creds)
	require.NoError(t, err)
	assert.NotContains(t, string(j), "ghp_secret")

	y, err := yaml.Marshal(creds)
	require.NoError(t, err)
	assert.NotContains(t, string(y), "ghp_secret")
	assert.Contains(t, string(y), redacted)

	assert.Equal(t, "", Secret("").String())
}

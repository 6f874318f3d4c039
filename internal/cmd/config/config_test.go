package config

import (
	"bytes"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitfist/jcefbuild/internal/cmdtypes"
	iconfig "github.com/bitfist/jcefbuild/internal/config"
	oerrors "github.com/bitfist/jcefbuild/internal/errors"
)

func globalConfig(t *testing.T) *cmdtypes.GlobalConfig {
	t.Helper()
	paths, err := iconfig.ProjectPaths(t.TempDir())
	require.NoError(t, err)
	return &cmdtypes.GlobalConfig{
		Paths:             paths,
		ProjectFile:       paths.ProjectFile,
		ProjectFileSource: iconfig.SourceDefault,
	}
}

func run(t *testing.T, cfg *cmdtypes.GlobalConfig, args ...string) (string, error) {
	t.Helper()
	c := NewConfigCmd(cfg)
	var out bytes.Buffer
	c.SetOut(&out)
	c.SetErr(&out)
	c.SetArgs(args)
	err := c.Execute()
	return out.String(), err
}

func TestConfigInit(t *testing.T) {
	cfg := globalConfig(t)

	out, err := run(t, cfg, "init")
	require.NoError(t, err)
	assert.Contains(t, out, cfg.ProjectFile)

	data, err := os.ReadFile(cfg.ProjectFile)
	require.NoError(t, err)
	assert.Equal(t, iconfig.DefaultProjectTemplate, string(data))

	info, err := os.Stat(cfg.ProjectFile)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())
}

func TestConfigInit_RefusesOverwrite(t *testing.T) {
	cfg := globalConfig(t)
	require.NoError(t, os.WriteFile(cfg.ProjectFile, []byte("name: mine\n"), 0o644))

	_, err := run(t, cfg, "init")
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrValidation))

	data, err := os.ReadFile(cfg.ProjectFile)
	require.NoError(t, err)
	assert.Equal(t, "name: mine\n", string(data))

	_, err = run(t, cfg, "init", "--force")
	require.NoError(t, err)
	data, err = os.ReadFile(cfg.ProjectFile)
	require.NoError(t, err)
	assert.Equal(t, iconfig.DefaultProjectTemplate, string(data))
}

func TestConfigVet(t *testing.T) {
	t.Run("default template is valid", func(t *testing.T) {
		cfg := globalConfig(t)
		_, err := run(t, cfg, "init")
		require.NoError(t, err)

		out, err := run(t, cfg, "vet")
		require.NoError(t, err)
		assert.Contains(t, out, "Project file is valid")
	})

	t.Run("missing file", func(t *testing.T) {
		cfg := globalConfig(t)
		_, err := run(t, cfg, "vet")
		require.Error(t, err)
		assert.Equal(t, oerrors.ExitNotFound, oerrors.ExitCodeFromError(err))
	})

	t.Run("schema violation", func(t *testing.T) {
		cfg := globalConfig(t)
		require.NoError(t, os.WriteFile(cfg.ProjectFile, []byte("typescriptOutputPath: ts\nunknown: true\n"), 0o644))

		_, err := run(t, cfg, "vet")
		require.Error(t, err)
		assert.Equal(t, oerrors.ExitValidationError, oerrors.ExitCodeFromError(err))

		var exitErr *oerrors.ExitError
		require.True(t, errors.As(err, &exitErr))
		assert.True(t, exitErr.Printed)
	})
}

package lock

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitfist/jcefbuild/internal/buildconf"
	"github.com/bitfist/jcefbuild/internal/emit"
	oerrors "github.com/bitfist/jcefbuild/internal/errors"
	"github.com/bitfist/jcefbuild/internal/output"
	"github.com/bitfist/jcefbuild/internal/repository"
	"github.com/bitfist/jcefbuild/internal/versions"
)

func document(t *testing.T, opts buildconf.Options, repos ...string) *emit.Document {
	t.Helper()
	table := &versions.Table{SpringBoot: "3.5.3", Jcef: "0.4.2"}
	build, err := buildconf.Resolve(opts, table)
	require.NoError(t, err)

	listed, err := repository.List(repos)
	require.NoError(t, err)
	return emit.NewDocument("demo", table, build, listed)
}

func TestWriteRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jcef.lock.yaml")
	doc := document(t, buildconf.Options{OutputPath: "/work/ts"}, "bitfist/jcef")

	changed, err := Write(path, doc)
	require.NoError(t, err)
	assert.True(t, changed)

	changed, err = Write(path, doc)
	require.NoError(t, err)
	assert.False(t, changed, "rewriting identical content is a no-op")

	raw, got, err := Read(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(raw), Header))
	assert.Equal(t, doc.Project, got.Project)
	assert.Equal(t, doc.Versions, got.Versions)
	assert.Equal(t, doc.Build.CompilerArgs(), got.Build.CompilerArgs())
	assert.Equal(t, doc.Repositories, got.Repositories)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())
}

func TestRead_Errors(t *testing.T) {
	dir := t.TempDir()

	_, _, err := Read(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrNotFound))

	broken := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(broken, []byte("build: [unclosed\n"), 0o644))
	_, _, err = Read(broken)
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrValidation))
}

func TestCompare(t *testing.T) {
	production := document(t, buildconf.Options{OutputPath: "/work/ts"})
	development := document(t, buildconf.Options{OutputPath: "/work/ts", Mode: buildconf.ModeDevelopment})
	withRepo := document(t, buildconf.Options{OutputPath: "/work/ts"}, "bitfist/jcef")

	marshal := func(doc *emit.Document) []byte {
		data, err := Marshal(doc)
		require.NoError(t, err)
		return data
	}

	t.Run("no drift", func(t *testing.T) {
		result, err := Compare(marshal(production), marshal(production), false)
		require.NoError(t, err)
		assert.False(t, result.HasChanges())
		assert.Equal(t, "No changes detected.", result.Render(output.PlainStyles()))
	})

	t.Run("comments are ignored", func(t *testing.T) {
		current := marshal(production)
		locked := append([]byte("# hand edited\n"), current...)
		result, err := Compare(locked, current, false)
		require.NoError(t, err)
		assert.False(t, result.HasChanges())
	})

	t.Run("modified build", func(t *testing.T) {
		result, err := Compare(marshal(production), marshal(development), false)
		require.NoError(t, err)
		require.True(t, result.HasChanges())
		require.Len(t, result.Modified, 1)
		assert.Equal(t, "build", result.Modified[0].Name)
		assert.NotEmpty(t, result.Modified[0].Diff)
		assert.Contains(t, result.Render(output.PlainStyles()), "1 modified")
	})

	t.Run("added and removed sections", func(t *testing.T) {
		result, err := Compare(marshal(production), marshal(withRepo), false)
		require.NoError(t, err)
		assert.Equal(t, []string{"repositories"}, result.Added)

		result, err = Compare(marshal(withRepo), marshal(production), false)
		require.NoError(t, err)
		assert.Equal(t, []string{"repositories"}, result.Removed)
	})

	t.Run("invalid lock", func(t *testing.T) {
		_, err := Compare([]byte("build: [unclosed\n"), marshal(production), false)
		assert.Error(t, err)
	})
}

package cmd

import (
	"bytes"
	"testing"

	"github.com/bitfist/jcefbuild/internal/testutil"
)

var (
	isolateEnv = testutil.IsolateEnv
	newProject = testutil.ProjectDir
)

// execute runs the root command and returns what it wrote to stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

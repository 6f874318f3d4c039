package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bitfist/jcefbuild/internal/cmdtypes"
	"github.com/bitfist/jcefbuild/internal/cmdutil"
	oerrors "github.com/bitfist/jcefbuild/internal/errors"
	"github.com/bitfist/jcefbuild/internal/lock"
	"github.com/bitfist/jcefbuild/internal/output"
)

// NewDiffCmd creates the diff command.
func NewDiffCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	var rf cmdutil.ResolveFlags

	c := &cobra.Command{
		Use:   "diff",
		Short: "Show differences between jcef.lock.yaml and a fresh resolution",
		Long: `Resolve the project and compare the result with jcef.lock.yaml.

Exit codes:
  0 - lock file is up to date
  2 - project options are invalid
  5 - lock file does not exist
  7 - lock file is out of date`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			return runDiff(c, cfg, &rf)
		},
	}

	rf.AddTo(c)

	return c
}

func runDiff(c *cobra.Command, cfg *cmdtypes.GlobalConfig, rf *cmdutil.ResolveFlags) error {
	project, err := cmdutil.ResolveProject(c, cfg, rf)
	if err != nil {
		return cmdutil.PrintError("resolution failed", err)
	}

	locked, lockedDoc, err := lock.Read(cfg.Paths.LockFile)
	if err != nil {
		return cmdutil.PrintError("reading lock file failed", err)
	}

	current, err := lock.Marshal(project.Document)
	if err != nil {
		return cmdutil.PrintError("rendering resolution failed", err)
	}

	result, err := lock.Compare(locked, current, output.IsTTY())
	if err != nil {
		return cmdutil.PrintError("comparing lock file failed", err)
	}

	out := c.OutOrStdout()
	if !result.HasChanges() {
		fmt.Fprintln(out, "No changes detected. Lock file is up to date.")
		return nil
	}

	if lockedDoc.Versions != project.Document.Versions {
		fmt.Fprintf(out, "Version table changed: jcef %s -> %s, springBoot %s -> %s\n\n",
			orNone(lockedDoc.Versions.Jcef), project.Document.Versions.Jcef,
			orNone(lockedDoc.Versions.SpringBoot), project.Document.Versions.SpringBoot)
	}
	fmt.Fprint(out, result.Render(output.GetStyles()))

	return &cmdtypes.ExitError{
		Code:    cmdtypes.ExitDrift,
		Err:     oerrors.Wrap(oerrors.ErrDrift, "lock file is out of date"),
		Printed: true,
	}
}

func orNone(v string) string {
	if v == "" {
		return "(none)"
	}
	return v
}

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/bitfist/jcefbuild/internal/cmdtypes"
	"github.com/bitfist/jcefbuild/internal/cmdutil"
	"github.com/bitfist/jcefbuild/internal/lock"
	"github.com/bitfist/jcefbuild/internal/output"
)

// NewLockCmd creates the lock command.
func NewLockCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	var rf cmdutil.ResolveFlags

	c := &cobra.Command{
		Use:   "lock",
		Short: "Write the resolved configuration to jcef.lock.yaml",
		Long: `Resolve the project and write the result to jcef.lock.yaml in the
project directory. Commit the lock file; 'jcefbuild diff' reports when a
later resolution no longer matches it.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			return runLock(c, cfg, &rf)
		},
	}

	rf.AddTo(c)

	return c
}

func runLock(c *cobra.Command, cfg *cmdtypes.GlobalConfig, rf *cmdutil.ResolveFlags) error {
	project, err := cmdutil.ResolveProject(c, cfg, rf)
	if err != nil {
		return cmdutil.PrintError("resolution failed", err)
	}

	changed, err := lock.Write(cfg.Paths.LockFile, project.Document)
	if err != nil {
		return cmdutil.PrintError("writing lock file failed", err)
	}

	projLog := output.ProjectLogger(project.Document.Project)
	if !changed {
		projLog.Info("lock file is up to date", "path", cfg.Paths.LockFile)
		return nil
	}
	projLog.Info(output.FormatCheckmark("lock file written"), "path", cfg.Paths.LockFile)
	return nil
}

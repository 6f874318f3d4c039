package repository

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bitfist/jcefbuild/internal/cmdtypes"
	"github.com/bitfist/jcefbuild/internal/cmdutil"
	"github.com/bitfist/jcefbuild/internal/output"
	"github.com/bitfist/jcefbuild/internal/repository"
)

// NewCheckCmd creates the repository check command.
func NewCheckCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "check [owner/name...]",
		Short: "Check that repository credentials resolve",
		Long: `Resolve the credentials of every repository listed in jcef.yaml and on the
command line. Passwords are never printed.

Credentials are looked up in this order:
  username: GPR_USER in <project>/gradle.properties, ~/.gradle/gradle.properties,
            then GITHUB_ACTOR in the environment or .env
  password: GPR_KEY in <project>/gradle.properties, ~/.gradle/gradle.properties,
            then GITHUB_TOKEN in the environment or .env

Exit codes:
  0 - all credentials resolved
  8 - a credential is missing`,
		RunE: func(c *cobra.Command, args []string) error {
			return runCheck(c, cfg, args)
		},
	}
}

func runCheck(c *cobra.Command, cfg *cmdtypes.GlobalConfig, args []string) error {
	_, projectCfg, err := cmdutil.LoadProjectConfig(cfg)
	if err != nil {
		return cmdutil.PrintError("loading project file failed", err)
	}

	names := append(append([]string{}, projectCfg.Repositories...), args...)
	if len(names) == 0 {
		fmt.Fprintln(c.OutOrStdout(), "No repositories configured.")
		return nil
	}

	lookup, err := cmdutil.RepositoryLookup(cfg)
	if err != nil {
		return cmdutil.PrintError("reading credential sources failed", err)
	}

	repos, err := repository.Resolve(names, lookup)
	if err != nil {
		return cmdutil.PrintError("repository check failed", err)
	}

	t := output.NewTable("REPOSITORY", "URL", "USERNAME", "FROM", "PASSWORD", "FROM")
	for _, r := range repos {
		t.Row(r.Name, r.URL,
			r.Credentials.Username, r.Credentials.UsernameSource,
			r.Credentials.Password.String(), r.Credentials.PasswordSource)
	}
	fmt.Fprintln(c.OutOrStdout(), t.String())
	return nil
}

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bitfist/jcefbuild/internal/cmdtypes"
	"github.com/bitfist/jcefbuild/internal/cmdutil"
	"github.com/bitfist/jcefbuild/internal/emit"
	"github.com/bitfist/jcefbuild/internal/output"
)

// NewResolveCmd creates the resolve command.
func NewResolveCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	var rf cmdutil.ResolveFlags
	var of cmdutil.OutputFlags

	c := &cobra.Command{
		Use:   "resolve",
		Short: "Print the resolved build configuration",
		Long: `Resolve the project options into dependencies, compiler arguments and
launch arguments, and print them.

Option values are taken from, in order of precedence:
  command line flags > JCEF_* environment variables > jcef.yaml > defaults

Output formats:
  yaml    full configuration (default)
  json    full configuration
  table   human readable summary
  args    javac arguments, one per line
  gradle  Gradle Kotlin DSL fragment

Examples:
  # Production build arguments
  jcefbuild resolve -o args

  # Development build with a custom backend port
  jcefbuild resolve --dev --port 9090 -o table`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			return runResolve(c, cfg, &rf, &of)
		},
	}

	rf.AddTo(c)
	of.AddTo(c)

	return c
}

func runResolve(c *cobra.Command, cfg *cmdtypes.GlobalConfig, rf *cmdutil.ResolveFlags, of *cmdutil.OutputFlags) error {
	format, ok := output.ParseOutputFormat(of.Format)
	if !ok {
		return &cmdtypes.ExitError{
			Code: cmdtypes.ExitValidationError,
			Err: fmt.Errorf("invalid output format %q (valid: %s)",
				of.Format, strings.Join(output.ValidFormats(), ", ")),
		}
	}

	project, err := cmdutil.ResolveProject(c, cfg, rf)
	if err != nil {
		return cmdutil.PrintError("resolution failed", err)
	}

	return emit.Write(c.OutOrStdout(), format, project.Document)
}

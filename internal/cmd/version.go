package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bitfist/jcefbuild/internal/output"
	"github.com/bitfist/jcefbuild/internal/version"
	"github.com/bitfist/jcefbuild/internal/versions"
)

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Show jcefbuild version information.

Displays:
  - jcefbuild version, commit, and build date
  - CUE SDK version (embedded in CLI)
  - bundled jcef and Spring Boot versions`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			var jcef, springBoot string
			if table, err := versions.Load(); err != nil {
				output.Warn("bundled version table is broken", "error", err)
			} else {
				jcef, springBoot = table.Jcef, table.SpringBoot
			}
			_, err := fmt.Fprintln(c.OutOrStdout(), version.Get(jcef, springBoot).String())
			return err
		},
	}
}

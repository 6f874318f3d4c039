// Package repository provides CLI command implementations for the repository command group.
package repository

import (
	"github.com/spf13/cobra"

	"github.com/bitfist/jcefbuild/internal/cmdtypes"
)

// NewRepositoryCmd creates the repository command group.
func NewRepositoryCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	c := &cobra.Command{
		Use:   "repository",
		Short: "GitHub Packages repository management",
		Long:  `Inspect the GitHub Packages repositories a project reads from.`,
	}

	c.AddCommand(NewCheckCmd(cfg))

	return c
}

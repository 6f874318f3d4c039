package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/bitfist/jcefbuild/internal/cmdtypes"
	iconfig "github.com/bitfist/jcefbuild/internal/config"
	oerrors "github.com/bitfist/jcefbuild/internal/errors"
	"github.com/bitfist/jcefbuild/internal/output"
)

// NewConfigInitCmd creates the config init command.
func NewConfigInitCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Create a default jcef.yaml",
		Long: `Create a commented jcef.yaml with default values in the project directory,
or at the path given by --project-file.

Examples:
  # Initialize the current project
  jcefbuild config init

  # Overwrite an existing project file
  jcefbuild config init --force`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			return runConfigInit(c, cfg, force)
		},
	}

	c.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing project file")

	return c
}

func runConfigInit(c *cobra.Command, cfg *cmdtypes.GlobalConfig, force bool) error {
	path := cfg.ProjectFile

	if _, err := os.Stat(path); err == nil && !force {
		return &oerrors.DetailError{
			Type:     "validation failed",
			Message:  "project file already exists",
			Location: path,
			Hint:     "Use --force to overwrite the existing project file.",
			Cause:    oerrors.ErrValidation,
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating project directory: %w", err)
	}

	if err := os.WriteFile(path, []byte(iconfig.DefaultProjectTemplate), 0o644); err != nil {
		return fmt.Errorf("writing project file: %w", err)
	}

	output.Debug("project file written", "path", path, "force", force)
	fmt.Fprintf(c.OutOrStdout(), "Project file created: %s\n", path)
	fmt.Fprintln(c.OutOrStdout(), "Validate with: jcefbuild config vet")
	return nil
}

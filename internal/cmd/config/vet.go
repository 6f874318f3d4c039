package config

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bitfist/jcefbuild/internal/cmdtypes"
	"github.com/bitfist/jcefbuild/internal/cmdutil"
	iconfig "github.com/bitfist/jcefbuild/internal/config"
	"github.com/bitfist/jcefbuild/internal/output"
)

// NewConfigVetCmd creates the config vet command.
func NewConfigVetCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "vet",
		Short: "Validate the project file",
		Long: `Validate jcef.yaml against the project schema.

Checks performed:
  1. Project file exists at the resolved path
  2. Project file is valid YAML
  3. Only known fields are used and every value has the right type
  4. Addresses are absolute URIs and ports are in range
  5. development.uri is not combined with development.host or development.port

The project file path is resolved using precedence:
  --project-file flag > JCEF_PROJECT_FILE env > <project-dir>/jcef.yaml`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			return runConfigVet(c, cfg)
		},
	}
}

func runConfigVet(c *cobra.Command, cfg *cmdtypes.GlobalConfig) error {
	output.Debug("validating project file",
		"path", cfg.ProjectFile,
		"source", cfg.ProjectFileSource,
	)

	validator, err := iconfig.NewValidator()
	if err != nil {
		return err
	}

	if err := validator.ValidateFile(cfg.ProjectFile); err != nil {
		return cmdutil.PrintError("project file is invalid", err)
	}

	_, projectCfg, err := cmdutil.LoadProjectConfig(cfg)
	if err != nil {
		return cmdutil.PrintError("project file is invalid", err)
	}
	if projectCfg.TypescriptOutputPath == "" {
		output.Warn("typescriptOutputPath is not set; pass --output-path or set "+iconfig.EnvVar(iconfig.KeyOutputPath),
			"path", cfg.ProjectFile)
	}

	fmt.Fprintf(c.OutOrStdout(), "Project file is valid: %s\n", cfg.ProjectFile)
	return nil
}

// Package cmd provides CLI command implementations.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/bitfist/jcefbuild/internal/cmd/config"
	"github.com/bitfist/jcefbuild/internal/cmd/repository"
	"github.com/bitfist/jcefbuild/internal/cmdtypes"
	iconfig "github.com/bitfist/jcefbuild/internal/config"
	"github.com/bitfist/jcefbuild/internal/output"
)

// rootFlags holds the persistent flags of the root command.
type rootFlags struct {
	projectDir   string
	projectFile  string
	versionsFile string
	verbose      bool
	timestamps   bool
}

// NewRootCmd creates the root command for the jcefbuild CLI.
func NewRootCmd() *cobra.Command {
	flags := &rootFlags{}
	cfg := &cmdtypes.GlobalConfig{}

	rootCmd := &cobra.Command{
		Use:   "jcefbuild",
		Short: "Resolve JCEF Spring Boot build configuration",
		Long: `jcefbuild turns a project's JCEF options into the build configuration a
Gradle build has to apply: dependency coordinates, annotation processor
arguments, launch arguments and package repositories.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeGlobals(cmd, flags, cfg)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&flags.projectDir, "project-dir", "C", ".", "Project directory")
	rootCmd.PersistentFlags().StringVar(&flags.projectFile, "project-file", "", "Path to project file (env: JCEF_PROJECT_FILE, default: <project-dir>/jcef.yaml)")
	rootCmd.PersistentFlags().StringVar(&flags.versionsFile, "versions-file", "", "Use this versions.properties instead of the bundled table")
	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&flags.timestamps, "timestamps", true, "Show timestamps in log output")

	rootCmd.AddCommand(NewResolveCmd(cfg))
	rootCmd.AddCommand(NewLockCmd(cfg))
	rootCmd.AddCommand(NewDiffCmd(cfg))
	rootCmd.AddCommand(NewVersionsCmd(cfg))
	rootCmd.AddCommand(config.NewConfigCmd(cfg))
	rootCmd.AddCommand(repository.NewRepositoryCmd(cfg))
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// initializeGlobals sets up logging and resolves the project paths.
func initializeGlobals(cmd *cobra.Command, flags *rootFlags, cfg *cmdtypes.GlobalConfig) error {
	logCfg := output.LogConfig{Verbose: flags.verbose}
	if cmd.Flags().Changed("timestamps") {
		logCfg.Timestamps = output.BoolPtr(flags.timestamps)
	}
	output.SetupLogging(logCfg)

	paths, err := iconfig.ProjectPaths(flags.projectDir)
	if err != nil {
		return err
	}

	projectFile, err := iconfig.ResolveProjectFile(iconfig.ResolveProjectFileOptions{
		FlagValue:  flags.projectFile,
		ProjectDir: paths.ProjectDir,
	})
	if err != nil {
		return err
	}

	cfg.Paths = paths
	cfg.ProjectFile = projectFile.ProjectFile
	cfg.ProjectFileSource = projectFile.Source
	cfg.VersionsFile = flags.versionsFile
	cfg.Verbose = flags.verbose

	output.Debug("initializing CLI",
		"project_dir", paths.ProjectDir,
		"project_file", cfg.ProjectFile,
		"project_file_source", cfg.ProjectFileSource,
		"versions_file", cfg.VersionsFile,
	)
	for source, shadowed := range projectFile.Shadowed {
		output.Debug("  shadowed by higher precedence",
			"key", "projectFile",
			"shadowed_source", source,
			"shadowed_value", shadowed,
		)
	}

	return nil
}

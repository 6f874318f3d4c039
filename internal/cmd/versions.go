package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/bitfist/jcefbuild/internal/cmdtypes"
	"github.com/bitfist/jcefbuild/internal/cmdutil"
	oerrors "github.com/bitfist/jcefbuild/internal/errors"
	"github.com/bitfist/jcefbuild/internal/output"
	"github.com/bitfist/jcefbuild/internal/versions"
)

// NewVersionsCmd creates the versions command.
func NewVersionsCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	var format string

	c := &cobra.Command{
		Use:   "versions",
		Short: "Show the dependency version table",
		Long: `Show the dependency versions jcefbuild pins. The bundled table is used
unless --versions-file names another one.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			return runVersions(c.OutOrStdout(), cfg, format)
		},
	}

	c.Flags().StringVarP(&format, "output", "o", string(output.FormatTable), "Output format: table, yaml")

	return c
}

func runVersions(w io.Writer, cfg *cmdtypes.GlobalConfig, format string) error {
	table, err := cmdutil.LoadVersions(cfg.VersionsFile)
	if err != nil {
		return cmdutil.PrintError("loading version table failed", err)
	}

	f, _ := output.ParseOutputFormat(format)
	switch f {
	case output.FormatTable:
		t := output.NewTable("KEY", "VERSION").
			Row(versions.KeySpringBoot, table.SpringBoot).
			Row(versions.KeyJcef, table.Jcef)
		_, err = fmt.Fprintln(w, t.String())
		return err
	case output.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(table); err != nil {
			return err
		}
		return enc.Close()
	default:
		return &oerrors.ExitError{
			Code: oerrors.ExitValidationError,
			Err:  fmt.Errorf("invalid output format %q (valid: table, yaml)", format),
		}
	}
}

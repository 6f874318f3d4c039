// Package cmdutil provides shared command utilities.
// It centralizes flag group management, project resolution and error
// reporting for the resolve, lock, diff and repository commands.
package cmdutil

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/bitfist/jcefbuild/internal/config"
	"github.com/bitfist/jcefbuild/internal/output"
)

// ResolveFlags holds flags that override project options
// (resolve, lock, diff).
type ResolveFlags struct {
	OutputPath       string
	Dev              bool
	Host             string
	Port             int
	URI              string
	WebCommunication bool
	FrontendURI      string
	Repositories     []string
}

// AddTo registers the resolution flags on the given cobra command.
func (f *ResolveFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.OutputPath, "output-path", "",
		"TypeScript output path (env: JCEF_OUTPUT_PATH)")
	cmd.Flags().BoolVar(&f.Dev, "dev", false,
		"Resolve for development mode (env: JCEF_DEVELOPMENT_MODE)")
	cmd.Flags().StringVar(&f.Host, "host", "",
		"Development backend host (env: JCEF_DEVELOPMENT_HOST)")
	cmd.Flags().IntVar(&f.Port, "port", 0,
		"Development backend port (env: JCEF_DEVELOPMENT_PORT)")
	cmd.Flags().StringVar(&f.URI, "uri", "",
		"Development backend URI, instead of --host/--port (env: JCEF_DEVELOPMENT_URI)")
	cmd.Flags().BoolVar(&f.WebCommunication, "web-communication", false,
		"Enable frontend web communication (env: JCEF_WEB_COMMUNICATION)")
	cmd.Flags().StringVar(&f.FrontendURI, "frontend-uri", "",
		"Frontend URI for web communication (env: JCEF_FRONTEND_URI)")
	cmd.Flags().StringArrayVar(&f.Repositories, "repository", nil,
		"GitHub Packages repository owner/name (can be repeated)")
}

// Overrides returns the option values set explicitly on cmd, keyed by
// config option key. Flags left at their defaults are omitted.
func (f *ResolveFlags) Overrides(cmd *cobra.Command) map[string]string {
	overrides := make(map[string]string)
	set := func(flag, key, value string) {
		if cmd.Flags().Changed(flag) {
			overrides[key] = value
		}
	}

	set("output-path", config.KeyOutputPath, f.OutputPath)
	set("dev", config.KeyDevelopmentMode, strconv.FormatBool(f.Dev))
	set("host", config.KeyHost, f.Host)
	set("port", config.KeyPort, strconv.Itoa(f.Port))
	set("uri", config.KeyURI, f.URI)
	set("web-communication", config.KeyWebCommunication, strconv.FormatBool(f.WebCommunication))
	set("frontend-uri", config.KeyFrontendURI, f.FrontendURI)

	return overrides
}

// OutputFlags holds the output format flag (resolve).
type OutputFlags struct {
	Format string
}

// AddTo registers the output flags on the given cobra command.
func (f *OutputFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.Format, "output", "o", string(output.FormatYAML),
		"Output format: yaml, json, table, args, gradle")
}

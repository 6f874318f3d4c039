// Package version provides version information for the jcefbuild CLI.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Build-time variables set via ldflags.
var (
	// Version is the CLI version (set via ldflags).
	Version = "v0.0.0-dev"

	// GitCommit is the git commit hash.
	GitCommit = "unknown"

	// BuildDate is the build timestamp.
	BuildDate = "unknown"
)

const cueModulePath = "cuelang.org/go"

// Info contains version information.
type Info struct {
	// Version is the CLI version (set via ldflags).
	Version string `json:"version"`

	// GitCommit is the git commit hash.
	GitCommit string `json:"gitCommit"`

	// BuildDate is the build timestamp.
	BuildDate string `json:"buildDate"`

	// GoVersion is the Go version used to build.
	GoVersion string `json:"goVersion"`

	// CUESDKVersion is the CUE SDK used for project file validation.
	CUESDKVersion string `json:"cueSDKVersion"`

	// Jcef and SpringBoot are the versions in the bundled version table.
	Jcef       string `json:"jcef"`
	SpringBoot string `json:"springBoot"`
}

// Get returns the current version information. jcef and springBoot are the
// bundled table versions; pass empty strings when the table failed to load.
func Get(jcef, springBoot string) Info {
	return Info{
		Version:       Version,
		GitCommit:     GitCommit,
		BuildDate:     BuildDate,
		GoVersion:     runtime.Version(),
		CUESDKVersion: dependencyVersion(cueModulePath),
		Jcef:          orUnknown(jcef),
		SpringBoot:    orUnknown(springBoot),
	}
}

// String returns a human-readable version string.
func (i Info) String() string {
	return fmt.Sprintf("jcefbuild:\n  Version:  %s\n  Build ID: %s/%s\n  Go:       %s\n  CUE SDK:  %s\n\nBundled versions:\n  jcef:        %s\n  Spring Boot: %s",
		i.Version, i.BuildDate, i.GitCommit, i.GoVersion, i.CUESDKVersion, i.Jcef, i.SpringBoot)
}

// dependencyVersion returns the version of module path compiled into the binary.
func dependencyVersion(path string) string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}
	for _, dep := range info.Deps {
		if dep.Path != path {
			continue
		}
		if dep.Replace != nil {
			return dep.Replace.Version
		}
		return dep.Version
	}
	return "unknown"
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}

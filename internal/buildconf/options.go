// Package buildconf maps project options and the bundled version table onto the
// build configuration a host build tool has to apply: dependency coordinates,
// annotation processor flags and launch arguments.
//
// Resolution is a pure function of Options and versions.Table. It never touches
// the host build tool; adapters render the Resolved value for it.
package buildconf

import (
	"fmt"
	"strings"
)

// Mode selects the runtime shape of the generated integration code.
type Mode int

const (
	// ModeProduction generates direct query invocation. It is the zero value.
	ModeProduction Mode = iota

	// ModeDevelopment generates an HTTP reachable web backend.
	ModeDevelopment
)

// String returns the lower-case mode name.
func (m Mode) String() string {
	switch m {
	case ModeProduction:
		return "production"
	case ModeDevelopment:
		return "development"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Default web endpoint values.
const (
	DefaultHost        = "http://localhost"
	DefaultPort        = 8080
	DefaultBackendURI  = "http://localhost:8080"
	DefaultFrontendURI = "http://localhost:3000"
)

// WebCommunication configures the bidirectional channel between the generated
// backend and a separately served frontend.
type WebCommunication struct {
	// Enabled turns the channel on. It must be set explicitly.
	Enabled bool

	// FrontendURI is the frontend's address. Empty means DefaultFrontendURI.
	FrontendURI string
}

// frontend returns the configured frontend address or the default.
func (w WebCommunication) frontend() string {
	if strings.TrimSpace(w.FrontendURI) == "" {
		return DefaultFrontendURI
	}
	return strings.TrimSpace(w.FrontendURI)
}

// Options are the user declared settings of one project.
// They must be fully settled before Resolve is called.
type Options struct {
	// ProjectDir anchors a relative OutputPath.
	ProjectDir string

	// OutputPath is where the annotation processor writes generated TypeScript. Required.
	OutputPath string

	// Mode selects production or development output.
	Mode Mode

	// Endpoint is the development web backend address. Nil means the default
	// host and port. Ignored in production.
	Endpoint Endpoint

	// WebCommunication configures the frontend channel. Development only.
	WebCommunication WebCommunication
}

// WebCommunicationEnabled reports whether the frontend channel is on.
func (o Options) WebCommunicationEnabled() bool {
	return o.WebCommunication.Enabled
}

// endpoint returns the configured endpoint or the default one.
func (o Options) endpoint() Endpoint {
	if o.Endpoint == nil {
		return DefaultEndpoint()
	}
	return o.Endpoint
}

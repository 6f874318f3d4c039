// Package config loads and resolves the jcefbuild project configuration.
package config

// DevelopmentConfig holds the development backend address.
// Either Host/Port or URI may be set, not both.
type DevelopmentConfig struct {
	// Host is the backend host including scheme. Env: JCEF_DEVELOPMENT_HOST
	Host string `mapstructure:"host" yaml:"host,omitempty"`

	// Port is the backend port. Env: JCEF_DEVELOPMENT_PORT
	Port int `mapstructure:"port" yaml:"port,omitempty"`

	// URI is the backend address as one URI. Env: JCEF_DEVELOPMENT_URI
	URI string `mapstructure:"uri" yaml:"uri,omitempty"`
}

// WebCommunicationConfig holds the frontend channel settings.
type WebCommunicationConfig struct {
	// Enabled turns the channel on. Env: JCEF_WEB_COMMUNICATION
	Enabled bool `mapstructure:"enabled" yaml:"enabled"`

	// FrontendURI is the frontend address. Env: JCEF_FRONTEND_URI
	FrontendURI string `mapstructure:"frontendUri" yaml:"frontendUri,omitempty"`
}

// ProjectConfig is the content of a project's jcef.yaml.
type ProjectConfig struct {
	// Name labels log output. Default: the project directory name.
	Name string `mapstructure:"name" yaml:"name,omitempty"`

	// TypescriptOutputPath is where generated TypeScript is written.
	// Relative paths are resolved against the project directory.
	// Env: JCEF_OUTPUT_PATH
	TypescriptOutputPath string `mapstructure:"typescriptOutputPath" yaml:"typescriptOutputPath"`

	// DevelopmentMode switches to the web service type. Env: JCEF_DEVELOPMENT_MODE
	DevelopmentMode bool `mapstructure:"developmentMode" yaml:"developmentMode"`

	// Development holds the development backend address.
	Development DevelopmentConfig `mapstructure:"development" yaml:"development,omitempty"`

	// WebCommunication holds the frontend channel settings.
	WebCommunication WebCommunicationConfig `mapstructure:"webCommunication" yaml:"webCommunication,omitempty"`

	// Repositories lists GitHub Packages repositories as owner/name.
	Repositories []string `mapstructure:"repositories" yaml:"repositories,omitempty"`
}

// DefaultProjectTemplate is written by `jcefbuild config init`.
const DefaultProjectTemplate = `# jcefbuild project configuration.
# Values can be overridden with JCEF_* environment variables and command line flags.

# Where the annotation processor writes generated TypeScript.
typescriptOutputPath: src/main/webapp

# false: generated code is invoked directly (service type "query").
# true:  generated code talks to an HTTP backend (service type "web").
developmentMode: false

# Development backend address. Use host/port or uri, not both.
development:
  host: http://localhost
  port: 8080
  # uri: http://localhost:8080

# Bidirectional channel to a separately served frontend (development only).
webCommunication:
  enabled: false
  # frontendUri: http://localhost:3000

# GitHub Packages repositories (owner/name) that need credentials.
# repositories:
#   - bitfist/jcef-spring-boot-starter
`

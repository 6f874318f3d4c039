package buildconf

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Endpoint is the development backend address. It is either a HostPort or a
// URI; both resolve to compiler flags. The interface is sealed.
type Endpoint interface {
	// String returns the address for logs and tables.
	String() string

	flags() []CompilerFlag
	validate() error
}

// HostPort addresses the backend as a host (including scheme) and a port.
type HostPort struct {
	Host string
	Port int
}

// DefaultEndpoint returns http://localhost on port 8080.
func DefaultEndpoint() Endpoint {
	return HostPort{Host: DefaultHost, Port: DefaultPort}
}

// String implements Endpoint.
func (h HostPort) String() string {
	return h.Host + ":" + strconv.Itoa(h.Port)
}

func (h HostPort) flags() []CompilerFlag {
	return []CompilerFlag{
		{Key: FlagWebHost, Value: h.Host},
		{Key: FlagWebPort, Value: strconv.Itoa(h.Port)},
	}
}

func (h HostPort) validate() error {
	if strings.TrimSpace(h.Host) == "" {
		return optionError("development.host", "development host must not be empty", "Set development.host, e.g. http://localhost")
	}
	if h.Port < 1 || h.Port > 65535 {
		return optionError("development.port",
			fmt.Sprintf("development port %d is outside 1-65535", h.Port),
			"Set development.port to a valid TCP port")
	}
	return nil
}

// URI addresses the backend as one absolute URI such as http://localhost:8080.
type URI struct {
	Value string
}

// String implements Endpoint.
func (u URI) String() string {
	return u.Value
}

func (u URI) flags() []CompilerFlag {
	return []CompilerFlag{{Key: FlagWebURI, Value: u.Value}}
}

func (u URI) validate() error {
	return validateAbsoluteURI("development.uri", u.Value)
}

func validateAbsoluteURI(field, raw string) error {
	parsed, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return optionError(field,
			fmt.Sprintf("%q is not an absolute URI", raw),
			"Use a value such as "+DefaultBackendURI)
	}
	return nil
}

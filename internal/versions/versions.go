// Package versions loads the dependency version table bundled with jcefbuild.
//
// The table is a Java properties file with one pinned version per dependency
// family. It is parsed once per process and never mutated afterwards.
package versions

import (
	_ "embed"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/magiconair/properties"

	oerrors "github.com/bitfist/jcefbuild/internal/errors"
)

// Property keys in versions.properties.
const (
	KeySpringBoot = "springBoot"
	KeyJcef       = "jcef"

	// KeySpringJcef is the name later releases use for KeyJcef.
	KeySpringJcef = "springJcef"
)

// ResourceName is the name of the bundled resource.
const ResourceName = "versions.properties"

//go:embed versions.properties
var bundled []byte

// Table maps dependency families to pinned versions.
type Table struct {
	// SpringBoot is the Spring Boot version (BOM, autoconfigure processor).
	SpringBoot string `json:"springBoot" yaml:"springBoot"`

	// Jcef is the jcef-spring-boot-starter version.
	Jcef string `json:"jcef" yaml:"jcef"`
}

// Get returns the version stored under key, accepting the springJcef alias.
func (t *Table) Get(key string) (string, bool) {
	switch key {
	case KeySpringBoot:
		return t.SpringBoot, t.SpringBoot != ""
	case KeyJcef, KeySpringJcef:
		return t.Jcef, t.Jcef != ""
	default:
		return "", false
	}
}

var loadBundled = sync.OnceValues(func() (*Table, error) {
	return parseBytes(bundled)
})

// Load returns the bundled version table. The first call parses the embedded
// resource; every later call returns the same table or the same error.
func Load() (*Table, error) {
	return loadBundled()
}

// Parse reads a version table from r.
func Parse(r io.Reader) (*Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", ResourceName, err)
	}
	return parseBytes(data)
}

// LoadFile reads a version table from a properties file on disk.
func LoadFile(path string) (*Table, error) {
	p, err := properties.LoadFile(path, properties.UTF8)
	if err != nil {
		return nil, oerrors.NewNotFoundError(
			fmt.Sprintf("%s could not be read: %v", ResourceName, err),
			path,
			"Point --versions-file at a readable properties file.",
		)
	}
	return fromProperties(p)
}

func parseBytes(data []byte) (*Table, error) {
	if len(data) == 0 {
		return nil, oerrors.NewPackagingError(ResourceName+" not found in the binary", "")
	}
	p, err := properties.Load(data, properties.UTF8)
	if err != nil {
		return nil, &oerrors.DetailError{
			Type:    "packaging defect",
			Message: fmt.Sprintf("%s is malformed", ResourceName),
			Cause:   fmt.Errorf("%w: %w", oerrors.ErrPackaging, err),
		}
	}
	return fromProperties(p)
}

func fromProperties(p *properties.Properties) (*Table, error) {
	springBoot, err := required(p, KeySpringBoot)
	if err != nil {
		return nil, err
	}

	jcef, hasJcef := lookup(p, KeyJcef)
	springJcef, hasSpringJcef := lookup(p, KeySpringJcef)
	switch {
	case hasJcef && hasSpringJcef && jcef != springJcef:
		return nil, oerrors.NewPackagingError(
			fmt.Sprintf("properties '%s' (%s) and '%s' (%s) disagree in %s",
				KeyJcef, jcef, KeySpringJcef, springJcef, ResourceName),
			KeyJcef,
		)
	case !hasJcef && hasSpringJcef:
		jcef = springJcef
	case !hasJcef:
		return nil, missing(KeyJcef)
	}

	return &Table{SpringBoot: springBoot, Jcef: jcef}, nil
}

func required(p *properties.Properties, key string) (string, error) {
	v, ok := lookup(p, key)
	if !ok {
		return "", missing(key)
	}
	return v, nil
}

func lookup(p *properties.Properties, key string) (string, bool) {
	v, ok := p.Get(key)
	v = strings.TrimSpace(v)
	return v, ok && v != ""
}

func missing(key string) error {
	return oerrors.NewPackagingError(
		fmt.Sprintf("property '%s' not found in %s", key, ResourceName),
		key,
	)
}

// Package emit renders a resolved build configuration for humans and for the
// host build tool.
package emit

import (
	"fmt"
	"io"

	"github.com/bitfist/jcefbuild/internal/buildconf"
	"github.com/bitfist/jcefbuild/internal/output"
	"github.com/bitfist/jcefbuild/internal/repository"
	"github.com/bitfist/jcefbuild/internal/versions"
)

// Document is everything jcefbuild knows about one project after resolution.
// It is what resolve prints and what lock writes.
type Document struct {
	Project      string                  `json:"project" yaml:"project"`
	Versions     versions.Table          `json:"versions" yaml:"versions"`
	Build        *buildconf.Resolved     `json:"build" yaml:"build"`
	Repositories []repository.Repository `json:"repositories,omitempty" yaml:"repositories,omitempty"`
}

// NewDocument assembles a Document. Repositories carry no credentials.
func NewDocument(project string, table *versions.Table, build *buildconf.Resolved, repos []repository.Repository) *Document {
	return &Document{
		Project:      project,
		Versions:     *table,
		Build:        build,
		Repositories: repos,
	}
}

// Write renders doc to w in format.
func Write(w io.Writer, format output.OutputFormat, doc *Document) error {
	if doc == nil || doc.Build == nil {
		return fmt.Errorf("nothing to render")
	}

	switch format {
	case output.FormatYAML:
		return WriteYAML(w, doc)
	case output.FormatJSON:
		return WriteJSON(w, doc)
	case output.FormatTable:
		return WriteTable(w, doc)
	case output.FormatArgs:
		return WriteArgs(w, doc)
	case output.FormatGradle:
		return WriteGradle(w, doc)
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}

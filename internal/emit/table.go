package emit

import (
	"fmt"
	"io"

	"github.com/bitfist/jcefbuild/internal/output"
)

// WriteTable writes doc as a set of tables for terminals.
func WriteTable(w io.Writer, doc *Document) error {
	b := doc.Build

	summary := output.NewTable("SETTING", "VALUE").
		Row("project", doc.Project).
		Row("mode", b.Mode).
		Row("jcef", doc.Versions.Jcef).
		Row("spring boot", doc.Versions.SpringBoot).
		Row("encoding", b.Encoding)

	deps := output.NewTable("SCOPE", "DEPENDENCY")
	for _, d := range b.Dependencies {
		notation := d.Notation()
		if d.Version == "" {
			notation += " (bom)"
		}
		deps.Row(string(d.Scope), notation)
	}

	flags := output.NewTable("COMPILER ARGUMENT")
	for _, arg := range b.CompilerArgs() {
		flags.Row(arg)
	}

	sections := []*output.Table{summary, deps, flags}

	if len(b.RuntimeArguments) > 0 {
		runtime := output.NewTable("RUNTIME ARGUMENT")
		for _, arg := range b.RuntimeArgs() {
			runtime.Row(arg)
		}
		sections = append(sections, runtime)
	}

	if len(doc.Repositories) > 0 {
		repos := output.NewTable("REPOSITORY", "URL")
		for _, r := range doc.Repositories {
			repos.Row(r.Name, r.URL)
		}
		sections = append(sections, repos)
	}

	for i, t := range sections {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, t.String()); err != nil {
			return err
		}
	}
	return nil
}

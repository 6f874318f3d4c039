package emit

import (
	"bytes"
	"embed"
	"fmt"
	"io"
	"slices"
	"strings"
	"text/template"
	"unicode"

	"github.com/bitfist/jcefbuild/internal/buildconf"
)

//go:embed templates/fragment.gradle.kts.tmpl
var templateFS embed.FS

var gradleTemplate = template.Must(
	template.New("fragment.gradle.kts.tmpl").
		Funcs(template.FuncMap{
			"kt":       kotlinString,
			"repoName": repositoryName,
			"hasTask": func(b *buildconf.Resolved, task string) bool {
				return slices.Contains(b.Tasks, task)
			},
		}).
		ParseFS(templateFS, "templates/fragment.gradle.kts.tmpl"),
)

// RenderGradle renders doc as a Gradle Kotlin DSL fragment.
func RenderGradle(doc *Document) ([]byte, error) {
	var buf bytes.Buffer
	if err := gradleTemplate.Execute(&buf, doc); err != nil {
		return nil, fmt.Errorf("executing gradle template: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteGradle writes doc as a Gradle Kotlin DSL fragment.
func WriteGradle(w io.Writer, doc *Document) error {
	data, err := RenderGradle(doc)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// kotlinString quotes v as a Kotlin string literal.
func kotlinString(v any) string {
	s := fmt.Sprint(v)
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\\', '"', '$':
			b.WriteByte('\\')
			b.WriteRune(r)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '\r':
			b.WriteString(`\r`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// repositoryName turns owner/repo into a lowerCamel Gradle repository name.
func repositoryName(name string) string {
	var b strings.Builder
	upper := false
	for _, r := range name {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			upper = b.Len() > 0
			continue
		}
		if upper {
			r = unicode.ToUpper(r)
			upper = false
		} else if b.Len() == 0 {
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}

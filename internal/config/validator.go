package config

import (
	"embed"
	"fmt"
	"os"
	"sort"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	cueyaml "cuelang.org/go/encoding/yaml"

	oerrors "github.com/bitfist/jcefbuild/internal/errors"
)

//go:embed schema/project.cue
var schemaFS embed.FS

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

// Error implements the error interface.
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}

	var sb strings.Builder
	sb.WriteString("config validation failed:\n")
	for _, err := range e {
		if err.Field == "" {
			fmt.Fprintf(&sb, "  %s\n", err.Message)
			continue
		}
		fmt.Fprintf(&sb, "  %s: %s\n", err.Field, err.Message)
	}
	return sb.String()
}

// Unwrap lets errors.Is match ErrValidation.
func (e ValidationErrors) Unwrap() error {
	return oerrors.ErrValidation
}

// Validator validates project files against the embedded CUE schema.
type Validator struct {
	ctx     *cue.Context
	project cue.Value
}

// NewValidator creates a new configuration validator.
func NewValidator() (*Validator, error) {
	ctx := cuecontext.New()

	schemaData, err := schemaFS.ReadFile("schema/project.cue")
	if err != nil {
		return nil, fmt.Errorf("reading embedded schema: %w", err)
	}

	schema := ctx.CompileBytes(schemaData, cue.Filename("project.cue"))
	if schema.Err() != nil {
		return nil, fmt.Errorf("compiling schema: %w", schema.Err())
	}

	project := schema.LookupPath(cue.ParsePath("#Project"))
	if !project.Exists() {
		return nil, fmt.Errorf("schema has no #Project definition")
	}

	return &Validator{
		ctx:     ctx,
		project: project,
	}, nil
}

// Validate checks raw project file content.
// Unknown fields, wrong types and malformed addresses are reported together.
func (v *Validator) Validate(filename string, data []byte) error {
	file, err := cueyaml.Extract(filename, data)
	if err != nil {
		return ValidationErrors{{Message: fmt.Sprintf("not valid YAML: %v", err)}}
	}

	value := v.ctx.BuildFile(file)
	if value.Err() != nil {
		return ValidationErrors{{Message: value.Err().Error()}}
	}

	var errs ValidationErrors
	unified := v.project.Unify(value)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		errs = append(errs, cueValidationErrors(err)...)
	}

	if value.LookupPath(cue.ParsePath("development.uri")).Exists() {
		for _, key := range []string{"host", "port"} {
			if value.LookupPath(cue.ParsePath("development." + key)).Exists() {
				errs = append(errs, ValidationError{
					Field:   "development." + key,
					Message: "cannot be combined with development.uri",
				})
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ValidateFile validates the project file at path.
func (v *Validator) ValidateFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return oerrors.NewNotFoundError(
			fmt.Sprintf("cannot read project file: %v", err),
			path,
			"Run 'jcefbuild config init' to create one")
	}
	return v.Validate(path, data)
}

// cueValidationErrors flattens a CUE error into sorted, de-duplicated entries.
func cueValidationErrors(err error) ValidationErrors {
	seen := make(map[string]bool)
	var out ValidationErrors
	for _, e := range cueerrors.Errors(err) {
		format, args := e.Msg()
		ve := ValidationError{
			Field:   strings.Join(trimDefinition(e.Path()), "."),
			Message: fmt.Sprintf(format, args...),
		}
		key := ve.Field + "\x00" + ve.Message
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, ve)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Field < out[j].Field
	})
	return out
}

// trimDefinition drops the leading #Project selector from error paths.
func trimDefinition(path []string) []string {
	if len(path) > 0 && strings.HasPrefix(path[0], "#") {
		return path[1:]
	}
	return path
}

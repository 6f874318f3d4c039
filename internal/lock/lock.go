// Package lock persists a resolved build configuration and reports drift
// between the persisted copy and a fresh resolution.
package lock

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/bitfist/jcefbuild/internal/emit"
	oerrors "github.com/bitfist/jcefbuild/internal/errors"
)

// Header is written at the top of every lock file.
const Header = "# Generated by jcefbuild. Do not edit; run 'jcefbuild lock' to update.\n"

// Marshal renders doc as lock file content.
func Marshal(doc *emit.Document) ([]byte, error) {
	body, err := emit.MarshalYAML(doc)
	if err != nil {
		return nil, err
	}
	return append([]byte(Header), body...), nil
}

// Write writes doc to path with mode 0644.
// It reports whether the file content changed.
func Write(path string, doc *emit.Document) (bool, error) {
	data, err := Marshal(doc)
	if err != nil {
		return false, err
	}

	existing, err := os.ReadFile(path)
	if err == nil && bytes.Equal(existing, data) {
		return false, nil
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return false, fmt.Errorf("writing %s: %w", path, err)
	}
	return true, nil
}

// Read returns the raw lock file and its decoded document.
func Read(path string) ([]byte, *emit.Document, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil, oerrors.NewNotFoundError(
			"lock file does not exist",
			path,
			"Run 'jcefbuild lock' to create it")
	}
	if err != nil {
		return nil, nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var doc emit.Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, nil, &oerrors.DetailError{
			Type:     "validation failed",
			Message:  "lock file is not valid YAML",
			Location: path,
			Hint:     "Delete it and run 'jcefbuild lock' again",
			Cause:    fmt.Errorf("%w: %w", oerrors.ErrValidation, err),
		}
	}
	return data, &doc, nil
}

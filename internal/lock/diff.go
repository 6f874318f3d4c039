package lock

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/gonvenience/ytbx"
	"github.com/homeport/dyff/pkg/dyff"
	"sigs.k8s.io/yaml"

	"github.com/bitfist/jcefbuild/internal/output"
)

// DiffResult represents the drift between a lock file and a fresh resolution.
type DiffResult struct {
	// Added sections are in the current resolution but not in the lock file.
	Added []string

	// Removed sections are in the lock file but not in the current resolution.
	Removed []string

	// Modified sections differ between the two.
	Modified []output.ModifiedItem
}

// HasChanges reports whether any drift was found.
func (r *DiffResult) HasChanges() bool {
	return len(r.Added) > 0 || len(r.Removed) > 0 || len(r.Modified) > 0
}

// Render renders the result for humans.
func (r *DiffResult) Render(styles *output.Styles) string {
	return output.RenderDiff(r.Added, r.Removed, r.Modified, styles)
}

// Compare compares locked and current lock file content section by section.
// Comments and key order are ignored.
func Compare(locked, current []byte, useColor bool) (*DiffResult, error) {
	lockedSections, err := sections(locked)
	if err != nil {
		return nil, fmt.Errorf("parsing lock file: %w", err)
	}
	currentSections, err := sections(current)
	if err != nil {
		return nil, fmt.Errorf("parsing current resolution: %w", err)
	}

	result := &DiffResult{}
	for _, name := range sortedKeys(currentSections) {
		if _, ok := lockedSections[name]; !ok {
			result.Added = append(result.Added, name)
		}
	}
	for _, name := range sortedKeys(lockedSections) {
		currentValue, ok := currentSections[name]
		if !ok {
			result.Removed = append(result.Removed, name)
			continue
		}

		diff, err := compareSection(name, lockedSections[name], currentValue, useColor)
		if err != nil {
			return nil, err
		}
		if diff != "" {
			result.Modified = append(result.Modified, output.ModifiedItem{Name: name, Diff: diff})
		}
	}
	return result, nil
}

func sections(data []byte) (map[string]any, error) {
	out := map[string]any{}
	if len(bytes.TrimSpace(data)) == 0 {
		return out, nil
	}
	if err := yaml.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// compareSection returns an empty string when locked and current are equal.
func compareSection(name string, locked, current any, useColor bool) (string, error) {
	lockedYAML, err := yaml.Marshal(map[string]any{name: locked})
	if err != nil {
		return "", fmt.Errorf("serializing locked %s: %w", name, err)
	}
	currentYAML, err := yaml.Marshal(map[string]any{name: current})
	if err != nil {
		return "", fmt.Errorf("serializing current %s: %w", name, err)
	}
	if bytes.Equal(lockedYAML, currentYAML) {
		return "", nil
	}
	return diffYAML(lockedYAML, currentYAML, useColor)
}

// diffYAML computes a YAML-aware diff using dyff.
func diffYAML(locked, current []byte, useColor bool) (string, error) {
	lockedInput, err := parseYAMLInput("locked", locked)
	if err != nil {
		return "", fmt.Errorf("parsing locked YAML: %w", err)
	}

	currentInput, err := parseYAMLInput("current", current)
	if err != nil {
		return "", fmt.Errorf("parsing current YAML: %w", err)
	}

	report, err := dyff.CompareInputFiles(lockedInput, currentInput)
	if err != nil {
		return "", fmt.Errorf("comparing YAML: %w", err)
	}

	if len(report.Diffs) == 0 {
		return "", nil
	}

	return renderDyffReport(report, useColor)
}

func parseYAMLInput(name string, data []byte) (ytbx.InputFile, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return ytbx.InputFile{Location: name}, nil
	}

	docs, err := ytbx.LoadYAMLDocuments(data)
	if err != nil {
		return ytbx.InputFile{}, err
	}

	return ytbx.InputFile{
		Location:  name,
		Documents: docs,
	}, nil
}

func renderDyffReport(report dyff.Report, useColor bool) (string, error) {
	var buf bytes.Buffer

	reportWriter := &dyff.HumanReport{
		Report:            report,
		DoNotInspectCerts: true,
		NoTableStyle:      !useColor,
		OmitHeader:        true,
	}

	if err := reportWriter.WriteReport(io.Writer(&buf)); err != nil {
		return "", fmt.Errorf("writing report: %w", err)
	}

	lines := strings.Split(buf.String(), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}

	return strings.TrimSpace(strings.Join(lines, "\n")), nil
}

package output

import "strings"

// OutputFormat specifies the output format of resolved configurations.
type OutputFormat string

const (
	// FormatYAML outputs in YAML format.
	FormatYAML OutputFormat = "yaml"

	// FormatJSON outputs in JSON format.
	FormatJSON OutputFormat = "json"

	// FormatTable outputs a human-readable table.
	FormatTable OutputFormat = "table"

	// FormatArgs outputs compiler arguments, one per line.
	FormatArgs OutputFormat = "args"

	// FormatGradle outputs a Gradle Kotlin DSL fragment.
	FormatGradle OutputFormat = "gradle"
)

// String returns the string representation of the output format.
func (f OutputFormat) String() string {
	return string(f)
}

// Valid checks if the output format is known.
func (f OutputFormat) Valid() bool {
	switch f {
	case FormatYAML, FormatJSON, FormatTable, FormatArgs, FormatGradle:
		return true
	default:
		return false
	}
}

// ParseOutputFormat parses a string into an OutputFormat.
// The second return value is false for unknown formats.
func ParseOutputFormat(s string) (OutputFormat, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yaml", "yml":
		return FormatYAML, true
	case "json":
		return FormatJSON, true
	case "table":
		return FormatTable, true
	case "args":
		return FormatArgs, true
	case "gradle", "kts":
		return FormatGradle, true
	default:
		return "", false
	}
}

// ValidFormats returns a slice of valid output format strings.
func ValidFormats() []string {
	return []string{"yaml", "json", "table", "args", "gradle"}
}

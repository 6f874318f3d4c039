package cmdutil

import (
	"errors"
	"fmt"
	"sort"

	"github.com/bitfist/jcefbuild/internal/config"
	oerrors "github.com/bitfist/jcefbuild/internal/errors"
	"github.com/bitfist/jcefbuild/internal/output"
)

// PrintError logs err in a user-friendly format and returns an ExitError
// marked as printed, carrying the exit code for err.
func PrintError(msg string, err error) error {
	var validationErrs config.ValidationErrors
	var detail *oerrors.DetailError

	switch {
	case errors.As(err, &validationErrs):
		output.Error(fmt.Sprintf("%s: %d problem(s)", msg, len(validationErrs)))
		for _, e := range validationErrs {
			if e.Field == "" {
				output.Error("  " + e.Message)
				continue
			}
			output.Error("  "+e.Message, "field", e.Field)
		}
	case errors.As(err, &detail):
		keyvals := []interface{}{"error", detail.Message}
		if detail.Field != "" {
			keyvals = append(keyvals, "field", detail.Field)
		}
		if detail.Location != "" {
			keyvals = append(keyvals, "location", detail.Location)
		}
		keys := make([]string, 0, len(detail.Context))
		for k := range detail.Context {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			keyvals = append(keyvals, k, detail.Context[k])
		}
		output.Error(msg, keyvals...)
		if detail.Hint != "" {
			output.Info(detail.Hint)
		}
	default:
		output.Error(msg, "error", err)
	}

	return &oerrors.ExitError{
		Code:    oerrors.ExitCodeFromError(err),
		Err:     err,
		Printed: true,
	}
}

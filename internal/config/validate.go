package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/sahilm/fuzzy"
)

// validateEnum checks that value (if non-empty) is one of the allowed values.
// The error names the field, lists the options and suggests the closest one.
func validateEnum(value, field string, allowed []string) error {
	if value == "" {
		return nil
	}
	if slices.Contains(allowed, value) {
		return nil
	}
	msg := fmt.Sprintf("invalid %s %q: must be %s", field, value, formatOptions(allowed))
	if s := Suggest(value, allowed); s != "" {
		msg += fmt.Sprintf(" (did you mean %q?)", s)
	}
	return fmt.Errorf("%s", msg)
}

// Suggest returns the option closest to value, or "" if nothing is close.
// Options containing value as a subsequence rank first; otherwise an
// option that is itself contained in value is returned.
func Suggest(value string, options []string) string {
	if value == "" {
		return ""
	}
	lower := strings.ToLower(value)
	if matches := fuzzy.Find(lower, options); len(matches) > 0 {
		return matches[0].Str
	}
	for _, o := range options {
		if strings.Contains(lower, o) {
			return o
		}
	}
	return ""
}

// formatOptions formats a list of allowed values for error messages.
// E.g., ["a", "b", "c"] -> `"a", "b", or "c"`
func formatOptions(opts []string) string {
	quoted := make([]string, len(opts))
	for i, o := range opts {
		quoted[i] = fmt.Sprintf("%q", o)
	}
	if len(quoted) <= 2 {
		return strings.Join(quoted, " or ")
	}
	return strings.Join(quoted[:len(quoted)-1], ", ") + ", or " + quoted[len(quoted)-1]
}

// validateRoot checks that a web root is an http(s) URL.
func validateRoot(root, field string) error {
	if root == "" {
		return nil
	}
	if !strings.HasPrefix(root, "https://") && !strings.HasPrefix(root, "http://") {
		return fmt.Errorf("invalid %s %q: must start with https:// or http://", field, root)
	}
	return nil
}

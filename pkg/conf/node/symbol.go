package node

import "regexp"

var (
	// symbolPattern validates identifiers where hyphens are permitted
	// (e.g., "element-name", "my_var2").
	symbolPattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_-]*$`)

	// symbolNoDashPattern validates identifiers where hyphens are not
	// permitted (e.g., shell-exported variable names).
	symbolNoDashPattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)
)

// validateSymbolName checks name against the symbol-name rules: non-empty,
// alphanumerics, underscores and (when allowed) hyphens only, and no leading
// digit. Violations are reported at prov with the stated purpose for context.
func validateSymbolName(name, purpose string, prov Provenance, allowDashes bool) error {
	if name == "" {
		return &InvalidSymbolNameError{
			Provenance: prov,
			Name:       name,
			Purpose:    purpose,
			Reason:     "names must not be empty",
		}
	}

	pattern := symbolNoDashPattern
	reason := "names must contain only alphanumeric characters or underscores, and must not start with a digit"
	if allowDashes {
		pattern = symbolPattern
		reason = "names must contain only alphanumeric characters, dashes or underscores, and must not start with a digit"
	}

	if !pattern.MatchString(name) {
		return &InvalidSymbolNameError{
			Provenance: prov,
			Name:       name,
			Purpose:    purpose,
			Reason:     reason,
		}
	}
	return nil
}

package errors

import (
	stderrors "errors"
	"fmt"
	"strings"

	"mason-hq/bedrock/pkg/conf/node"
)

// Category classifies a diagnostic.
type Category string

const (
	CategorySyntax     Category = "syntax"
	CategoryType       Category = "type"
	CategoryMissingKey Category = "missing-key"
	CategorySymbol     Category = "symbol-name"
	CategoryStructure  Category = "structure"
	CategoryIO         Category = "io"
)

// Error is a located diagnostic with optional source context and suggestion.
type Error struct {
	Category   Category        // Classification of the diagnostic
	Message    string          // Human-readable message
	Provenance node.Provenance // Where the problem is
	Context    string          // Surrounding source lines
	Suggestion string          // Suggested fix (optional)
}

// Error implements the error interface, rendering the diagnostic with its
// location, context, and suggestion.
func (e *Error) Error() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("[%s] %s\n", e.Category, e.Message))

	if e.Provenance.IsValid() {
		sb.WriteString(fmt.Sprintf("  --> %s\n", e.Provenance))
	}

	if e.Context != "" {
		sb.WriteString("  |\n")
		sb.WriteString(e.Context)
		sb.WriteString("  |\n")
	}

	if e.Suggestion != "" {
		sb.WriteString(fmt.Sprintf("  = suggestion: %s\n", e.Suggestion))
	}

	return sb.String()
}

// Classify wraps an error from the node layer (or any other error) into a
// categorized diagnostic. Node errors keep their provenance; unknown errors
// are categorized as structural with no location.
func Classify(err error) *Error {
	var mismatch *node.TypeMismatchError
	if stderrors.As(err, &mismatch) {
		return &Error{
			Category:   CategoryType,
			Message:    fmt.Sprintf("expected %s value, found %s", mismatch.Expected, mismatch.Actual),
			Provenance: mismatch.Provenance,
		}
	}

	var missing *node.MissingKeyError
	if stderrors.As(err, &missing) {
		return &Error{
			Category:   CategoryMissingKey,
			Message:    fmt.Sprintf("missing required key %q", missing.Key),
			Provenance: missing.Provenance,
		}
	}

	var symbol *node.InvalidSymbolNameError
	if stderrors.As(err, &symbol) {
		return &Error{
			Category:   CategorySymbol,
			Message:    fmt.Sprintf("invalid %s %q: %s", symbol.Purpose, symbol.Name, symbol.Reason),
			Provenance: symbol.Provenance,
		}
	}

	var diag *Error
	if stderrors.As(err, &diag) {
		return diag
	}

	return &Error{
		Category: CategoryStructure,
		Message:  err.Error(),
	}
}

// List accumulates diagnostics so a whole document can be reported in one
// pass instead of failing on the first finding.
type List struct {
	Errors []*Error
}

// NewList creates an empty diagnostic list.
func NewList() *List {
	return &List{Errors: make([]*Error, 0)}
}

// Add appends a diagnostic to the list.
func (l *List) Add(err *Error) {
	l.Errors = append(l.Errors, err)
}

// AddError creates and appends a diagnostic with the given parameters.
func (l *List) AddError(category Category, message string, prov node.Provenance) {
	l.Add(&Error{Category: category, Message: message, Provenance: prov})
}

// AddErrorWithSuggestion creates and appends a diagnostic carrying a
// suggested fix.
func (l *List) AddErrorWithSuggestion(category Category, message string, prov node.Provenance, suggestion string) {
	l.Add(&Error{Category: category, Message: message, Provenance: prov, Suggestion: suggestion})
}

// HasErrors returns true if the list contains any diagnostics.
func (l *List) HasErrors() bool {
	return len(l.Errors) > 0
}

// Count returns the number of accumulated diagnostics.
func (l *List) Count() int {
	return len(l.Errors)
}

// Error implements the error interface across all accumulated diagnostics.
func (l *List) Error() string {
	if !l.HasErrors() {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("found %d error(s):\n\n", l.Count()))
	for i, err := range l.Errors {
		sb.WriteString(fmt.Sprintf("error %d:\n", i+1))
		sb.WriteString(err.Error())
		sb.WriteString("\n")
	}
	return sb.String()
}

// ToError returns nil when the list is empty, otherwise the list itself.
func (l *List) ToError() error {
	if !l.HasErrors() {
		return nil
	}
	return l
}

// ByCategory returns the accumulated diagnostics of the given category.
func (l *List) ByCategory(category Category) []*Error {
	var out []*Error
	for _, err := range l.Errors {
		if err.Category == category {
			out = append(out, err)
		}
	}
	return out
}

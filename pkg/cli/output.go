package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"

	conferrors "mason-hq/bedrock/pkg/conf/errors"
)

// OutputFormat represents the output format for command results.
type OutputFormat string

const (
	// FormatText is human-readable text output (default).
	FormatText OutputFormat = "text"
	// FormatJSON is JSON output, suited to CI pipelines.
	FormatJSON OutputFormat = "json"
)

// Formatter formats command output.
type Formatter interface {
	FormatTo(w io.Writer, data any) error
}

// TextFormatter formats output as plain text.
type TextFormatter struct{}

// FormatTo writes data to w in text format.
func (f *TextFormatter) FormatTo(w io.Writer, data any) error {
	_, err := fmt.Fprintf(w, "%v\n", data)
	return err
}

// JSONFormatter formats output as indented JSON.
type JSONFormatter struct {
	Indent bool
}

// FormatTo writes data to w in JSON format.
func (f *JSONFormatter) FormatTo(w io.Writer, data any) error {
	encoder := json.NewEncoder(w)
	if f.Indent {
		encoder.SetIndent("", "  ")
	}
	return encoder.Encode(data)
}

// NewFormatter creates a formatter for the specified format.
func NewFormatter(format OutputFormat) Formatter {
	switch format {
	case FormatJSON:
		return &JSONFormatter{Indent: true}
	default:
		return &TextFormatter{}
	}
}

var (
	categoryColor = color.New(color.FgRed, color.Bold)
	locationColor = color.New(color.Bold)
	hintColor     = color.New(color.FgCyan)
)

// PrintDiagnostic renders a located diagnostic to w, coloring the category,
// location, and suggestion when w is a terminal. color's global NoColor
// handling disables the escapes for pipes and files.
func PrintDiagnostic(w io.Writer, diag *conferrors.Error) {
	categoryColor.Fprintf(w, "[%s]", diag.Category)
	fmt.Fprintf(w, " %s\n", diag.Message)

	if diag.Provenance.IsValid() {
		fmt.Fprint(w, "  --> ")
		locationColor.Fprintln(w, diag.Provenance.String())
	}
	if diag.Context != "" {
		fmt.Fprint(w, diag.Context)
	}
	if diag.Suggestion != "" {
		hintColor.Fprintf(w, "  = suggestion: %s\n", diag.Suggestion)
	}
}

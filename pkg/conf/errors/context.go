package errors

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"mason-hq/bedrock/pkg/conf/node"
)

// ExtractContext reads the originating file and returns the lines around the
// given provenance, formatted with line numbers and a caret under the column.
// Synthetic files and unreadable files yield an empty context.
func ExtractContext(prov node.Provenance, contextLines int) string {
	if !prov.IsValid() || prov.IsSynthetic() || prov.Line <= 0 {
		return ""
	}

	file, err := os.Open(prov.File.Name)
	if err != nil {
		return ""
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return ""
	}

	errorLine := prov.Line - 1 // 0-based
	if errorLine >= len(lines) {
		return ""
	}
	startLine := max(errorLine-contextLines, 0)
	endLine := min(errorLine+contextLines, len(lines)-1)

	var sb strings.Builder
	numWidth := len(fmt.Sprintf("%d", endLine+1))

	for i := startLine; i <= endLine; i++ {
		prefix := "  "
		if i == errorLine {
			prefix = "->"
		}
		sb.WriteString(fmt.Sprintf("%s %*d | %s\n", prefix, numWidth, i+1, lines[i]))

		if i == errorLine && prov.Column > 0 {
			padding := strings.Repeat(" ", prov.Column-1)
			sb.WriteString(fmt.Sprintf("   %s | %s^\n", strings.Repeat(" ", numWidth), padding))
		}
	}

	return sb.String()
}

// WithContext enriches a diagnostic with source context read from its
// originating file.
func WithContext(err *Error, contextLines int) *Error {
	if err.Provenance.IsValid() {
		err.Context = ExtractContext(err.Provenance, contextLines)
	}
	return err
}

// Bedrock is a loader and linter for build-definition configuration files.
//
// It wraps YAML definitions into a typed, provenance-aware node tree and
// reports problems as precise "file:line:column" diagnostics.
//
// Usage:
//
//	# Validate a single definition file
//	bedrock validate --file elements/app.yaml
//
//	# Validate a directory, re-checking as files change
//	bedrock validate --dir elements/ --watch
//
//	# Machine-readable output for CI
//	bedrock validate --dir elements/ --format json
//
//	# Dump a definition with per-value provenance
//	bedrock dump --file elements/app.yaml
//
//	# Show version information
//	bedrock version
package main

func main() {
	Execute()
}

/*
Package errors provides the presentation layer for configuration diagnostics.

The core node model (pkg/conf/node) raises small typed errors carrying a
provenance; this package classifies them, attaches surrounding source context,
and formats them for display.

Error Categories:

CategorySyntax: markup syntax errors (malformed YAML)

CategoryType: a value's type does not satisfy a typed accessor

CategoryMissingKey: a required mapping key is absent

CategorySymbol: an identifier violates the symbol-name rules

CategoryStructure: a document violates structural expectations (for example
a non-mapping top level)

CategoryIO: file access errors

Basic Usage:

Classify an error produced by the node tree:

	deps, err := tree.GetStringList("depends", nil)
	if err != nil {
		diag := errors.Classify(err)
		fmt.Println(errors.WithContext(diag, 2))
	}

Accumulate diagnostics across a whole document:

	list := errors.NewList()
	list.Add(errors.Classify(err))
	if list.HasErrors() {
		return list.ToError()
	}

Error Format:

Diagnostics render with location, context, and an optional suggestion:

	[missing-key] missing required key "depends"
	  --> elements/app.yaml:4:1
	  |
	  ->  4 | build-depends:
	  |
	  = suggestion: did you mean "depends"?
*/
package errors

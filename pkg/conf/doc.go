/*
Package conf is the entry point for loading build-definition configuration
into provenance-aware node trees.

It ties together the subpackages:

pkg/conf/node: the typed node model (scalars, sequences, mappings) with
per-node provenance, cloning, and symbol-name validation.

pkg/conf/loader: the YAML loading layer that attaches parser positions and
maintains the file table.

pkg/conf/errors: the diagnostic layer (categorized errors, source context,
suggestions).

Quick Start:

	tree, err := conf.Load("elements/app.yaml")
	if err != nil {
		return err
	}
	deps, err := tree.GetStringList("depends", nil)
	if err != nil {
		// "elements/app.yaml:4:3: expected string value, found mapping"
		return err
	}

For multi-file sessions where file indices must stay consistent, construct a
loader.Loader directly instead of using these convenience functions.
*/
package conf

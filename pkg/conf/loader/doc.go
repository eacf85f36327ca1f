/*
Package loader turns YAML build-definition files into provenance-aware node
trees.

The loader does the position bookkeeping the node model depends on: it decodes
YAML through the parser's node form so that every mapping entry, sequence
element, and scalar carries the exact line and column the parser reported, and
it maintains a file table assigning a stable index to every file seen in a
session.

Usage:

	l := loader.NewLoader(nil)
	tree, err := l.Load("elements/app.yaml")
	if err != nil {
		return err
	}
	deps, err := tree.GetStringList("depends", nil)

Documents must have a mapping at the top level. YAML aliases are expanded by
deep copy during wrapping, so the resulting tree owns all of its children
exclusively. Scalar values are restricted to strings, booleans, integers, and
null; anything else (floats, timestamps) is reported as a located error.

The package also provides a debounced filesystem watcher used to re-validate
definition files as they change.
*/
package loader

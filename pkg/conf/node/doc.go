/*
Package node implements the typed, provenance-aware document model that all
build-definition configuration flows through.

Configuration enters the system as loosely-typed data (decoded YAML, or values
injected programmatically) and is wrapped into a tree of typed nodes: scalars,
sequences, and mappings. Every node carries a Provenance recording the file,
line, and column it originated from, so that any consumer of the tree can
report errors as "file:line:column: message" without carrying positional
bookkeeping of its own.

Node Variants:

ScalarNode holds a single string, boolean, or integer value (or null).

SequenceNode holds an ordered list of child nodes.

MappingNode holds an ordered key-to-node mapping and is the usual root of a
loaded document.

Typed Access:

Accessors validate shape and fail fast with located errors:

	tree, _ := loader.Load("project.yaml")
	deps, err := tree.GetStringList("depends", nil)
	if err != nil {
		// err renders as "project.yaml:12:3: expected a list of strings, ..."
	}

Cloning:

Trees are read-only by convention after construction. A caller that needs to
derive a modified copy first takes a deep clone; the clone shares no children
with the original and preserves every node's logical provenance:

	derived := tree.Clone()

Synthetic Files:

Configuration that has no backing file (defaults, test fixtures, values
injected by a plugin) is rooted in a synthetic file created with
NewSyntheticFile. Synthetic files carry a unique identity and render in
diagnostics as "name [synthetic]".
*/
package node

package node

// Kind identifies the concrete type of a node or of a scalar's stored value.
// The set is closed: configuration data is always one of these.
type Kind string

const (
	KindString   Kind = "string"
	KindBool     Kind = "boolean"
	KindInt      Kind = "integer"
	KindNull     Kind = "null"
	KindSequence Kind = "sequence"
	KindMapping  Kind = "mapping"
)

// Node is the capability every node variant supports: provenance lookup, deep
// cloning, and symbol-name assertion. Concrete variants additionally expose a
// typed Clone method returning their own type.
type Node interface {
	// Kind returns the variant (or scalar value type) of this node.
	Kind() Kind

	// Provenance returns the node's origin metadata. It never fails and is
	// stable across calls.
	Provenance() Provenance

	// CloneNode returns a deep, independent copy of this node and all of its
	// descendants, preserving logical provenance.
	CloneNode() Node

	// AssertSymbolName validates that name is a legal identifier for the
	// stated purpose (for example "variable name" or "element name"). When
	// ref is non-nil its provenance locates the error, otherwise the
	// asserting node's own provenance is used.
	AssertSymbolName(name, purpose string, ref Node, allowDashes bool) error
}

// base carries the provenance shared by every node variant. Provenance is
// assigned at construction and never mutated.
type base struct {
	prov Provenance
}

// Provenance returns the node's origin metadata.
func (b *base) Provenance() Provenance {
	return b.prov
}

// AssertSymbolName validates name against the symbol-name rules, locating any
// violation at ref's provenance when supplied.
func (b *base) AssertSymbolName(name, purpose string, ref Node, allowDashes bool) error {
	prov := b.prov
	if ref != nil {
		prov = ref.Provenance()
	}
	return validateSymbolName(name, purpose, prov, allowDashes)
}

package node

// SequenceNode is an ordered collection of child nodes. Order is significant
// and preserved through cloning.
type SequenceNode struct {
	base
	elements []Node
}

// NewSequenceNode wraps each raw value into the matching node variant, all
// entries inheriting the sequence's own provenance. Use
// NewSequenceNodeFromNodes when finer-grained positions are available.
func NewSequenceNode(prov Provenance, values []any) (*SequenceNode, error) {
	elements := make([]Node, 0, len(values))
	for _, v := range values {
		child, err := wrapValue(prov, v)
		if err != nil {
			return nil, err
		}
		elements = append(elements, child)
	}
	return &SequenceNode{base: base{prov: prov}, elements: elements}, nil
}

// NewSequenceNodeFromNodes builds a sequence from already-wrapped children.
// The sequence takes ownership of the slice.
func NewSequenceNodeFromNodes(prov Provenance, elements []Node) *SequenceNode {
	return &SequenceNode{base: base{prov: prov}, elements: elements}
}

// Kind implements Node.
func (s *SequenceNode) Kind() Kind {
	return KindSequence
}

// Len returns the number of elements.
func (s *SequenceNode) Len() int {
	return len(s.elements)
}

// At returns the element at index i.
func (s *SequenceNode) At(i int) Node {
	return s.elements[i]
}

// AsStringList returns one string per element, in original order. Every
// element must be a string-representable scalar; otherwise the error
// identifies the offending element's provenance, not the sequence's.
func (s *SequenceNode) AsStringList() ([]string, error) {
	out := make([]string, 0, len(s.elements))
	for _, el := range s.elements {
		scalar, ok := el.(*ScalarNode)
		if !ok {
			return nil, &TypeMismatchError{Provenance: el.Provenance(), Expected: KindString, Actual: el.Kind()}
		}
		str, err := scalar.AsString()
		if err != nil {
			return nil, err
		}
		out = append(out, str)
	}
	return out, nil
}

// Clone returns a deep, order-preserving copy.
func (s *SequenceNode) Clone() *SequenceNode {
	elements := make([]Node, len(s.elements))
	for i, el := range s.elements {
		elements[i] = el.CloneNode()
	}
	return &SequenceNode{base: base{prov: s.prov}, elements: elements}
}

// CloneNode implements Node.
func (s *SequenceNode) CloneNode() Node {
	return s.Clone()
}

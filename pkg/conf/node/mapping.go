package node

import (
	"fmt"
	"sort"
)

// MappingNode is a keyed collection of child nodes. Keys are unique strings;
// insertion order is preserved for iteration and serialization, though lookup
// is order-independent.
type MappingNode struct {
	base
	keys    []string
	entries map[string]Node
}

// Entry pairs a mapping key with its wrapped child node. It is the
// construction form used by loaders that carry per-entry positions.
type Entry struct {
	Key   string
	Value Node
}

// NewMappingNode wraps each entry of values into the matching node variant,
// recursively. All children inherit the mapping's own provenance, since a raw
// Go map carries no finer-grained positions; loaders that do have per-entry
// positions should use NewMappingNodeFromEntries instead. Keys are ordered
// lexically for determinism.
func NewMappingNode(prov Provenance, values map[string]any) (*MappingNode, error) {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	entries := make(map[string]Node, len(values))
	for _, k := range keys {
		child, err := wrapValue(prov, values[k])
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", k, err)
		}
		entries[k] = child
	}
	return &MappingNode{base: base{prov: prov}, keys: keys, entries: entries}, nil
}

// NewMappingNodeFromEntries builds a mapping from already-wrapped children,
// preserving the given order. Duplicate keys are rejected.
func NewMappingNodeFromEntries(prov Provenance, entries []Entry) (*MappingNode, error) {
	keys := make([]string, 0, len(entries))
	m := make(map[string]Node, len(entries))
	for _, e := range entries {
		if _, dup := m[e.Key]; dup {
			return nil, fmt.Errorf("%s: duplicate key %q", prov, e.Key)
		}
		keys = append(keys, e.Key)
		m[e.Key] = e.Value
	}
	return &MappingNode{base: base{prov: prov}, keys: keys, entries: m}, nil
}

// wrapValue converts a raw decoded value into the matching node variant,
// recursively. Children constructed here inherit prov, the closest position
// the caller knows.
func wrapValue(prov Provenance, value any) (Node, error) {
	switch v := value.(type) {
	case string, bool, int, nil:
		return NewScalarNode(prov, v)
	case []any:
		return NewSequenceNode(prov, v)
	case map[string]any:
		return NewMappingNode(prov, v)
	default:
		return nil, fmt.Errorf("unsupported value type %T", value)
	}
}

// Kind implements Node.
func (m *MappingNode) Kind() Kind {
	return KindMapping
}

// Len returns the number of entries.
func (m *MappingNode) Len() int {
	return len(m.keys)
}

// Keys returns the mapping's keys in insertion order.
func (m *MappingNode) Keys() []string {
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// Contains returns true if key is present.
func (m *MappingNode) Contains(key string) bool {
	_, ok := m.entries[key]
	return ok
}

// Get returns the child node at key, or false if absent.
func (m *MappingNode) Get(key string) (Node, bool) {
	n, ok := m.entries[key]
	return n, ok
}

// GetScalar returns the scalar at key. Absent keys yield a MissingKeyError
// located at the mapping; non-scalar values yield a TypeMismatchError located
// at the value.
func (m *MappingNode) GetScalar(key string) (*ScalarNode, error) {
	n, ok := m.entries[key]
	if !ok {
		return nil, &MissingKeyError{Provenance: m.prov, Key: key}
	}
	scalar, ok := n.(*ScalarNode)
	if !ok {
		return nil, &TypeMismatchError{Provenance: n.Provenance(), Expected: KindString, Actual: n.Kind()}
	}
	return scalar, nil
}

// GetMapping returns the nested mapping at key.
func (m *MappingNode) GetMapping(key string) (*MappingNode, error) {
	n, ok := m.entries[key]
	if !ok {
		return nil, &MissingKeyError{Provenance: m.prov, Key: key}
	}
	nested, ok := n.(*MappingNode)
	if !ok {
		return nil, &TypeMismatchError{Provenance: n.Provenance(), Expected: KindMapping, Actual: n.Kind()}
	}
	return nested, nil
}

// GetSequence returns the sequence at key.
func (m *MappingNode) GetSequence(key string) (*SequenceNode, error) {
	n, ok := m.entries[key]
	if !ok {
		return nil, &MissingKeyError{Provenance: m.prov, Key: key}
	}
	seq, ok := n.(*SequenceNode)
	if !ok {
		return nil, &TypeMismatchError{Provenance: n.Provenance(), Expected: KindSequence, Actual: n.Kind()}
	}
	return seq, nil
}

// GetString returns the string value at key. A single optional default may be
// supplied, returned when the key is absent; with no default an absent key
// yields a MissingKeyError.
func (m *MappingNode) GetString(key string, def ...string) (string, error) {
	n, ok := m.entries[key]
	if !ok {
		if len(def) > 0 {
			return def[0], nil
		}
		return "", &MissingKeyError{Provenance: m.prov, Key: key}
	}
	scalar, ok := n.(*ScalarNode)
	if !ok {
		return "", &TypeMismatchError{Provenance: n.Provenance(), Expected: KindString, Actual: n.Kind()}
	}
	return scalar.AsString()
}

// GetBool returns the boolean value at key, with an optional default for
// absent keys.
func (m *MappingNode) GetBool(key string, def ...bool) (bool, error) {
	n, ok := m.entries[key]
	if !ok {
		if len(def) > 0 {
			return def[0], nil
		}
		return false, &MissingKeyError{Provenance: m.prov, Key: key}
	}
	scalar, ok := n.(*ScalarNode)
	if !ok {
		return false, &TypeMismatchError{Provenance: n.Provenance(), Expected: KindBool, Actual: n.Kind()}
	}
	return scalar.AsBool()
}

// GetInt returns the integer value at key, with an optional default for
// absent keys.
func (m *MappingNode) GetInt(key string, def ...int) (int, error) {
	n, ok := m.entries[key]
	if !ok {
		if len(def) > 0 {
			return def[0], nil
		}
		return 0, &MissingKeyError{Provenance: m.prov, Key: key}
	}
	scalar, ok := n.(*ScalarNode)
	if !ok {
		return 0, &TypeMismatchError{Provenance: n.Provenance(), Expected: KindInt, Actual: n.Kind()}
	}
	return scalar.AsInt()
}

// GetStringList returns the string-list value at key. A nil def means no
// default: an absent key yields a MissingKeyError located at the mapping. A
// non-nil def (an empty slice included) is returned as-is when the key is
// absent. Present values delegate to SequenceNode.AsStringList, so type
// mismatches are located at the offending element.
func (m *MappingNode) GetStringList(key string, def []string) ([]string, error) {
	n, ok := m.entries[key]
	if !ok {
		if def != nil {
			return def, nil
		}
		return nil, &MissingKeyError{Provenance: m.prov, Key: key}
	}
	seq, ok := n.(*SequenceNode)
	if !ok {
		return nil, &TypeMismatchError{Provenance: n.Provenance(), Expected: KindSequence, Actual: n.Kind()}
	}
	return seq.AsStringList()
}

// Clone returns a deep copy of all entries, preserving key order and
// provenance. The clone shares no children with the original.
func (m *MappingNode) Clone() *MappingNode {
	keys := make([]string, len(m.keys))
	copy(keys, m.keys)
	entries := make(map[string]Node, len(m.entries))
	for k, n := range m.entries {
		entries[k] = n.CloneNode()
	}
	return &MappingNode{base: base{prov: m.prov}, keys: keys, entries: entries}
}

// CloneNode implements Node.
func (m *MappingNode) CloneNode() Node {
	return m.Clone()
}

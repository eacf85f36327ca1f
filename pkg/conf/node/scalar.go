package node

import (
	"fmt"
	"strconv"
)

// ScalarNode is a leaf node holding a single string, boolean, or integer
// value, or null. The stored value's type is fixed at construction.
type ScalarNode struct {
	base
	value any // string, bool, int, or nil
}

// NewScalarNode creates a scalar node for the given value. The value must be
// a string, bool, int, or nil; anything else is rejected.
func NewScalarNode(prov Provenance, value any) (*ScalarNode, error) {
	switch value.(type) {
	case string, bool, int, nil:
		return &ScalarNode{base: base{prov: prov}, value: value}, nil
	default:
		return nil, fmt.Errorf("unsupported scalar type %T", value)
	}
}

// Kind returns the type of the stored value.
func (s *ScalarNode) Kind() Kind {
	switch s.value.(type) {
	case string:
		return KindString
	case bool:
		return KindBool
	case int:
		return KindInt
	default:
		return KindNull
	}
}

// IsNull returns true if the scalar holds no value.
func (s *ScalarNode) IsNull() bool {
	return s.value == nil
}

// AsString returns the stored value in string representation. Booleans render
// as "true"/"false" and integers in decimal. Null is not string-representable
// and yields a TypeMismatchError carrying the scalar's provenance.
func (s *ScalarNode) AsString() (string, error) {
	switch v := s.value.(type) {
	case string:
		return v, nil
	case bool:
		return strconv.FormatBool(v), nil
	case int:
		return strconv.Itoa(v), nil
	default:
		return "", &TypeMismatchError{Provenance: s.prov, Expected: KindString, Actual: s.Kind()}
	}
}

// AsBool returns the stored boolean. No coercion is performed: a string
// "true" is not a boolean.
func (s *ScalarNode) AsBool() (bool, error) {
	v, ok := s.value.(bool)
	if !ok {
		return false, &TypeMismatchError{Provenance: s.prov, Expected: KindBool, Actual: s.Kind()}
	}
	return v, nil
}

// AsInt returns the stored integer. No coercion is performed.
func (s *ScalarNode) AsInt() (int, error) {
	v, ok := s.value.(int)
	if !ok {
		return 0, &TypeMismatchError{Provenance: s.prov, Expected: KindInt, Actual: s.Kind()}
	}
	return v, nil
}

// Clone returns a deep, independent copy preserving the scalar's exact typed
// value and provenance.
func (s *ScalarNode) Clone() *ScalarNode {
	return &ScalarNode{base: base{prov: s.prov}, value: s.value}
}

// CloneNode implements Node.
func (s *ScalarNode) CloneNode() Node {
	return s.Clone()
}

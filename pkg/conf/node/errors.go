package node

import "fmt"

// TypeMismatchError reports that a node's actual type does not satisfy the
// type a caller requested through a typed accessor. The provenance is that of
// the specific offending node, which for sequence accessors is the element
// that failed, not the sequence itself.
type TypeMismatchError struct {
	Provenance Provenance
	Expected   Kind
	Actual     Kind
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("%s: expected %s value, found %s", e.Provenance, e.Expected, e.Actual)
}

// MissingKeyError reports that a mapping accessor was asked for a key that is
// absent and no default was supplied. The provenance is the mapping's own
// location.
type MissingKeyError struct {
	Provenance Provenance
	Key        string
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("%s: missing required key %q", e.Provenance, e.Key)
}

// InvalidSymbolNameError reports that a name violates the symbol-name rules
// for its stated purpose.
type InvalidSymbolNameError struct {
	Provenance Provenance
	Name       string
	Purpose    string
	Reason     string
}

func (e *InvalidSymbolNameError) Error() string {
	return fmt.Sprintf("%s: invalid %s %q: %s", e.Provenance, e.Purpose, e.Name, e.Reason)
}

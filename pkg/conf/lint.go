package conf

import (
	conferrors "mason-hq/bedrock/pkg/conf/errors"
	"mason-hq/bedrock/pkg/conf/node"
)

// ValidateSymbols walks a loaded tree and checks that every mapping key is a
// legal symbol name. All violations are accumulated and returned together;
// nil means the tree is clean.
func ValidateSymbols(tree *node.MappingNode) error {
	list := conferrors.NewList()
	validateMappingSymbols(tree, list)
	return list.ToError()
}

func validateMappingSymbols(m *node.MappingNode, list *conferrors.List) {
	for _, key := range m.Keys() {
		child, _ := m.Get(key)
		if err := m.AssertSymbolName(key, "key name", child, true); err != nil {
			list.Add(conferrors.Classify(err))
		}
		validateChildSymbols(child, list)
	}
}

func validateChildSymbols(n node.Node, list *conferrors.List) {
	switch v := n.(type) {
	case *node.MappingNode:
		validateMappingSymbols(v, list)
	case *node.SequenceNode:
		for i := 0; i < v.Len(); i++ {
			validateChildSymbols(v.At(i), list)
		}
	}
}

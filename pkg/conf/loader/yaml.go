package loader

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"

	conferrors "mason-hq/bedrock/pkg/conf/errors"
	"mason-hq/bedrock/pkg/conf/node"
)

// maxAliasDepth bounds alias expansion so that pathological anchor chains
// cannot recurse without limit.
const maxAliasDepth = 100

// treeBuilder converts the YAML parser's node form into the configuration
// node model, attaching the parser's per-node line and column to every entry.
type treeBuilder struct {
	file       *node.File
	aliasDepth int
}

// provenanceOf derives a provenance from a YAML node's reported position.
func (b *treeBuilder) provenanceOf(y *yaml.Node) node.Provenance {
	return node.Provenance{File: b.file, Line: y.Line, Column: y.Column}
}

// buildDocument unwraps the document node and requires a mapping at the top
// level.
func (b *treeBuilder) buildDocument(y *yaml.Node) (*node.MappingNode, error) {
	// An entirely empty file decodes to a zero node; treat it as an empty
	// mapping, as an empty definition file is valid.
	if y.Kind == 0 {
		return node.NewMappingNodeFromEntries(node.Provenance{File: b.file, Line: 1, Column: 1}, nil)
	}
	if y.Kind == yaml.DocumentNode {
		if len(y.Content) == 0 {
			// An empty document is an empty mapping at line 1.
			return node.NewMappingNodeFromEntries(node.Provenance{File: b.file, Line: 1, Column: 1}, nil)
		}
		y = y.Content[0]
	}

	// A document holding only a null scalar (e.g. a file of comments) is
	// treated as an empty mapping too.
	if y.Kind == yaml.ScalarNode && y.Tag == "!!null" {
		return node.NewMappingNodeFromEntries(b.provenanceOf(y), nil)
	}

	if y.Kind != yaml.MappingNode {
		return nil, &conferrors.Error{
			Category:   conferrors.CategoryStructure,
			Message:    "top level of a definition file must be a mapping",
			Provenance: b.provenanceOf(y),
		}
	}
	return b.buildMapping(y)
}

// buildNode converts a single YAML node into the matching variant.
func (b *treeBuilder) buildNode(y *yaml.Node) (node.Node, error) {
	switch y.Kind {
	case yaml.MappingNode:
		return b.buildMapping(y)
	case yaml.SequenceNode:
		return b.buildSequence(y)
	case yaml.ScalarNode:
		return b.buildScalar(y)
	case yaml.AliasNode:
		// Aliases are expanded by rebuilding the anchored subtree, so every
		// reference owns an independent copy.
		b.aliasDepth++
		defer func() { b.aliasDepth-- }()
		if b.aliasDepth > maxAliasDepth {
			return nil, &conferrors.Error{
				Category:   conferrors.CategorySyntax,
				Message:    "alias expansion too deep",
				Provenance: b.provenanceOf(y),
			}
		}
		return b.buildNode(y.Alias)
	default:
		return nil, &conferrors.Error{
			Category:   conferrors.CategorySyntax,
			Message:    fmt.Sprintf("unsupported YAML node kind %d", y.Kind),
			Provenance: b.provenanceOf(y),
		}
	}
}

func (b *treeBuilder) buildMapping(y *yaml.Node) (*node.MappingNode, error) {
	entries := make([]node.Entry, 0, len(y.Content)/2)
	for i := 0; i+1 < len(y.Content); i += 2 {
		keyNode := y.Content[i]
		valueNode := y.Content[i+1]

		if keyNode.Kind != yaml.ScalarNode || keyNode.Tag != "!!str" {
			return nil, &conferrors.Error{
				Category:   conferrors.CategoryStructure,
				Message:    "mapping keys must be plain strings",
				Provenance: b.provenanceOf(keyNode),
			}
		}

		child, err := b.buildNode(valueNode)
		if err != nil {
			return nil, err
		}
		entries = append(entries, node.Entry{Key: keyNode.Value, Value: child})
	}

	m, err := node.NewMappingNodeFromEntries(b.provenanceOf(y), entries)
	if err != nil {
		return nil, &conferrors.Error{
			Category:   conferrors.CategoryStructure,
			Message:    err.Error(),
			Provenance: b.provenanceOf(y),
		}
	}
	return m, nil
}

func (b *treeBuilder) buildSequence(y *yaml.Node) (*node.SequenceNode, error) {
	elements := make([]node.Node, 0, len(y.Content))
	for _, item := range y.Content {
		child, err := b.buildNode(item)
		if err != nil {
			return nil, err
		}
		elements = append(elements, child)
	}
	return node.NewSequenceNodeFromNodes(b.provenanceOf(y), elements), nil
}

func (b *treeBuilder) buildScalar(y *yaml.Node) (*node.ScalarNode, error) {
	var value any
	switch y.Tag {
	case "!!str":
		value = y.Value
	case "!!bool":
		v, err := strconv.ParseBool(y.Value)
		if err != nil {
			return nil, &conferrors.Error{
				Category:   conferrors.CategorySyntax,
				Message:    fmt.Sprintf("invalid boolean %q", y.Value),
				Provenance: b.provenanceOf(y),
			}
		}
		value = v
	case "!!int":
		v, err := strconv.Atoi(y.Value)
		if err != nil {
			return nil, &conferrors.Error{
				Category:   conferrors.CategorySyntax,
				Message:    fmt.Sprintf("invalid integer %q", y.Value),
				Provenance: b.provenanceOf(y),
			}
		}
		value = v
	case "!!null":
		value = nil
	default:
		return nil, &conferrors.Error{
			Category:   conferrors.CategorySyntax,
			Message:    fmt.Sprintf("unsupported scalar type %s; only strings, booleans and integers are allowed", y.Tag),
			Provenance: b.provenanceOf(y),
		}
	}

	s, err := node.NewScalarNode(b.provenanceOf(y), value)
	if err != nil {
		return nil, err
	}
	return s, nil
}

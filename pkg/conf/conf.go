package conf

import (
	"mason-hq/bedrock/pkg/conf/loader"
	"mason-hq/bedrock/pkg/conf/node"
)

// Load is a convenience function that reads and wraps a single definition
// file with a fresh loader.
func Load(path string) (*node.MappingNode, error) {
	l := loader.NewLoader(nil)
	return l.Load(path)
}

// LoadData is a convenience function that wraps an in-memory document. The
// display name stands in for a path in provenance.
func LoadData(data []byte, displayName string) (*node.MappingNode, error) {
	l := loader.NewLoader(nil)
	return l.LoadData(data, displayName)
}

// NewSyntheticFile produces an empty mapping rooted in a synthetic file, for
// configuration injected without an on-disk backing.
func NewSyntheticFile(filename string, project *node.Project) (*node.MappingNode, error) {
	return node.NewSyntheticFile(filename, project)
}

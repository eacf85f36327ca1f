package node

import (
	"fmt"

	"github.com/google/uuid"
)

// NewSyntheticFile produces an empty MappingNode whose provenance identifies
// a synthetic file: a source identity with no on-disk backing, used to inject
// configuration programmatically. The file receives a unique ID so that two
// synthetic files sharing a display name remain distinguishable. All
// descendants created under the returned mapping inherit the synthetic file.
//
// The optional project associates the synthetic file with the workspace that
// injected it, for resolution of relative identities.
func NewSyntheticFile(filename string, project *Project) (*MappingNode, error) {
	if filename == "" {
		return nil, fmt.Errorf("synthetic file requires a non-empty filename")
	}
	f := &File{
		Index:     -1,
		Name:      filename,
		Synthetic: true,
		ID:        uuid.NewString(),
		Project:   project,
	}
	prov := Provenance{File: f}
	return &MappingNode{
		base:    base{prov: prov},
		keys:    nil,
		entries: make(map[string]Node),
	}, nil
}

// NewSyntheticFileFromValues produces a synthetic file seeded with the given
// raw values, each wrapped into the matching node variant. Every descendant
// reports the synthetic file as its provenance.
func NewSyntheticFileFromValues(filename string, project *Project, values map[string]any) (*MappingNode, error) {
	root, err := NewSyntheticFile(filename, project)
	if err != nil {
		return nil, err
	}
	seeded, err := NewMappingNode(root.Provenance(), values)
	if err != nil {
		return nil, fmt.Errorf("synthetic file %q: %w", filename, err)
	}
	return seeded, nil
}

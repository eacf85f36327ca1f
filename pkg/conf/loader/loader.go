package loader

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	conferrors "mason-hq/bedrock/pkg/conf/errors"
	"mason-hq/bedrock/pkg/conf/node"
)

// Loader reads build-definition files and wraps them into provenance-aware
// node trees. A Loader maintains one file table for its lifetime; load the
// files of one session through the same Loader so their indices are
// consistent.
type Loader struct {
	files  *FileTable
	logger *slog.Logger
}

// NewLoader creates a loader. A nil logger falls back to slog.Default().
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{
		files:  NewFileTable(),
		logger: logger,
	}
}

// Files returns the loader's file table.
func (l *Loader) Files() *FileTable {
	return l.files
}

// Load reads the file at path and wraps it into a mapping node tree. The path
// is used as the display name in provenance.
func (l *Loader) Load(path string) (*node.MappingNode, error) {
	return l.LoadWithProject(path, nil)
}

// LoadWithProject is Load with an owning project recorded on the file
// identity.
func (l *Loader) LoadWithProject(path string, project *node.Project) (*node.MappingNode, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &conferrors.Error{
			Category: conferrors.CategoryIO,
			Message:  fmt.Sprintf("failed to read %q: %v", path, err),
		}
	}

	f := l.files.Add(path, project)
	tree, err := l.wrap(data, f)
	if err != nil {
		return nil, err
	}

	l.logger.Debug("loaded definition file",
		"path", path,
		"file_index", f.Index,
		"keys", tree.Len(),
	)
	return tree, nil
}

// LoadData wraps an in-memory document. The display name appears in
// provenance in place of a path.
func (l *Loader) LoadData(data []byte, displayName string) (*node.MappingNode, error) {
	f := l.files.Add(displayName, nil)
	return l.wrap(data, f)
}

// NewSyntheticFile produces an empty mapping rooted in a synthetic file
// registered in this loader's file table. See node.NewSyntheticFile for the
// untracked variant.
func (l *Loader) NewSyntheticFile(filename string, project *node.Project) (*node.MappingNode, error) {
	if filename == "" {
		return nil, fmt.Errorf("synthetic file requires a non-empty filename")
	}
	f := l.files.AddSynthetic(filename, project)
	return node.NewMappingNodeFromEntries(node.Provenance{File: f}, nil)
}

// wrap decodes YAML through the parser's node form and converts it, keeping
// the parser's per-node positions.
func (l *Loader) wrap(data []byte, f *node.File) (*node.MappingNode, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &conferrors.Error{
			Category:   conferrors.CategorySyntax,
			Message:    err.Error(),
			Provenance: node.Provenance{File: f},
		}
	}

	b := &treeBuilder{file: f}
	return b.buildDocument(&doc)
}

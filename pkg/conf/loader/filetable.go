package loader

import (
	"sync"

	"github.com/google/uuid"

	"mason-hq/bedrock/pkg/conf/node"
)

// FileTable assigns a stable index to every file a loading session touches,
// real or synthetic. Provenance records point back at the table's entries.
type FileTable struct {
	mu    sync.Mutex
	files []*node.File
}

// NewFileTable creates an empty file table.
func NewFileTable() *FileTable {
	return &FileTable{}
}

// Add registers a real file and returns its identity. Each call creates a new
// entry; the loader decides whether a path has been seen before.
func (t *FileTable) Add(name string, project *node.Project) *node.File {
	t.mu.Lock()
	defer t.mu.Unlock()

	f := &node.File{
		Index:   len(t.files),
		Name:    name,
		Project: project,
	}
	t.files = append(t.files, f)
	return f
}

// AddSynthetic registers a synthetic file identity. Synthetic files get a
// unique ID so that two with the same display name remain distinguishable.
func (t *FileTable) AddSynthetic(name string, project *node.Project) *node.File {
	t.mu.Lock()
	defer t.mu.Unlock()

	f := &node.File{
		Index:     len(t.files),
		Name:      name,
		Synthetic: true,
		ID:        uuid.NewString(),
		Project:   project,
	}
	t.files = append(t.files, f)
	return f
}

// Get returns the file at the given index, or nil if out of range.
func (t *FileTable) Get(index int) *node.File {
	t.mu.Lock()
	defer t.mu.Unlock()

	if index < 0 || index >= len(t.files) {
		return nil
	}
	return t.files[index]
}

// Len returns the number of registered files.
func (t *FileTable) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.files)
}

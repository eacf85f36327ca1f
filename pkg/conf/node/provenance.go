package node

import "fmt"

// Project identifies the workspace a configuration file belongs to. It is
// used to resolve the display identity of synthetic files relative to the
// project that injected them.
type Project struct {
	Name      string // Project name
	Directory string // Root directory of the project
}

// File identifies the source a node tree was built from. Real files are
// registered by the loader and receive a table index; synthetic files are
// created programmatically and carry a unique ID instead.
type File struct {
	Index     int      // Position in the loader's file table (-1 when untracked)
	Name      string   // Display name used in diagnostics
	Synthetic bool     // True when the file has no on-disk backing
	ID        string   // Unique identity for synthetic files (UUID), empty otherwise
	Project   *Project // Owning project, if known
}

// Provenance records where a node's data originated. It is set when the node
// is constructed and never changes afterwards; cloned nodes receive copies
// that point at the same logical File.
type Provenance struct {
	File   *File // Originating file identity
	Line   int   // Line number (1-based, 0 for synthetic roots)
	Column int   // Column number (1-based, 0 for synthetic roots)
}

// String returns the human-readable form of the provenance.
// Format: "file:line:column", or "file [synthetic]" for synthetic files.
func (p Provenance) String() string {
	if p.File == nil {
		return "<unknown>"
	}
	if p.File.Synthetic {
		return fmt.Sprintf("%s [synthetic]", p.File.Name)
	}
	return fmt.Sprintf("%s:%d:%d", p.File.Name, p.Line, p.Column)
}

// IsValid returns true if the provenance refers to a known file.
func (p Provenance) IsValid() bool {
	return p.File != nil && p.File.Name != ""
}

// IsSynthetic returns true if the provenance refers to a synthetic file.
func (p Provenance) IsSynthetic() bool {
	return p.File != nil && p.File.Synthetic
}

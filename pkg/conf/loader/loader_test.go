package loader

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	conferrors "mason-hq/bedrock/pkg/conf/errors"
	"mason-hq/bedrock/pkg/conf/node"
)

const sampleDoc = `kind: autotools
depends:
- base.yaml
- compiler.yaml
variables:
  prefix: /usr
  parallel: 4
  strict: true
`

func TestLoader_LoadData(t *testing.T) {
	l := NewLoader(nil)
	tree, err := l.LoadData([]byte(sampleDoc), "elements/app.yaml")
	if err != nil {
		t.Fatalf("LoadData() failed: %v", err)
	}

	kind, err := tree.GetString("kind")
	if err != nil {
		t.Fatalf("GetString(kind) failed: %v", err)
	}
	if kind != "autotools" {
		t.Errorf("kind = %q, want %q", kind, "autotools")
	}

	deps, err := tree.GetStringList("depends", nil)
	if err != nil {
		t.Fatalf("GetStringList(depends) failed: %v", err)
	}
	if diff := cmp.Diff([]string{"base.yaml", "compiler.yaml"}, deps); diff != "" {
		t.Errorf("depends mismatch (-want +got):\n%s", diff)
	}

	vars, err := tree.GetMapping("variables")
	if err != nil {
		t.Fatalf("GetMapping(variables) failed: %v", err)
	}
	if v, err := vars.GetInt("parallel"); err != nil || v != 4 {
		t.Errorf("parallel = %d, %v, want 4, nil", v, err)
	}
	if v, err := vars.GetBool("strict"); err != nil || v != true {
		t.Errorf("strict = %v, %v, want true, nil", v, err)
	}

	// Document order, not lexical order.
	want := []string{"kind", "depends", "variables"}
	if diff := cmp.Diff(want, tree.Keys()); diff != "" {
		t.Errorf("Keys() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoader_PerEntryPositions(t *testing.T) {
	l := NewLoader(nil)
	tree, err := l.LoadData([]byte(sampleDoc), "elements/app.yaml")
	if err != nil {
		t.Fatalf("LoadData() failed: %v", err)
	}

	// The root mapping starts at the first key.
	if prov := tree.Provenance(); prov.Line != 1 || prov.Column != 1 {
		t.Errorf("root provenance = %v, want line 1 col 1", prov)
	}
	if prov := tree.Provenance(); prov.String() != "elements/app.yaml:1:1" {
		t.Errorf("root provenance renders as %q", prov.String())
	}

	// "autotools" sits after "kind: " on line 1.
	kindNode, _ := tree.Get("kind")
	if prov := kindNode.Provenance(); prov.Line != 1 || prov.Column != 7 {
		t.Errorf("kind value provenance = %v, want line 1 col 7", prov)
	}

	// The first sequence element is on line 3.
	seq, err := tree.GetSequence("depends")
	if err != nil {
		t.Fatalf("GetSequence(depends) failed: %v", err)
	}
	if prov := seq.At(0).Provenance(); prov.Line != 3 || prov.Column != 3 {
		t.Errorf("first element provenance = %v, want line 3 col 3", prov)
	}
	if prov := seq.At(1).Provenance(); prov.Line != 4 {
		t.Errorf("second element provenance = %v, want line 4", prov)
	}

	// Nested mapping values carry their own positions.
	vars, err := tree.GetMapping("variables")
	if err != nil {
		t.Fatalf("GetMapping(variables) failed: %v", err)
	}
	prefixNode, _ := vars.Get("prefix")
	if prov := prefixNode.Provenance(); prov.Line != 6 || prov.Column != 11 {
		t.Errorf("prefix value provenance = %v, want line 6 col 11", prov)
	}
}

func TestLoader_Load(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "app.yaml")
	if err := os.WriteFile(path, []byte(sampleDoc), 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	l := NewLoader(nil)
	tree, err := l.Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if got := tree.Provenance().File.Name; got != path {
		t.Errorf("provenance file = %q, want %q", got, path)
	}
	if l.Files().Len() != 1 {
		t.Errorf("file table size = %d, want 1", l.Files().Len())
	}
	if tree.Provenance().File.Index != 0 {
		t.Errorf("file index = %d, want 0", tree.Provenance().File.Index)
	}
}

func TestLoader_Load_MissingFile(t *testing.T) {
	l := NewLoader(nil)
	_, err := l.Load("does/not/exist.yaml")
	var diag *conferrors.Error
	if !errors.As(err, &diag) {
		t.Fatalf("Load() error = %T, want *conferrors.Error", err)
	}
	if diag.Category != conferrors.CategoryIO {
		t.Errorf("Category = %q, want %q", diag.Category, conferrors.CategoryIO)
	}
}

func TestLoader_FileIndicesIncrement(t *testing.T) {
	l := NewLoader(nil)
	a, err := l.LoadData([]byte("x: 1\n"), "a.yaml")
	if err != nil {
		t.Fatalf("LoadData(a) failed: %v", err)
	}
	b, err := l.LoadData([]byte("y: 2\n"), "b.yaml")
	if err != nil {
		t.Fatalf("LoadData(b) failed: %v", err)
	}
	if a.Provenance().File.Index != 0 || b.Provenance().File.Index != 1 {
		t.Errorf("file indices = %d, %d, want 0, 1",
			a.Provenance().File.Index, b.Provenance().File.Index)
	}
}

func TestLoader_TopLevelMustBeMapping(t *testing.T) {
	l := NewLoader(nil)
	_, err := l.LoadData([]byte("- a\n- b\n"), "list.yaml")
	var diag *conferrors.Error
	if !errors.As(err, &diag) {
		t.Fatalf("error = %T, want *conferrors.Error", err)
	}
	if diag.Category != conferrors.CategoryStructure {
		t.Errorf("Category = %q, want %q", diag.Category, conferrors.CategoryStructure)
	}
	if diag.Provenance.Line != 1 {
		t.Errorf("provenance line = %d, want 1", diag.Provenance.Line)
	}
}

func TestLoader_EmptyDocuments(t *testing.T) {
	l := NewLoader(nil)

	tree, err := l.LoadData(nil, "empty.yaml")
	if err != nil {
		t.Fatalf("LoadData(empty) failed: %v", err)
	}
	if tree.Len() != 0 {
		t.Errorf("empty file Len() = %d, want 0", tree.Len())
	}

	tree, err = l.LoadData([]byte("# only a comment\n"), "comment.yaml")
	if err != nil {
		t.Fatalf("LoadData(comment) failed: %v", err)
	}
	if tree.Len() != 0 {
		t.Errorf("comment-only file Len() = %d, want 0", tree.Len())
	}
}

func TestLoader_SyntaxError(t *testing.T) {
	l := NewLoader(nil)
	_, err := l.LoadData([]byte("kind: [unclosed\n"), "bad.yaml")
	var diag *conferrors.Error
	if !errors.As(err, &diag) {
		t.Fatalf("error = %T, want *conferrors.Error", err)
	}
	if diag.Category != conferrors.CategorySyntax {
		t.Errorf("Category = %q, want %q", diag.Category, conferrors.CategorySyntax)
	}
}

func TestLoader_UnsupportedScalarTypes(t *testing.T) {
	l := NewLoader(nil)
	_, err := l.LoadData([]byte("ratio: 1.5\n"), "float.yaml")
	var diag *conferrors.Error
	if !errors.As(err, &diag) {
		t.Fatalf("error = %T, want *conferrors.Error", err)
	}
	if diag.Category != conferrors.CategorySyntax {
		t.Errorf("Category = %q, want %q", diag.Category, conferrors.CategorySyntax)
	}
	if diag.Provenance.Line != 1 || diag.Provenance.Column != 8 {
		t.Errorf("provenance = %v, want line 1 col 8", diag.Provenance)
	}
}

func TestLoader_NullValues(t *testing.T) {
	l := NewLoader(nil)
	tree, err := l.LoadData([]byte("kind:\n"), "null.yaml")
	if err != nil {
		t.Fatalf("LoadData() failed: %v", err)
	}
	scalar, err := tree.GetScalar("kind")
	if err != nil {
		t.Fatalf("GetScalar(kind) failed: %v", err)
	}
	if !scalar.IsNull() {
		t.Error("IsNull() = false, want true")
	}
	if _, err := scalar.AsString(); err == nil {
		t.Error("AsString() on null succeeded, want TypeMismatchError")
	}
}

func TestLoader_DuplicateKeys(t *testing.T) {
	l := NewLoader(nil)
	_, err := l.LoadData([]byte("a: 1\na: 2\n"), "dup.yaml")
	if err == nil {
		t.Fatal("duplicate keys accepted, want error")
	}
	var diag *conferrors.Error
	if !errors.As(err, &diag) {
		t.Fatalf("error = %T, want *conferrors.Error", err)
	}
	if diag.Category != conferrors.CategoryStructure {
		t.Errorf("Category = %q, want %q", diag.Category, conferrors.CategoryStructure)
	}
}

func TestLoader_AliasesExpandToIndependentCopies(t *testing.T) {
	doc := `base: &opts
  flags:
  - -O2
other: *opts
`
	l := NewLoader(nil)
	tree, err := l.LoadData([]byte(doc), "alias.yaml")
	if err != nil {
		t.Fatalf("LoadData() failed: %v", err)
	}

	baseM, err := tree.GetMapping("base")
	if err != nil {
		t.Fatalf("GetMapping(base) failed: %v", err)
	}
	otherM, err := tree.GetMapping("other")
	if err != nil {
		t.Fatalf("GetMapping(other) failed: %v", err)
	}
	if baseM == otherM {
		t.Fatal("alias produced a shared subtree")
	}

	baseFlags, err := baseM.GetStringList("flags", nil)
	if err != nil {
		t.Fatalf("base flags failed: %v", err)
	}
	otherFlags, err := otherM.GetStringList("flags", nil)
	if err != nil {
		t.Fatalf("other flags failed: %v", err)
	}
	if diff := cmp.Diff(baseFlags, otherFlags); diff != "" {
		t.Errorf("alias content mismatch:\n%s", diff)
	}
}

func TestLoader_NewSyntheticFile(t *testing.T) {
	l := NewLoader(nil)
	project := &node.Project{Name: "core", Directory: "/work/core"}

	m, err := l.NewSyntheticFile("injected.yaml", project)
	if err != nil {
		t.Fatalf("NewSyntheticFile() failed: %v", err)
	}
	prov := m.Provenance()
	if !prov.IsSynthetic() {
		t.Error("IsSynthetic() = false, want true")
	}
	if prov.File.Index != 0 {
		t.Errorf("synthetic file index = %d, want 0", prov.File.Index)
	}
	if prov.File.ID == "" {
		t.Error("synthetic file has no ID")
	}
	if l.Files().Get(0) != prov.File {
		t.Error("synthetic file not registered in the table")
	}

	if _, err := l.NewSyntheticFile("", nil); err == nil {
		t.Error("NewSyntheticFile(\"\") succeeded, want error")
	}
}

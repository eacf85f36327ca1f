package node

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMappingNode_GetStringList(t *testing.T) {
	m, err := NewMappingNode(testProvenance(1, 1), map[string]any{
		"a": []any{"x", "y"},
	})
	if err != nil {
		t.Fatalf("NewMappingNode() failed: %v", err)
	}

	got, err := m.GetStringList("a", nil)
	if err != nil {
		t.Fatalf("GetStringList(a) failed: %v", err)
	}
	if diff := cmp.Diff([]string{"x", "y"}, got); diff != "" {
		t.Errorf("GetStringList(a) mismatch (-want +got):\n%s", diff)
	}

	// Absent key with a default returns the default.
	got, err = m.GetStringList("b", []string{"z"})
	if err != nil {
		t.Fatalf("GetStringList(b, default) failed: %v", err)
	}
	if diff := cmp.Diff([]string{"z"}, got); diff != "" {
		t.Errorf("GetStringList(b, default) mismatch (-want +got):\n%s", diff)
	}

	// An explicit empty default is still a default, not a missing key.
	got, err = m.GetStringList("b", []string{})
	if err != nil {
		t.Fatalf("GetStringList(b, empty default) failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("GetStringList(b, empty default) = %v, want empty", got)
	}

	// Absent key without default fails with MissingKeyError at the mapping.
	_, err = m.GetStringList("b", nil)
	var missing *MissingKeyError
	if !errors.As(err, &missing) {
		t.Fatalf("GetStringList(b) error = %T, want *MissingKeyError", err)
	}
	if missing.Key != "b" {
		t.Errorf("MissingKeyError.Key = %q, want %q", missing.Key, "b")
	}
	if missing.Provenance != m.Provenance() {
		t.Errorf("MissingKeyError provenance = %v, want %v", missing.Provenance, m.Provenance())
	}
}

func TestMappingNode_GetStringList_TypeMismatch(t *testing.T) {
	m, err := NewMappingNode(testProvenance(1, 1), map[string]any{
		"a": "not-a-list",
	})
	if err != nil {
		t.Fatalf("NewMappingNode() failed: %v", err)
	}

	_, err = m.GetStringList("a", nil)
	var mismatch *TypeMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("GetStringList(a) error = %T, want *TypeMismatchError", err)
	}
	if mismatch.Expected != KindSequence {
		t.Errorf("expected kind = %q, want %q", mismatch.Expected, KindSequence)
	}
}

func TestMappingNode_ScalarAccessors(t *testing.T) {
	m, err := NewMappingNode(testProvenance(2, 1), map[string]any{
		"kind":    "autotools",
		"strict":  true,
		"workers": 4,
	})
	if err != nil {
		t.Fatalf("NewMappingNode() failed: %v", err)
	}

	if got, err := m.GetString("kind"); err != nil || got != "autotools" {
		t.Errorf("GetString(kind) = %q, %v, want %q, nil", got, err, "autotools")
	}
	if got, err := m.GetString("missing", "fallback"); err != nil || got != "fallback" {
		t.Errorf("GetString(missing, fallback) = %q, %v, want %q, nil", got, err, "fallback")
	}
	if _, err := m.GetString("missing"); err == nil {
		t.Error("GetString(missing) succeeded, want MissingKeyError")
	}

	if got, err := m.GetBool("strict"); err != nil || got != true {
		t.Errorf("GetBool(strict) = %v, %v, want true, nil", got, err)
	}
	if got, err := m.GetBool("missing", false); err != nil || got != false {
		t.Errorf("GetBool(missing, false) = %v, %v, want false, nil", got, err)
	}

	if got, err := m.GetInt("workers"); err != nil || got != 4 {
		t.Errorf("GetInt(workers) = %d, %v, want 4, nil", got, err)
	}
	if got, err := m.GetInt("missing", 8); err != nil || got != 8 {
		t.Errorf("GetInt(missing, 8) = %d, %v, want 8, nil", got, err)
	}
}

func TestMappingNode_NestedContainers(t *testing.T) {
	m, err := NewMappingNode(testProvenance(1, 1), map[string]any{
		"config": map[string]any{
			"targets": []any{"all"},
		},
	})
	if err != nil {
		t.Fatalf("NewMappingNode() failed: %v", err)
	}

	nested, err := m.GetMapping("config")
	if err != nil {
		t.Fatalf("GetMapping(config) failed: %v", err)
	}
	targets, err := nested.GetSequence("targets")
	if err != nil {
		t.Fatalf("GetSequence(targets) failed: %v", err)
	}
	if targets.Len() != 1 {
		t.Errorf("targets.Len() = %d, want 1", targets.Len())
	}

	// Wrong container kinds are rejected with the value's location.
	if _, err := m.GetSequence("config"); err == nil {
		t.Error("GetSequence(config) succeeded, want TypeMismatchError")
	}
	if _, err := nested.GetMapping("targets"); err == nil {
		t.Error("GetMapping(targets) succeeded, want TypeMismatchError")
	}
}

func TestMappingNode_KeysSortedForRawMaps(t *testing.T) {
	m, err := NewMappingNode(testProvenance(1, 1), map[string]any{
		"zeta": 1, "alpha": 2, "mid": 3,
	})
	if err != nil {
		t.Fatalf("NewMappingNode() failed: %v", err)
	}
	want := []string{"alpha", "mid", "zeta"}
	if diff := cmp.Diff(want, m.Keys()); diff != "" {
		t.Errorf("Keys() mismatch (-want +got):\n%s", diff)
	}
}

func TestNewMappingNodeFromEntries(t *testing.T) {
	prov := testProvenance(1, 1)
	a, _ := NewScalarNode(testProvenance(2, 3), "x")
	b, _ := NewScalarNode(testProvenance(3, 3), "y")

	m, err := NewMappingNodeFromEntries(prov, []Entry{
		{Key: "second", Value: b},
		{Key: "first", Value: a},
	})
	if err != nil {
		t.Fatalf("NewMappingNodeFromEntries() failed: %v", err)
	}

	// Insertion order is preserved, not sorted.
	want := []string{"second", "first"}
	if diff := cmp.Diff(want, m.Keys()); diff != "" {
		t.Errorf("Keys() mismatch (-want +got):\n%s", diff)
	}

	// Duplicate keys are rejected.
	_, err = NewMappingNodeFromEntries(prov, []Entry{
		{Key: "k", Value: a},
		{Key: "k", Value: b},
	})
	if err == nil {
		t.Error("duplicate key accepted, want error")
	}
}

func TestNewMappingNode_RejectsUnsupportedValues(t *testing.T) {
	_, err := NewMappingNode(testProvenance(1, 1), map[string]any{
		"bad": 1.5,
	})
	if err == nil {
		t.Error("NewMappingNode with float succeeded, want error")
	}
}

func TestMappingNode_EntriesInheritProvenance(t *testing.T) {
	prov := testProvenance(6, 2)
	m, err := NewMappingNode(prov, map[string]any{"k": "v"})
	if err != nil {
		t.Fatalf("NewMappingNode() failed: %v", err)
	}
	child, ok := m.Get("k")
	if !ok {
		t.Fatal("Get(k) missing")
	}
	if child.Provenance() != prov {
		t.Errorf("child provenance = %v, want %v", child.Provenance(), prov)
	}
}

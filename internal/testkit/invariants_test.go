package testkit

import (
	"testing"

	"pathfinder/internal/arena"
)

func TestSampleTreeHoldsInvariants(t *testing.T) {
	tree, ids := SampleTree()
	if err := CheckTreeInvariants(tree); err != nil {
		t.Fatalf("invariants: %v", err)
	}
	if got := tree.FormatTree(func(s string) string { return s }); got != SampleRendering {
		t.Fatalf("rendering mismatch:\n%s", got)
	}
	if len(ids) != tree.Len() {
		t.Fatalf("ids = %d, nodes = %d", len(ids), tree.Len())
	}
}

func TestEmptyTreeHoldsInvariants(t *testing.T) {
	if err := CheckTreeInvariants(arena.New[int]()); err != nil {
		t.Fatalf("invariants: %v", err)
	}
	if err := CheckTreeInvariants[int](nil); err == nil {
		t.Fatalf("expected error for nil tree")
	}
}

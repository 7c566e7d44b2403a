package arena

import (
	"errors"
	"slices"
	"testing"
)

func TestRawRoundTrip(t *testing.T) {
	tr, ids := sampleTree(t)
	raw := tr.Raw()

	back, err := FromRaw(raw)
	if err != nil {
		t.Fatalf("FromRaw: %v", err)
	}
	if !slices.Equal(tr.DFS(), back.DFS()) || !slices.Equal(tr.BFS(), back.BFS()) {
		t.Fatalf("traversals differ after round trip")
	}
	if back.Get(ids["b1"]) != "b1" {
		t.Fatalf("handle b1 reads %q after round trip", back.Get(ids["b1"]))
	}
	if back.Len() != tr.Len() {
		t.Fatalf("Len = %d, want %d", back.Len(), tr.Len())
	}

	// the copy is independent of the source tree
	raw.Slots[ids["a"]].Children[0] = ids["b1"]
	if err := tr.Validate(); err != nil {
		t.Fatalf("source tree affected by raw edit: %v", err)
	}
	back.AddChild(ids["b1"], "b2")
	if tr.Len() != 6 {
		t.Fatalf("source tree grew with its copy")
	}
}

func TestFromRawEmpty(t *testing.T) {
	back, err := FromRaw(Raw[string]{})
	if err != nil {
		t.Fatalf("FromRaw(empty): %v", err)
	}
	if back.Len() != 0 || back.DFS() != nil {
		t.Fatalf("expected empty tree")
	}
	back.SetRoot("r")

	back, err = FromRaw(New[string]().Raw())
	if err != nil {
		t.Fatalf("FromRaw(new): %v", err)
	}
	if _, ok := back.Root(); ok {
		t.Fatalf("expected no root")
	}
}

func TestFromRawRejectsCorruption(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(r *Raw[string])
	}{
		{"sentinel used", func(r *Raw[string]) { r.Slots[0].Used = true }},
		{"root missing", func(r *Raw[string]) { r.Root = 99 }},
		{"root with parent", func(r *Raw[string]) { r.Slots[1].Parent = 2 }},
		{"dead parent", func(r *Raw[string]) { r.Slots[3].Parent = 42 }},
		{"orphan", func(r *Raw[string]) { r.Slots[6].Parent = NoNodeID }},
		{"listed twice", func(r *Raw[string]) {
			r.Slots[2].Children = append(r.Slots[2].Children, 3)
		}},
		{"not listed", func(r *Raw[string]) { r.Slots[5].Children = nil }},
		{"wrong back link", func(r *Raw[string]) { r.Slots[4].Parent = 5 }},
		{"dead child", func(r *Raw[string]) {
			r.Slots[6].Children = []NodeID{77}
		}},
		{"cycle", func(r *Raw[string]) {
			// a <-> a1 detached from root
			r.Slots[1].Children = []NodeID{5}
			r.Slots[2].Parent = 3
			r.Slots[3].Children = []NodeID{2}
		}},
		{"live without root", func(r *Raw[string]) { r.Root = NoNodeID }},
		{"unused slot with links", func(r *Raw[string]) {
			r.Slots = append(r.Slots, RawSlot[string]{Parent: 1})
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tr, _ := sampleTree(t)
			raw := tr.Raw()
			tc.mutate(&raw)
			if _, err := FromRaw(raw); !errors.Is(err, ErrCorrupt) {
				t.Fatalf("FromRaw error = %v, want ErrCorrupt", err)
			}
		})
	}
}

func TestValidateLiveTree(t *testing.T) {
	tr, _ := sampleTree(t)
	if err := tr.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if err := New[int]().Validate(); err != nil {
		t.Fatalf("Validate(empty): %v", err)
	}
}

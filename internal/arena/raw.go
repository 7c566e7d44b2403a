package arena

import (
	"fmt"
	"slices"
)

// RawSlot is the serialisable form of one arena slot.
type RawSlot[T any] struct {
	Used     bool     `msgpack:"used"`
	Value    T        `msgpack:"value"`
	Parent   NodeID   `msgpack:"parent"`
	Children []NodeID `msgpack:"children"`
}

// Raw is the serialisable form of a Tree: its slot sequence (including the
// reserved slot 0) and the root handle. Handles stay stable across a
// Raw/FromRaw round trip.
type Raw[T any] struct {
	Slots []RawSlot[T] `msgpack:"slots"`
	Root  NodeID       `msgpack:"root"`
}

// Raw returns a deep copy of the tree's contents.
func (t *Tree[T]) Raw() Raw[T] {
	raw := Raw[T]{
		Slots: make([]RawSlot[T], len(t.slots)),
		Root:  t.root,
	}
	for i, s := range t.slots {
		raw.Slots[i] = RawSlot[T]{
			Used:     s.used,
			Value:    s.node.value,
			Parent:   s.node.parent,
			Children: slices.Clone(s.node.children),
		}
	}
	return raw
}

// FromRaw rebuilds a tree from raw contents. Contents that break a tree
// invariant are rejected with an error wrapping ErrCorrupt.
func FromRaw[T any](raw Raw[T]) (*Tree[T], error) {
	t := &Tree[T]{root: raw.Root}
	if len(raw.Slots) == 0 {
		if raw.Root.IsValid() {
			return nil, fmt.Errorf("%w: root %d without slots", ErrCorrupt, raw.Root)
		}
		t.slots = make([]slot[T], 1)
		return t, nil
	}
	t.slots = make([]slot[T], len(raw.Slots))
	for i, rs := range raw.Slots {
		t.slots[i] = slot[T]{
			used: rs.Used,
			node: node[T]{
				value:    rs.Value,
				parent:   rs.Parent,
				children: slices.Clone(rs.Children),
			},
		}
		if rs.Used {
			t.live++
		}
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// Validate checks the structural invariants: the sentinel slot is unused,
// every live non-root node is listed exactly once by its live parent, the
// root has no parent, and every live node is reachable from the root
// without cycles.
func (t *Tree[T]) Validate() error {
	if len(t.slots) == 0 || t.slots[0].used {
		return fmt.Errorf("%w: sentinel slot in use", ErrCorrupt)
	}
	if !t.root.IsValid() {
		if t.live != 0 {
			return fmt.Errorf("%w: %d live nodes without a root", ErrCorrupt, t.live)
		}
		return nil
	}
	if !t.Contains(t.root) {
		return fmt.Errorf("%w: root %d is not a live node", ErrCorrupt, t.root)
	}
	if p := t.slots[t.root].node.parent; p.IsValid() {
		return fmt.Errorf("%w: root %d has parent %d", ErrCorrupt, t.root, p)
	}

	for i := 1; i < len(t.slots); i++ {
		s := &t.slots[i]
		if !s.used {
			if s.node.parent.IsValid() || len(s.node.children) > 0 {
				return fmt.Errorf("%w: unused slot %d carries links", ErrCorrupt, i)
			}
			continue
		}
		id := NodeID(i)
		if id == t.root {
			continue
		}
		parent := s.node.parent
		if !parent.IsValid() {
			return fmt.Errorf("%w: node %d has no parent", ErrCorrupt, id)
		}
		if !t.Contains(parent) {
			return fmt.Errorf("%w: node %d has dead parent %d", ErrCorrupt, id, parent)
		}
		listed := 0
		for _, c := range t.slots[parent].node.children {
			if c == id {
				listed++
			}
		}
		if listed != 1 {
			return fmt.Errorf("%w: node %d listed %d times by parent %d", ErrCorrupt, id, listed, parent)
		}
	}

	visited := make([]bool, len(t.slots))
	stack := []NodeID{t.root}
	reached := 0
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[id] {
			return fmt.Errorf("%w: node %d reached twice", ErrCorrupt, id)
		}
		visited[id] = true
		reached++
		for _, c := range t.slots[id].node.children {
			if !t.Contains(c) {
				return fmt.Errorf("%w: node %d lists dead child %d", ErrCorrupt, id, c)
			}
			if t.slots[c].node.parent != id {
				return fmt.Errorf("%w: child %d of %d points at parent %d", ErrCorrupt, c, id, t.slots[c].node.parent)
			}
			stack = append(stack, c)
		}
	}
	if reached != t.live {
		return fmt.Errorf("%w: %d of %d live nodes reachable from root", ErrCorrupt, reached, t.live)
	}
	return nil
}

package arena

import (
	"fmt"
	"iter"

	"fortio.org/safecast"
)

type node[T any] struct {
	value    T
	parent   NodeID
	children []NodeID
}

type slot[T any] struct {
	used bool
	node node[T]
}

// Tree is a rooted tree whose nodes live in a flat, append-only arena.
// Nodes are addressed by NodeID; parent and child links are IDs, never
// pointers, so the Tree is the single owner of every node.
//
// Slots are never reclaimed, which keeps every issued NodeID valid for the
// lifetime of the Tree. A Tree is not safe for concurrent use.
type Tree[T any] struct {
	slots []slot[T]
	root  NodeID
	live  int
}

// New creates an empty tree.
func New[T any]() *Tree[T] {
	return NewWithCapacity[T](0)
}

// NewWithCapacity creates an empty tree with room for capHint nodes.
func NewWithCapacity[T any](capHint uint32) *Tree[T] {
	if capHint == 0 {
		capHint = 16
	}
	return &Tree[T]{
		slots: make([]slot[T], 1, int(capHint)+1), // index 0 reserved for NoNodeID
	}
}

// SetRoot allocates the root node and returns its ID.
// It panics with ErrRootExists if the tree already has a root.
func (t *Tree[T]) SetRoot(value T) NodeID {
	if t.root.IsValid() {
		panic(fmt.Errorf("arena.SetRoot: %w (root=%d)", ErrRootExists, t.root))
	}
	id := t.alloc(value, NoNodeID)
	t.root = id
	return id
}

// AddChild appends a new node as the last child of parent and returns its ID.
// It panics with ErrInvalidNode if parent is not a live node of this tree.
func (t *Tree[T]) AddChild(parent NodeID, value T) NodeID {
	t.mustExist(parent)
	id := t.alloc(value, parent)
	p := &t.slots[parent].node
	p.children = append(p.children, id)
	return id
}

// Get returns a copy of the payload stored at id.
func (t *Tree[T]) Get(id NodeID) T {
	return t.node(id).value
}

// GetMut returns a pointer to the payload stored at id.
// The pointer is only valid until the next SetRoot or AddChild call, which
// may move the arena storage; use Update or Set to keep writes safe across
// allocations.
func (t *Tree[T]) GetMut(id NodeID) *T {
	return &t.node(id).value
}

// Set replaces the payload stored at id.
func (t *Tree[T]) Set(id NodeID, value T) {
	t.node(id).value = value
}

// Update calls fn with a pointer to the payload stored at id.
func (t *Tree[T]) Update(id NodeID, fn func(*T)) {
	n := t.node(id)
	if fn != nil {
		fn(&n.value)
	}
}

// Parent returns the parent of id, or false if id is the root.
func (t *Tree[T]) Parent(id NodeID) (NodeID, bool) {
	p := t.node(id).parent
	return p, p.IsValid()
}

// Children yields the children of id in insertion order.
// The sequence reads the arena lazily and can be ranged over repeatedly.
func (t *Tree[T]) Children(id NodeID) iter.Seq[NodeID] {
	t.mustExist(id)
	return func(yield func(NodeID) bool) {
		// re-read on every iteration so the sequence reflects later additions
		for _, child := range t.slots[id].node.children {
			if !yield(child) {
				return
			}
		}
	}
}

// ChildCount reports how many children id has.
func (t *Tree[T]) ChildCount(id NodeID) int {
	return len(t.node(id).children)
}

// Root returns the root ID, or false for an empty tree.
func (t *Tree[T]) Root() (NodeID, bool) {
	return t.root, t.root.IsValid()
}

// Len reports the number of live nodes.
func (t *Tree[T]) Len() int { return t.live }

// Contains reports whether id refers to a live node of this tree.
func (t *Tree[T]) Contains(id NodeID) bool {
	return id.IsValid() && int64(id) < int64(len(t.slots)) && t.slots[id].used
}

func (t *Tree[T]) alloc(value T, parent NodeID) NodeID {
	index, err := safecast.Conv[uint32](len(t.slots))
	if err != nil {
		panic(fmt.Errorf("tree arena overflow: %w", err))
	}
	id := NodeID(index)
	t.slots = append(t.slots, slot[T]{
		used: true,
		node: node[T]{value: value, parent: parent},
	})
	t.live++
	return id
}

func (t *Tree[T]) node(id NodeID) *node[T] {
	t.mustExist(id)
	return &t.slots[id].node
}

func (t *Tree[T]) mustExist(id NodeID) {
	if !t.Contains(id) {
		panic(fmt.Errorf("%w: %d (slots=%d)", ErrInvalidNode, id, len(t.slots)-1))
	}
}

package arena

// DFS returns every node reachable from the root in pre-order: a node
// precedes its subtree and siblings are visited in insertion order.
// It returns nil for an empty tree.
func (t *Tree[T]) DFS() []NodeID {
	if !t.root.IsValid() {
		return nil
	}
	out := make([]NodeID, 0, t.live)
	stack := []NodeID{t.root}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		out = append(out, id)

		children := t.slots[id].node.children
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, children[i])
		}
	}
	return out
}

// BFS returns every node reachable from the root in level order.
// It returns nil for an empty tree.
func (t *Tree[T]) BFS() []NodeID {
	if !t.root.IsValid() {
		return nil
	}
	out := make([]NodeID, 0, t.live)
	queue := []NodeID{t.root}
	for head := 0; head < len(queue); head++ {
		id := queue[head]
		out = append(out, id)
		queue = append(queue, t.slots[id].node.children...)
	}
	return out
}

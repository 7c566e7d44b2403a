package testkit

import (
	"fmt"

	"pathfinder/internal/arena"
)

// CheckTreeInvariants verifies a tree through its public API only:
//  1. DFS and BFS visit the same set of nodes, each exactly once, and
//     together cover every live node
//  2. every non-root node appears exactly once among its parent's children
//  3. following parents from any node reaches the root in fewer than Len steps
//  4. DFS is pre-order: a node is visited after its parent
func CheckTreeInvariants[T any](t *arena.Tree[T]) error {
	if t == nil {
		return fmt.Errorf("nil tree")
	}
	root, ok := t.Root()
	dfs, bfs := t.DFS(), t.BFS()
	if !ok {
		if len(dfs) != 0 || len(bfs) != 0 || t.Len() != 0 {
			return fmt.Errorf("tree without root has %d nodes", t.Len())
		}
		return nil
	}
	if len(dfs) != t.Len() || len(bfs) != t.Len() {
		return fmt.Errorf("traversals cover dfs=%d bfs=%d of %d nodes", len(dfs), len(bfs), t.Len())
	}
	if dfs[0] != root || bfs[0] != root {
		return fmt.Errorf("traversals do not start at root %d", root)
	}

	seen := make(map[arena.NodeID]int, len(dfs))
	for i, id := range dfs {
		if _, dup := seen[id]; dup {
			return fmt.Errorf("dfs visits %d twice", id)
		}
		seen[id] = i
	}
	for _, id := range bfs {
		if _, ok := seen[id]; !ok {
			return fmt.Errorf("bfs visits %d which dfs does not", id)
		}
	}

	for _, id := range dfs {
		parent, hasParent := t.Parent(id)
		if id == root {
			if hasParent {
				return fmt.Errorf("root %d has parent %d", id, parent)
			}
			continue
		}
		if !hasParent {
			return fmt.Errorf("node %d has no parent", id)
		}
		if seen[parent] >= seen[id] {
			return fmt.Errorf("dfs visits %d before its parent %d", id, parent)
		}
		listed := 0
		for c := range t.Children(parent) {
			if c == id {
				listed++
			}
		}
		if listed != 1 {
			return fmt.Errorf("node %d listed %d times under %d", id, listed, parent)
		}

		steps, cur := 0, id
		for cur != root {
			cur, _ = t.Parent(cur)
			steps++
			if steps >= t.Len() {
				return fmt.Errorf("node %d does not reach the root", id)
			}
		}
	}
	return nil
}

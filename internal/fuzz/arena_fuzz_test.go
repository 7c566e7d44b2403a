package fuzztests

import (
	"errors"
	"strconv"
	"testing"

	"pathfinder/internal/arena"
	"pathfinder/internal/testkit"
)

// applyOps interprets program as pairs of (op, arg) bytes:
//
//	0: add a child under the arg'th node in DFS order (SetRoot if empty)
//	1: SetRoot, which must fault once a root exists
//	2: touch handle arg+Len, which must fault as invalid
//	3: overwrite the arg'th node's payload
func applyOps(t *testing.T, program []byte) *arena.Tree[int] {
	tree := arena.New[int]()
	next := 0
	for i := 0; i+1 < len(program); i += 2 {
		op, arg := program[i]%4, int(program[i+1])
		ids := tree.DFS()
		switch op {
		case 0:
			next++
			if len(ids) == 0 {
				tree.SetRoot(next)
				continue
			}
			tree.AddChild(ids[arg%len(ids)], next)
		case 1:
			if len(ids) == 0 {
				next++
				tree.SetRoot(next)
				continue
			}
			mustFault(t, arena.ErrRootExists, func() { tree.SetRoot(-1) })
		case 2:
			bad := arena.NodeID(uint32(tree.Len() + 1 + arg))
			mustFault(t, arena.ErrInvalidNode, func() { tree.Get(bad) })
			mustFault(t, arena.ErrInvalidNode, func() { tree.AddChild(bad, -1) })
		case 3:
			if len(ids) == 0 {
				continue
			}
			next++
			tree.Set(ids[arg%len(ids)], next)
		}
	}
	return tree
}

func mustFault(t *testing.T, want error, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, want) {
			t.Fatalf("expected %v fault, got %v", want, r)
		}
	}()
	fn()
}

func FuzzArenaOps(f *testing.F) {
	addOpSeeds(f)
	f.Fuzz(func(t *testing.T, program []byte) {
		if len(program) > maxFuzzInput {
			program = program[:maxFuzzInput]
		}
		tree := applyOps(t, program)
		if err := testkit.CheckTreeInvariants(tree); err != nil {
			t.Fatalf("invariants: %v", err)
		}
		if len(tree.DFS()) != tree.Len() || len(tree.BFS()) != tree.Len() {
			t.Fatalf("traversals must visit every node once")
		}

		clone, err := arena.FromRaw(tree.Raw())
		if err != nil {
			t.Fatalf("FromRaw of a valid tree: %v", err)
		}
		label := strconv.Itoa
		if got, want := clone.FormatTree(label), tree.FormatTree(label); got != want {
			t.Fatalf("round trip changed rendering:\n%s\nvs\n%s", got, want)
		}
	})
}

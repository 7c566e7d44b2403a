package fuzztests

import (
	"bytes"
	"testing"

	"pathfinder/internal/arena"
	"pathfinder/internal/fswalk"
	"pathfinder/internal/snapshot"
)

const maxFuzzInput = 1 << 12

// opSeeds are arena programs: see applyOps for the encoding.
var opSeeds = [][]byte{
	{},
	{0, 0},
	{0, 0, 0, 1, 0, 1, 0, 2},
	{0, 0, 0, 0, 0, 0, 0, 0, 1, 0, 2, 5, 3, 1},
	{1, 0, 0, 3, 2, 0, 0, 3},
}

func addOpSeeds(f *testing.F) {
	for _, seed := range opSeeds {
		f.Add(seed)
	}
}

// addSnapshotSeeds adds a valid encoded snapshot and a few truncations of
// it so the fuzzer starts close to the interesting format.
func addSnapshotSeeds(f *testing.F) {
	tree := arena.New[fswalk.Entry]()
	root := tree.SetRoot(fswalk.Entry{Name: "proj", Path: "proj", Kind: fswalk.KindDir})
	sub := tree.AddChild(root, fswalk.Entry{Name: "sub", Path: "proj/sub", Kind: fswalk.KindDir})
	tree.AddChild(sub, fswalk.Entry{Name: "b.txt", Path: "proj/sub/b.txt", Kind: fswalk.KindFile})
	tree.AddChild(root, fswalk.Entry{Name: "link", Path: "proj/link", Kind: fswalk.KindSymlink})

	var buf bytes.Buffer
	if err := snapshot.Encode(&buf, "proj", tree); err != nil {
		f.Fatalf("encode seed: %v", err)
	}
	data := buf.Bytes()
	f.Add(data)
	for _, n := range []int{1, len(data) / 2, len(data) - 1} {
		f.Add(append([]byte(nil), data[:n]...))
	}
	f.Add([]byte{})
}

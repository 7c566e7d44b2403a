package testkit

import "pathfinder/internal/arena"

// SampleTree builds the reference tree
//
//	root
//	├── a
//	│   ├── a1
//	│   └── a2
//	└── b
//	    └── b1
//
// and returns it with the handle of every label.
func SampleTree() (*arena.Tree[string], map[string]arena.NodeID) {
	t := arena.New[string]()
	ids := make(map[string]arena.NodeID, 6)
	ids["root"] = t.SetRoot("root")
	ids["a"] = t.AddChild(ids["root"], "a")
	ids["a1"] = t.AddChild(ids["a"], "a1")
	ids["a2"] = t.AddChild(ids["a"], "a2")
	ids["b"] = t.AddChild(ids["root"], "b")
	ids["b1"] = t.AddChild(ids["b"], "b1")
	return t, ids
}

// SampleRendering is the FormatTree output of SampleTree.
const SampleRendering = "root\n" +
	"├── a\n" +
	"│   ├── a1\n" +
	"│   └── a2\n" +
	"└── b\n" +
	"    └── b1\n"

// Package arena implements a generic rooted tree stored in a flat arena.
//
// Nodes are addressed by NodeID handles instead of pointers. Parent and
// child relations are handle values, so the Tree is the only owner of its
// nodes and a handle stays valid for as long as the Tree exists.
//
//	t := arena.New[string]()
//	root := t.SetRoot("root")
//	a := t.AddChild(root, "a")
//	t.AddChild(a, "a1")
//	fmt.Print(t.FormatTree(func(s string) string { return s }))
//
// Invalid handles and a second SetRoot are programming errors and panic
// with ErrInvalidNode or ErrRootExists. Raw and FromRaw expose the slot
// sequence for snapshotting; FromRaw reports broken input as ErrCorrupt.
package arena

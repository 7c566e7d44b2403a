package arena

// NodeID identifies a node inside a Tree arena.
//
// A NodeID is only meaningful for the Tree that issued it. Mixing IDs from
// different trees is not detected.
type NodeID uint32

const (
	// NoNodeID marks the absence of a node reference (the root's parent).
	NoNodeID NodeID = 0
)

// IsValid reports whether the ID can refer to an allocated node.
func (id NodeID) IsValid() bool { return id != NoNodeID }

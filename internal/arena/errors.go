package arena

import "errors"

var (
	// ErrInvalidNode is the panic cause for handles that do not refer to a live slot.
	ErrInvalidNode = errors.New("invalid node id")
	// ErrRootExists is the panic cause for a second SetRoot call.
	ErrRootExists = errors.New("root already exists")
	// ErrCorrupt reports raw contents that violate the tree invariants.
	ErrCorrupt = errors.New("corrupt tree")
)

package arena

import (
	"io"
	"strings"
)

const (
	branchMid  = "├── "
	branchLast = "└── "
	indentBar  = "│   "
	indentGap  = "    "
)

type renderFrame struct {
	id     NodeID
	prefix string
	last   bool
	top    bool
}

// FormatTree renders the tree the way the `tree` command prints a
// directory: one line per node in DFS order, the root unprefixed and every
// other node behind its ancestors' indentation and a branch connector.
// It returns "" for an empty tree.
func (t *Tree[T]) FormatTree(label func(T) string) string {
	var sb strings.Builder
	// strings.Builder never fails
	_ = t.WriteTree(&sb, label)
	return sb.String()
}

// WriteTree streams the FormatTree rendering to w.
func (t *Tree[T]) WriteTree(w io.Writer, label func(T) string) error {
	if !t.root.IsValid() {
		return nil
	}
	stack := []renderFrame{{id: t.root, top: true}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		var line strings.Builder
		childPrefix := ""
		if !f.top {
			line.WriteString(f.prefix)
			if f.last {
				line.WriteString(branchLast)
				childPrefix = f.prefix + indentGap
			} else {
				line.WriteString(branchMid)
				childPrefix = f.prefix + indentBar
			}
		}
		line.WriteString(label(t.slots[f.id].node.value))
		line.WriteByte('\n')
		if _, err := io.WriteString(w, line.String()); err != nil {
			return err
		}

		children := t.slots[f.id].node.children
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, renderFrame{
				id:     children[i],
				prefix: childPrefix,
				last:   i == len(children)-1,
			})
		}
	}
	return nil
}

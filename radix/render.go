package radix

import (
	"fmt"

	"github.com/xlab/treeprint"
	"golang.org/x/exp/constraints"
)

// TerminalMark is appended to the label of every node that ends a stored key.
const TerminalMark = " $"

// Render draws the tree shape as ASCII art, one node per line with children
// in ascending order. format turns a segment into a label; nil uses %v.
//
//	.
//	└── t
//	    ├── e
//	    │   ├── am $
//	    │   └── st $
//	    └── oast $
func (t *Tree[S]) Render(format func(segment []S) string) string {
	if format == nil {
		format = func(seg []S) string { return fmt.Sprint(seg) }
	}
	root := t.top()
	rootLabel := "."
	if root.terminal {
		rootLabel += TerminalMark
	}
	out := treeprint.NewWithRoot(rootLabel)
	render(out, root, format)

	return out.String()
}

// render appends the children of n below branch.
func render[S constraints.Ordered](branch treeprint.Tree, n *node[S], format func([]S) string) {
	for _, sym := range sortedSymbols(n) {
		child := n.children[sym]
		label := format(child.segment)
		if child.terminal {
			label += TerminalMark
		}
		if child.isLeaf() {
			branch.AddNode(label)

			continue
		}
		render(branch.AddBranch(label), child, format)
	}
}

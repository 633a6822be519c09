package radix

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Check walks the whole tree and verifies its structural invariants:
//
//  1. the root segment is empty;
//  2. every non-root node has a non-empty segment;
//  3. every child is keyed by the first symbol of its segment;
//  4. every non-root node is terminal or has at least two children;
//  5. Len equals the number of terminal nodes.
//
// The first violation is returned wrapped in ErrInvariant; nil means the tree
// is in canonical shape.
func (t *Tree[S]) Check() error {
	root := t.top()
	if len(root.segment) != 0 {
		return fmt.Errorf("%w: root segment %v is not empty", ErrInvariant, root.segment)
	}
	terminals := 0
	if err := check(root, nil, true, &terminals); err != nil {
		return err
	}
	if terminals != t.size {
		return fmt.Errorf("%w: Len()=%d but %d terminal nodes", ErrInvariant, t.size, terminals)
	}

	return nil
}

// check validates n and its subtree; path is the key path of n's parent.
func check[S constraints.Ordered](n *node[S], path []S, isRoot bool, terminals *int) error {
	full := join(path, n.segment)
	if n.terminal {
		*terminals++
	}
	if !isRoot {
		if len(n.segment) == 0 {
			return fmt.Errorf("%w: empty segment below %v", ErrInvariant, path)
		}
		if !n.terminal && len(n.children) < 2 {
			return fmt.Errorf("%w: node %v is neither terminal nor branching (%d children)",
				ErrInvariant, full, len(n.children))
		}
	}
	for _, sym := range sortedSymbols(n) {
		child := n.children[sym]
		if len(child.segment) == 0 || child.segment[0] != sym {
			return fmt.Errorf("%w: child of %v keyed %v has segment %v",
				ErrInvariant, full, sym, child.segment)
		}
		if err := check(child, full, false, terminals); err != nil {
			return err
		}
	}

	return nil
}

// Depth returns the number of edges on the longest root-to-leaf path.
func (t *Tree[S]) Depth() int { return depth(t.top()) }

func depth[S constraints.Ordered](n *node[S]) int {
	d := 0
	for _, c := range n.children {
		d = max(d, 1+depth(c))
	}

	return d
}

// Nodes returns the number of nodes, the root included.
func (t *Tree[S]) Nodes() int { return count(t.top()) }

func count[S constraints.Ordered](n *node[S]) int {
	c := 1
	for _, child := range n.children {
		c += count(child)
	}

	return c
}

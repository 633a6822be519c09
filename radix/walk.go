package radix

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/katalvlaran/lvlref/prefix"
)

// Walk calls fn for every stored key in ascending symbol order until fn
// returns false.
func (t *Tree[S]) Walk(fn WalkFunc[S]) {
	walk(t.top(), nil, fn)
}

// WalkPrefix calls fn, in ascending order, for every stored key that starts
// with p.
func (t *Tree[S]) WalkPrefix(p []S, fn WalkFunc[S]) {
	n, rest := t.top(), p
	var path []S // key path of n's parent
	for {
		_, nodeRest, keyRest := prefix.Common(n.segment, rest)
		if len(keyRest) == 0 {
			walk(n, path, fn)

			return
		}
		if len(nodeRest) > 0 {
			return
		}
		child, ok := n.children[keyRest[0]]
		if !ok {
			return
		}
		path = join(path, n.segment)
		n, rest = child, keyRest
	}
}

// Keys returns every stored key in ascending order.
func (t *Tree[S]) Keys() [][]S {
	keys := make([][]S, 0, t.size)
	t.Walk(func(k []S) bool {
		keys = append(keys, k)

		return true
	})

	return keys
}

// KeysWithPrefix returns, in ascending order, the stored keys starting with p.
// No match yields an empty, non-nil slice, like Keys on an empty tree.
func (t *Tree[S]) KeysWithPrefix(p []S) [][]S {
	keys := [][]S{}
	t.WalkPrefix(p, func(k []S) bool {
		keys = append(keys, k)

		return true
	})

	return keys
}

// walk visits n (pre-order) and then its children sorted by first symbol.
// It returns false once fn asked to stop.
func walk[S constraints.Ordered](n *node[S], path []S, fn WalkFunc[S]) bool {
	full := join(path, n.segment)
	if n.terminal && !fn(join(full, nil)) {
		return false
	}
	for _, sym := range sortedSymbols(n) {
		if !walk(n.children[sym], full, fn) {
			return false
		}
	}

	return true
}

// sortedSymbols returns the child keys of n in ascending order.
func sortedSymbols[S constraints.Ordered](n *node[S]) []S {
	syms := maps.Keys(n.children)
	slices.Sort(syms)

	return syms
}

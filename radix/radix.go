package radix

import (
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/lvlref/prefix"
)

// New returns an empty Tree: a non-terminal root with an empty segment.
func New[S constraints.Ordered](opts ...Option[S]) *Tree[S] {
	o := DefaultOptions[S]()
	for _, opt := range opts {
		opt(&o)
	}

	return &Tree[S]{
		root: newNode[S](nil, false),
		opts: o,
	}
}

// top returns the root, creating it on first use of a zero Tree.
func (t *Tree[S]) top() *node[S] {
	if t.root == nil {
		t.root = newNode[S](nil, false)
	}

	return t.root
}

// observed reports whether any hook is registered. Key paths are only
// tracked when one is.
func (t *Tree[S]) observed() bool {
	return t.opts.OnSplit != nil || t.opts.OnMerge != nil || t.opts.OnPrune != nil
}

// pathBuf returns a buffer able to hold every key path met while descending
// along key, or nil when no hook needs paths.
func (t *Tree[S]) pathBuf(key []S) []S {
	if !t.observed() {
		return nil
	}

	return make([]S, 0, len(key))
}

// descend extends path with seg. Descent only passes fully matched segments,
// so path stays a prefix of the key and append never outgrows pathBuf.
func (t *Tree[S]) descend(path, seg []S) []S {
	if path == nil {
		return nil
	}

	return append(path, seg...)
}

// Len returns the number of stored keys.
func (t *Tree[S]) Len() int { return t.size }

// Insert stores key in the tree and reports whether it was not present before.
// Inserting an existing key is a no-op. The empty key marks the root terminal.
//
// Complexity: O(len(key)) symbol comparisons. Only the nodes it creates (at
// most two) are allocated, plus one path buffer when hooks are registered.
func (t *Tree[S]) Insert(key []S) bool {
	added := t.insert(t.top(), t.pathBuf(key), key)
	if added {
		t.size++
	}

	return added
}

// insert places key below n; path is the key path of n's parent, nil when
// no hook is registered.
func (t *Tree[S]) insert(n *node[S], path, key []S) bool {
	shared, nodeRest, keyRest := prefix.Common(n.segment, key)

	// 1. key ends exactly at n
	if len(nodeRest) == 0 && len(keyRest) == 0 {
		added := !n.terminal
		n.terminal = true

		return added
	}

	// 2. key diverges inside n's segment (or ends inside it): split n
	if len(nodeRest) > 0 {
		t.split(n, shared, nodeRest)
		if len(keyRest) > 0 {
			n.children[keyRest[0]] = newNode(keyRest, true)
		} else {
			n.terminal = true
		}
		if t.opts.OnSplit != nil {
			t.opts.OnSplit(join(path, n.segment))
		}

		return true
	}

	// 3. n fully matched: continue into the child owning the next symbol
	child, ok := n.children[keyRest[0]]
	if !ok {
		n.children[keyRest[0]] = newNode(keyRest, true)

		return true
	}

	return t.insert(child, t.descend(path, n.segment), keyRest)
}

// split shrinks n to shared and moves the rest of its segment, its terminal
// flag and its children into a single new child.
func (t *Tree[S]) split(n *node[S], shared, rest []S) {
	tail := newNode(rest, n.terminal)
	tail.children = n.children

	head := make([]S, len(shared))
	copy(head, shared)

	n.segment = head
	n.terminal = false
	n.children = map[S]*node[S]{tail.segment[0]: tail}
}

// Find reports whether key is stored in the tree.
//
// Complexity: O(len(key)), independent of the number of stored keys.
func (t *Tree[S]) Find(key []S) bool {
	n, rest := t.top(), key
	for {
		_, nodeRest, keyRest := prefix.Common(n.segment, rest)
		if len(nodeRest) > 0 {
			return false
		}
		if len(keyRest) == 0 {
			return n.terminal
		}
		child, ok := n.children[keyRest[0]]
		if !ok {
			return false
		}
		n, rest = child, keyRest
	}
}

// Delete removes key and reports whether it was stored. A key that was never
// inserted returns false even when it ends exactly on an internal split point.
//
// After a successful removal the tree is repaired bottom-up: dead leaves are
// detached and non-terminal nodes left with a single child absorb it, so every
// non-root node is again terminal or branching.
//
// Complexity: O(len(key)); a merge allocates the joined segment.
func (t *Tree[S]) Delete(key []S) bool {
	if !t.delete(t.top(), t.pathBuf(key), key) {
		return false
	}
	t.size--

	return true
}

// delete removes key below n; path is the key path of n's parent.
func (t *Tree[S]) delete(n *node[S], path, key []S) bool {
	_, nodeRest, keyRest := prefix.Common(n.segment, key)
	if len(nodeRest) > 0 {
		return false
	}
	if len(keyRest) == 0 {
		if !n.terminal {
			return false
		}
		n.terminal = false

		return true
	}

	sym := keyRest[0]
	child, ok := n.children[sym]
	if !ok {
		return false
	}
	here := t.descend(path, n.segment)
	if !t.delete(child, here, keyRest) {
		return false
	}
	t.repair(n, sym, here)

	return true
}

// repair restores the terminal-or-branching invariant of the child of n keyed
// by sym. n itself is repaired by its own parent's frame; the root never is.
func (t *Tree[S]) repair(n *node[S], sym S, path []S) {
	child := n.children[sym]
	if child.terminal {
		return
	}
	switch len(child.children) {
	case 0:
		delete(n.children, sym)
		if t.opts.OnPrune != nil {
			t.opts.OnPrune(join(path, child.segment))
		}
	case 1:
		merge(child)
		if t.opts.OnMerge != nil {
			t.opts.OnMerge(join(path, child.segment))
		}
	}
}

// merge makes n absorb its only child: segment, terminal flag and children.
func merge[S constraints.Ordered](n *node[S]) {
	only := n.onlyChild()
	seg := make([]S, 0, len(n.segment)+len(only.segment))
	seg = append(seg, n.segment...)
	seg = append(seg, only.segment...)

	n.segment = seg
	n.terminal = only.terminal
	n.children = only.children
}

// StartsWith reports whether some stored key begins with p. The empty prefix
// matches iff the tree holds at least one key.
func (t *Tree[S]) StartsWith(p []S) bool {
	if len(p) == 0 {
		return t.size > 0
	}
	n, rest := t.top(), p
	for {
		_, nodeRest, keyRest := prefix.Common(n.segment, rest)
		// prefix used up inside (or at the end of) a non-root segment: every
		// non-root node leads to at least one stored key
		if len(keyRest) == 0 {
			return true
		}
		if len(nodeRest) > 0 {
			return false
		}
		child, ok := n.children[keyRest[0]]
		if !ok {
			return false
		}
		n, rest = child, keyRest
	}
}

// join returns a new slice holding path followed by seg.
func join[S any](path, seg []S) []S {
	out := make([]S, 0, len(path)+len(seg))
	out = append(out, path...)

	return append(out, seg...)
}

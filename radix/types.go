// Package radix defines the node layout, tree handle, options and sentinel
// errors of the compressed prefix tree.
package radix

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// ErrInvariant is returned by Check when the tree shape violates one of the
// structural invariants. The wrapped message names the offending node path.
var ErrInvariant = errors.New("radix: invariant violated")

// node is one vertex of the tree. segment is the part of the key path owned by
// this node, relative to its parent. children is keyed by the first symbol of
// each child's segment.
type node[S constraints.Ordered] struct {
	segment  []S
	terminal bool
	children map[S]*node[S]
}

// newNode builds a node that owns a private copy of segment.
func newNode[S constraints.Ordered](segment []S, terminal bool) *node[S] {
	seg := make([]S, len(segment))
	copy(seg, segment)

	return &node[S]{
		segment:  seg,
		terminal: terminal,
		children: make(map[S]*node[S]),
	}
}

// isLeaf reports whether n has no children.
func (n *node[S]) isLeaf() bool { return len(n.children) == 0 }

// onlyChild returns the single child of n, or nil if n has zero or several.
func (n *node[S]) onlyChild() *node[S] {
	if len(n.children) != 1 {
		return nil
	}
	for _, c := range n.children {
		return c
	}

	return nil
}

// Tree is a radix tree (compressed trie) over keys made of symbols of type S.
//
// The root always has an empty segment and may be terminal (the empty key is
// stored) or not. The zero value is an empty tree without hooks, ready to use.
// A Tree is not safe for concurrent mutation.
type Tree[S constraints.Ordered] struct {
	root *node[S]
	size int
	opts Options[S]
}

// Option configures a Tree at construction time.
type Option[S constraints.Ordered] func(*Options[S])

// Options holds the hooks a Tree invokes while it restructures itself.
// Each hook receives the full key path of the node involved; the slice is a
// fresh copy and may be retained. A nil hook is skipped, and key paths are
// not tracked at all while every hook is nil. Hooks must not modify the tree.
type Options[S constraints.Ordered] struct {
	// OnSplit is called after a node is split; path ends at the shrunk node.
	OnSplit func(path []S)

	// OnMerge is called after a non-terminal node absorbed its only child;
	// path ends at the merged node.
	OnMerge func(path []S)

	// OnPrune is called after a dead leaf was detached; path ends at the
	// removed node.
	OnPrune func(path []S)
}

// DefaultOptions returns Options with every hook unset.
func DefaultOptions[S constraints.Ordered]() Options[S] {
	return Options[S]{}
}

// WithOnSplit registers a hook fired after each node split.
func WithOnSplit[S constraints.Ordered](fn func(path []S)) Option[S] {
	return func(o *Options[S]) {
		if fn != nil {
			o.OnSplit = fn
		}
	}
}

// WithOnMerge registers a hook fired after each node merge.
func WithOnMerge[S constraints.Ordered](fn func(path []S)) Option[S] {
	return func(o *Options[S]) {
		if fn != nil {
			o.OnMerge = fn
		}
	}
}

// WithOnPrune registers a hook fired after each dead leaf is removed.
func WithOnPrune[S constraints.Ordered](fn func(path []S)) Option[S] {
	return func(o *Options[S]) {
		if fn != nil {
			o.OnPrune = fn
		}
	}
}

// WalkFunc is called for every stored key during a walk. The key slice is a
// fresh copy. Returning false stops the walk.
type WalkFunc[S constraints.Ordered] func(key []S) bool

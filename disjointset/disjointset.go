// Package disjointset implements a union-find structure over the integers
// [0, n) with path compression and union by rank.
//
// Complexity: Find and Union run in O(α(n)) amortised time, where α is the
// inverse Ackermann function. Memory: O(n).
package disjointset

import (
	"errors"
	"fmt"
)

// Sentinel errors for disjoint-set operations.
var (
	// ErrNegativeSize is returned when New is asked for a negative size.
	ErrNegativeSize = errors.New("disjointset: negative size")

	// ErrOutOfRange is returned for an element outside [0, n).
	ErrOutOfRange = errors.New("disjointset: element out of range")
)

// DisjointSet partitions [0, n) into disjoint sets.
type DisjointSet struct {
	parent []int
	rank   []int
	sets   int
}

// New returns n singleton sets {0}, {1}, ..., {n-1}.
func New(n int) (*DisjointSet, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeSize, n)
	}
	d := &DisjointSet{
		parent: make([]int, n),
		rank:   make([]int, n),
		sets:   n,
	}
	for i := range d.parent {
		d.parent[i] = i
	}

	return d, nil
}

// Len returns the number of elements.
func (d *DisjointSet) Len() int { return len(d.parent) }

// Sets returns the current number of disjoint sets.
func (d *DisjointSet) Sets() int { return d.sets }

// Find returns the representative of the set containing a.
func (d *DisjointSet) Find(a int) (int, error) {
	if err := d.check(a); err != nil {
		return 0, err
	}

	return d.find(a), nil
}

// find walks to the root, halving the path as it goes.
func (d *DisjointSet) find(a int) int {
	for d.parent[a] != a {
		d.parent[a] = d.parent[d.parent[a]]
		a = d.parent[a]
	}

	return a
}

// Union joins the sets of a and b. It reports false when they already were
// the same set.
func (d *DisjointSet) Union(a, b int) (bool, error) {
	if err := d.check(a); err != nil {
		return false, err
	}
	if err := d.check(b); err != nil {
		return false, err
	}
	ra, rb := d.find(a), d.find(b)
	if ra == rb {
		return false, nil
	}
	// attach the shallower tree under the deeper one
	switch {
	case d.rank[ra] < d.rank[rb]:
		d.parent[ra] = rb
	case d.rank[ra] > d.rank[rb]:
		d.parent[rb] = ra
	default:
		d.parent[rb] = ra
		d.rank[ra]++
	}
	d.sets--

	return true, nil
}

// Connected reports whether a and b belong to the same set.
func (d *DisjointSet) Connected(a, b int) (bool, error) {
	ra, err := d.Find(a)
	if err != nil {
		return false, err
	}
	rb, err := d.Find(b)
	if err != nil {
		return false, err
	}

	return ra == rb, nil
}

func (d *DisjointSet) check(a int) error {
	if a < 0 || a >= len(d.parent) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrOutOfRange, a, len(d.parent))
	}

	return nil
}

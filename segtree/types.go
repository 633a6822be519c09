package segtree

import "errors"

// Sentinel errors for segment tree construction and queries.
var (
	// ErrEmpty is returned when building a tree from no values.
	ErrEmpty = errors.New("segtree: no values")

	// ErrNilOp is returned when the combine operation is nil.
	ErrNilOp = errors.New("segtree: nil operation")

	// ErrIndexOutOfRange is returned for an index outside [0, Len()).
	ErrIndexOutOfRange = errors.New("segtree: index out of range")

	// ErrBadRange is returned when a query range has l > r.
	ErrBadRange = errors.New("segtree: left bound exceeds right bound")
)

// Op combines two adjacent ranges; it must be associative.
type Op[T any] func(left, right T) T

// Tree is a segment tree over values of type T.
type Tree[T any] struct {
	n    int    // number of values
	p    int    // leaf offset, smallest power of two >= n
	op   Op[T]  // associative combine
	tree []T    // 1-based heap layout, len 2p
	set  []bool // set[i] is false for nodes covering padding only
}

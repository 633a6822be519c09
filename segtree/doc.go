// Package segtree provides a generic segment tree for associative range
// queries with point updates.
//
// What:
//
//   - The tree is stored in a flat slice of size 2p where p is the smallest
//     power of two ≥ n. Node 1 is the root, node i has children 2i and 2i+1,
//     and the values live in the leaves [p, p+n).
//   - Padding leaves [p+n, 2p) hold no value and are skipped when combining,
//     so op never sees a made-up identity element.
//   - op must be associative (sum, min, max, gcd, string concat...). It need
//     not be commutative: results are combined left to right.
//
// Complexity:
//
//   - New:    O(n)
//   - Query:  O(log n)
//   - Update: O(log n)
//   - Memory: O(n)
//
// Errors:
//
//   - ErrEmpty            if New is given no values.
//   - ErrNilOp            if New is given a nil operation.
//   - ErrIndexOutOfRange  if an index is outside [0, n).
//   - ErrBadRange         if l > r.
package segtree

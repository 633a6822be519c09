// Package radix implements a radix tree (compressed prefix tree) whose nodes
// are split on insert and merged back on delete.
//
// What:
//
//   - Each node owns a segment of symbols, a terminal flag and a map from the
//     next symbol to a child. Concatenating segments from the root to a
//     terminal node spells a stored key.
//   - Insert splits a node when the new key diverges inside its segment.
//   - Delete clears the terminal flag and repairs the path on the way back up:
//     dead leaves are removed and non-terminal nodes with a single child absorb
//     that child.
//   - Find and StartsWith follow a single root-to-node path.
//
// Invariants (checked by Tree.Check):
//
//   - the root segment is empty; the root may have any number of children;
//   - siblings start with pairwise distinct symbols;
//   - every non-root node is terminal or has at least two children.
//
// Keys are slices of any ordered symbol type (bytes, runes, ints...). Walks and
// Render visit children in ascending symbol order. StringTree wraps Tree[rune]
// for Go strings.
//
// Complexity (k = key length):
//
//   - Insert, Find, Delete, StartsWith: O(k) time.
//   - Memory: O(total key length) in the worst case, fewer nodes than a plain
//     trie because non-branching chains are compressed into one segment.
//
// Usage:
//
//	t := radix.NewStringTree()
//	t.Insert("test")
//	t.Insert("team")
//	t.Insert("toast")
//	t.Find("te")          // false: internal split point only
//	t.StartsWith("tea")   // true
//	t.Delete("team")      // true; "e" and "st" merge into "est"
//	fmt.Print(t)          // ASCII rendering of the tree
//
// Hooks (WithOnSplit, WithOnMerge, WithOnPrune) observe restructuring without
// changing it. A Tree is not safe for concurrent use.
package radix

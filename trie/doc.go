// Package trie implements an uncompressed character trie: one node per rune.
//
// What:
//
//   - Insert, Search and StartsWith walk one node per rune of the input.
//   - Prefixes lists every stored word that is a prefix of a query, which is
//     the building block for word-break and dictionary segmentation problems.
//
// Compared with package radix, a Trie never splits or merges nodes; it trades
// memory for simplicity.
//
// Complexity (k = word length in runes):
//
//   - Insert, Search, StartsWith, Prefixes: O(k)
//   - Memory: O(total runes stored)
package trie

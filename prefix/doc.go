// Package prefix splits two sequences at their longest common prefix.
//
// What:
//
//   - Common works on slices of any comparable symbol type and returns the
//     shared prefix followed by the unmatched remainder of each input.
//   - Strings does the same for UTF-8 strings and never cuts a multi-byte rune.
//
// Why:
//
//   - It is the single primitive behind compressed prefix trees: every radix
//     tree operation starts by splitting a node segment against the remaining key.
//
// Guarantees:
//
//	shared + restA == a
//	shared + restB == b
//	restA and restB do not start with the same symbol (or one of them is empty)
//
// Complexity:
//
//   - Time:   O(min(len(a), len(b)))
//   - Memory: O(1); results are subslices (substrings) of the inputs.
//
// Usage:
//
//	shared, restA, restB := prefix.Strings("test", "team") // "te", "st", "am"
package prefix

package prefix

import "unicode/utf8"

// Common returns the longest common prefix of a and b, followed by what is
// left of a and of b after it. The returned slices alias the inputs.
func Common[S comparable](a, b []S) (shared, restA, restB []S) {
	n := min(len(a), len(b))
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}

	return a[:i], a[i:], b[i:]
}

// Len returns the length of the longest common prefix of a and b.
func Len[S comparable](a, b []S) int {
	shared, _, _ := Common(a, b)

	return len(shared)
}

// Strings is Common for UTF-8 strings. The split point always lies on a rune
// boundary of both inputs, so invalid bytes compare as utf8.RuneError of width 1.
func Strings(a, b string) (shared, restA, restB string) {
	i := 0
	for i < len(a) && i < len(b) {
		ra, wa := utf8.DecodeRuneInString(a[i:])
		rb, wb := utf8.DecodeRuneInString(b[i:])
		if ra != rb || wa != wb {
			break
		}
		if ra == utf8.RuneError && a[i] != b[i] {
			break
		}
		i += wa
	}

	return a[:i], a[i:], b[i:]
}

package radix

// StringTree is a Tree over the runes of Go strings. Construct it with
// NewStringTree; the zero value is not usable.
type StringTree struct {
	t *Tree[rune]
}

// NewStringTree returns an empty StringTree. Hooks receive rune paths.
func NewStringTree(opts ...Option[rune]) *StringTree {
	return &StringTree{t: New[rune](opts...)}
}

// Tree exposes the underlying rune tree.
func (s *StringTree) Tree() *Tree[rune] { return s.t }

// Len returns the number of stored words.
func (s *StringTree) Len() int { return s.t.Len() }

// Insert stores word and reports whether it is new.
func (s *StringTree) Insert(word string) bool { return s.t.Insert([]rune(word)) }

// Find reports whether word is stored.
func (s *StringTree) Find(word string) bool { return s.t.Find([]rune(word)) }

// Delete removes word and reports whether it was stored.
func (s *StringTree) Delete(word string) bool { return s.t.Delete([]rune(word)) }

// StartsWith reports whether any stored word begins with p.
func (s *StringTree) StartsWith(p string) bool { return s.t.StartsWith([]rune(p)) }

// Keys returns every stored word in ascending code point order.
func (s *StringTree) Keys() []string { return toStrings(s.t.Keys()) }

// KeysWithPrefix returns the stored words starting with p.
func (s *StringTree) KeysWithPrefix(p string) []string {
	return toStrings(s.t.KeysWithPrefix([]rune(p)))
}

// Check verifies the structural invariants; see Tree.Check.
func (s *StringTree) Check() error { return s.t.Check() }

// String renders the tree shape with segments shown as text.
func (s *StringTree) String() string {
	return s.t.Render(func(seg []rune) string { return string(seg) })
}

func toStrings(keys [][]rune) []string {
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = string(k)
	}

	return out
}

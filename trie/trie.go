package trie

// Trie is a node of a rune trie; the zero value is not usable, call New.
type Trie struct {
	valid bool
	next  map[rune]*Trie
	size  int // number of stored words, maintained on the root only
}

// New returns an empty Trie.
func New() *Trie {
	return &Trie{next: make(map[rune]*Trie)}
}

// Len returns the number of stored words.
func (t *Trie) Len() int { return t.size }

// Insert stores word and reports whether it is new.
func (t *Trie) Insert(word string) bool {
	cur := t
	for _, r := range word {
		child, ok := cur.next[r]
		if !ok {
			child = New()
			cur.next[r] = child
		}
		cur = child
	}
	if cur.valid {
		return false
	}
	cur.valid = true
	t.size++

	return true
}

// Search reports whether word was inserted.
func (t *Trie) Search(word string) bool {
	n := t.walk(word)

	return n != nil && n.valid
}

// StartsWith reports whether some stored word begins with p.
func (t *Trie) StartsWith(p string) bool {
	if p == "" {
		return t.size > 0
	}

	return t.walk(p) != nil
}

// Prefixes returns the lengths, in runes and ascending, of every stored word
// that is a prefix of word. word itself counts when it is stored.
func (t *Trie) Prefixes(word string) []int {
	var out []int
	cur := t
	i := 0
	for _, r := range word {
		if cur.valid {
			out = append(out, i)
		}
		next, ok := cur.next[r]
		if !ok {
			return out
		}
		cur = next
		i++
	}
	if cur.valid {
		out = append(out, i)
	}

	return out
}

// walk follows word from t and returns the node it ends on, or nil.
func (t *Trie) walk(word string) *Trie {
	cur := t
	for _, r := range word {
		next, ok := cur.next[r]
		if !ok {
			return nil
		}
		cur = next
	}

	return cur
}

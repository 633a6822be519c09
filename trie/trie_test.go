package trie_test

import (
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvlref/trie"
)

// TestTrie_InsertSearch covers stored words, their prefixes and misses.
func TestTrie_InsertSearch(t *testing.T) {
	tr := trie.New()
	assert.True(t, tr.Insert("apple"))
	assert.True(t, tr.Insert("app"))
	assert.False(t, tr.Insert("apple"), "duplicate")
	assert.Equal(t, 2, tr.Len())

	assert.True(t, tr.Search("apple"))
	assert.True(t, tr.Search("app"))
	assert.False(t, tr.Search("ap"))
	assert.False(t, tr.Search("apples"))
	assert.False(t, tr.Search(""))

	assert.True(t, tr.StartsWith("ap"))
	assert.True(t, tr.StartsWith("apple"))
	assert.False(t, tr.StartsWith("b"))
	assert.True(t, tr.StartsWith(""))
	assert.False(t, trie.New().StartsWith(""))
}

// TestTrie_Prefixes lists every stored prefix of a query.
func TestTrie_Prefixes(t *testing.T) {
	tr := trie.New()
	for _, w := range []string{"a", "ab", "abc", "b", "abcde"} {
		tr.Insert(w)
	}
	assert.Equal(t, []int{1, 2, 3}, tr.Prefixes("abcd"))
	assert.Equal(t, []int{1, 2, 3, 5}, tr.Prefixes("abcde"))
	assert.Equal(t, []int{1}, tr.Prefixes("b"))
	assert.Nil(t, tr.Prefixes("xyz"))
	assert.Nil(t, tr.Prefixes(""))

	tr.Insert("")
	assert.Equal(t, []int{0}, tr.Prefixes(""))
	assert.Equal(t, []int{0, 1}, tr.Prefixes("bz"))
}

// TestTrie_Runes counts prefix lengths in runes, not bytes.
func TestTrie_Runes(t *testing.T) {
	tr := trie.New()
	tr.Insert("日本")
	assert.True(t, tr.Search("日本"))
	assert.Equal(t, []int{2}, tr.Prefixes("日本語"))
}

// TestTrie_RandomWords checks Search on a fake dictionary.
func TestTrie_RandomWords(t *testing.T) {
	faker := gofakeit.New(3)
	tr := trie.New()
	stored := make(map[string]bool)
	for i := 0; i < 500; i++ {
		w := faker.Word()
		tr.Insert(w)
		stored[w] = true
	}
	assert.Equal(t, len(stored), tr.Len())
	for w := range stored {
		assert.True(t, tr.Search(w))
		assert.Contains(t, tr.Prefixes(w), len([]rune(w)))
	}
}

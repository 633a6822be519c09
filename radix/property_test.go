package radix_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlref/radix"
)

// corpus returns n words sharing many prefixes: plain words, words with
// suffixes glued on, and their own prefixes.
func corpus(seed int64, n int) []string {
	faker := gofakeit.New(seed)
	words := make([]string, 0, n)
	for len(words) < n {
		w := faker.Word()
		switch faker.Number(0, 3) {
		case 0:
			words = append(words, w)
		case 1:
			words = append(words, w+faker.LetterN(uint(faker.Number(1, 3))))
		case 2:
			if len(w) > 1 {
				words = append(words, w[:len(w)/2])
			}
		default:
			words = append(words, faker.Username())
		}
	}

	return words
}

// TestProperty_AgainstOracle runs random insert/delete sequences and compares
// every lookup with a map, checking the invariants after each step.
func TestProperty_AgainstOracle(t *testing.T) {
	for _, seed := range []int64{1, 2, 3, 42} {
		words := corpus(seed, 300)
		rnd := rand.New(rand.NewSource(seed))
		tr := radix.NewStringTree()
		oracle := make(map[string]bool)

		for step := 0; step < 2000; step++ {
			w := words[rnd.Intn(len(words))]
			if rnd.Intn(3) == 0 {
				assert.Equal(t, oracle[w], tr.Delete(w), "seed %d step %d Delete(%q)", seed, step, w)
				delete(oracle, w)
			} else {
				assert.Equal(t, !oracle[w], tr.Insert(w), "seed %d step %d Insert(%q)", seed, step, w)
				oracle[w] = true
			}
			require.NoError(t, tr.Check(), "seed %d step %d", seed, step)
		}

		require.Equal(t, len(oracle), tr.Len())
		for _, w := range words {
			assert.Equal(t, oracle[w], tr.Find(w), "Find(%q)", w)
		}

		want := make([]string, 0, len(oracle))
		for w := range oracle {
			want = append(want, w)
		}
		sort.Strings(want)
		assert.Equal(t, want, tr.Keys())
	}
}

// TestProperty_DeleteAll drains the tree back to the bare root.
func TestProperty_DeleteAll(t *testing.T) {
	words := corpus(9, 400)
	tr := radix.NewStringTree()
	for _, w := range words {
		tr.Insert(w)
	}
	rnd := rand.New(rand.NewSource(9))
	rnd.Shuffle(len(words), func(i, j int) { words[i], words[j] = words[j], words[i] })

	for _, w := range words {
		tr.Delete(w)
		require.NoError(t, tr.Check())
	}
	assert.Equal(t, 0, tr.Len())
	assert.Equal(t, 1, tr.Tree().Nodes())
	assert.False(t, tr.StartsWith(""))
}

// TestProperty_DeleteKeepsOthers removes one key at a time and verifies the
// rest are still found.
func TestProperty_DeleteKeepsOthers(t *testing.T) {
	words := corpus(5, 120)
	set := make(map[string]bool)
	for _, w := range words {
		set[w] = true
	}
	for victim := range set {
		tr := radix.NewStringTree()
		for w := range set {
			tr.Insert(w)
		}
		require.True(t, tr.Delete(victim))
		assert.False(t, tr.Find(victim))
		for w := range set {
			if w != victim {
				assert.True(t, tr.Find(w), "Find(%q) after Delete(%q)", w, victim)
			}
		}
	}
}

// TestProperty_StartsWith compares prefix queries with a brute-force scan.
func TestProperty_StartsWith(t *testing.T) {
	words := corpus(11, 200)
	tr := radix.NewStringTree()
	for _, w := range words {
		tr.Insert(w)
	}
	probes := append(corpus(12, 200), "", "zzzz", "q")
	for _, p := range probes {
		for cut := 0; cut <= len(p); cut++ {
			q := p[:cut]
			want := false
			matches := []string{}
			for _, k := range tr.Keys() {
				if len(k) >= len(q) && k[:len(q)] == q {
					want = true
					matches = append(matches, k)
				}
			}
			assert.Equal(t, want, tr.StartsWith(q), "StartsWith(%q)", q)
			assert.Equal(t, matches, tr.KeysWithPrefix(q), "KeysWithPrefix(%q)", q)
		}
	}
}

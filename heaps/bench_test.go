package heaps_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlref/heaps"
)

// BenchmarkTopK measures selecting 10 of 100k values.
func BenchmarkTopK(b *testing.B) {
	rnd := rand.New(rand.NewSource(1))
	values := make([]int, 100000)
	for i := range values {
		values[i] = rnd.Int()
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = heaps.TopK(values, 10)
	}
}

// BenchmarkHeap_PushPop measures a push followed by a pop on a warm heap.
func BenchmarkHeap_PushPop(b *testing.B) {
	h := heaps.NewOrdered[int]()
	for i := 0; i < 1024; i++ {
		h.Push(i)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h.Push(i)
		h.Pop()
	}
}

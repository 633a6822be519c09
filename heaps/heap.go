package heaps

import (
	"container/heap"

	"golang.org/x/exp/constraints"
)

// store adapts a slice to heap.Interface.
type store[T any] struct {
	items []T
	less  func(a, b T) bool
}

func (s *store[T]) Len() int           { return len(s.items) }
func (s *store[T]) Less(i, j int) bool { return s.less(s.items[i], s.items[j]) }
func (s *store[T]) Swap(i, j int)      { s.items[i], s.items[j] = s.items[j], s.items[i] }

// Push appends x; called by heap.Push.
func (s *store[T]) Push(x any) { s.items = append(s.items, x.(T)) }

// Pop removes the last element; called by heap.Pop.
func (s *store[T]) Pop() any {
	old := s.items
	n := len(old)
	x := old[n-1]
	var zero T
	old[n-1] = zero
	s.items = old[:n-1]

	return x
}

// Heap is a binary min-heap with respect to less.
// The zero value is not usable; construct with New or NewOrdered.
type Heap[T any] struct {
	s *store[T]
}

// New returns an empty heap ordered by less.
// less(a, b) must report whether a has higher priority than b.
func New[T any](less func(a, b T) bool) *Heap[T] {
	return &Heap[T]{s: &store[T]{less: less}}
}

// NewOrdered returns an empty min-heap over the natural order of T.
func NewOrdered[T constraints.Ordered]() *Heap[T] {
	return New(func(a, b T) bool { return a < b })
}

// From builds a heap from values in O(n). values is copied.
func From[T any](values []T, less func(a, b T) bool) *Heap[T] {
	h := New(less)
	h.s.items = append(make([]T, 0, len(values)), values...)
	heap.Init(h.s)

	return h
}

// Len returns the number of elements.
func (h *Heap[T]) Len() int { return h.s.Len() }

// Push adds x.
func (h *Heap[T]) Push(x T) { heap.Push(h.s, x) }

// Pop removes and returns the minimum. ok is false on an empty heap.
func (h *Heap[T]) Pop() (x T, ok bool) {
	if h.s.Len() == 0 {
		return x, false
	}

	return heap.Pop(h.s).(T), true
}

// Peek returns the minimum without removing it.
func (h *Heap[T]) Peek() (x T, ok bool) {
	if h.s.Len() == 0 {
		return x, false
	}

	return h.s.items[0], true
}

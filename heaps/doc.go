// Package heaps provides a generic binary min-heap and a top-k selection
// built on it.
//
// Heap[T] orders elements by a caller-supplied less function and is backed by
// container/heap, the same way lvlath's dijkstra keeps its priority queue.
// NewOrdered covers the common case of any ordered element type.
//
// TopK returns the k smallest values of a slice in ascending order.
//
// Complexity:
//
//   - Push, Pop: O(log n)
//   - Peek, Len: O(1)
//   - TopK:      O(n + k log n) time, O(n) space
//
// Example:
//
//	h := heaps.NewOrdered[int]()
//	h.Push(5)
//	h.Push(1)
//	v, _ := h.Pop() // 1
//
//	smallest, _ := heaps.TopK([]int{9, 4, 7, 1}, 2) // [1 4]
package heaps

package heaps

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

// ErrBadK is returned when k is negative or larger than the input.
var ErrBadK = errors.New("heaps: k out of range")

// TopK returns the k smallest values in ascending order.
// values is not modified. k == 0 yields an empty, non-nil slice.
func TopK[T constraints.Ordered](values []T, k int) ([]T, error) {
	return TopKFunc(values, k, func(a, b T) bool { return a < b })
}

// TopKFunc is TopK with a caller-supplied ordering.
func TopKFunc[T any](values []T, k int, less func(a, b T) bool) ([]T, error) {
	if k < 0 || k > len(values) {
		return nil, fmt.Errorf("%w: k=%d, len=%d", ErrBadK, k, len(values))
	}

	h := From(values, less)
	out := make([]T, 0, k)
	for i := 0; i < k; i++ {
		x, _ := h.Pop()
		out = append(out, x)
	}

	return out, nil
}

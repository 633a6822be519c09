// Package bfs provides tunable options and error definitions
// for breadth-first search over a graph.Graph.
package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartVertexNotFound is returned when the source vertex is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrTargetNotFound is returned when WithTarget names a missing vertex.
	ErrTargetNotFound = errors.New("bfs: target vertex not found")

	// ErrTargetUnreachable is returned when the target exists but the search
	// ended without reaching it.
	ErrTargetUnreachable = errors.New("bfs: target unreachable")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// Target, when HasTarget is set, stops the search as soon as it is dequeued.
	Target    int
	HasTarget bool

	// MaxDepth, if > 0, stops exploring beyond this depth. 0 means no limit.
	MaxDepth int

	// OnEnqueue is called when a vertex is first discovered.
	OnEnqueue func(v, depth int)

	// OnVisit is called when a vertex is dequeued. Returning an error aborts
	// the search with that error wrapped.
	OnVisit func(v, depth int) error

	// FilterNeighbor can skip the edge cur→next by returning false.
	FilterNeighbor func(cur, next int) bool

	err error
}

// DefaultOptions returns Options with a background context, no target,
// no depth limit, no filtering and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		OnEnqueue:      func(int, int) {},
		OnVisit:        func(int, int) error { return nil },
		FilterNeighbor: func(int, int) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithTarget makes BFS stop at v and report its distance.
func WithTarget(v int) Option {
	return func(o *Options) {
		o.Target = v
		o.HasTarget = true
	}
}

// WithMaxDepth limits the search to vertices at most d edges away.
//
//	d > 0:  limit to depth d
//	d == 0: no limit
//	d < 0:  ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)

			return
		}
		o.MaxDepth = d
	}
}

// WithOnEnqueue registers a callback run when a vertex is discovered.
func WithOnEnqueue(fn func(v, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnVisit registers a callback run when a vertex is dequeued.
func WithOnVisit(fn func(v, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor(fn func(cur, next int) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// Result holds the outcome of a BFS run.
//
//   - Order:    vertices in visit (dequeue) order.
//   - Depth:    distance in edges from the source for every discovered vertex.
//   - Parent:   predecessor in the BFS tree; the source has none.
//   - Target:   the target vertex, or the last visited vertex (one of the
//     furthest from the source) when no target was given.
//   - Distance: Depth[Target].
type Result struct {
	Order    []int
	Depth    map[int]int
	Parent   map[int]int
	Target   int
	Distance int
}

// PathTo reconstructs the path from the source to dest.
// Returns an error if dest was not discovered.
func (r *Result) PathTo(dest int) ([]int, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("bfs: no path to %d", dest)
	}
	path := []int{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

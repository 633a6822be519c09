package graph

import (
	"context"
	"errors"
)

// Sentinel errors for graph operations.
var (
	// ErrGraphNil is returned when a nil *Graph is passed to TopologicalSort.
	ErrGraphNil = errors.New("graph: graph is nil")

	// ErrVertexNotFound indicates an operation referenced a missing vertex.
	ErrVertexNotFound = errors.New("graph: vertex not found")

	// ErrCycleDetected indicates TopologicalSort met a cycle.
	ErrCycleDetected = errors.New("graph: cycle detected")
)

// Visitation states used by TopologicalSort.
const (
	white = iota // not yet visited
	gray         // on the current DFS stack
	black        // fully explored
)

// Option configures a Graph at construction.
type Option func(*Graph)

// WithBidirectional inserts the back edge v→u for every edge u→v.
func WithBidirectional() Option {
	return func(g *Graph) { g.bidirectional = true }
}

// Graph is a simple graph over int vertices without parallel edges.
// Self-loops are kept. A Graph is not safe for concurrent mutation.
type Graph struct {
	bidirectional bool
	adj           map[int]map[int]struct{}
	edges         int
}

// TopoOption configures TopologicalSort.
type TopoOption func(*topoOptions)

type topoOptions struct {
	ctx context.Context
}

func defaultTopoOptions() topoOptions {
	return topoOptions{ctx: context.Background()}
}

// WithCancelContext makes TopologicalSort stop when ctx is done.
// A nil context is ignored.
func WithCancelContext(ctx context.Context) TopoOption {
	return func(o *topoOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// SPDX-License-Identifier: MIT
// Package: lvlref/builder
//
// builder.go - Build, the single entry point applying constructors in order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvlref/graph"
)

// Constructor mutates g using the resolved config. It validates its
// parameters before touching g.
type Constructor func(g *graph.Graph, cfg config) error

// Build creates a graph with gopts and applies cons in order. The first
// constructor error is returned wrapped with "builder.Build"; a nil
// constructor yields ErrConstructFailed.
func Build(gopts []graph.Option, opts []Option, cons ...Constructor) (*graph.Graph, error) {
	g := graph.New(nil, gopts...)
	cfg := newConfig(opts...)
	for i, c := range cons {
		if c == nil {
			return nil, fmt.Errorf("builder.Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := c(g, cfg); err != nil {
			return nil, fmt.Errorf("builder.Build: %w", err)
		}
	}

	return g, nil
}

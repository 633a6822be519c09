// SPDX-License-Identifier: MIT
// Package: lvlref/builder
//
// constructors.go - Path, Cycle, Star, Complete, RandomSparse and RandomDAG.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvlref/graph"
)

const (
	methodPath         = "Path"
	methodCycle        = "Cycle"
	methodStar         = "Star"
	methodComplete     = "Complete"
	methodRandomSparse = "RandomSparse"
	methodRandomDAG    = "RandomDAG"

	minPathNodes   = 2
	minCycleNodes  = 3
	minStarNodes   = 2
	minRandomNodes = 1
)

// Path builds 0→1→...→(n-1); n ≥ 2.
func Path(n int) Constructor {
	return func(g *graph.Graph, cfg config) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		for i := 1; i < n; i++ {
			g.AddEdge(cfg.offset+i-1, cfg.offset+i)
		}

		return nil
	}
}

// Cycle builds a path closed by (n-1)→0; n ≥ 3.
func Cycle(n int) Constructor {
	return func(g *graph.Graph, cfg config) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			g.AddEdge(cfg.offset+i, cfg.offset+(i+1)%n)
		}

		return nil
	}
}

// Star joins hub 0 to leaves 1..n-1 with hub→leaf edges; n ≥ 2.
func Star(n int) Constructor {
	return func(g *graph.Graph, cfg config) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		for i := 1; i < n; i++ {
			g.AddEdge(cfg.offset, cfg.offset+i)
		}

		return nil
	}
}

// Complete adds every edge i→j with i≠j; n ≥ 1.
func Complete(n int) Constructor {
	return func(g *graph.Graph, cfg config) error {
		if n < minRandomNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minRandomNodes, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			g.AddVertex(cfg.offset + i)
			for j := 0; j < n; j++ {
				if i != j {
					g.AddEdge(cfg.offset+i, cfg.offset+j)
				}
			}
		}

		return nil
	}
}

// RandomSparse keeps each admissible pair with probability p. On a
// bidirectional graph the pairs are {i, j} with i<j, otherwise every ordered
// pair i≠j. All n vertices are added even when isolated.
func RandomSparse(n int, p float64) Constructor {
	return func(g *graph.Graph, cfg config) error {
		if err := checkRandom(methodRandomSparse, n, p, cfg); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			g.AddVertex(cfg.offset + i)
		}
		for i := 0; i < n; i++ {
			j := 0
			if g.Bidirectional() {
				j = i + 1
			}
			for ; j < n; j++ {
				if i != j && keep(cfg, p) {
					g.AddEdge(cfg.offset+i, cfg.offset+j)
				}
			}
		}

		return nil
	}
}

// RandomDAG keeps each edge i→j, i<j, with probability p. The identity order
// 0..n-1 is therefore always a topological order. Requires a directed graph.
func RandomDAG(n int, p float64) Constructor {
	return func(g *graph.Graph, cfg config) error {
		if g.Bidirectional() {
			return fmt.Errorf("%s: %w: graph is bidirectional", methodRandomDAG, ErrUnsupportedGraphMode)
		}
		if err := checkRandom(methodRandomDAG, n, p, cfg); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			g.AddVertex(cfg.offset + i)
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if keep(cfg, p) {
					g.AddEdge(cfg.offset+i, cfg.offset+j)
				}
			}
		}

		return nil
	}
}

// checkRandom validates the shared parameters of random constructors.
// An rng is only needed for 0 < p < 1.
func checkRandom(method string, n int, p float64, cfg config) error {
	if n < minRandomNodes {
		return fmt.Errorf("%s: n=%d < min=%d: %w", method, n, minRandomNodes, ErrTooFewVertices)
	}
	if p < 0 || p > 1 {
		return fmt.Errorf("%s: p=%.6f not in [0,1]: %w", method, p, ErrInvalidProbability)
	}
	if cfg.rng == nil && p > 0 && p < 1 {
		return fmt.Errorf("%s: %w", method, ErrNeedRandSource)
	}

	return nil
}

// keep draws one Bernoulli trial.
func keep(cfg config, p float64) bool {
	switch p {
	case 0:
		return false
	case 1:
		return true
	}

	return cfg.rng.Float64() < p
}

// SPDX-License-Identifier: MIT
//
// File: graph.go
// Role: Graph construction, mutation and sorted read-only views.

package graph

import (
	"fmt"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// New builds a graph from edges, each given as {from, to}.
func New(edges [][2]int, opts ...Option) *Graph {
	g := &Graph{adj: make(map[int]map[int]struct{})}
	for _, opt := range opts {
		opt(g)
	}
	for _, e := range edges {
		g.AddEdge(e[0], e[1])
	}

	return g
}

// Bidirectional reports whether back edges are inserted automatically.
func (g *Graph) Bidirectional() bool { return g.bidirectional }

// AddVertex adds v if missing.
func (g *Graph) AddVertex(v int) {
	if _, ok := g.adj[v]; !ok {
		g.adj[v] = make(map[int]struct{})
	}
}

// AddEdge adds u→v (and v→u when bidirectional). Both endpoints become
// vertices. Adding an existing edge is a no-op.
func (g *Graph) AddEdge(u, v int) {
	g.AddVertex(u)
	g.AddVertex(v)
	g.link(u, v)
	if g.bidirectional {
		g.link(v, u)
	}
}

func (g *Graph) link(u, v int) {
	if _, ok := g.adj[u][v]; ok {
		return
	}
	g.adj[u][v] = struct{}{}
	g.edges++
}

// HasVertex reports whether v is in the graph.
func (g *Graph) HasVertex(v int) bool {
	_, ok := g.adj[v]

	return ok
}

// HasEdge reports whether the directed edge u→v exists.
func (g *Graph) HasEdge(u, v int) bool {
	_, ok := g.adj[u][v]

	return ok
}

// Order returns the number of vertices.
func (g *Graph) Order() int { return len(g.adj) }

// Size returns the number of stored directed edges; a bidirectional edge
// between distinct vertices counts twice.
func (g *Graph) Size() int { return g.edges }

// Vertices returns all vertices in ascending order.
func (g *Graph) Vertices() []int {
	vs := maps.Keys(g.adj)
	slices.Sort(vs)

	return vs
}

// Neighbors returns the out-neighbors of v in ascending order.
func (g *Graph) Neighbors(v int) ([]int, error) {
	out, ok := g.adj[v]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrVertexNotFound, v)
	}
	ns := maps.Keys(out)
	slices.Sort(ns)

	return ns, nil
}

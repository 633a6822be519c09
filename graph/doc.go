// Package graph provides a small adjacency-set graph over integer vertices
// and a DFS-based topological sort.
//
// What:
//
//   - New builds a Graph from an edge list. Every endpoint becomes a vertex,
//     so sinks are present even without outgoing edges.
//   - WithBidirectional stores the reverse of every edge as well, turning the
//     graph into an undirected one.
//   - Neighbors and Vertices return sorted slices, so traversals built on top
//     (see package bfs) are deterministic.
//   - TopologicalSort orders the vertices so that every edge u→v has u before
//     v, or reports ErrCycleDetected.
//
// Complexity (V = vertices, E = edges):
//
//   - New:             O(V + E)
//   - Neighbors:       O(d log d) for out-degree d (sorted copy)
//   - TopologicalSort: O(V + E) time, O(V) memory
//
// Errors:
//
//   - ErrGraphNil        nil graph passed to TopologicalSort.
//   - ErrVertexNotFound  vertex is not in the graph.
//   - ErrCycleDetected   TopologicalSort found a back edge.
//   - context errors     TopologicalSort was cancelled.
package graph

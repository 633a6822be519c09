// Package bfs provides breadth-first search over a graph.Graph.
//
// What
//
//   - Explores vertices in non-decreasing distance (edge count) from a source.
//   - Returns a Result with Order, Depth, Parent, and the Target/Distance pair:
//     either the requested target (WithTarget) or the last vertex visited, which
//     is one of the vertices furthest from the source.
//   - Hooks: OnEnqueue (on discovery) and OnVisit (on dequeue; may abort).
//   - WithFilterNeighbor prunes individual edges; WithMaxDepth bounds the search.
//
// Why
//
//   - Unweighted shortest paths in O(V + E).
//   - The furthest-vertex answer is the first half of the classic double-BFS
//     tree diameter trick: BFS from any vertex, then BFS again from the result.
//
// Determinism
//
//	graph.Neighbors returns ascending vertex IDs and BFS enqueues in that order,
//	so visit order and the furthest vertex are reproducible.
//
// Complexity (V = vertices, E = edges)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Errors
//
//   - ErrGraphNil             nil graph.
//   - ErrStartVertexNotFound  source not in the graph.
//   - ErrTargetNotFound       WithTarget names a missing vertex.
//   - ErrTargetUnreachable    target exists but was not reached.
//   - ErrOptionViolation      invalid option (negative MaxDepth).
//   - context errors and wrapped OnVisit errors.
package bfs

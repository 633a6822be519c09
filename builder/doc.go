// Package builder assembles deterministic graph.Graph fixtures.
//
// A Constructor adds vertices and edges to a graph. Build creates the graph,
// resolves the builder options and applies the constructors in order, so the
// same inputs and seed always yield the same graph.
//
// Constructors:
//
//	Path(n)            0-1-...-(n-1)
//	Cycle(n)           a path closed by (n-1)-0
//	Star(n)            hub 0 joined to 1..n-1
//	Complete(n)        every ordered pair i≠j (every pair when bidirectional)
//	RandomSparse(n, p) each admissible pair kept with probability p
//	RandomDAG(n, p)    each pair i<j kept as i→j with probability p
//
// Vertex IDs start at the offset set by WithOffset (default 0), so several
// constructors can place disjoint components in one graph.
//
// Example:
//
//	g, err := builder.Build(
//	    []graph.Option{graph.WithBidirectional()},
//	    []builder.Option{builder.WithSeed(42)},
//	    builder.RandomSparse(100, 0.05),
//	)
package builder

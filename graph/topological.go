package graph

// topoSorter holds the state of one TopologicalSort run.
type topoSorter struct {
	graph *Graph
	opts  topoOptions
	state map[int]int
	order []int
}

// TopologicalSort returns the vertices so that every edge u→v has u before v.
// Roots are explored in ascending vertex order and neighbors in ascending
// order, so the result is deterministic. A self-loop or any other cycle yields
// ErrCycleDetected; a bidirectional graph with at least one edge is cyclic.
func TopologicalSort(g *Graph, options ...TopoOption) ([]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	opts := defaultTopoOptions()
	for _, opt := range options {
		opt(&opts)
	}

	verts := g.Vertices()
	s := &topoSorter{
		graph: g,
		opts:  opts,
		state: make(map[int]int, len(verts)),
		order: make([]int, 0, len(verts)),
	}
	for _, v := range verts {
		if s.state[v] == white {
			if err := s.visit(v); err != nil {
				return nil, err
			}
		}
	}

	// reverse post-order
	for i, j := 0, len(s.order)-1; i < j; i, j = i+1, j-1 {
		s.order[i], s.order[j] = s.order[j], s.order[i]
	}

	return s.order, nil
}

// visit explores v depth-first and appends it after all its descendants.
func (s *topoSorter) visit(v int) error {
	select {
	case <-s.opts.ctx.Done():
		return s.opts.ctx.Err()
	default:
	}

	switch s.state[v] {
	case gray:
		return ErrCycleDetected
	case black:
		return nil
	}
	s.state[v] = gray

	neighbors, err := s.graph.Neighbors(v)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		if err := s.visit(n); err != nil {
			return err
		}
	}

	s.state[v] = black
	s.order = append(s.order, v)

	return nil
}

// IsTopological reports whether order lists every vertex of g exactly once
// with each edge pointing forward.
func IsTopological(g *Graph, order []int) bool {
	if len(order) != g.Order() {
		return false
	}
	pos := make(map[int]int, len(order))
	for i, v := range order {
		if _, dup := pos[v]; dup || !g.HasVertex(v) {
			return false
		}
		pos[v] = i
	}
	for u, out := range g.adj {
		for v := range out {
			if pos[u] >= pos[v] {
				return false
			}
		}
	}

	return true
}

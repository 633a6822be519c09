// Package bfs provides breadth-first search over a graph.Graph, returning the
// distance to a target vertex or to the furthest vertex from the source.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/lvlref/graph"
)

// queueItem pairs a vertex with its BFS depth.
type queueItem struct {
	v     int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *graph.Graph
	opts    Options
	queue   []queueItem
	visited map[int]bool
	res     *Result
}

// BFS runs breadth-first search on g from source.
//
// Without WithTarget the whole reachable component is explored and the
// result's Target/Distance describe the last vertex visited, which is at
// maximum distance from source. With WithTarget the search stops once the
// target is dequeued; if it never is, ErrTargetUnreachable is returned
// together with the partial result.
func BFS(g *graph.Graph, source int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("%w: %d", ErrStartVertexNotFound, source)
	}
	if o.HasTarget && !g.HasVertex(o.Target) {
		return nil, fmt.Errorf("%w: %d", ErrTargetNotFound, o.Target)
	}

	n := g.Order()
	w := &walker{
		graph:   g,
		opts:    o,
		queue:   make([]queueItem, 0, n),
		visited: make(map[int]bool, n),
		res: &Result{
			Order:  make([]int, 0, n),
			Depth:  make(map[int]int, n),
			Parent: make(map[int]int, n),
		},
	}
	w.enqueue(source, 0, source, false)

	found, err := w.loop()
	if err != nil {
		return nil, err
	}
	if o.HasTarget && !found {
		return w.res, fmt.Errorf("%w: %d from %d", ErrTargetUnreachable, o.Target, source)
	}

	return w.res, nil
}

// enqueue marks v visited at depth d and records its parent when hasParent.
func (w *walker) enqueue(v, d, parent int, hasParent bool) {
	w.visited[v] = true
	w.res.Depth[v] = d
	if hasParent {
		w.res.Parent[v] = parent
	}
	w.opts.OnEnqueue(v, d)
	w.queue = append(w.queue, queueItem{v: v, depth: d})
}

// loop drains the queue; found reports whether the target was reached.
func (w *walker) loop() (found bool, err error) {
	for len(w.queue) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return false, w.opts.Ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		if err := w.visit(item); err != nil {
			return false, err
		}
		if w.opts.HasTarget && item.v == w.opts.Target {
			return true, nil
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return false, err
		}
	}

	return false, nil
}

// visit records the vertex as the current answer and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.v)
	w.res.Target = item.v
	w.res.Distance = item.depth
	if err := w.opts.OnVisit(item.v, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %d: %w", item.v, err)
	}

	return nil
}

// enqueueNeighbors enqueues every unseen, unfiltered neighbor within MaxDepth.
func (w *walker) enqueueNeighbors(item queueItem) error {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return nil
	}
	neighbors, err := w.graph.Neighbors(item.v)
	if err != nil {
		return err
	}
	for _, nbr := range neighbors {
		if w.visited[nbr] || !w.opts.FilterNeighbor(item.v, nbr) {
			continue
		}
		w.enqueue(nbr, next, item.v, true)
	}

	return nil
}

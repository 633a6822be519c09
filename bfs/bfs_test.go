package bfs_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/katalvlaran/lvlref/bfs"
	"github.com/katalvlaran/lvlref/builder"
	"github.com/katalvlaran/lvlref/graph"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// chain builds the undirected path 0-1-...-n.
func chain(n int) *graph.Graph {
	g, err := builder.Build([]graph.Option{graph.WithBidirectional()}, nil, builder.Path(n+1))
	if err != nil {
		panic(err)
	}

	return g
}

// TestBFS_Errors verifies invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, 0)
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	g := chain(2)
	_, err = bfs.BFS(g, 9)
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)
	_, err = bfs.BFS(g, 0, bfs.WithTarget(9))
	assert.ErrorIs(t, err, bfs.ErrTargetNotFound)
	_, err = bfs.BFS(g, 0, bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

// TestBFS_Furthest reports the last vertex of a chain and its distance.
func TestBFS_Furthest(t *testing.T) {
	res, err := bfs.BFS(chain(5), 0)
	require.NoError(t, err)
	assert.Equal(t, 5, res.Target)
	assert.Equal(t, 5, res.Distance)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, res.Order)

	res, err = bfs.BFS(chain(5), 2)
	require.NoError(t, err)
	assert.Equal(t, 5, res.Target, "5 is three hops away, 0 only two")
	assert.Equal(t, 3, res.Distance)
}

// TestBFS_Target stops at the target and reconstructs the path.
func TestBFS_Target(t *testing.T) {
	// two routes 1->6: 1-2-3-6 and 1-4-5-6, plus a shortcut 2-5
	g := graph.New([][2]int{{1, 2}, {2, 3}, {3, 6}, {1, 4}, {4, 5}, {5, 6}, {2, 5}}, graph.WithBidirectional())
	res, err := bfs.BFS(g, 1, bfs.WithTarget(6))
	require.NoError(t, err)
	assert.Equal(t, 6, res.Target)
	assert.Equal(t, 3, res.Distance)

	path, err := res.PathTo(6)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 6}, path)

	res, err = bfs.BFS(g, 1, bfs.WithTarget(1))
	require.NoError(t, err)
	assert.Equal(t, 0, res.Distance)
	assert.Equal(t, []int{1}, res.Order)
}

// TestBFS_Directed respects edge direction.
func TestBFS_Directed(t *testing.T) {
	g := graph.New([][2]int{{1, 2}, {2, 3}, {4, 3}})
	res, err := bfs.BFS(g, 1, bfs.WithTarget(4))
	assert.ErrorIs(t, err, bfs.ErrTargetUnreachable)
	require.NotNil(t, res, "partial result is returned")
	assert.Equal(t, []int{1, 2, 3}, res.Order)

	_, err = res.PathTo(4)
	assert.Error(t, err)
}

// TestBFS_MaxDepth limits discovery.
func TestBFS_MaxDepth(t *testing.T) {
	res, err := bfs.BFS(chain(6), 0, bfs.WithMaxDepth(2))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, res.Order)
	assert.Equal(t, 2, res.Distance)

	res, err = bfs.BFS(chain(6), 0, bfs.WithMaxDepth(0))
	require.NoError(t, err)
	assert.Len(t, res.Order, 7, "0 means no limit")
}

// TestBFS_FilterNeighbor prunes the 1->2 edge.
func TestBFS_FilterNeighbor(t *testing.T) {
	res, err := bfs.BFS(chain(3), 0, bfs.WithFilterNeighbor(func(cur, next int) bool {
		return !(cur == 1 && next == 2)
	}))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, res.Order)
}

// TestBFS_Hooks checks hook order and error propagation.
func TestBFS_Hooks(t *testing.T) {
	var enq, vis []int
	_, err := bfs.BFS(chain(2), 0,
		bfs.WithOnEnqueue(func(v, _ int) { enq = append(enq, v) }),
		bfs.WithOnVisit(func(v, _ int) error { vis = append(vis, v); return nil }),
	)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, enq)
	assert.Equal(t, []int{0, 1, 2}, vis)

	stop := errors.New("stop")
	_, err = bfs.BFS(chain(2), 0, bfs.WithOnVisit(func(v, _ int) error {
		if v == 1 {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop)
}

// TestBFS_SelfLoop does not revisit the source.
func TestBFS_SelfLoop(t *testing.T) {
	res, err := bfs.BFS(graph.New([][2]int{{0, 0}, {0, 1}}), 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, res.Order)
}

// TestBFS_Cancellation halts on a cancelled context.
func TestBFS_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := bfs.BFS(chain(100), 0, bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

// TestBFS_ConcurrentReaders runs several searches on one graph.
func TestBFS_ConcurrentReaders(t *testing.T) {
	g := chain(50)
	var wg sync.WaitGroup
	errs := make(chan error, 4)
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func(src int) {
			defer wg.Done()
			_, err := bfs.BFS(g, src)
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		assert.NoError(t, err)
	}
}

// TestBFS_Star reaches every leaf at distance one.
func TestBFS_Star(t *testing.T) {
	g, err := builder.Build([]graph.Option{graph.WithBidirectional()}, nil, builder.Star(8))
	require.NoError(t, err)
	res, err := bfs.BFS(g, 0)
	require.NoError(t, err)
	assert.Len(t, res.Order, 8)
	assert.Equal(t, 1, res.Distance)
	assert.Equal(t, 7, res.Target)
}

package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlref/builder"
	"github.com/katalvlaran/lvlref/graph"
)

// TestConstructors_Shapes checks vertex and edge counts of each shape.
func TestConstructors_Shapes(t *testing.T) {
	bidi := []graph.Option{graph.WithBidirectional()}
	cases := []struct {
		name        string
		gopts       []graph.Option
		con         builder.Constructor
		order, size int
	}{
		{"path", nil, builder.Path(5), 5, 4},
		{"path bidirectional", bidi, builder.Path(5), 5, 8},
		{"cycle", nil, builder.Cycle(4), 4, 4},
		{"star", nil, builder.Star(6), 6, 5},
		{"complete", nil, builder.Complete(4), 4, 12},
		{"complete single", nil, builder.Complete(1), 1, 0},
		{"sparse p=0", nil, builder.RandomSparse(7, 0), 7, 0},
		{"sparse p=1", nil, builder.RandomSparse(4, 1), 4, 12},
		{"sparse p=1 bidirectional", bidi, builder.RandomSparse(4, 1), 4, 12},
		{"dag p=1", nil, builder.RandomDAG(5, 1), 5, 10},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.Build(tc.gopts, nil, tc.con)
			require.NoError(t, err)
			assert.Equal(t, tc.order, g.Order())
			assert.Equal(t, tc.size, g.Size())
		})
	}
}

// TestConstructors_Errors covers every sentinel.
func TestConstructors_Errors(t *testing.T) {
	_, err := builder.Build(nil, nil, builder.Path(1))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
	_, err = builder.Build(nil, nil, builder.Cycle(2))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
	_, err = builder.Build(nil, nil, builder.RandomSparse(3, 1.5))
	assert.ErrorIs(t, err, builder.ErrInvalidProbability)
	_, err = builder.Build(nil, nil, builder.RandomSparse(3, 0.5))
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)
	_, err = builder.Build([]graph.Option{graph.WithBidirectional()}, nil, builder.RandomDAG(3, 1))
	assert.ErrorIs(t, err, builder.ErrUnsupportedGraphMode)

	require.NotPanics(t, func() {
		_, err = builder.Build(nil, nil, builder.Path(2), nil)
	})
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
	assert.Contains(t, err.Error(), "index 1")
}

// TestRandom_Deterministic yields identical graphs for the same seed.
func TestRandom_Deterministic(t *testing.T) {
	build := func(seed int64) *graph.Graph {
		g, err := builder.Build(nil, []builder.Option{builder.WithSeed(seed)}, builder.RandomSparse(40, 0.1))
		require.NoError(t, err)
		return g
	}
	a, b := build(3), build(3)
	assert.Equal(t, a.Size(), b.Size())
	for _, v := range a.Vertices() {
		na, err := a.Neighbors(v)
		require.NoError(t, err)
		nb, err := b.Neighbors(v)
		require.NoError(t, err)
		assert.Equal(t, na, nb)
	}
}

// TestWithOffset places two components side by side.
func TestWithOffset(t *testing.T) {
	g, err := builder.Build(nil, nil, builder.Path(3))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, g.Vertices())

	g, err = builder.Build(nil, []builder.Option{builder.WithOffset(10)}, builder.Star(3), builder.Path(2))
	require.NoError(t, err)
	assert.Equal(t, []int{10, 11, 12}, g.Vertices())
	assert.True(t, g.HasEdge(10, 11))
	assert.True(t, g.HasEdge(10, 12))
}

package triangles_test

import (
	"testing"

	"github.com/katalvlaran/nodegraph/core"
	"github.com/katalvlaran/nodegraph/graph"
	"github.com/katalvlaran/nodegraph/triangles"
	"github.com/stretchr/testify/require"
)

// S2: a single triangle is a 3-truss: every edge and vertex belongs to it,
// and no higher truss exists.
func TestPeelSingleTriangleMaxKThree(t *testing.T) {
	require.NoError(t, core.Init(2))
	defer func() { require.NoError(t, core.Init(1)) }()

	el := buildEdgeList(t, 3, 3, [][2]int64{{0, 1}, {1, 2}, {0, 2}})
	g, err := graph.New(el)
	require.NoError(t, err)

	stats, err := triangles.Peel(g)
	require.NoError(t, err)
	require.Equal(t, 3, stats.MaxK)
	require.Len(t, stats.EdgesPerTruss, 2)
	require.EqualValues(t, 3, stats.EdgesPerTruss[3-2])
	require.EqualValues(t, 3, stats.VerticesPerTruss[3-2])
	require.NoError(t, triangles.VerifyTrussStats(stats))
}

// S4: a star has no triangles, so every edge survives only to the trivial
// 2-truss.
func TestPeelStarGraphMaxKTwo(t *testing.T) {
	require.NoError(t, core.Init(2))
	defer func() { require.NoError(t, core.Init(1)) }()

	el := buildEdgeList(t, 5, 4, [][2]int64{{0, 1}, {0, 2}, {0, 3}, {0, 4}})
	g, err := graph.New(el)
	require.NoError(t, err)

	stats, err := triangles.Peel(g)
	require.NoError(t, err)
	require.Equal(t, 2, stats.MaxK)
	require.EqualValues(t, 4, stats.EdgesPerTruss[0])
}

// S3: two disjoint triangles each form an independent 3-truss.
func TestPeelTwoDisjointTrianglesMaxKThree(t *testing.T) {
	require.NoError(t, core.Init(4))
	defer func() { require.NoError(t, core.Init(1)) }()

	el := buildEdgeList(t, 6, 6, [][2]int64{
		{0, 1}, {1, 2}, {2, 0},
		{3, 4}, {4, 5}, {5, 3},
	})
	g, err := graph.New(el)
	require.NoError(t, err)

	stats, err := triangles.Peel(g)
	require.NoError(t, err)
	require.Equal(t, 3, stats.MaxK)
	require.EqualValues(t, 6, stats.EdgesPerTruss[3-2])
	require.EqualValues(t, 6, stats.VerticesPerTruss[3-2])
}

// A 4-clique (K4) is a 4-truss: every edge is in 2 triangles.
func TestPeelK4MaxKFour(t *testing.T) {
	require.NoError(t, core.Init(2))
	defer func() { require.NoError(t, core.Init(1)) }()

	el := buildEdgeList(t, 4, 6, [][2]int64{
		{0, 1}, {0, 2}, {0, 3},
		{1, 2}, {1, 3}, {2, 3},
	})
	g, err := graph.New(el)
	require.NoError(t, err)

	stats, err := triangles.Peel(g)
	require.NoError(t, err)
	require.Equal(t, 4, stats.MaxK)
	require.EqualValues(t, 6, stats.EdgesPerTruss[4-2])
	require.EqualValues(t, 4, stats.VerticesPerTruss[4-2])
}

func TestPeelReusesKernelAcrossTrials(t *testing.T) {
	require.NoError(t, core.Init(2))
	defer func() { require.NoError(t, core.Init(1)) }()

	el := buildEdgeList(t, 3, 3, [][2]int64{{0, 1}, {1, 2}, {0, 2}})
	g, err := graph.New(el)
	require.NoError(t, err)

	k := triangles.NewKTruss(g)
	first, err := k.Run()
	require.NoError(t, err)
	second, err := k.Run()
	require.NoError(t, err)
	require.Equal(t, first.MaxK, second.MaxK)
}

func TestPeelNilGraph(t *testing.T) {
	_, err := triangles.Peel(nil)
	require.ErrorIs(t, err, triangles.ErrGraphNil)
}

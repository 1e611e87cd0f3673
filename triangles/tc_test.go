package triangles_test

import (
	"testing"

	"github.com/katalvlaran/nodegraph/core"
	"github.com/katalvlaran/nodegraph/edgelist"
	"github.com/katalvlaran/nodegraph/graph"
	"github.com/katalvlaran/nodegraph/triangles"
	"github.com/stretchr/testify/require"
)

func buildEdgeList(t *testing.T, v, e int64, edges [][2]int64) *edgelist.DistEdgeList {
	t.Helper()
	require.EqualValues(t, e, len(edges))
	el := edgelist.New(v, e)
	for i, pair := range edges {
		el.Src.Set(i, pair[0])
		el.Dst.Set(i, pair[1])
	}
	return el
}

// S1: path graph has no triangles.
func TestCountPathGraphZero(t *testing.T) {
	require.NoError(t, core.Init(2))
	defer func() { require.NoError(t, core.Init(1)) }()

	el := buildEdgeList(t, 4, 3, [][2]int64{{0, 1}, {1, 2}, {2, 3}})
	g, err := graph.New(el)
	require.NoError(t, err)

	res, err := triangles.Count(g)
	require.NoError(t, err)
	require.EqualValues(t, 0, res.NumTriangles)
}

// S2: single triangle, V=3.
func TestCountSingleTriangle(t *testing.T) {
	require.NoError(t, core.Init(2))
	defer func() { require.NoError(t, core.Init(1)) }()

	el := buildEdgeList(t, 3, 3, [][2]int64{{0, 1}, {1, 2}, {0, 2}})
	g, err := graph.New(el)
	require.NoError(t, err)

	res, err := triangles.Count(g)
	require.NoError(t, err)
	require.EqualValues(t, 1, res.NumTriangles)
	require.EqualValues(t, 3, res.NumTwoPaths)
	require.NoError(t, triangles.VerifySerial(g, res))
}

// S3: two disjoint triangles.
func TestCountTwoDisjointTriangles(t *testing.T) {
	require.NoError(t, core.Init(4))
	defer func() { require.NoError(t, core.Init(1)) }()

	el := buildEdgeList(t, 6, 6, [][2]int64{
		{0, 1}, {1, 2}, {2, 0},
		{3, 4}, {4, 5}, {5, 3},
	})
	g, err := graph.New(el)
	require.NoError(t, err)

	res, err := triangles.Count(g)
	require.NoError(t, err)
	require.EqualValues(t, 2, res.NumTriangles)
}

// S4: star graph has no triangles.
func TestCountStarGraphZero(t *testing.T) {
	require.NoError(t, core.Init(2))
	defer func() { require.NoError(t, core.Init(1)) }()

	el := buildEdgeList(t, 5, 4, [][2]int64{{0, 1}, {0, 2}, {0, 3}, {0, 4}})
	g, err := graph.New(el)
	require.NoError(t, err)

	res, err := triangles.Count(g)
	require.NoError(t, err)
	require.EqualValues(t, 0, res.NumTriangles)
}

func TestCountNilGraph(t *testing.T) {
	_, err := triangles.Count(nil)
	require.ErrorIs(t, err, triangles.ErrGraphNil)
}

func TestCountUnsortedAdjacency(t *testing.T) {
	require.NoError(t, core.Init(1))
	defer func() { require.NoError(t, core.Init(1)) }()

	el := buildEdgeList(t, 3, 3, [][2]int64{{0, 1}, {1, 2}, {0, 2}})
	g, err := graph.New(el, graph.WithoutSort())
	require.NoError(t, err)

	_, err = triangles.Count(g)
	require.ErrorIs(t, err, triangles.ErrUnsortedAdjacency)
}

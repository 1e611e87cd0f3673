package pagerank_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/nodegraph/core"
	"github.com/katalvlaran/nodegraph/edgelist"
	"github.com/katalvlaran/nodegraph/graph"
	"github.com/katalvlaran/nodegraph/pagerank"
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

func sum(xs []float64) float64 {
	var s float64
	for _, x := range xs {
		s += x
	}
	return s
}

// S1: path graph converges to a stationary distribution summing to 1.
func TestRunPathGraphConvergesAndSumsToOne(t *testing.T) {
	require.NoError(t, core.Init(2))
	defer func() { require.NoError(t, core.Init(1)) }()

	el := buildEdgeList(t, 4, 3, [][2]int64{{0, 1}, {1, 2}, {2, 3}})
	g, err := graph.New(el)
	require.NoError(t, err)

	res, err := pagerank.Run(g, pagerank.WithDamping(0.85), pagerank.WithMaxIterations(100), pagerank.WithEpsilon(1e-6))
	require.NoError(t, err)
	require.Less(t, res.Error, 1e-6)
	require.InDelta(t, 1.0, sum(res.Scores), 1e-6)
	require.NoError(t, pagerank.VerifySerial(g, res, 0.85, 1e-4))
}

// S4: star graph, hub has the highest centrality.
func TestRunStarGraphHubHighestCentrality(t *testing.T) {
	require.NoError(t, core.Init(2))
	defer func() { require.NoError(t, core.Init(1)) }()

	el := buildEdgeList(t, 5, 4, [][2]int64{{0, 1}, {0, 2}, {0, 3}, {0, 4}})
	g, err := graph.New(el)
	require.NoError(t, err)

	res, err := pagerank.Run(g, pagerank.WithMaxIterations(100), pagerank.WithEpsilon(1e-9))
	require.NoError(t, err)
	for leaf := 1; leaf < 5; leaf++ {
		require.Greater(t, res.Scores[0], res.Scores[leaf])
	}
}

func TestRunZeroDegreeVertexHandledSafely(t *testing.T) {
	require.NoError(t, core.Init(1))

	el := buildEdgeList(t, 3, 1, [][2]int64{{0, 1}})
	g, err := graph.New(el)
	require.NoError(t, err)

	res, err := pagerank.Run(g, pagerank.WithMaxIterations(50))
	require.NoError(t, err)
	for _, s := range res.Scores {
		require.False(t, math.IsNaN(s))
		require.False(t, math.IsInf(s, 0))
	}
}

func TestRunNilGraph(t *testing.T) {
	_, err := pagerank.Run(nil)
	require.ErrorIs(t, err, pagerank.ErrGraphNil)
}

func TestPageRankReuseAcrossTrials(t *testing.T) {
	require.NoError(t, core.Init(2))
	defer func() { require.NoError(t, core.Init(1)) }()

	el := buildEdgeList(t, 4, 3, [][2]int64{{0, 1}, {1, 2}, {2, 3}})
	g, err := graph.New(el)
	require.NoError(t, err)

	pr := pagerank.New(g)
	r1, err := pr.Run(pagerank.WithMaxIterations(50))
	require.NoError(t, err)
	r2, err := pr.Run(pagerank.WithMaxIterations(50))
	require.NoError(t, err)
	require.InDelta(t, sum(r1.Scores), sum(r2.Scores), 1e-6)
}

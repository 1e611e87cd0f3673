package bfs_test

import (
	"testing"

	"github.com/katalvlaran/nodegraph/bfs"
	"github.com/katalvlaran/nodegraph/core"
	"github.com/katalvlaran/nodegraph/edgelist"
	"github.com/katalvlaran/nodegraph/graph"
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

var allAlgorithms = []bfs.Algorithm{
	bfs.MigratingThreads,
	bfs.RemoteWrites,
	bfs.RemoteWritesHybrid,
	bfs.BeamerHybrid,
}

// S1: path graph 0-1-2-3-4, every algorithm must agree on depth.
func TestRunPathGraphEveryAlgorithmAgrees(t *testing.T) {
	require.NoError(t, core.Init(4))
	defer func() { require.NoError(t, core.Init(1)) }()

	el := buildEdgeList(t, 5, 4, [][2]int64{{0, 1}, {1, 2}, {2, 3}, {3, 4}})
	g, err := graph.New(el)
	require.NoError(t, err)

	for _, algo := range allAlgorithms {
		t.Run(string(algo), func(t *testing.T) {
			res, err := bfs.Run(g, 0, bfs.WithAlgorithm(algo))
			require.NoError(t, err)
			for v, want := range []int{0, 1, 2, 3, 4} {
				require.Equal(t, want, res.Depth(int64(v)), "vertex %d", v)
			}
			require.NoError(t, bfs.VerifySerial(g, res, 0))
		})
	}
}

// S4: star graph, hub as source visits every leaf at depth 1.
func TestRunStarGraphDepthOne(t *testing.T) {
	require.NoError(t, core.Init(2))
	defer func() { require.NoError(t, core.Init(1)) }()

	el := buildEdgeList(t, 5, 4, [][2]int64{{0, 1}, {0, 2}, {0, 3}, {0, 4}})
	g, err := graph.New(el)
	require.NoError(t, err)

	for _, algo := range allAlgorithms {
		res, err := bfs.Run(g, 0, bfs.WithAlgorithm(algo))
		require.NoError(t, err)
		require.Equal(t, 0, res.Depth(0))
		for leaf := int64(1); leaf <= 4; leaf++ {
			require.Equal(t, 1, res.Depth(leaf))
		}
	}
}

// S5: disconnected graph, unreachable vertices stay at depth -1.
func TestRunDisconnectedGraphLeavesUnreachable(t *testing.T) {
	require.NoError(t, core.Init(2))
	defer func() { require.NoError(t, core.Init(1)) }()

	el := buildEdgeList(t, 4, 1, [][2]int64{{0, 1}})
	g, err := graph.New(el)
	require.NoError(t, err)

	for _, algo := range allAlgorithms {
		res, err := bfs.Run(g, 0, bfs.WithAlgorithm(algo))
		require.NoError(t, err)
		require.Equal(t, 0, res.Depth(0))
		require.Equal(t, 1, res.Depth(1))
		require.Equal(t, -1, res.Depth(2))
		require.Equal(t, -1, res.Depth(3))
		require.NoError(t, bfs.VerifySerial(g, res, 0))
	}
}

func TestRunNoneAlgorithmVisitsNothingButSource(t *testing.T) {
	require.NoError(t, core.Init(1))

	el := buildEdgeList(t, 3, 2, [][2]int64{{0, 1}, {1, 2}})
	g, err := graph.New(el)
	require.NoError(t, err)

	res, err := bfs.Run(g, 0, bfs.WithAlgorithm(bfs.None))
	require.NoError(t, err)
	require.Equal(t, int64(0), res.Parent[0])
	require.Less(t, res.Parent[1], int64(0))
	require.Less(t, res.Parent[2], int64(0))
}

func TestRunSourceOutOfRange(t *testing.T) {
	require.NoError(t, core.Init(1))

	el := buildEdgeList(t, 2, 1, [][2]int64{{0, 1}})
	g, err := graph.New(el)
	require.NoError(t, err)

	_, err = bfs.Run(g, 5, bfs.WithAlgorithm(bfs.BeamerHybrid))
	require.ErrorIs(t, err, bfs.ErrSourceOutOfRange)
}

func TestRunNilGraph(t *testing.T) {
	_, err := bfs.Run(nil, 0)
	require.ErrorIs(t, err, bfs.ErrGraphNil)
}

func TestRunUnknownAlgorithm(t *testing.T) {
	require.NoError(t, core.Init(1))

	el := buildEdgeList(t, 2, 1, [][2]int64{{0, 1}})
	g, err := graph.New(el)
	require.NoError(t, err)

	_, err = bfs.Run(g, 0, bfs.WithAlgorithm("bogus"))
	require.ErrorIs(t, err, bfs.ErrUnknownAlgorithm)
}

// Every algorithm must agree with every other on a denser graph (S3-style
// two triangles joined by a bridge), since disagreement would mean a
// direction-switch or CAS race broke the parent invariant.
func TestRunBridgedTrianglesAllAlgorithmsAgreeOnReachability(t *testing.T) {
	require.NoError(t, core.Init(4))
	defer func() { require.NoError(t, core.Init(1)) }()

	el := buildEdgeList(t, 6, 7, [][2]int64{
		{0, 1}, {1, 2}, {2, 0},
		{3, 4}, {4, 5}, {5, 3},
		{2, 3},
	})
	g, err := graph.New(el)
	require.NoError(t, err)

	var reference *bfs.Result
	for _, algo := range allAlgorithms {
		res, err := bfs.Run(g, 0, bfs.WithAlgorithm(algo))
		require.NoError(t, err)
		if reference == nil {
			reference = res
			continue
		}
		for v := int64(0); v < 6; v++ {
			require.Equal(t, reference.Depth(v) >= 0, res.Depth(v) >= 0, "vertex %d reachability mismatch for %s", v, algo)
		}
	}
}

func TestBFSReuseAcrossTrialsViaClear(t *testing.T) {
	require.NoError(t, core.Init(2))
	defer func() { require.NoError(t, core.Init(1)) }()

	el := buildEdgeList(t, 4, 3, [][2]int64{{0, 1}, {1, 2}, {2, 3}})
	g, err := graph.New(el)
	require.NoError(t, err)

	b := bfs.New(g)
	r1, err := b.Run(0, bfs.WithAlgorithm(bfs.BeamerHybrid))
	require.NoError(t, err)
	require.Equal(t, 3, r1.Depth(3))

	b.Clear()
	r2, err := b.Run(3, bfs.WithAlgorithm(bfs.MigratingThreads))
	require.NoError(t, err)
	require.Equal(t, 3, r2.Depth(0))
}

package triangles

import (
	"sort"

	"github.com/katalvlaran/nodegraph/core"
	"github.com/katalvlaran/nodegraph/graph"
	"github.com/katalvlaran/nodegraph/intrinsics"
	"github.com/katalvlaran/nodegraph/traversal"
)

// activeNeighbors returns the prefix of the ascending neighbor list n that
// is strictly less than self — the canonical p > q > r restriction every
// triangle-count and k-truss step relies on.
func activeNeighbors(n []int64, self int64) []int64 {
	idx := sort.Search(len(n), func(i int) bool { return n[i] >= self })
	return n[:idx]
}

// intersectCount walks two ascending slices with a two-pointer merge,
// calling f for every element common to both (by value).
func intersectCount(a, b []int64, f func(w int64)) {
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			f(a[i])
			i++
			j++
		}
	}
}

// Count performs the plain (non-peeling) triangle count: for every edge
// p->q with p > q, intersect p's and q's active neighbor lists; the
// combined result is each triangle counted exactly once, via the edge
// between its two largest-numbered vertices. Two-paths are every wedge
// centered at any vertex v, i.e. C(deg(v), 2) summed over all v, regardless
// of whether the wedge closes into a triangle.
func Count(g *graph.Graph) (*CountResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.IsAdjacencySorted() {
		return nil, ErrUnsortedAdjacency
	}

	v := int(g.NumVertices())
	active := make([][]int64, v)
	traversal.Fixed{}.Run(v, func(i int) {
		active[i] = activeNeighbors(g.OutNeighbors(int64(i)), int64(i))
	})

	worklist := traversal.NewReplicatedWorkList(v)
	for p := 0; p < v; p++ {
		if len(active[p]) > 0 {
			worklist.Append(int64(p), 0, int64(len(active[p])))
		}
	}

	triangles := core.NewReplicated[int64]()
	twoPaths := core.NewReplicated[int64]()

	traversal.Fixed{}.Run(v, func(i int) {
		deg := g.Degree(int64(i))
		intrinsics.RemoteAdd(twoPaths.GetNth(core.HomeNodelet(i)), deg*(deg-1)/2)
	})

	worklist.ProcessAllDynamic(64, func(p, idx int64) {
		q := active[p][idx]
		var found int64
		intersectCount(active[p], active[q], func(int64) { found++ })
		intrinsics.RemoteAdd(triangles.GetNth(core.HomeNodelet(int(p))), found)
	})
	intrinsics.Fence()

	return &CountResult{
		NumTriangles: sumReplicatedInt64(triangles),
		NumTwoPaths:  sumReplicatedInt64(twoPaths),
	}, nil
}

func sumReplicatedInt64(r *core.Replicated[int64]) int64 {
	return r.Reduce(func(a, b int64) int64 { return a + b })
}

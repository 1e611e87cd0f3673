package triangles

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/nodegraph/graph"
)

// ErrVerifyFailed is returned by VerifySerial when the count it was given
// disagrees with an independently computed serial triangle count.
var ErrVerifyFailed = errors.New("triangles: verification failed")

// VerifySerial re-derives the triangle count with a trivial triple-nested
// serial scan over each vertex's (already sorted) adjacency, and reports any
// disagreement with result. This is the --check_results slow path, not
// something a caller should run on a hot path.
func VerifySerial(g *graph.Graph, result *CountResult) error {
	v := int(g.NumVertices())
	var want int64
	for u := 0; u < v; u++ {
		adj := activeNeighbors(g.OutNeighbors(int64(u)), int64(u))
		for _, q := range adj {
			qAdj := activeNeighbors(g.OutNeighbors(q), q)
			intersectCount(adj, qAdj, func(int64) { want++ })
		}
	}
	if want != result.NumTriangles {
		return fmt.Errorf("%w: serial count %d, got %d", ErrVerifyFailed, want, result.NumTriangles)
	}
	return nil
}

// VerifyTrussStats checks that stats are internally consistent: each level's
// edge and vertex counts are non-increasing as k grows, since truss
// membership is nested. It sees no per-edge KTE values and does not check
// counts for being negative.
func VerifyTrussStats(stats *TrussStats) error {
	for i := 1; i < len(stats.EdgesPerTruss); i++ {
		if stats.EdgesPerTruss[i] > stats.EdgesPerTruss[i-1] {
			return fmt.Errorf("%w: edges_per_truss not non-increasing at k=%d", ErrVerifyFailed, i+2)
		}
	}
	for i := 1; i < len(stats.VerticesPerTruss); i++ {
		if stats.VerticesPerTruss[i] > stats.VerticesPerTruss[i-1] {
			return fmt.Errorf("%w: vertices_per_truss not non-increasing at k=%d", ErrVerifyFailed, i+2)
		}
	}
	return nil
}

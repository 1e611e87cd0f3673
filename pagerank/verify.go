package pagerank

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/nodegraph/graph"
)

// ErrVerifyFailed is returned by VerifySerial when result disagrees with an
// independently computed serial recomputation beyond targetError.
var ErrVerifyFailed = errors.New("pagerank: verification failed")

// VerifySerial re-derives each vertex's incoming sum with a single serial
// pass over the graph and checks that one more PageRank update from
// result.Scores would move by less than targetError in total — the same
// one-shot residual check the reference's check() performs.
func VerifySerial(g *graph.Graph, result *Result, damping, targetError float64) error {
	v := int(g.NumVertices())
	baseScore := (1.0 - damping) / float64(v)
	incoming := make([]float64, v)

	for u := 0; u < v; u++ {
		deg := g.Degree(int64(u))
		if deg == 0 {
			continue
		}
		contrib := result.Scores[u] / float64(deg)
		for _, w := range g.OutNeighbors(int64(u)) {
			incoming[w] += contrib
		}
	}

	var total float64
	for n := 0; n < v; n++ {
		total += math.Abs(baseScore + damping*incoming[n] - result.Scores[n])
	}

	if total >= targetError {
		return fmt.Errorf("%w: residual %g >= target %g", ErrVerifyFailed, total, targetError)
	}
	return nil
}

package bfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/nodegraph/graph"
)

// ErrVerifyFailed is returned by VerifySerial when result disagrees with an
// independently computed serial BFS.
var ErrVerifyFailed = errors.New("bfs: verification failed")

// VerifySerial re-derives reachability from source with a trivial serial
// BFS and checks result against it: every vertex the serial walk reaches
// must have a Parent entry that is one of its own neighbors (so the parent
// tree is a valid witness, whichever of the four algorithms produced it),
// every vertex it doesn't reach must be unvisited in result, and vice versa.
// This is the --check_results slow path, not something a caller should run
// on a hot path.
func VerifySerial(g *graph.Graph, result *Result, source int64) error {
	v := int(g.NumVertices())
	reached := make([]bool, v)
	reached[source] = true
	queue := []int64{source}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, w := range g.OutNeighbors(u) {
			if !reached[w] {
				reached[w] = true
				queue = append(queue, w)
			}
		}
	}

	if result.Parent[source] != source {
		return fmt.Errorf("%w: source %d has parent %d, want itself", ErrVerifyFailed, source, result.Parent[source])
	}

	for i := 0; i < v; i++ {
		visited := result.Parent[i] >= 0
		if visited != reached[int64(i)] {
			return fmt.Errorf("%w: vertex %d reachable=%v but result visited=%v", ErrVerifyFailed, i, reached[int64(i)], visited)
		}
		if !visited || int64(i) == source {
			continue
		}
		p := result.Parent[i]
		found := false
		for _, w := range g.OutNeighbors(int64(i)) {
			if w == p {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("%w: vertex %d's parent %d is not a neighbor", ErrVerifyFailed, i, p)
		}
	}
	return nil
}

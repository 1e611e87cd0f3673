package components

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/nodegraph/graph"
)

// ErrVerifyFailed is returned by VerifySerial when the labels it was given
// disagree with an independently computed serial BFS.
var ErrVerifyFailed = errors.New("components: verification failed")

// VerifySerial re-derives component membership with a trivial serial BFS,
// one pass per distinct label, and reports any disagreement with result —
// either a visited vertex whose neighbor carries a different label, or a
// vertex the labeling never reached. This is the --check_results slow path,
// not something a caller should run on a hot path.
func VerifySerial(g *graph.Graph, result *Result) error {
	v := int(g.NumVertices())
	visited := make([]bool, v)

	labelSource := make(map[int64]int64)
	for i := 0; i < v; i++ {
		labelSource[result.Labels[i]] = int64(i)
	}

	for label, source := range labelSource {
		visited[source] = true
		queue := []int64{source}
		for len(queue) > 0 {
			u := queue[0]
			queue = queue[1:]
			for _, w := range g.OutNeighbors(u) {
				if result.Labels[w] != label {
					return fmt.Errorf("%w: %d (label %d) -> %d (label %d)", ErrVerifyFailed, u, label, w, result.Labels[w])
				}
				if !visited[w] {
					visited[w] = true
					queue = append(queue, w)
				}
			}
		}
	}

	for i := 0; i < v; i++ {
		if !visited[i] {
			return fmt.Errorf("%w: vertex %d never reached by serial BFS", ErrVerifyFailed, i)
		}
	}
	return nil
}

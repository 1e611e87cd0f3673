package graph

import (
	"fmt"

	"github.com/katalvlaran/nodegraph/edgelist"
)

// CheckAgainst performs the optional, slow §4.4 consistency check: for every
// edge in el, verify both endpoints' adjacency contains the other, and that
// no adjacency holds a duplicate. Intended for --check_graph, not the hot
// path.
func (g *Graph) CheckAgainst(el *edgelist.DistEdgeList) error {
	var bad int
	el.ForallEdgesSequential(func(src, dst int64) {
		if !g.hasOutEdge(src, dst) {
			bad++
		}
		if !g.hasOutEdge(dst, src) {
			bad++
		}
	})
	if bad > 0 {
		return fmt.Errorf("%w: %d missing adjacency entries", ErrCheckFailed, bad)
	}

	for v := int64(0); v < g.numVertices; v++ {
		adj := g.Adjacency(v)
		for i := 1; i < len(adj); i++ {
			if adj[i].Dst == adj[i-1].Dst {
				return fmt.Errorf("%w: vertex %d has duplicate neighbor %d", ErrCheckFailed, v, adj[i].Dst)
			}
		}
	}
	return nil
}

func (g *Graph) hasOutEdge(src, dst int64) bool {
	for _, s := range g.Adjacency(src) {
		if s.Dst == dst {
			return true
		}
	}
	return false
}

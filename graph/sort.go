package graph

import (
	"sort"

	"github.com/katalvlaran/nodegraph/core"
	"github.com/katalvlaran/nodegraph/traversal"
)

// SortAdjacency sorts every vertex's edge blocks in ascending destination
// order, required by the ordered-intersection kernels (triangle count,
// k-truss) and by Adjacency's merge step. Safe to call again after it has
// already run; it is idempotent.
func (g *Graph) SortAdjacency() {
	v := int(g.numVertices)
	traversal.Dynamic{Grain: 64}.Run(v, func(i int) {
		for _, b := range g.blocks.Get(i) {
			sort.Slice(b.Slots, func(x, y int) bool { return b.Slots[x].Dst < b.Slots[y].Dst })
		}
	})
	g.adjacencySort = true
}

// SortByHomeNodelet sorts each block by the destination's home nodelet
// first, then by destination, trading ordered-intersection ability for
// better edge-block traversal locality in BFS.
func (g *Graph) SortByHomeNodelet() {
	v := int(g.numVertices)
	traversal.Dynamic{Grain: 64}.Run(v, func(i int) {
		for _, b := range g.blocks.Get(i) {
			sort.Slice(b.Slots, func(x, y int) bool {
				hx, hy := core.HomeNodelet(int(b.Slots[x].Dst)), core.HomeNodelet(int(b.Slots[y].Dst))
				if hx != hy {
					return hx < hy
				}
				return b.Slots[x].Dst < b.Slots[y].Dst
			})
		}
	})
}

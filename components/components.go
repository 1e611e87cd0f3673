package components

import (
	"sync/atomic"

	"github.com/katalvlaran/nodegraph/core"
	"github.com/katalvlaran/nodegraph/graph"
	"github.com/katalvlaran/nodegraph/traversal"
)

// CC owns the per-vertex scratch state for repeated connected-components
// trials against one graph.Graph: the component-label array and the cached
// adjacency (built once, since the graph never changes between trials) and
// the worklist that iterates (vertex, edge-range) records rather than a
// flat edge array.
type CC struct {
	g         *graph.Graph
	component []int64
	adjacency [][]int64
	worklist  *traversal.ReplicatedWorkList
}

// New allocates CC scratch sized to g.
func New(g *graph.Graph) *CC {
	v := int(g.NumVertices())
	return &CC{
		g:         g,
		component: make([]int64, v),
		worklist:  traversal.NewReplicatedWorkList(v),
	}
}

// Run performs one connected-components trial: label propagation to a
// fixed point, path compression between rounds, then a component-size
// tally to report the distinct component count.
func Run(g *graph.Graph) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	return New(g).Run()
}

// Run executes label propagation against c.g.
func (c *CC) Run() (*Result, error) {
	v := int(c.g.NumVertices())

	if c.adjacency == nil {
		c.adjacency = make([][]int64, v)
		traversal.Fixed{}.Run(v, func(i int) {
			c.adjacency[i] = c.g.OutNeighbors(int64(i))
		})
	}

	c.worklist.ClearAll()
	traversal.Fixed{}.Run(v, func(i int) {
		c.component[i] = int64(i)
		c.worklist.Append(int64(i), 0, int64(len(c.adjacency[i])))
	})

	var iters int64
	for iters = 1; ; iters++ {
		changed := core.NewReplicated[bool]()
		c.worklist.ProcessAllDynamic(64, func(src, idx int64) {
			dst := c.adjacency[src][idx]
			if attachToMin(c.component, src, dst) {
				*changed.GetNth(core.HomeNodelet(int(src))) = true
			}
		})

		if !core.OrBool(changed) {
			break
		}

		c.worklist.ClearAll()
		traversal.Fixed{}.Run(v, func(i int) {
			for c.component[i] != c.component[c.component[i]] {
				c.component[i] = c.component[c.component[i]]
			}
			c.worklist.Append(int64(i), 0, int64(len(c.adjacency[i])))
		})
	}

	size := make([]int64, v)
	for i := 0; i < v; i++ {
		size[c.component[i]]++
	}
	numComponents := 0
	for _, s := range size {
		if s > 0 {
			numComponents++
		}
	}

	labels := make([]int64, v)
	copy(labels, c.component)
	return &Result{Labels: labels, NumComponents: numComponents, Iterations: iters}, nil
}

// attachToMin attempts to move src's label down to dst's, once, via a
// single compare-and-swap. A failed attempt means a concurrent attachToMin
// already lowered src's label and reported a change, so another round runs
// and revisits this edge; no retry is made here.
func attachToMin(component []int64, src, dst int64) bool {
	cs := atomic.LoadInt64(&component[src])
	cd := atomic.LoadInt64(&component[dst])
	if cd < cs {
		return atomic.CompareAndSwapInt64(&component[src], cs, cd)
	}
	return false
}

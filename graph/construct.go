package graph

import (
	"fmt"
	"sync/atomic"

	"github.com/katalvlaran/nodegraph/core"
	"github.com/katalvlaran/nodegraph/edgelist"
	"github.com/katalvlaran/nodegraph/intrinsics"
	"github.com/katalvlaran/nodegraph/traversal"
)

// Option configures New.
type Option func(*buildConfig)

type buildConfig struct {
	blockGrain       int
	sortAdjacency    bool
	sortByHomeNlet   bool
}

func defaultConfig() buildConfig {
	return buildConfig{
		blockGrain:    DefaultBlockGrain,
		sortAdjacency: true,
	}
}

// WithBlockGrain overrides the per-block edge grain (default
// DefaultBlockGrain): a vertex gets ceil(degree/grain) blocks, rounded up to
// a power of two and capped at the nodelet count.
func WithBlockGrain(grain int) Option {
	return func(c *buildConfig) {
		if grain > 0 {
			c.blockGrain = grain
		}
	}
}

// WithoutSort skips the post-construction ascending-destination sort. Only
// BFS and connected components tolerate an unsorted graph; triangle count
// and k-truss require it.
func WithoutSort() Option {
	return func(c *buildConfig) { c.sortAdjacency = false }
}

// WithHomeNodeletSort sorts each block by (destination's home nodelet, then
// destination) instead of pure ascending destination, trading the ordered-
// intersection invariant for better edge-block traversal locality. Kernels
// that need ascending order (triangle count, k-truss) must not combine this
// with New.
func WithHomeNodeletSort() Option {
	return func(c *buildConfig) { c.sortByHomeNlet = true }
}

// New builds a Graph from a distributed edge list in three passes: count
// degrees, size and carve the edge-block arena, then fill and (by default)
// sort each block. The edge list is assumed deduped; New does not validate
// that, since edgelist.LoadBinary/LoadDistributed already reject
// non-deduped input at the header.
func New(el *edgelist.DistEdgeList, opts ...Option) (*Graph, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	v := el.NumVertices
	g := &Graph{
		numVertices: v,
		numEdges:    el.NumEdges,
		blockGrain:  cfg.blockGrain,
		outDegree:   core.NewStriped[int64](int(v)),
		numBlocks:   core.NewStriped[int64](int(v)),
		blocks:      core.NewStriped[[]*EdgeBlock](int(v)),
	}

	if err := validateEndpoints(el); err != nil {
		return nil, err
	}

	countDegrees(g, el)
	sizeBlocks(g)
	if err := carveAndFill(g, el); err != nil {
		return nil, err
	}

	if cfg.sortAdjacency {
		if cfg.sortByHomeNlet {
			g.SortByHomeNodelet()
		} else {
			g.SortAdjacency()
		}
		g.adjacencySort = !cfg.sortByHomeNlet
	}
	return g, nil
}

func validateEndpoints(el *edgelist.DistEdgeList) error {
	n := el.NumVertices
	var bad int64
	el.ForallEdgesSequential(func(src, dst int64) {
		if src < 0 || src >= n || dst < 0 || dst >= n {
			bad++
		}
	})
	if bad > 0 {
		return fmt.Errorf("%w: %d edge endpoints outside [0, %d)", ErrInvalidVertex, bad, n)
	}
	return nil
}

// countDegrees is pass 1: for every edge (u,v), remote_add both endpoints'
// degree counters, then fence before any code reads vertex_out_degree_.
func countDegrees(g *Graph, el *edgelist.DistEdgeList) {
	_ = el.ForallEdges(func(src, dst int64) {
		intrinsics.RemoteAdd(g.outDegree.At(int(src)), 1)
		intrinsics.RemoteAdd(g.outDegree.At(int(dst)), 1)
	})
	intrinsics.Fence()
}

// sizeBlocks is pass 2: decide each vertex's block count, then allocate that
// many (empty) block descriptors, recording the home nodelet each would
// occupy on the reference machine.
func sizeBlocks(g *Graph) {
	n := core.NodeletCount()
	v := int(g.numVertices)
	traversal.Fixed{}.Run(v, func(i int) {
		deg := g.outDegree.Get(i)
		nb := numBlocksFor(deg, int64(g.blockGrain), n)
		g.numBlocks.Set(i, nb)

		home := core.HomeNodelet(i)
		blocks := make([]*EdgeBlock, nb)
		for b := int64(0); b < nb; b++ {
			blocks[b] = &EdgeBlock{Nodelet: (home + int(b)) % n}
		}
		g.blocks.Set(i, blocks)
	})
}

// numBlocksFor computes ceil(deg/grain) rounded up to a power of two,
// clamped to [1, maxN].
func numBlocksFor(deg, grain int64, maxN int) int64 {
	if deg <= 0 {
		return 1
	}
	raw := (deg + grain - 1) / grain
	if raw < 1 {
		raw = 1
	}
	nb := nextPow2(raw)
	if nb > int64(maxN) {
		nb = int64(maxN)
	}
	if nb < 1 {
		nb = 1
	}
	return nb
}

func nextPow2(n int64) int64 {
	p := int64(1)
	for p < n {
		p <<= 1
	}
	return p
}

// carveAndFill is passes 3 and 4: scan the edge list to count each block's
// final size, allocate its Slots, reset the counter to use as an insertion
// cursor, then scan a third time to fill every slot.
func carveAndFill(g *Graph, el *edgelist.DistEdgeList) error {
	_ = el.ForallEdges(func(src, dst int64) {
		intrinsics.RemoteAdd(&g.BlockFor(src, dst).cursor, 1)
		intrinsics.RemoteAdd(&g.BlockFor(dst, src).cursor, 1)
	})
	intrinsics.Fence()

	v := int(g.numVertices)
	traversal.Fixed{}.Run(v, func(i int) {
		for _, b := range g.blocks.Get(i) {
			b.Slots = make([]EdgeSlot, b.cursor)
			atomic.StoreInt64(&b.cursor, 0)
		}
	})

	_ = el.ForallEdges(func(src, dst int64) {
		insert(g, src, dst)
		insert(g, dst, src)
	})
	intrinsics.Fence()
	return nil
}

func insert(g *Graph, v, dst int64) {
	b := g.BlockFor(v, dst)
	idx := atomic.AddInt64(&b.cursor, 1) - 1
	b.Slots[idx] = EdgeSlot{Dst: dst, KTE: -1}
}

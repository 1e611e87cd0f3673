package graph

import (
	"sort"
	"sync"

	"github.com/katalvlaran/nodegraph/traversal"
)

// ForEachOutEdge is the edge-block walker: it visits v's edge-block
// descriptors in sequence and, for each one, spawns a goroutine (standing in
// for the reference's migration hint to the block's home nodelet) that runs
// policy over that block's slots. This yields one migration per block
// rather than one per edge.
func (g *Graph) ForEachOutEdge(v int64, policy traversal.Policy, f func(dst int64, slot *EdgeSlot)) {
	blocks := g.blocks.Get(int(v))
	var wg sync.WaitGroup
	wg.Add(len(blocks))
	for _, b := range blocks {
		go func(b *EdgeBlock) {
			defer wg.Done()
			policy.Run(len(b.Slots), func(i int) {
				f(b.Slots[i].Dst, &b.Slots[i])
			})
		}(b)
	}
	wg.Wait()
}

// ForEachOutNeighbor is ForEachOutEdge specialized to just the destination,
// for kernels (BFS, PageRank) that never touch the k-truss counters.
func (g *Graph) ForEachOutNeighbor(v int64, policy traversal.Policy, f func(dst int64)) {
	g.ForEachOutEdge(v, policy, func(dst int64, _ *EdgeSlot) { f(dst) })
}

// Adjacency returns v's full adjacency as one slice, merged in ascending
// destination order across v's blocks. Triangle count, k-truss, and the
// invariant checks need a single ordered view; the multi-block layout
// scatters entries across blocks by the destination's low bits, so this
// performs a k-way merge of each block's (already sorted, post-
// SortAdjacency) slots rather than assuming any single block is globally
// ordered on its own.
func (g *Graph) Adjacency(v int64) []EdgeSlot {
	blocks := g.blocks.Get(int(v))
	if len(blocks) == 1 {
		return blocks[0].Slots
	}
	total := 0
	for _, b := range blocks {
		total += len(b.Slots)
	}
	out := make([]EdgeSlot, 0, total)
	cursors := make([]int, len(blocks))
	for {
		best := -1
		for bi, b := range blocks {
			if cursors[bi] >= len(b.Slots) {
				continue
			}
			if best == -1 || b.Slots[cursors[bi]].Dst < blocks[best].Slots[cursors[best]].Dst {
				best = bi
			}
		}
		if best == -1 {
			break
		}
		out = append(out, blocks[best].Slots[cursors[best]])
		cursors[best]++
	}
	return out
}

// OutNeighbors returns just the destinations from Adjacency, for callers
// that don't need the k-truss counters.
func (g *Graph) OutNeighbors(v int64) []int64 {
	adj := g.Adjacency(v)
	out := make([]int64, len(adj))
	for i, s := range adj {
		out[i] = s.Dst
	}
	return out
}

// AdjacencyPtrs is Adjacency's k-way merge, but yields pointers into the
// blocks' own backing arrays instead of value copies. Block slices are
// never reallocated after construction, so these pointers stay valid for
// the graph's lifetime. Triangle count needs only Adjacency's read-only
// view; k-truss needs this one, since peeling mutates TC/KTE in place.
func (g *Graph) AdjacencyPtrs(v int64) []*EdgeSlot {
	blocks := g.blocks.Get(int(v))
	if len(blocks) == 1 {
		b := blocks[0]
		out := make([]*EdgeSlot, len(b.Slots))
		for i := range b.Slots {
			out[i] = &b.Slots[i]
		}
		return out
	}
	total := 0
	for _, b := range blocks {
		total += len(b.Slots)
	}
	out := make([]*EdgeSlot, 0, total)
	cursors := make([]int, len(blocks))
	for {
		best := -1
		for bi, b := range blocks {
			if cursors[bi] >= len(b.Slots) {
				continue
			}
			if best == -1 || b.Slots[cursors[bi]].Dst < blocks[best].Slots[cursors[best]].Dst {
				best = bi
			}
		}
		if best == -1 {
			break
		}
		out = append(out, &blocks[best].Slots[cursors[best]])
		cursors[best]++
	}
	return out
}

// FindOutEdge binary-searches v's sorted adjacency (via AdjacencyPtrs) for
// the slot whose destination is dst, returning (nil, false) if v has no
// such neighbor. Requires IsAdjacencySorted.
func (g *Graph) FindOutEdge(v, dst int64) (*EdgeSlot, bool) {
	adj := g.AdjacencyPtrs(v)
	idx := sort.Search(len(adj), func(i int) bool { return adj[i].Dst >= dst })
	if idx < len(adj) && adj[idx].Dst == dst {
		return adj[idx], true
	}
	return nil, false
}

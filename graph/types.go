package graph

import (
	"errors"

	"github.com/katalvlaran/nodegraph/core"
)

// Sentinel errors for graph construction.
var (
	// ErrInvalidVertex is returned when an edge endpoint is outside [0, V).
	ErrInvalidVertex = errors.New("graph: vertex id out of range")

	// ErrAllocationFailed mirrors core.ErrAllocationFailed for the block and
	// edge-slot arenas carved during construction.
	ErrAllocationFailed = errors.New("graph: allocation failed")

	// ErrCheckFailed is returned by CheckAgainst when the constructed graph
	// disagrees with the edge list it was built from.
	ErrCheckFailed = errors.New("graph: consistency check failed")
)

// DefaultBlockGrain is the construction-time constant controlling how many
// edges are grouped into one edge block before a vertex is given another
// block on a different nodelet.
const DefaultBlockGrain = 1024

// EdgeSlot is a single adjacency entry: the destination vertex, plus the two
// k-truss counters. TC is live (the edge's current triangle count) until the
// edge is removed by k-truss peeling, at which point KTE records the truss
// level it was removed at; KTE is -1 for an edge that has not been removed.
type EdgeSlot struct {
	Dst int64
	TC  int32
	KTE int32
}

// EdgeBlock is a contiguous, per-vertex adjacency shard. Slots is sized
// exactly to the block's edge count once construction finishes; cursor is
// the atomic insertion index used only while the block is being filled.
type EdgeBlock struct {
	Slots   []EdgeSlot
	cursor  int64
	Nodelet int // home(v)+b mod N at allocation time, kept for locality/debugging
}

// Graph is the replicated-shallow adjacency structure produced by New. It is
// immutable after construction: kernels read it concurrently and own their
// own per-vertex scratch arrays.
type Graph struct {
	numVertices int64
	numEdges    int64
	blockGrain  int

	outDegree     *core.Striped[int64]
	numBlocks     *core.Striped[int64]
	blocks        *core.Striped[[]*EdgeBlock]
	adjacencySort bool
}

// NumVertices returns V.
func (g *Graph) NumVertices() int64 { return g.numVertices }

// NumEdges returns E (the undirected edge count; total adjacency slots = 2E).
func (g *Graph) NumEdges() int64 { return g.numEdges }

// Degree returns deg(v).
func (g *Graph) Degree(v int64) int64 { return g.outDegree.Get(int(v)) }

// NumEdgeBlocks returns the number of edge blocks vertex v was split across.
func (g *Graph) NumEdgeBlocks(v int64) int64 { return g.numBlocks.Get(int(v)) }

// Block returns vertex v's b-th edge block descriptor.
func (g *Graph) Block(v int64, b int) *EdgeBlock {
	return g.blocks.Get(int(v))[b]
}

// BlockFor locates the edge block that holds (or will hold) the edge v->dst,
// using the destination's low bits as the reference implementation does.
func (g *Graph) BlockFor(v, dst int64) *EdgeBlock {
	nb := g.numBlocks.Get(int(v))
	idx := dst % nb
	return g.blocks.Get(int(v))[idx]
}

// IsAdjacencySorted reports whether SortAdjacency has been run.
func (g *Graph) IsAdjacencySorted() bool { return g.adjacencySort }

package bfs

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/katalvlaran/nodegraph/bitmap"
	"github.com/katalvlaran/nodegraph/core"
	"github.com/katalvlaran/nodegraph/graph"
	"github.com/katalvlaran/nodegraph/intrinsics"
	"github.com/katalvlaran/nodegraph/traversal"
)

type direction int

const (
	dirTopDown direction = iota
	dirBottomUp
)

// sumReplicated folds a Replicated[int64] counter with addition; core.SumInt
// only covers Replicated[int], and scout/awake counts need the wider type.
func sumReplicated(r *core.Replicated[int64]) int64 {
	return r.Reduce(func(a, b int64) int64 { return a + b })
}

// BFS owns the per-vertex scratch state for repeated breadth-first search
// trials against one graph.Graph: the parent array, the frontier bitmaps,
// the sliding queue, and the remote-writes variant's shadow parent array.
// The graph itself is never mutated; two BFS trials never need to run
// concurrently against the same graph (§5 shared-resource policy).
type BFS struct {
	g            *graph.Graph
	parent       []int64
	newParent    []int64
	frontier     *bitmap.Bitmap
	nextFrontier *bitmap.Bitmap
	queue        *traversal.ReplicatedSlidingQueue

	source int64
	levels int64
}

// New allocates BFS scratch sized to g.
func New(g *graph.Graph) *BFS {
	v := int(g.NumVertices())
	return &BFS{
		g:            g,
		parent:       make([]int64, v),
		newParent:    make([]int64, v),
		frontier:     bitmap.NewLocal(v),
		nextFrontier: bitmap.NewLocal(v),
		queue:        traversal.NewReplicatedSlidingQueue(v),
	}
}

// Clear resets all scratch state so Run can be called again for a fresh
// trial, without reallocating.
func (b *BFS) Clear() {
	for i := range b.parent {
		b.parent[i] = 0
		b.newParent[i] = 0
	}
	b.frontier.ClearAll()
	b.nextFrontier.ClearAll()
	b.queue.ResetAll()
	b.levels = 0
}

// Run performs one BFS trial from source, per opts.Algorithm.
func (b *BFS) Run(source int64, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if source < 0 || source >= b.g.NumVertices() {
		return nil, ErrSourceOutOfRange
	}

	b.init(source)

	switch o.Algorithm {
	case None:
	case MigratingThreads:
		b.runTopDownOnly(b.stepMigratingThreads, o.MaxLevel)
	case RemoteWrites:
		b.runTopDownOnly(b.stepRemoteWrites, o.MaxLevel)
	case RemoteWritesHybrid:
		b.runHybrid(b.stepRemoteWrites, o)
	case BeamerHybrid:
		b.runHybrid(b.stepMigratingThreads, o)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, o.Algorithm)
	}

	parentCopy := make([]int64, len(b.parent))
	copy(parentCopy, b.parent)
	return &Result{Parent: parentCopy, Levels: b.levels}, nil
}

// Run is a convenience wrapper for a single one-off trial: it allocates,
// runs, and discards fresh BFS scratch.
func Run(g *graph.Graph, source int64, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	return New(g).Run(source, opts...)
}

func (b *BFS) init(source int64) {
	b.source = source
	v := len(b.parent)
	traversal.Fixed{}.Run(v, func(i int) {
		deg := b.g.Degree(int64(i))
		if deg > 0 {
			b.parent[i] = -deg
		} else {
			b.parent[i] = -1
		}
	})
	b.parent[source] = source

	b.frontier.ClearAll()
	b.nextFrontier.ClearAll()
	b.queue.ResetAll()
	b.queue.Nth(core.HomeNodelet(int(source))).PushBack(source)
	b.queue.SlideAllWindows()
	b.levels = 0
}

func (b *BFS) runTopDownOnly(step func() int64, maxLevel int64) {
	for !b.queue.AllEmpty() {
		if maxLevel > 0 && b.levels >= maxLevel {
			return
		}
		b.levels++
		step()
		b.queue.SlideAllWindows()
	}
}

// runHybrid implements Beamer's direction-optimizing controller: top-down
// while the frontier's out-degree is small relative to the unexplored edge
// count, bottom-up once it isn't, switching back once the bottom-up
// awake count shrinks and drops low enough.
func (b *BFS) runHybrid(topDownStep func() int64, o Options) {
	dir := dirTopDown
	scoutCount := b.g.Degree(b.source)
	edgesToCheck := 2 * b.g.NumEdges()
	var awakeCount int64

	alpha, beta := o.Alpha, o.Beta
	if alpha <= 0 {
		alpha = 1
	}
	if beta <= 0 {
		beta = 1
	}

	for {
		if o.MaxLevel > 0 && b.levels >= o.MaxLevel {
			return
		}
		switch dir {
		case dirTopDown:
			if b.queue.AllEmpty() {
				return
			}
			if scoutCount > edgesToCheck/alpha {
				b.queueToBitmap()
				b.queue.SlideAllWindows()
				awakeCount = int64(b.frontier.PopCount())
				dir = dirBottomUp
				continue
			}
			b.levels++
			edgesToCheck -= scoutCount
			scoutCount = topDownStep()
			b.queue.SlideAllWindows()
		case dirBottomUp:
			if b.frontier.IsEmpty() {
				return
			}
			b.levels++
			prevAwake := awakeCount
			awakeCount = b.bottomUpStep()
			b.frontier, b.nextFrontier = b.nextFrontier, b.frontier
			if awakeCount < prevAwake && awakeCount <= b.g.NumVertices()/beta {
				b.bitmapToQueue()
				b.queue.SlideAllWindows()
				scoutCount = 1
				dir = dirTopDown
			}
		}
	}
}

func (b *BFS) queueToBitmap() {
	b.frontier.ClearAll()
	for k := 0; k < b.queue.Len(); k++ {
		for _, v := range b.queue.Nth(k).Items() {
			b.frontier.Set(int(v))
		}
	}
}

func (b *BFS) bitmapToQueue() {
	b.queue.ResetAll()
	b.frontier.ForEachSet(func(i int) {
		b.queue.Nth(core.HomeNodelet(i)).PushBack(int64(i))
	})
}

// stepMigratingThreads is the top-down "migrating threads" step: for each
// frontier vertex's neighbor, a CAS claims the parent slot; on success the
// neighbor is pushed to the queue replica matching its home nodelet
// (standing in for the task that migrated there to perform the CAS) and its
// degree is folded into scoutCount via a remote add.
func (b *BFS) stepMigratingThreads() int64 {
	scout := core.NewReplicated[int64]()
	var wg sync.WaitGroup
	for k := 0; k < b.queue.Len(); k++ {
		items := b.queue.Nth(k).Items()
		wg.Add(1)
		go func(items []int64) {
			defer wg.Done()
			traversal.Dynamic{Grain: 16}.Run(len(items), func(i int) {
				v := items[i]
				b.g.ForEachOutNeighbor(v, traversal.Sequenced{}, func(d int64) {
					for {
						cur := atomic.LoadInt64(&b.parent[d])
						if cur >= 0 {
							return
						}
						if atomic.CompareAndSwapInt64(&b.parent[d], cur, v) {
							b.queue.Nth(core.HomeNodelet(int(d))).PushBack(d)
							intrinsics.RemoteAdd(scout.GetNth(core.HomeNodelet(int(d))), -cur)
							return
						}
					}
				})
			})
		}(items)
	}
	wg.Wait()
	intrinsics.Fence()
	return sumReplicated(scout)
}

// stepRemoteWrites is the top-down "remote writes" step: every frontier
// vertex fires a plain write of itself into each neighbor's newParent slot
// inside an ack-disabled region (any of several simultaneous writers may
// win; BFS correctness only needs some valid parent at the right depth),
// then a fenced sweep folds newParent into parent and builds the next
// frontier.
func (b *BFS) stepRemoteWrites() int64 {
	for i := range b.newParent {
		b.newParent[i] = -1
	}

	intrinsics.Acks().Disable()
	var wg sync.WaitGroup
	for k := 0; k < b.queue.Len(); k++ {
		items := b.queue.Nth(k).Items()
		wg.Add(1)
		go func(items []int64) {
			defer wg.Done()
			traversal.Dynamic{Grain: 16}.Run(len(items), func(i int) {
				v := items[i]
				b.g.ForEachOutNeighbor(v, traversal.Sequenced{}, func(d int64) {
					atomic.StoreInt64(&b.newParent[d], v)
				})
			})
		}(items)
	}
	wg.Wait()
	intrinsics.Acks().ReenableAndFence()

	b.queue.ResetAll()
	scout := core.NewReplicated[int64]()
	v := len(b.parent)
	traversal.Dynamic{Grain: 64}.Run(v, func(i int) {
		prev := atomic.LoadInt64(&b.parent[i])
		if prev >= 0 {
			return
		}
		np := atomic.LoadInt64(&b.newParent[i])
		if np < 0 {
			return
		}
		atomic.StoreInt64(&b.parent[i], np)
		intrinsics.RemoteAdd(scout.GetNth(core.HomeNodelet(i)), -prev)
		b.queue.Nth(core.HomeNodelet(i)).PushBack(int64(i))
	})
	intrinsics.Fence()
	return sumReplicated(scout)
}

// bottomUpStep scans every unvisited vertex's neighbors for one that is in
// the current frontier, stopping at the first hit.
func (b *BFS) bottomUpStep() int64 {
	b.nextFrontier.ClearAll()
	awake := core.NewReplicated[int64]()
	v := len(b.parent)
	traversal.Dynamic{Grain: 64}.Run(v, func(i int) {
		if b.parent[i] >= 0 {
			return
		}
		for _, p := range b.g.OutNeighbors(int64(i)) {
			if b.frontier.Test(int(p)) {
				b.parent[i] = p
				b.nextFrontier.SetAtomic(i)
				intrinsics.RemoteAdd(awake.GetNth(core.HomeNodelet(i)), 1)
				break
			}
		}
	})
	intrinsics.Fence()
	return sumReplicated(awake)
}

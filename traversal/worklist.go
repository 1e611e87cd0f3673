package traversal

import (
	"sync"
	"sync/atomic"

	"github.com/katalvlaran/nodegraph/core"
)

// WorkList is a per-nodelet singly-linked list of (vertex, edge-range)
// records, threaded through a next-vertex array; Append CASes a vertex onto
// the head of the nodelet that owns it. Process walks the list sequentially;
// ProcessDynamic lets a worker pool pull sub-ranges off each vertex's range
// via an atomic fetch-add on that vertex's begin cursor, advancing to the
// next vertex once a range is exhausted.
//
// The cursor array (begin) is both shared mutable state and loop state: a
// fresh WorkList is built once per phase via ClearAll + Append, matching the
// reference's "process once, clear, rebuild" discipline rather than trying
// to preserve the original range pointers across phases.
type WorkList struct {
	head       int64
	nextVertex []int64
	begin      []int64
	end        []int64
}

// NewWorkList allocates a WorkList sized for numVertices vertices.
func NewWorkList(numVertices int) *WorkList {
	w := &WorkList{
		head:       -1,
		nextVertex: make([]int64, numVertices),
		begin:      make([]int64, numVertices),
		end:        make([]int64, numVertices),
	}
	return w
}

// Clear empties this replica so it can be rebuilt for the next phase.
func (w *WorkList) Clear() {
	atomic.StoreInt64(&w.head, -1)
}

// Append atomically pushes v, with range [lo, hi), onto the head of the
// list. Caller is responsible for calling Append only on the WorkList
// replica that owns v's home nodelet, mirroring the reference's per-nodelet
// head pointer.
func (w *WorkList) Append(v int64, lo, hi int64) {
	w.begin[v] = lo
	w.end[v] = hi
	for {
		prev := atomic.LoadInt64(&w.head)
		w.nextVertex[v] = prev
		if atomic.CompareAndSwapInt64(&w.head, prev, v) {
			return
		}
	}
}

// Process walks the list sequentially, calling f(src, idx) for every index
// in [begin(src), end(src)).
func (w *WorkList) Process(f func(src int64, idx int64)) {
	for src := atomic.LoadInt64(&w.head); src >= 0; src = w.nextVertex[src] {
		for i := w.begin[src]; i < w.end[src]; i++ {
			f(src, i)
		}
	}
}

// ProcessDynamic walks the list sequentially by vertex, but within each
// vertex's range lets workers pulls grain-sized chunks via a fetch-add on
// that vertex's begin cursor — the dynamic self-stealing policy the
// reference's worklist::process(dynamic_policy) implements.
func (w *WorkList) ProcessDynamic(grain int64, f func(src int64, idx int64)) {
	if grain <= 0 {
		grain = 1
	}
	workers := core.NodeletCount() * defaultDynamicWorkersPerNodelet
	var wg sync.WaitGroup
	wg.Add(workers)
	for t := 0; t < workers; t++ {
		go func() {
			defer wg.Done()
			for src := atomic.LoadInt64(&w.head); src >= 0; src = w.nextVertex[src] {
				end := w.end[src]
				for {
					lo := atomic.AddInt64(&w.begin[src], grain) - grain
					if lo >= end {
						break
					}
					hi := lo + grain
					if hi > end {
						hi = end
					}
					for i := lo; i < hi; i++ {
						f(src, i)
					}
				}
			}
		}()
	}
	wg.Wait()
}

// ReplicatedWorkList holds one WorkList per nodelet and provides the
// cross-replica build/process operations connected components and k-truss
// use.
type ReplicatedWorkList struct {
	replicas *core.Replicated[*WorkList]
}

// NewReplicatedWorkList allocates one WorkList of numVertices capacity per
// nodelet.
func NewReplicatedWorkList(numVertices int) *ReplicatedWorkList {
	return &ReplicatedWorkList{
		replicas: core.NewReplicatedWith(func(int) *WorkList {
			return NewWorkList(numVertices)
		}),
	}
}

// Nth returns the nodelet-th replica.
func (r *ReplicatedWorkList) Nth(k int) *WorkList { return *r.replicas.GetNth(k) }

// Len returns the number of replicas.
func (r *ReplicatedWorkList) Len() int { return r.replicas.Len() }

// ClearAll clears every replica.
func (r *ReplicatedWorkList) ClearAll() {
	for k := 0; k < r.Len(); k++ {
		r.Nth(k).Clear()
	}
}

// Append appends to the replica owning v's home nodelet.
func (r *ReplicatedWorkList) Append(v int64, lo, hi int64) {
	r.Nth(core.HomeNodelet(int(v))).Append(v, lo, hi)
}

// ProcessAllDynamic dispatches ProcessDynamic on every replica concurrently
// and waits for all of them to drain.
func (r *ReplicatedWorkList) ProcessAllDynamic(grain int64, f func(src int64, idx int64)) {
	var wg sync.WaitGroup
	wg.Add(r.Len())
	for k := 0; k < r.Len(); k++ {
		go func(w *WorkList) {
			defer wg.Done()
			w.ProcessDynamic(grain, f)
		}(r.Nth(k))
	}
	wg.Wait()
}

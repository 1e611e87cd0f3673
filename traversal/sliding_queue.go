package traversal

import (
	"sync"
	"sync/atomic"

	"github.com/katalvlaran/nodegraph/core"
)

// SlidingQueue is a per-nodelet append buffer with three monotone pointers
// start <= end <= next: PushBack appends under a fetch-and-add, SlideWindow
// advances the visible [start, end) range to everything appended since the
// last slide, recording the boundary into heads for the next call.
type SlidingQueue struct {
	next   int64
	start  int64
	end    int64
	window int64
	buffer []int64
	heads  []int64
}

// NewSlidingQueue allocates a SlidingQueue with room for capacity items
// across its lifetime.
func NewSlidingQueue(capacity int) *SlidingQueue {
	return &SlidingQueue{
		buffer: make([]int64, capacity),
		heads:  make([]int64, capacity+1),
	}
}

// Reset empties the queue and rewinds its window counter.
func (q *SlidingQueue) Reset() {
	atomic.StoreInt64(&q.next, 0)
	q.start = 0
	q.end = 0
	q.window = 0
}

// PushBack appends v to the queue.
func (q *SlidingQueue) PushBack(v int64) {
	pos := atomic.AddInt64(&q.next, 1) - 1
	q.buffer[pos] = v
}

// SlideWindow advances [start, end) to cover everything pushed since the
// previous slide.
func (q *SlidingQueue) SlideWindow() {
	if q.window == 0 {
		q.start = 0
	} else {
		q.start = q.heads[q.window-1]
	}
	q.end = atomic.LoadInt64(&q.next)
	q.heads[q.window] = q.end
	q.window++
}

// IsEmpty reports whether the current window is empty.
func (q *SlidingQueue) IsEmpty() bool { return q.start == q.end }

// Size returns the current window's length.
func (q *SlidingQueue) Size() int64 { return q.end - q.start }

// Items returns the current window's contents.
func (q *SlidingQueue) Items() []int64 { return q.buffer[q.start:q.end] }

// ReplicatedSlidingQueue holds one SlidingQueue per nodelet and provides the
// cross-replica operations (slide all windows, combined size, forall
// items) that BFS's frontier needs.
type ReplicatedSlidingQueue struct {
	replicas *core.Replicated[*SlidingQueue]
}

// NewReplicatedSlidingQueue allocates one SlidingQueue of the given capacity
// per nodelet.
func NewReplicatedSlidingQueue(capacity int) *ReplicatedSlidingQueue {
	return &ReplicatedSlidingQueue{
		replicas: core.NewReplicatedWith(func(int) *SlidingQueue {
			return NewSlidingQueue(capacity)
		}),
	}
}

// Nth returns the nodelet-th replica.
func (r *ReplicatedSlidingQueue) Nth(k int) *SlidingQueue { return *r.replicas.GetNth(k) }

// Len returns the number of replicas.
func (r *ReplicatedSlidingQueue) Len() int { return r.replicas.Len() }

// ResetAll resets every replica.
func (r *ReplicatedSlidingQueue) ResetAll() {
	for k := 0; k < r.Len(); k++ {
		r.Nth(k).Reset()
	}
}

// SlideAllWindows slides every replica's window.
func (r *ReplicatedSlidingQueue) SlideAllWindows() {
	for k := 0; k < r.Len(); k++ {
		r.Nth(k).SlideWindow()
	}
}

// AllEmpty reports whether every replica's current window is empty.
func (r *ReplicatedSlidingQueue) AllEmpty() bool {
	for k := 0; k < r.Len(); k++ {
		if !r.Nth(k).IsEmpty() {
			return false
		}
	}
	return true
}

// CombinedSize sums every replica's current window length.
func (r *ReplicatedSlidingQueue) CombinedSize() int64 {
	var total int64
	for k := 0; k < r.Len(); k++ {
		total += r.Nth(k).Size()
	}
	return total
}

// ForallItems dispatches one task per replica that walks that replica's
// current window, dynamically pulling items one-by-one across goroutines
// within the task.
func (r *ReplicatedSlidingQueue) ForallItems(f func(v int64)) {
	var wg sync.WaitGroup
	wg.Add(r.Len())
	for k := 0; k < r.Len(); k++ {
		items := r.Nth(k).Items()
		wg.Add(0)
		go func(items []int64) {
			defer wg.Done()
			Dynamic{Grain: 1}.Run(len(items), func(i int) { f(items[i]) })
		}(items)
	}
	wg.Wait()
}

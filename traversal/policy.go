package traversal

import (
	"sync"

	"github.com/katalvlaran/nodegraph/core"
	"github.com/katalvlaran/nodegraph/intrinsics"
)

// defaultDynamicWorkersPerNodelet mirrors the reference's fixed worker pool
// size for the dynamic execution policy.
const defaultDynamicWorkersPerNodelet = 64

// Policy walks the index range [0, size) and calls f once per index. None
// of the implementations make ordering guarantees beyond what their
// doc comment states.
type Policy interface {
	Run(size int, f func(i int))
}

// Sequenced walks [0, size) in order on the calling goroutine.
type Sequenced struct{}

// Run implements Policy.
func (Sequenced) Run(size int, f func(i int)) {
	for i := 0; i < size; i++ {
		f(i)
	}
}

// Fixed spawns exactly one worker per nodelet; worker k walks indices
// k, k+N, k+2N, ... where N is core.NodeletCount().
type Fixed struct{}

// Run implements Policy.
func (Fixed) Run(size int, f func(i int)) {
	n := core.NodeletCount()
	var wg sync.WaitGroup
	wg.Add(n)
	for worker := 0; worker < n; worker++ {
		go func(start int) {
			defer wg.Done()
			for i := start; i < size; i += n {
				f(i)
			}
		}(worker)
	}
	wg.Wait()
}

// Recursive splits the range in half while size/Grain exceeds Radix,
// spawning the upper half and recursing on the lower half; below the
// threshold it processes Grain-sized sub-ranges in sequence.
type Recursive struct {
	Grain int
	Radix int
}

// Run implements Policy.
func (r Recursive) Run(size int, f func(i int)) {
	grain := r.Grain
	if grain <= 0 {
		grain = 1
	}
	r.recurse(0, size, grain, f)
}

func (r Recursive) recurse(lo, hi, grain int, f func(i int)) {
	size := hi - lo
	if size <= 0 {
		return
	}
	if size/grain > r.Radix {
		mid := lo + size/2
		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.recurse(mid, hi, grain, f)
		}()
		r.recurse(lo, mid, grain, f)
		wg.Wait()
		return
	}
	for i := lo; i < hi; i += grain {
		end := i + grain
		if end > hi {
			end = hi
		}
		for j := i; j < end; j++ {
			f(j)
		}
	}
}

// Dynamic spawns a fixed pool of workers that repeatedly claim a Grain-sized
// slice of the range via an atomic fetch-and-add on a shared cursor.
type Dynamic struct {
	Grain int
}

// Run implements Policy.
func (d Dynamic) Run(size int, f func(i int)) {
	grain := int64(d.Grain)
	if grain <= 0 {
		grain = 1
	}
	workers := core.NodeletCount() * defaultDynamicWorkersPerNodelet
	if workers > size && size > 0 {
		workers = size
	}
	if workers <= 0 {
		return
	}

	var cursor int64
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for {
				lo := intrinsics.AtomicAddFetch(&cursor, grain) - grain
				if lo >= int64(size) {
					return
				}
				hi := lo + grain
				if hi > int64(size) {
					hi = int64(size)
				}
				for i := lo; i < hi; i++ {
					f(int(i))
				}
			}
		}()
	}
	wg.Wait()
}

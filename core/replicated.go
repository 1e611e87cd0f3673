package core

import "fmt"

// Replicated keeps one value of T per nodelet. Reads are
// local to a replica (GetNth); writes go to a single replica through the
// pointer GetNth returns; Broadcast co-initializes every replica to the same value, and
// Reduce combines all replicas under a caller-supplied commutative,
// associative monoid — the only way replicated scalars are meant to be
// observed across nodelets.
type Replicated[T any] struct {
	copies []T
}

// NewReplicated allocates one copy per nodelet in the current NodeletCount(),
// all initialized to zero.
func NewReplicated[T any]() *Replicated[T] {
	return &Replicated[T]{copies: make([]T, NodeletCount())}
}

// NewReplicatedWith allocates one copy per nodelet, each computed by init
// (called once per nodelet index so that non-comparable or stateful zero
// values can differ per replica if the caller wants that).
func NewReplicatedWith[T any](init func(nodelet int) T) *Replicated[T] {
	n := NodeletCount()
	r := &Replicated[T]{copies: make([]T, n)}
	for i := 0; i < n; i++ {
		r.copies[i] = init(i)
	}
	return r
}

// Len returns the number of replicas (== NodeletCount() at allocation time).
func (r *Replicated[T]) Len() int { return len(r.copies) }

// GetNth returns a pointer to the k-th replica.
func (r *Replicated[T]) GetNth(k int) *T {
	if k < 0 || k >= len(r.copies) {
		panic(fmt.Sprintf("core: %v: replica %d of %d", ErrIndexOutOfRange, k, len(r.copies)))
	}
	return &r.copies[k]
}

// Broadcast assigns v to every replica.
func (r *Replicated[T]) Broadcast(v T) {
	for i := range r.copies {
		r.copies[i] = v
	}
}

// Reduce folds all replicas left-to-right through monoid, seeded with
// replica 0; it returns the zero value of T only when there are no
// replicas. monoid must be commutative and associative, since
// replicas are combined in nodelet order but the reference machine's actual
// reduction order over replicas is unspecified.
func (r *Replicated[T]) Reduce(monoid func(a, b T) T) T {
	var acc T
	if len(r.copies) == 0 {
		return acc
	}
	acc = r.copies[0]
	for i := 1; i < len(r.copies); i++ {
		acc = monoid(acc, r.copies[i])
	}
	return acc
}

// SumInt reduces a Replicated[int] with addition; a convenience wrapper
// since integer tallies (scout counts, awake counts, removed-edge counts)
// are the most common replicated reduction in this module's kernels.
func SumInt(r *Replicated[int]) int {
	return r.Reduce(func(a, b int) int { return a + b })
}

// OrBool reduces a Replicated[bool] with logical OR; used for "did anything
// change this round" fixed-point checks (connected components).
func OrBool(r *Replicated[bool]) bool {
	return r.Reduce(func(a, b bool) bool { return a || b })
}

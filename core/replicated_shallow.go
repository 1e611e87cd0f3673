package core

// ReplicatedShallow implements an owner/view pattern: construct one T
// (the owner), then produce N-1 additional
// views that share the owner's striped/replicated sub-structures instead of
// allocating their own. Exactly one teardown responsibility exists (the
// owner's); views carry none.
//
// This replaces the source pattern of "replicated object instances whose
// destructors are skipped on all but one copy" with an explicit, typed
// contract: Owner() is the only value a caller should ever Close/teardown,
// and View(k) is read-only access to the same logical object from the
// perspective of nodelet k.
type ReplicatedShallow[T any] struct {
	owner *T
	views []*T
}

// NewReplicatedShallow builds a ReplicatedShallow[T] by calling ctor() once
// to produce the owner, then calling shallowCopy(owner, nodelet) once per
// remaining nodelet to produce each view. shallowCopy must return a value
// that shares the owner's striped/replicated backing (e.g. by copying a
// struct whose fields are *Striped[T] / *Replicated[T] pointers, or by
// returning the owner itself when T has no per-nodelet-distinct fields).
func NewReplicatedShallow[T any](ctor func() *T, shallowCopy func(owner *T, nodelet int) *T) *ReplicatedShallow[T] {
	n := NodeletCount()
	rs := &ReplicatedShallow[T]{
		owner: ctor(),
		views: make([]*T, n),
	}
	rs.views[0] = rs.owner
	for nlet := 1; nlet < n; nlet++ {
		rs.views[nlet] = shallowCopy(rs.owner, nlet)
	}
	return rs
}

// Owner returns the single value responsible for teardown.
func (rs *ReplicatedShallow[T]) Owner() *T { return rs.owner }

// View returns the nodelet-th view (View(0) == Owner()).
func (rs *ReplicatedShallow[T]) View(nodelet int) *T { return rs.views[nodelet] }

// Len returns the number of views (== NodeletCount() at construction time).
func (rs *ReplicatedShallow[T]) Len() int { return len(rs.views) }

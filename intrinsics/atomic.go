package intrinsics

import "sync/atomic"

// AtomicAddFetch adds delta to *addr and returns the updated value. It is
// the local, synchronous counterpart to RemoteAdd: use it when the caller
// already owns (or doesn't care which nodelet owns) the target word and
// just needs the post-increment value back immediately.
func AtomicAddFetch(addr *int64, delta int64) int64 {
	return atomic.AddInt64(addr, delta)
}

// AtomicCAS compares *addr to old and, if equal, stores new. It reports
// whether the swap took place.
func AtomicCAS(addr *int64, old, new int64) bool {
	return atomic.CompareAndSwapInt64(addr, old, new)
}

// AtomicLoad reads *addr with the same ordering guarantees as AtomicAddFetch
// and AtomicCAS, for callers building their own CAS loops.
func AtomicLoad(addr *int64) int64 {
	return atomic.LoadInt64(addr)
}

// AtomicAddFetch32 is AtomicAddFetch for 32-bit words such as the k-truss
// per-edge TC/KTE/qrC/pRefC counters, which are sized int32 to keep
// graph.EdgeSlot compact.
func AtomicAddFetch32(addr *int32, delta int32) int32 {
	return atomic.AddInt32(addr, delta)
}

// AtomicCAS32 is AtomicCAS for 32-bit words.
func AtomicCAS32(addr *int32, old, new int32) bool {
	return atomic.CompareAndSwapInt32(addr, old, new)
}

// AtomicLoad32 is AtomicLoad for 32-bit words.
func AtomicLoad32(addr *int32) int32 {
	return atomic.LoadInt32(addr)
}

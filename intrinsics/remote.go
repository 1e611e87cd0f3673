package intrinsics

import "sync"

// pending tracks every remote write dispatched since the last time it last
// drained to zero. Fence blocks on it; each Remote* call adds to it before
// returning and the dispatched goroutine removes itself once its update has
// applied, reflecting the "not observable until fence" contract without
// depending on any particular nodelet topology.
var pending sync.WaitGroup

// remoteApply dispatches a fire-and-forget compare-and-swap loop that
// applies fn to *addr. It returns immediately; the caller must Fence before
// relying on the result being visible.
func remoteApply(addr *int64, fn func(cur int64) int64) {
	pending.Add(1)
	go func() {
		defer pending.Done()
		for {
			old := AtomicLoad(addr)
			next := fn(old)
			if AtomicCAS(addr, old, next) {
				return
			}
		}
	}()
}

// RemoteAdd posts addr += delta, asynchronously.
func RemoteAdd(addr *int64, delta int64) {
	remoteApply(addr, func(cur int64) int64 { return cur + delta })
}

// RemoteMin posts addr = min(addr, val), asynchronously.
func RemoteMin(addr *int64, val int64) {
	remoteApply(addr, func(cur int64) int64 {
		if val < cur {
			return val
		}
		return cur
	})
}

// RemoteMax posts addr = max(addr, val), asynchronously.
func RemoteMax(addr *int64, val int64) {
	remoteApply(addr, func(cur int64) int64 {
		if val > cur {
			return val
		}
		return cur
	})
}

// RemoteAnd posts addr &= val, asynchronously.
func RemoteAnd(addr *int64, val int64) {
	remoteApply(addr, func(cur int64) int64 { return cur & val })
}

// RemoteOr posts addr |= val, asynchronously.
func RemoteOr(addr *int64, val int64) {
	remoteApply(addr, func(cur int64) int64 { return cur | val })
}

// RemoteXor posts addr ^= val, asynchronously.
func RemoteXor(addr *int64, val int64) {
	remoteApply(addr, func(cur int64) int64 { return cur ^ val })
}

// Fence blocks until every Remote* call issued so far has applied. Its
// effects are then visible to the calling goroutine and any goroutine it
// subsequently happens-before.
func Fence() {
	pending.Wait()
}

// remoteApply32 is remoteApply for the 32-bit per-edge counters k-truss
// mutates (TC, qrC, pRefC); it shares the same pending WaitGroup, so a
// single Fence drains both widths.
func remoteApply32(addr *int32, fn func(cur int32) int32) {
	pending.Add(1)
	go func() {
		defer pending.Done()
		for {
			old := AtomicLoad32(addr)
			next := fn(old)
			if AtomicCAS32(addr, old, next) {
				return
			}
		}
	}()
}

// RemoteAdd32 posts addr += delta, asynchronously, for a 32-bit word.
func RemoteAdd32(addr *int32, delta int32) {
	remoteApply32(addr, func(cur int32) int32 { return cur + delta })
}

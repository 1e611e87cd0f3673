package intrinsics

import (
	"math"
	"sync/atomic"
	"unsafe"
)

// CompareAndSwapFloat64 performs a compare-and-swap on a float64 word by
// reinterpreting its bits as a uint64, since the platform has no native
// float compare-and-swap. Callers accumulating into a shared float (e.g.
// PageRank's pull-style contribution sum) should loop:
//
//	for {
//	    old := *addr
//	    next := old + delta
//	    if intrinsics.CompareAndSwapFloat64(addr, old, next) {
//	        break
//	    }
//	}
func CompareAndSwapFloat64(addr *float64, old, new float64) bool {
	return atomic.CompareAndSwapUint64(
		(*uint64)(pointerToBits(addr)),
		math.Float64bits(old),
		math.Float64bits(new),
	)
}

// AddFloat64 atomically adds delta to *addr via a compare-and-swap loop and
// returns the updated value.
func AddFloat64(addr *float64, delta float64) float64 {
	for {
		old := loadFloat64(addr)
		next := old + delta
		if CompareAndSwapFloat64(addr, old, next) {
			return next
		}
	}
}

func loadFloat64(addr *float64) float64 {
	bits := atomic.LoadUint64((*uint64)(pointerToBits(addr)))
	return math.Float64frombits(bits)
}

// pointerToBits reinterprets a *float64 as a *uint64 of identical size and
// alignment, so sync/atomic's integer primitives can operate on it.
func pointerToBits(addr *float64) unsafe.Pointer {
	return unsafe.Pointer(addr)
}

package core

import (
	"fmt"
	"sync/atomic"
)

// nodeletCount holds the process-wide N established by Init. It is read far
// more often than written, so a plain atomic word is cheaper than a mutex.
var nodeletCount int64 = defaultNodeletCount

// Init establishes the logical nodelet count N, mirroring the fixed N set at
// startup on the reference machine. Callers should set N once, before
// constructing any striped or replicated value, and not change it
// afterwards: existing Striped/Replicated values retain whatever N was in
// effect when they were allocated, and mixing N's across a single run of
// kernels is a caller bug, not something core guards against.
//
// Init is not required before use: NodeletCount defaults to 1, which
// degrades every striped/replicated primitive to ordinary local storage and
// is the natural configuration for single-process unit tests.
func Init(n int) error {
	if n <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidNodeletCount, n)
	}
	atomic.StoreInt64(&nodeletCount, int64(n))
	return nil
}

// NodeletCount returns the current logical nodelet count N.
func NodeletCount() int {
	return int(atomic.LoadInt64(&nodeletCount))
}

// HomeNodelet returns the nodelet that owns striped index i, i.e. i mod N.
func HomeNodelet(i int) int {
	n := NodeletCount()
	m := i % n
	if m < 0 {
		m += n
	}
	return m
}

// Package core provides the partitioned-memory primitives that every other
// package in this module is built on: a fixed nodelet count, striped arrays
// (element i lives on nodelet i mod N), replicated values (one copy per
// nodelet, reads are local, writes/reductions are explicit), and a
// replicated-shallow owner/view pattern for composite replicated objects.
//
// Go gives a process a single flat heap; there is no hardware primitive that
// places an array index on a particular memory bank the way the reference
// distributed-memory machine does. core models the *logical* contract
// instead: a Striped[T] backs its N stripes with N ordinary Go slices, and a
// Nodelet is nothing more than an index plus the slice it owns. Every other
// package reasons about "home nodelet" and "remote write" purely in terms of
// that index arithmetic, exactly as it would against real partitioned
// memory.
//
// Errors:
//
//	ErrInvalidNodeletCount - NodeletCount set to zero or negative.
//	ErrAllocationFailed    - a striped/replicated allocation could not be satisfied.
//	ErrIndexOutOfRange     - an index outside [0, size) was used.
package core

package core

import "errors"

// Sentinel errors for partitioned-memory primitives.
var (
	// ErrInvalidNodeletCount indicates NodeletCount was set to a non-positive value.
	ErrInvalidNodeletCount = errors.New("core: nodelet count must be positive")

	// ErrAllocationFailed indicates a striped or replicated allocation could not
	// be satisfied. Any such failure is fatal to the caller.
	ErrAllocationFailed = errors.New("core: allocation failed")

	// ErrIndexOutOfRange indicates an index outside [0, size) was used to
	// address a Striped, Replicated, or ReplicatedShallow value.
	ErrIndexOutOfRange = errors.New("core: index out of range")
)

// defaultNodeletCount is used when Init has not been called. A single
// nodelet degenerates every striped/replicated primitive to ordinary local
// storage, which is also the simplest way to unit-test kernels without
// worrying about distribution.
const defaultNodeletCount = 1

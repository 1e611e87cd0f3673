package bfs

import "errors"

// Sentinel errors for BFS.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrSourceOutOfRange is returned when source is outside [0, V).
	ErrSourceOutOfRange = errors.New("bfs: source vertex out of range")

	// ErrUnknownAlgorithm is returned for an Options.Algorithm value that
	// doesn't match one of the four supported variants.
	ErrUnknownAlgorithm = errors.New("bfs: unknown algorithm")
)

// Algorithm selects one of the four BFS step strategies, matching the
// --algorithm CLI values.
type Algorithm string

const (
	// RemoteWrites never switches direction: every step is the top-down,
	// last-writer-wins remote-write variant.
	RemoteWrites Algorithm = "remote_writes"
	// MigratingThreads never switches direction: every step is the
	// top-down, CAS-based migrating-threads variant.
	MigratingThreads Algorithm = "migrating_threads"
	// RemoteWritesHybrid direction-optimizes using the remote-writes
	// top-down step and the bitmap bottom-up step.
	RemoteWritesHybrid Algorithm = "remote_writes_hybrid"
	// BeamerHybrid direction-optimizes using the migrating-threads
	// top-down step and the bitmap bottom-up step (Beamer's original
	// formulation).
	BeamerHybrid Algorithm = "beamer_hybrid"
	// None runs no traversal; Run returns a Result in which only the source
	// is visited (its own parent). Used to measure harness overhead in
	// isolation from any BFS step.
	None Algorithm = "none"
)

// Options configures a BFS run.
type Options struct {
	Algorithm Algorithm
	// MaxLevel caps the number of BFS steps; 0 means unlimited.
	MaxLevel int64
	// Alpha and Beta are Beamer's direction-switching thresholds, only
	// consulted by the two hybrid algorithms.
	Alpha int64
	Beta  int64
}

// DefaultOptions returns BeamerHybrid with the reference's default alpha=15,
// beta=18 and no level cap.
func DefaultOptions() Options {
	return Options{
		Algorithm: BeamerHybrid,
		MaxLevel:  0,
		Alpha:     15,
		Beta:      18,
	}
}

// Option mutates Options.
type Option func(*Options)

// WithAlgorithm selects which of the four BFS variants to run.
func WithAlgorithm(a Algorithm) Option {
	return func(o *Options) { o.Algorithm = a }
}

// WithMaxLevel caps the number of BFS steps.
func WithMaxLevel(n int64) Option {
	return func(o *Options) { o.MaxLevel = n }
}

// WithAlphaBeta overrides the direction-switching thresholds.
func WithAlphaBeta(alpha, beta int64) Option {
	return func(o *Options) { o.Alpha, o.Beta = alpha, beta }
}

// Result holds the outcome of a BFS run.
type Result struct {
	// Parent[v] < 0 means v was never visited; Parent[source] == source;
	// otherwise Parent[v] is one of v's neighbors, one edge closer to
	// source.
	Parent []int64
	// Levels is the number of BFS steps actually taken.
	Levels int64
}

// Depth climbs parent pointers from v back to the source, returning the
// number of edges traversed, or -1 if v was never visited.
func (r *Result) Depth(v int64) int {
	if r.Parent[v] < 0 {
		return -1
	}
	depth := 0
	for cur := v; r.Parent[cur] != cur; cur = r.Parent[cur] {
		depth++
		if depth > len(r.Parent) {
			// A malformed parent array would otherwise spin forever.
			return -1
		}
	}
	return depth
}

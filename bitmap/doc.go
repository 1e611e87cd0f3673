// Package bitmap provides a striped bit vector: bit i is homed on nodelet i
// mod N, packed into that nodelet's own local words, so a bit-stripe (not
// word-stripe) layout — unlike a plain []uint64 striped across nodelets by
// word index, which would home groups of 64 consecutive bits together and
// defeat the "one remote write per set-bit, home nodelet decided by the bit
// itself" pattern the kernels rely on.
//
// New allocates a bitmap distributed across the current core.NodeletCount().
// NewLocal allocates a bitmap pinned to a single, undistributed backing
// array regardless of NodeletCount — the shape BFS needs for its per-nodelet
// replicated frontier and next-frontier bitmaps ("frontier, next_frontier:
// replicated bitmaps over V"), where each replica must be a
// complete, locally-testable copy rather than a shared stripe.
package bitmap

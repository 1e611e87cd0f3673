// Package components finds connected components of a graph.Graph by
// label propagation: every vertex starts in its own component, repeatedly
// adopts the minimum component label seen across its edges, and path-
// compresses to a fixed point. A worklist of (vertex, edge-range) records
// is rebuilt every round exactly as the reference does, rather than
// re-scanning the whole vertex set for an edge-level parallel-for.
package components

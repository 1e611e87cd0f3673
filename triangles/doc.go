// Package triangles counts triangles and computes the k-truss decomposition
// of a graph.Graph whose adjacency is sorted ascending. Both algorithms fix
// the canonical orientation p > q > r and intersect each pair of vertices'
// neighbor lists (restricted to ids below the smaller endpoint) with a
// two-pointer merge, as the ordered-adjacency precondition requires.
package triangles

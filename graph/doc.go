// Package graph builds the vertex-partitioned adjacency structure that every
// kernel in this module traverses: a striped array of per-vertex degrees, a
// striped array of edge-block descriptors, and the edge slots themselves.
//
// A Graph is built once from a edgelist.DistEdgeList via New and never
// mutated afterward; kernels hold a non-owning reference to it and keep
// their own scratch state.
package graph

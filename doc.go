// Package nodegraph is a parallel graph-analytics engine for very large
// undirected graphs laid out across a many-nodelet, physically-partitioned
// shared-address-space machine.
//
// 🚀 What is nodegraph?
//
//	A distributed-memory-flavored graph substrate plus four classical
//	analytics kernels:
//
//	  • Direction-optimizing breadth-first search (bfs)
//	  • Label-propagation connected components (components)
//	  • PageRank (pagerank)
//	  • Triangle counting and k-truss decomposition (triangles)
//
// ✨ Design goals
//
//   - Locality-aware    — vertex and edge storage is striped by index across
//     a configurable nodelet count, so kernels can reason about "home" and
//     "remote" the same way the reference distributed-memory machine does.
//   - Race-tolerant     — kernels that allow races (label propagation) use a
//     single unretried compare-and-swap; kernels that don't use atomics or a
//     fence.
//   - Pure Go           — no cgo; "remote" memory access and migration hints
//     are modeled with goroutines, sync.WaitGroup and sync/atomic rather than
//     hardware NUMA support.
//
// Package layout:
//
//	core/        — nodelets, striped arrays, replicated values
//	intrinsics/  — atomic/remote primitives, acknowledgement control
//	bitmap/      — striped bit vector
//	edgelist/    — distributed edge list, binary/fileset I/O
//	graph/       — construction of a vertex/edge-block graph from an edge list
//	traversal/   — execution policies, edge-block walker, sliding queue, worklist
//	bfs/         — direction-optimizing breadth-first search
//	components/  — label-propagation connected components
//	pagerank/    — PageRank
//	triangles/   — triangle counting and k-truss
//	cmd/         — per-kernel CLI executables
//
//	go get github.com/katalvlaran/nodegraph
package nodegraph

// Package edgelist loads and holds a distributed edge list: parallel
// striped src[] and dst[] arrays of equal length, the raw material graph
// construction consumes. It supports the binary single-reader format
// (LoadBinary) and the per-nodelet fileset format (LoadDistributed /
// WriteFileset).
package edgelist

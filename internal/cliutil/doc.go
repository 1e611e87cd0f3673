// Package cliutil holds the flag parsing, graph loading, and logging code
// shared by the per-kernel executables under cmd/: cmd/bfs, cmd/cc,
// cmd/pagerank, cmd/tc, and the combined multi-kernel driver cmd/combined.
// It plays the role the reference's combined.cc and its shared argument
// parsing play for the C/C++ kernels: one place that understands
// --graph_filename, --distributed_load and the --check_*/--dump_* debug
// modes, so every binary handles them identically.
package cliutil

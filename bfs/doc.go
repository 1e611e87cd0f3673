// Package bfs implements direction-optimizing breadth-first search over a
// graph.Graph: a queue-based top-down step (either "migrating threads",
// which chases a CAS to the parent array, or "remote writes", which lets the
// last writer win and reconciles in a following sweep), a bitmap-based
// bottom-up step, and Beamer's heuristic for switching between them based on
// the ratio of frontier out-degree to remaining edges.
package bfs

// Package pagerank computes PageRank centrality over a graph.Graph with a
// pull-style iteration: each vertex's outgoing contribution is its current
// score divided by its degree, each vertex sums the contributions of its
// neighbors, and the iteration stops once the total L1 score movement
// drops below epsilon or max_iterations is reached.
package pagerank

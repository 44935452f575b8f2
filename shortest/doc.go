// Package shortest provides negative-weight tolerant single-pair shortest
// paths over row-oriented sparse adjacency matrices.
//
// The Engine interface is the pluggable capability; Native implements it
// in-process with two algorithms:
//
//   - BellmanFord: O(V·E). Reports ErrNegativeCycle for a negative cycle
//     reachable from the source.
//   - Johnson: Bellman-Ford potentials from a virtual vertex, then Dijkstra
//     on non-negative reweighted edges. Reports ErrNegativeCycle for a
//     negative cycle anywhere in the graph.
//
// Plain Dijkstra is deliberately absent: ParseAlgorithm rejects it with
// ErrDijkstraNegativeWeights.
//
// Example:
//
//	alg, err := shortest.ParseAlgorithm("J")
//	path, err := shortest.New().ShortestPath(csr, 0, 3, alg, false)
package shortest

// SPDX-License-Identifier: MIT

package shortest

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors returned by the shortest-path engine.
var (
	// ErrNilGraph indicates that a nil graph was passed to an engine.
	ErrNilGraph = errors.New("shortest: graph is nil")

	// ErrNonSquare indicates an adjacency matrix with Rows != Cols.
	ErrNonSquare = errors.New("shortest: adjacency matrix is not square")

	// ErrVertexOutOfRange indicates a source or target outside [0, n).
	ErrVertexOutOfRange = errors.New("shortest: vertex index out of range")

	// ErrNoPath indicates that target is unreachable from source.
	ErrNoPath = errors.New("shortest: no path between source and target")

	// ErrNegativeCycle indicates a negative-weight cycle, which leaves the
	// shortest path undefined.
	ErrNegativeCycle = errors.New("shortest: negative-weight cycle detected")

	// ErrUnknownAlgorithm indicates an algorithm name or value this package
	// does not implement.
	ErrUnknownAlgorithm = errors.New("shortest: unknown algorithm")

	// ErrDijkstraNegativeWeights rejects Dijkstra explicitly: normalized flow
	// graphs carry negative weights by construction.
	ErrDijkstraNegativeWeights = errors.New("shortest: Dijkstra does not support negative weights; use Bellman-Ford or Johnson")
)

// Algorithm selects a negative-weight tolerant single-pair search.
type Algorithm int

const (
	// BellmanFord relaxes every edge |V|-1 times; O(V·E).
	BellmanFord Algorithm = iota

	// Johnson reweights with Bellman-Ford potentials, then runs Dijkstra;
	// O(V·E + E log V), faster on sparse graphs queried once per reweighting.
	Johnson
)

// Algorithm name literals accepted by ParseAlgorithm.
const (
	nameBellmanFord      = "bellman-ford"
	nameBellmanFordShort = "bf"
	nameJohnson          = "johnson"
	nameJohnsonShort     = "j"
	nameDijkstra         = "dijkstra"
	nameDijkstraShort    = "d"
)

// String returns the canonical name of a.
func (a Algorithm) String() string {
	switch a {
	case BellmanFord:
		return nameBellmanFord
	case Johnson:
		return nameJohnson
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// Validate reports ErrUnknownAlgorithm for values outside the enum.
func (a Algorithm) Validate() error {
	switch a {
	case BellmanFord, Johnson:
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownAlgorithm, a)
	}
}

// ParseAlgorithm maps a case-insensitive name to an Algorithm.
// Accepted: "BF", "bellman-ford", "J", "johnson". Dijkstra ("D", "dijkstra")
// is rejected with ErrDijkstraNegativeWeights.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case nameBellmanFord, nameBellmanFordShort:
		return BellmanFord, nil
	case nameJohnson, nameJohnsonShort:
		return Johnson, nil
	case nameDijkstra, nameDijkstraShort:
		return 0, ErrDijkstraNegativeWeights
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
}

// Graph is a weighted directed adjacency matrix in row-oriented form.
// Row(i) returns the column indices (ascending) and weights of the edges
// leaving vertex i; callers must treat both slices as read-only.
// *matrix.CSR satisfies Graph.
type Graph interface {
	Rows() int
	Cols() int
	Row(i int) ([]int, []float64)
}

// Engine is the pluggable shortest-path capability: one directed, weighted,
// negative-weight tolerant single-pair search.
//
// unweighted=true treats every stored entry as weight 1 (an existence mask);
// path resolution always passes false.
type Engine interface {
	ShortestPath(g Graph, source, target int, alg Algorithm, unweighted bool) ([]int, error)
}

// EngineFunc adapts a plain function to the Engine interface.
type EngineFunc func(g Graph, source, target int, alg Algorithm, unweighted bool) ([]int, error)

// ShortestPath calls f.
func (f EngineFunc) ShortestPath(g Graph, source, target int, alg Algorithm, unweighted bool) ([]int, error) {
	return f(g, source, target, alg, unweighted)
}

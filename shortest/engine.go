// SPDX-License-Identifier: MIT

package shortest

import (
	"fmt"
	"math"
)

// Native is the in-process Engine implementing Bellman-Ford and Johnson over
// any row-oriented Graph. It holds no state; one value may serve concurrent
// searches.
type Native struct{}

var _ Engine = Native{}

// New returns the native engine.
func New() Native { return Native{} }

// ShortestPath returns the minimum-weight path source→…→target.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph) and square (ErrNonSquare).
//  2. source and target must lie in [0, n) (ErrVertexOutOfRange).
//  3. alg must be BellmanFord or Johnson (ErrUnknownAlgorithm).
//
// Returns:
//   - path: vertex indices beginning with source and ending with target.
//   - ErrNoPath when target is unreachable; ErrNegativeCycle when the
//     weights admit a negative cycle (reachable from source for
//     Bellman-Ford, anywhere for Johnson).
//
// Determinism: vertices and edges are scanned in ascending index order and
// only strict improvements replace a predecessor, so ties keep the first
// path found.
func (Native) ShortestPath(g Graph, source, target int, alg Algorithm, unweighted bool) ([]int, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	n := g.Rows()
	if n != g.Cols() {
		return nil, fmt.Errorf("%w: %dx%d", ErrNonSquare, n, g.Cols())
	}
	if source < 0 || source >= n {
		return nil, fmt.Errorf("%w: source %d not in [0,%d)", ErrVertexOutOfRange, source, n)
	}
	if target < 0 || target >= n {
		return nil, fmt.Errorf("%w: target %d not in [0,%d)", ErrVertexOutOfRange, target, n)
	}

	wg := weighted{g: g, unit: unweighted}

	var (
		dist []float64
		prev []int
		err  error
	)
	switch alg {
	case BellmanFord:
		dist, prev, err = bellmanFord(wg, source)
	case Johnson:
		dist, prev, err = johnson(wg, source, target)
	default:
		return nil, alg.Validate()
	}
	if err != nil {
		return nil, err
	}
	if math.IsInf(dist[target], 1) {
		return nil, fmt.Errorf("%w: %d -> %d", ErrNoPath, source, target)
	}

	return reconstruct(prev, source, target)
}

// PathWeight sums the stored weights along path using g.
// Returns ErrNoPath when a consecutive pair is not an edge of g.
func PathWeight(g Graph, path []int) (float64, error) {
	if g == nil {
		return 0, ErrNilGraph
	}
	var total float64
	for k := 0; k+1 < len(path); k++ {
		w, ok := edgeWeight(g, path[k], path[k+1])
		if !ok {
			return 0, fmt.Errorf("%w: missing edge %d -> %d", ErrNoPath, path[k], path[k+1])
		}
		total += w
	}

	return total, nil
}

// weighted wraps a Graph with the unweighted switch.
type weighted struct {
	g    Graph
	unit bool // every stored entry weighs 1
}

func (w weighted) n() int { return w.g.Rows() }

// edges returns the out-edges of u; with unit set, weights read as 1.
func (w weighted) edges(u int) ([]int, []float64) {
	cols, vals := w.g.Row(u)
	if !w.unit {
		return cols, vals
	}
	ones := make([]float64, len(cols))
	for k := range ones {
		ones[k] = 1
	}

	return cols, ones
}

// edgeWeight looks up the weight of u→v in g.
func edgeWeight(g Graph, u, v int) (float64, bool) {
	if u < 0 || u >= g.Rows() {
		return 0, false
	}
	cols, vals := g.Row(u)
	for k, c := range cols {
		if c == v {
			return vals[k], true
		}
	}

	return 0, false
}

// reconstruct walks prev back from target. A walk longer than n steps means
// the predecessor chain is corrupt (a cycle), which is reported as a negative
// cycle since only such a cycle can feed back into prev.
func reconstruct(prev []int, source, target int) ([]int, error) {
	path := []int{target}
	for v := target; v != source; {
		v = prev[v]
		if v < 0 || len(path) > len(prev) {
			return nil, fmt.Errorf("%w: broken predecessor chain at %d", ErrNegativeCycle, target)
		}
		path = append(path, v)
	}
	// Reverse into source→target order.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

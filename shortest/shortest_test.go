// SPDX-License-Identifier: MIT
// Package shortest_test contains unit tests for the Bellman-Ford and Johnson engines.
package shortest_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/katalvlaran/boukman/matrix"
	"github.com/katalvlaran/boukman/shortest"
	"github.com/stretchr/testify/require"
)

var algorithms = []shortest.Algorithm{shortest.BellmanFord, shortest.Johnson}

func graph(t *testing.T, rows [][]float64) *matrix.CSR {
	t.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)

	return m
}

// chain is the normalized 4-activity chain: unit diagonal, edges -2, -3, -1.
func chain(t *testing.T) *matrix.CSR {
	return graph(t, [][]float64{
		{1, -2, 0, 0},
		{0, 1, -3, 0},
		{0, 0, 1, -1},
		{0, 0, 0, 1},
	})
}

func TestParseAlgorithm(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    shortest.Algorithm
		wantErr error
	}{
		{"BF", shortest.BellmanFord, nil},
		{"bellman-ford", shortest.BellmanFord, nil},
		{" Bellman-Ford ", shortest.BellmanFord, nil},
		{"J", shortest.Johnson, nil},
		{"johnson", shortest.Johnson, nil},
		{"D", 0, shortest.ErrDijkstraNegativeWeights},
		{"dijkstra", 0, shortest.ErrDijkstraNegativeWeights},
		{"floyd", 0, shortest.ErrUnknownAlgorithm},
		{"", 0, shortest.ErrUnknownAlgorithm},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.in, func(t *testing.T) {
			t.Parallel()
			got, err := shortest.ParseAlgorithm(tc.in)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestAlgorithm_StringAndValidate(t *testing.T) {
	t.Parallel()

	require.Equal(t, "bellman-ford", shortest.BellmanFord.String())
	require.Equal(t, "johnson", shortest.Johnson.String())
	require.NoError(t, shortest.Johnson.Validate())
	require.ErrorIs(t, shortest.Algorithm(7).Validate(), shortest.ErrUnknownAlgorithm)
	require.Equal(t, "Algorithm(7)", shortest.Algorithm(7).String())
}

func TestShortestPath_Chain(t *testing.T) {
	t.Parallel()

	g := chain(t)
	for _, alg := range algorithms {
		path, err := shortest.New().ShortestPath(g, 0, 3, alg, false)
		require.NoError(t, err, alg)
		require.Equal(t, []int{0, 1, 2, 3}, path, alg)

		w, err := shortest.PathWeight(g, path)
		require.NoError(t, err)
		require.InDelta(t, -6.0, w, 1e-12)
	}
}

func TestShortestPath_PrefersMoreNegativeRoute(t *testing.T) {
	t.Parallel()

	// 0→1→3 totals -2; 0→2→3 totals -5.5.
	g := graph(t, [][]float64{
		{0, -1, -5, 0},
		{0, 0, 0, -1},
		{0, 0, 0, -0.5},
		{0, 0, 0, 0},
	})
	for _, alg := range algorithms {
		path, err := shortest.New().ShortestPath(g, 0, 3, alg, false)
		require.NoError(t, err, alg)
		require.Equal(t, []int{0, 2, 3}, path, alg)
	}
}

func TestShortestPath_NegativeEdgeBeatsDirectEdge(t *testing.T) {
	t.Parallel()

	// Direct 0→2 weighs 1; 0→1→2 weighs 2 + (-3) = -1.
	g := graph(t, [][]float64{
		{0, 2, 1},
		{0, 0, -3},
		{0, 0, 0},
	})
	for _, alg := range algorithms {
		path, err := shortest.New().ShortestPath(g, 0, 2, alg, false)
		require.NoError(t, err, alg)
		require.Equal(t, []int{0, 1, 2}, path, alg)
	}
}

func TestShortestPath_Unweighted(t *testing.T) {
	t.Parallel()

	g := graph(t, [][]float64{
		{0, -10, 5},
		{0, 0, -10},
		{0, 0, 0},
	})
	for _, alg := range algorithms {
		weighted, err := shortest.New().ShortestPath(g, 0, 2, alg, false)
		require.NoError(t, err)
		require.Equal(t, []int{0, 1, 2}, weighted)

		hops, err := shortest.New().ShortestPath(g, 0, 2, alg, true)
		require.NoError(t, err)
		require.Equal(t, []int{0, 2}, hops)
	}
}

func TestShortestPath_SelfLoops(t *testing.T) {
	t.Parallel()

	// Positive diagonal entries (the normalized identity) are harmless.
	g := graph(t, [][]float64{
		{1, -1},
		{0, 1},
	})
	for _, alg := range algorithms {
		path, err := shortest.New().ShortestPath(g, 0, 1, alg, false)
		require.NoError(t, err)
		require.Equal(t, []int{0, 1}, path)
	}

	// A negative self-loop is a negative cycle of length one.
	neg := graph(t, [][]float64{
		{-1, -1},
		{0, 1},
	})
	for _, alg := range algorithms {
		_, err := shortest.New().ShortestPath(neg, 0, 1, alg, false)
		require.ErrorIs(t, err, shortest.ErrNegativeCycle, alg)
	}
}

func TestShortestPath_NoPath(t *testing.T) {
	t.Parallel()

	g := chain(t)
	for _, alg := range algorithms {
		// Edges only point down the chain.
		_, err := shortest.New().ShortestPath(g, 3, 0, alg, false)
		require.ErrorIs(t, err, shortest.ErrNoPath, alg)
	}
}

func TestShortestPath_NegativeCycle(t *testing.T) {
	t.Parallel()

	// 1 ⇄ 2 is a negative cycle reachable from 0.
	reachable := graph(t, [][]float64{
		{0, -1, 0, 0},
		{0, 0, -1, 0},
		{0, -1, 0, -1},
		{0, 0, 0, 0},
	})
	for _, alg := range algorithms {
		_, err := shortest.New().ShortestPath(reachable, 0, 3, alg, false)
		require.ErrorIs(t, err, shortest.ErrNegativeCycle, alg)
	}

	// 2 ⇄ 3 cannot be reached from 0: Bellman-Ford ignores it, Johnson cannot.
	detached := graph(t, [][]float64{
		{0, -1, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, -1},
		{0, 0, -1, 0},
	})
	path, err := shortest.New().ShortestPath(detached, 0, 1, shortest.BellmanFord, false)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1}, path)

	_, err = shortest.New().ShortestPath(detached, 0, 1, shortest.Johnson, false)
	require.ErrorIs(t, err, shortest.ErrNegativeCycle)
}

func TestShortestPath_Validation(t *testing.T) {
	t.Parallel()

	g := chain(t)
	rect := graph(t, [][]float64{{0, 1, 0}, {0, 0, 1}})

	tests := []struct {
		name   string
		g      shortest.Graph
		s, d   int
		alg    shortest.Algorithm
		expect error
	}{
		{"nil graph", nil, 0, 1, shortest.BellmanFord, shortest.ErrNilGraph},
		{"non-square", rect, 0, 1, shortest.BellmanFord, shortest.ErrNonSquare},
		{"negative source", g, -1, 1, shortest.Johnson, shortest.ErrVertexOutOfRange},
		{"target too large", g, 0, 4, shortest.BellmanFord, shortest.ErrVertexOutOfRange},
		{"unknown algorithm", g, 0, 3, shortest.Algorithm(42), shortest.ErrUnknownAlgorithm},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			path, err := shortest.New().ShortestPath(tc.g, tc.s, tc.d, tc.alg, false)
			require.Nil(t, path)
			require.ErrorIs(t, err, tc.expect)
		})
	}
}

// TestShortestPath_AlgorithmsAgree runs every pair of a random DAG with mixed
// weights through both algorithms; equal-weight ties may pick different
// paths, so only reachability and total weight are compared.
func TestShortestPath_AlgorithmsAgree(t *testing.T) {
	t.Parallel()

	const n = 15
	rng := rand.New(rand.NewSource(7))
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
		for j := i + 1; j < n; j++ {
			if rng.Float64() < 0.35 {
				rows[i][j] = rng.Float64()*4 - 3 // [-3, 1)
			}
		}
	}
	g := graph(t, rows)
	engine := shortest.New()

	for s := 0; s < n; s++ {
		for d := 0; d < n; d++ {
			if s == d {
				continue
			}
			bf, errBF := engine.ShortestPath(g, s, d, shortest.BellmanFord, false)
			jo, errJ := engine.ShortestPath(g, s, d, shortest.Johnson, false)
			if errors.Is(errBF, shortest.ErrNoPath) {
				require.ErrorIs(t, errJ, shortest.ErrNoPath, "%d->%d", s, d)
				continue
			}
			require.NoError(t, errBF)
			require.NoError(t, errJ)
			require.Equal(t, s, bf[0])
			require.Equal(t, d, jo[len(jo)-1])

			wBF, err := shortest.PathWeight(g, bf)
			require.NoError(t, err)
			wJ, err := shortest.PathWeight(g, jo)
			require.NoError(t, err)
			require.InDeltaf(t, wBF, wJ, 1e-9, "%d->%d: %v vs %v", s, d, bf, jo)
		}
	}
}

func TestPathWeight_MissingEdge(t *testing.T) {
	t.Parallel()

	_, err := shortest.PathWeight(chain(t), []int{0, 2})
	require.ErrorIs(t, err, shortest.ErrNoPath)

	_, err = shortest.PathWeight(nil, []int{0, 1})
	require.ErrorIs(t, err, shortest.ErrNilGraph)
}

func TestEngineFunc(t *testing.T) {
	t.Parallel()

	var gotUnweighted = true
	var e shortest.Engine = shortest.EngineFunc(func(_ shortest.Graph, s, d int, _ shortest.Algorithm, unweighted bool) ([]int, error) {
		gotUnweighted = unweighted
		return []int{s, d}, nil
	})
	path, err := e.ShortestPath(chain(t), 0, 3, shortest.Johnson, false)
	require.NoError(t, err)
	require.Equal(t, []int{0, 3}, path)
	require.False(t, gotUnweighted)
}

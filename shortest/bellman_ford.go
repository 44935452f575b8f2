// SPDX-License-Identifier: MIT

package shortest

import (
	"fmt"
	"math"
)

// bellmanFord computes single-source distances and predecessors from source.
//
// Implementation:
//   - Stage 1: dist[v] = +Inf, prev[v] = -1; dist[source] = 0.
//   - Stage 2: up to n-1 rounds of relaxing every edge, stopping early once a
//     round changes nothing.
//   - Stage 3: if the last round still changed something, one extra scan that
//     finds an improvable edge proves a negative cycle reachable from source.
//
// Complexity: O(V·E) time, O(V) space.
func bellmanFord(g weighted, source int) ([]float64, []int, error) {
	n := g.n()
	dist := make([]float64, n)
	prev := make([]int, n)
	for v := range dist {
		dist[v] = math.Inf(1)
		prev[v] = -1
	}
	dist[source] = 0

	converged := false
	for round := 1; round < n; round++ {
		if !relaxRound(g, dist, prev) {
			converged = true
			break
		}
	}
	if !converged && n > 0 {
		if u, v, ok := improvable(g, dist); ok {
			return nil, nil, fmt.Errorf("%w: edge %d -> %d still relaxes after %d rounds", ErrNegativeCycle, u, v, n-1)
		}
	}

	return dist, prev, nil
}

// relaxRound relaxes every edge once in ascending (u, v) order and reports
// whether any distance improved. prev may be nil when only distances matter.
func relaxRound(g weighted, dist []float64, prev []int) bool {
	changed := false
	for u := 0; u < g.n(); u++ {
		du := dist[u]
		if math.IsInf(du, 1) {
			continue
		}
		cols, vals := g.edges(u)
		for k, v := range cols {
			w := vals[k]
			if v == u && w >= 0 {
				continue // non-negative self-loops never shorten a path
			}
			if nd := du + w; nd < dist[v] {
				dist[v] = nd
				if prev != nil {
					prev[v] = u
				}
				changed = true
			}
		}
	}

	return changed
}

// improvable returns the first edge that can still shorten dist.
func improvable(g weighted, dist []float64) (int, int, bool) {
	for u := 0; u < g.n(); u++ {
		if math.IsInf(dist[u], 1) {
			continue
		}
		cols, vals := g.edges(u)
		for k, v := range cols {
			if dist[u]+vals[k] < dist[v] {
				return u, v, true
			}
		}
	}

	return 0, 0, false
}

// SPDX-License-Identifier: MIT

package shortest

import (
	"container/heap"
	"fmt"
	"math"
)

// johnson answers one source→target query by Johnson's reweighting.
//
// Implementation:
//   - Stage 1: potentials h from Bellman-Ford rooted at a virtual vertex with a
//     zero-weight edge to every vertex; h starts at 0 everywhere, which is the
//     state after relaxing those virtual edges. Any negative cycle in the graph
//     is reported here, reachable from source or not.
//   - Stage 2: Dijkstra on w'(u,v) = w(u,v) + h[u] - h[v] >= 0, stopping as
//     soon as target is settled.
//   - Stage 3: map distances back: d(v) = d'(v) - h[source] + h[v].
//
// Complexity: O(V·E + E log V) time, O(V + E) space for the lazy heap.
func johnson(g weighted, source, target int) ([]float64, []int, error) {
	n := g.n()

	// Stage 1: potentials.
	h := make([]float64, n)
	converged := false
	for round := 0; round < n; round++ {
		if !relaxRound(g, h, nil) {
			converged = true
			break
		}
	}
	if !converged && n > 0 {
		if u, v, ok := improvable(g, h); ok {
			return nil, nil, fmt.Errorf("%w: edge %d -> %d still relaxes after reweighting", ErrNegativeCycle, u, v)
		}
	}

	// Stage 2: Dijkstra on reweighted edges.
	r := &runner{
		g:       g,
		h:       h,
		target:  target,
		dist:    make([]float64, n),
		prev:    make([]int, n),
		visited: make([]bool, n),
	}
	r.init(source)
	r.process()

	// Stage 3: back to original weights.
	for v, d := range r.dist {
		if !math.IsInf(d, 1) {
			r.dist[v] = d - h[source] + h[v]
		}
	}

	return r.dist, r.prev, nil
}

// runner holds the mutable state for a single Dijkstra execution over
// reweighted edges.
type runner struct {
	g       weighted  // read-only within the run
	h       []float64 // Johnson potentials
	target  int       // settle-and-stop vertex
	dist    []float64 // reweighted distance from source
	prev    []int     // predecessor on the best path, -1 if none
	visited []bool    // distance finalized
	pq      nodePQ    // lazy min-heap
}

// init sets dist to +Inf, prev to -1 and pushes the source at distance 0.
func (r *runner) init(source int) {
	for v := range r.dist {
		r.dist[v] = math.Inf(1)
		r.prev[v] = -1
	}
	r.dist[source] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: source, dist: 0})
}

// process pops the closest unsettled vertex and relaxes its edges until the
// heap empties or target is settled.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id

		// Stale entry for a vertex already finalized.
		if r.visited[u] {
			continue
		}
		r.visited[u] = true
		if u == r.target {
			return
		}
		r.relax(u)
	}
}

// relax pushes a fresh heap entry for every neighbor whose reweighted
// distance strictly improves (lazy decrease-key).
func (r *runner) relax(u int) {
	cols, vals := r.g.edges(u)
	for k, v := range cols {
		if v == u || r.visited[v] {
			continue
		}
		w := vals[k] + r.h[u] - r.h[v]
		if w < 0 {
			w = 0 // float residue; potentials guarantee w >= 0 exactly
		}
		nd := r.dist[u] + w
		if nd >= r.dist[v] {
			continue
		}
		r.dist[v] = nd
		r.prev[v] = u
		heap.Push(&r.pq, &nodeItem{id: v, dist: nd})
	}
}

// nodeItem is a vertex and its tentative distance from the source.
type nodeItem struct {
	id   int
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist, then by id so equal
// distances settle in ascending vertex order.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push is called by heap.Push; x must be a *nodeItem.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop is called by heap.Pop.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

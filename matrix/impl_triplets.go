// SPDX-License-Identifier: MIT

// Package matrix - Triplets (COO) builder for CSR assembly.
//
// Purpose:
//   - Accept entries in any order (the natural shape of exchange lists) and
//     assemble a canonical CSR: rows ascending, columns strictly ascending,
//     duplicates summed, structural zeros dropped.
//
// Determinism:
//   - Assembly sorts by (row, col) with a stable sort, so duplicate sums are
//     accumulated in insertion order and results are bit-for-bit reproducible.

package matrix

import (
	"fmt"
	"sort"
)

const (
	ctxTripletsAdd   = "Triplets.Add"
	ctxTripletsBuild = "Triplets.ToCSR"
)

// Triplets collects (row, col, value) entries of an r×c matrix.
type Triplets struct {
	r, c int
	rows []int
	cols []int
	vals []float64
	opts Options
}

// NewTriplets creates an empty builder for an r×c matrix.
//
// Errors:
//   - ErrInvalidDimensions when rows<=0 or cols<=0.
func NewTriplets(rows, cols int, opts ...Option) (*Triplets, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Triplets{r: rows, c: cols, opts: gatherOptions(opts...)}, nil
}

// Add appends one entry. Duplicate coordinates are summed at assembly.
//
// Errors:
//   - ErrOutOfRange for invalid coordinates.
//   - ErrNaNInf for a non-finite value under the numeric policy.
//
// Complexity: amortized O(1).
func (t *Triplets) Add(row, col int, v float64) error {
	if row < 0 || row >= t.r || col < 0 || col >= t.c {
		return fmt.Errorf("%s(%d,%d): %w", ctxTripletsAdd, row, col, ErrOutOfRange)
	}
	if t.opts.validateNaNInf && isNonFinite(v) {
		return fmt.Errorf("%s(%d,%d): %w", ctxTripletsAdd, row, col, ErrNaNInf)
	}
	t.rows = append(t.rows, row)
	t.cols = append(t.cols, col)
	t.vals = append(t.vals, v)

	return nil
}

// Len returns the number of collected (not yet merged) entries.
func (t *Triplets) Len() int { return len(t.vals) }

// ToCSR assembles the collected entries into a canonical CSR.
//
// Implementation:
//   - Stage 1: stable-sort an index permutation by (row, col).
//   - Stage 2: sweep the permutation, summing runs of equal coordinates.
//   - Stage 3: keep sums with |sum| > dropTol; fill indptr by row counts.
//
// Errors:
//   - ErrNaNInf when a duplicate sum overflows to ±Inf under the numeric policy.
//
// Complexity:
//   - Time O(nnz log nnz + r), Space O(nnz + r).
//
// AI-Hints:
//   - The builder is not consumed; calling ToCSR twice yields equal matrices.
func (t *Triplets) ToCSR() (*CSR, error) {
	n := len(t.vals)
	order := make([]int, n)
	for k := range order {
		order[k] = k
	}
	sort.SliceStable(order, func(a, b int) bool {
		ia, ib := order[a], order[b]
		if t.rows[ia] != t.rows[ib] {
			return t.rows[ia] < t.rows[ib]
		}
		return t.cols[ia] < t.cols[ib]
	})

	indptr := make([]int, t.r+1)
	indices := make([]int, 0, n)
	data := make([]float64, 0, n)

	var (
		p, q     int
		row, col int
		sum      float64
	)
	for p = 0; p < n; p = q {
		row, col = t.rows[order[p]], t.cols[order[p]]
		sum = 0
		// Accumulate the run of identical coordinates in insertion order.
		for q = p; q < n && t.rows[order[q]] == row && t.cols[order[q]] == col; q++ {
			sum += t.vals[order[q]]
		}
		if t.opts.validateNaNInf && isNonFinite(sum) {
			return nil, fmt.Errorf("%s: (%d,%d): %w", ctxTripletsBuild, row, col, ErrNaNInf)
		}
		if dropped(sum, t.opts.dropTol) {
			continue // structural zero (exact cancellation or below tolerance)
		}
		indices = append(indices, col)
		data = append(data, sum)
		indptr[row+1]++
	}
	// Prefix-sum the per-row counts into row pointers.
	for i := 0; i < t.r; i++ {
		indptr[i+1] += indptr[i]
	}

	return newCSR(t.r, t.c, indptr, indices, data), nil
}

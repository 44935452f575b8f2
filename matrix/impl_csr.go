// SPDX-License-Identifier: MIT

// Package matrix - CSR (compressed sparse row) storage & safe accessors.
//
// Purpose:
//   - Hold sparse flow/adjacency matrices in the canonical compressed-row layout:
//     indptr (len r+1), indices (column ids, strictly increasing per row), data.
//   - Keep the public surface immutable: every kernel returns a fresh *CSR, and
//     Row() exposes read-only views that callers must not modify.
//   - Guarantee safety: At returns errors instead of panicking.
//
// Invariants (established by Triplets.ToCSR and preserved by every kernel):
//   - len(indptr) == r+1, indptr[0] == 0, indptr non-decreasing, indptr[r] == nnz.
//   - indices within a row are strictly increasing and lie in [0, c).
//   - assembly never stores exact zeros; Map preserves the pattern as-is.
//
// Complexity quicksheet:
//   - At: O(log nnz(row)); Row: O(1); Diagonal: O(r log nnz(row)); Clone: O(nnz).

package matrix

import (
	"fmt"
	"sort"
	"strings"
)

const (
	ctxCSRAt    = "CSR.At"
	ctxCSRDense = "CSR.ToDense"
)

// CSR is an immutable sparse matrix in compressed-row form.
type CSR struct {
	r, c    int       // dimensions (>0)
	indptr  []int     // row pointers: row i occupies [indptr[i], indptr[i+1])
	indices []int     // column index of each stored entry
	data    []float64 // value of each stored entry
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*CSR)(nil)
	_ fmt.Stringer = (*CSR)(nil)
)

// newCSR wraps pre-built buffers without copying. Callers inside the package
// own the buffers and guarantee the CSR invariants.
func newCSR(rows, cols int, indptr, indices []int, data []float64) *CSR {
	return &CSR{r: rows, c: cols, indptr: indptr, indices: indices, data: data}
}

// Rows returns the row count.
func (m *CSR) Rows() int { return m.r }

// Cols returns the column count.
func (m *CSR) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *CSR) Shape() (rows, cols int) { return m.r, m.c }

// NNZ returns the number of stored entries.
func (m *CSR) NNZ() int { return len(m.data) }

// At returns the value at (row, col); absent entries read as 0.
//
// Implementation:
//   - Stage 1: bounds-check (row, col).
//   - Stage 2: binary search col inside the row's index window.
//
// Errors:
//   - ErrOutOfRange for invalid coordinates.
//
// Complexity:
//   - Time O(log nnz(row)), Space O(1).
func (m *CSR) At(row, col int) (float64, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, fmt.Errorf("%s(%d,%d): %w", ctxCSRAt, row, col, ErrOutOfRange)
	}
	if k, ok := m.find(row, col); ok {
		return m.data[k], nil
	}

	return 0, nil
}

// Has reports whether (row, col) is a stored entry. Out-of-range coordinates
// are simply absent.
func (m *CSR) Has(row, col int) bool {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return false
	}
	_, ok := m.find(row, col)

	return ok
}

// find returns the flat offset of (row, col) when stored.
func (m *CSR) find(row, col int) (int, bool) {
	lo, hi := m.indptr[row], m.indptr[row+1]
	k := lo + sort.SearchInts(m.indices[lo:hi], col)
	if k < hi && m.indices[k] == col {
		return k, true
	}

	return 0, false
}

// Row returns read-only views over the stored column indices and values of
// row i. The slices alias internal storage and MUST NOT be modified.
// Returns nil slices for an out-of-range i.
//
// AI-Hints:
//   - This is the hot accessor of path engines: iterate both slices in lockstep.
func (m *CSR) Row(i int) ([]int, []float64) {
	if i < 0 || i >= m.r {
		return nil, nil
	}
	lo, hi := m.indptr[i], m.indptr[i+1]

	return m.indices[lo:hi:hi], m.data[lo:hi:hi]
}

// Diagonal returns the main diagonal (length min(r,c)); absent entries are 0.
func (m *CSR) Diagonal() []float64 {
	n := m.r
	if m.c < n {
		n = m.c
	}
	diag := make([]float64, n)
	var i, k int
	var ok bool
	for i = 0; i < n; i++ {
		if k, ok = m.find(i, i); ok {
			diag[i] = m.data[k]
		}
	}

	return diag
}

// Do visits every stored entry in row-major order and calls f(i,j,v).
// Stops early when f returns false.
func (m *CSR) Do(f func(i, j int, v float64) bool) {
	var i, k int
	for i = 0; i < m.r; i++ {
		for k = m.indptr[i]; k < m.indptr[i+1]; k++ {
			if !f(i, m.indices[k], m.data[k]) {
				return
			}
		}
	}
}

// Clone returns a deep copy with independent buffers.
// Complexity: O(r + nnz).
func (m *CSR) Clone() *CSR {
	indptr := make([]int, len(m.indptr))
	copy(indptr, m.indptr)
	indices := make([]int, len(m.indices))
	copy(indices, m.indices)
	data := make([]float64, len(m.data))
	copy(data, m.data)

	return newCSR(m.r, m.c, indptr, indices, data)
}

// ToDense materializes the matrix into a row-major *Dense.
// Complexity: O(r*c + nnz) time and O(r*c) space; use for small matrices only.
func (m *CSR) ToDense() (*Dense, error) {
	d, err := NewDense(m.r, m.c)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxCSRDense, err)
	}
	m.Do(func(i, j int, v float64) bool {
		d.data[i*d.c+j] = v // coordinates are valid by construction
		return true
	})

	return d, nil
}

// String renders the stored entries as "(i,j)=v" lines for diagnostics.
func (m *CSR) String() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("CSR %dx%d nnz=%d\n", m.r, m.c, len(m.data)))
	m.Do(func(i, j int, v float64) bool {
		b.WriteString(fmt.Sprintf("(%d,%d)=%g\n", i, j, v))
		return true
	})

	return b.String()
}

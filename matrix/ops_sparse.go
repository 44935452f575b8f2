// SPDX-License-Identifier: MIT

// Package matrix - sparse kernels over *CSR.
//
// Purpose:
//   - Provide the handful of structural/linear operations flow-matrix
//     normalization needs, without densifying: transpose, diagonal scaling
//     from either side, diagonal removal, identity addition, element-wise map.
//
// Contract:
//   - Inputs are never mutated; every kernel allocates a fresh *CSR.
//   - Kernels that can create zeros (scaling, identity addition) drop them,
//     keeping "no stored exact zeros" true; Map preserves the pattern as-is.
//   - Loop orders are fixed (row-major), so outputs are deterministic.

package matrix

import (
	"fmt"
)

// Operation name constants for unified error wrapping.
const (
	opTranspose    = "Transpose"
	opScaleRows    = "ScaleRows"
	opScaleCols    = "ScaleCols"
	opDropDiagonal = "DropDiagonal"
	opAddIdentity  = "AddIdentity"
	opMap          = "Map"
)

// matrixErrorf wraps err with an operation tag, preserving the sentinel.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Transpose returns mᵀ.
//
// Implementation:
//   - Stage 1: count entries per column (→ row pointers of the result).
//   - Stage 2: scatter entries row by row; since source rows are visited in
//     ascending order, result columns come out strictly ascending per row.
//
// Complexity:
//   - Time O(r + c + nnz), Space O(c + nnz).
func Transpose(m *CSR) (*CSR, error) {
	if m == nil {
		return nil, matrixErrorf(opTranspose, ErrNilMatrix)
	}
	nnz := len(m.data)
	indptr := make([]int, m.c+1)
	for _, j := range m.indices {
		indptr[j+1]++
	}
	for j := 0; j < m.c; j++ {
		indptr[j+1] += indptr[j]
	}

	indices := make([]int, nnz)
	data := make([]float64, nnz)
	next := make([]int, m.c) // write cursor per result row
	copy(next, indptr[:m.c])

	var i, k, j, dst int
	for i = 0; i < m.r; i++ {
		for k = m.indptr[i]; k < m.indptr[i+1]; k++ {
			j = m.indices[k]
			dst = next[j]
			indices[dst] = i
			data[dst] = m.data[k]
			next[j]++
		}
	}

	return newCSR(m.c, m.r, indptr, indices, data), nil
}

// ScaleRows returns diag(s)·m, i.e. row i multiplied by s[i].
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (len(s) != Rows), ErrNaNInf (non-finite factor).
//
// Complexity: O(r + nnz).
func ScaleRows(m *CSR, s []float64) (*CSR, error) {
	if m == nil {
		return nil, matrixErrorf(opScaleRows, ErrNilMatrix)
	}
	if err := ValidateVecLen(s, m.r); err != nil {
		return nil, matrixErrorf(opScaleRows, err)
	}
	for _, f := range s {
		if isNonFinite(f) {
			return nil, matrixErrorf(opScaleRows, ErrNaNInf)
		}
	}

	return filterMap(m, func(i, _ int, v float64) float64 { return v * s[i] }), nil
}

// ScaleCols returns m·diag(s), i.e. column j multiplied by s[j].
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (len(s) != Cols), ErrNaNInf (non-finite factor).
//
// Complexity: O(r + nnz).
func ScaleCols(m *CSR, s []float64) (*CSR, error) {
	if m == nil {
		return nil, matrixErrorf(opScaleCols, ErrNilMatrix)
	}
	if err := ValidateVecLen(s, m.c); err != nil {
		return nil, matrixErrorf(opScaleCols, err)
	}
	for _, f := range s {
		if isNonFinite(f) {
			return nil, matrixErrorf(opScaleCols, ErrNaNInf)
		}
	}

	return filterMap(m, func(_, j int, v float64) float64 { return v * s[j] }), nil
}

// DropDiagonal returns m without its main-diagonal entries.
// Complexity: O(r + nnz).
func DropDiagonal(m *CSR) (*CSR, error) {
	if m == nil {
		return nil, matrixErrorf(opDropDiagonal, ErrNilMatrix)
	}

	return filterMap(m, func(i, j int, v float64) float64 {
		if i == j {
			return 0 // dropped by filterMap
		}
		return v
	}), nil
}

// AddIdentity returns m + I for a square m. Diagonal entries that cancel to
// exactly zero are dropped; missing diagonal entries are inserted as 1.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity: O(r + nnz).
func AddIdentity(m *CSR) (*CSR, error) {
	if m == nil {
		return nil, matrixErrorf(opAddIdentity, ErrNilMatrix)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opAddIdentity, err)
	}

	indptr := make([]int, m.r+1)
	indices := make([]int, 0, len(m.data)+m.r)
	data := make([]float64, 0, len(m.data)+m.r)

	// emit appends a stored entry unless it is an exact zero.
	emit := func(j int, v float64) {
		if v == 0 {
			return
		}
		indices = append(indices, j)
		data = append(data, v)
	}

	var i, k, j int
	var placed bool
	for i = 0; i < m.r; i++ {
		placed = false
		for k = m.indptr[i]; k < m.indptr[i+1]; k++ {
			j = m.indices[k]
			switch {
			case j == i:
				emit(j, m.data[k]+1)
				placed = true
			case j > i && !placed:
				emit(i, 1) // diagonal was absent; insert before the first larger column
				placed = true
				emit(j, m.data[k])
			default:
				emit(j, m.data[k])
			}
		}
		if !placed {
			emit(i, 1)
		}
		indptr[i+1] = len(data)
	}

	return newCSR(m.r, m.c, indptr, indices, data), nil
}

// Map applies fn to every stored entry and returns a matrix with exactly the
// same sparsity pattern (results equal to zero stay stored).
//
// Errors:
//   - ErrNilMatrix.
//   - Any error returned by fn, wrapped with the coordinates (aborts the map).
//   - ErrNaNInf when fn yields NaN/±Inf.
//
// Complexity: O(r + nnz).
//
// AI-Hints:
//   - Use for value transforms whose zeros are meaningful (e.g. -ln(1) == 0
//     on a unit diagonal) so downstream code still sees the entry.
func Map(m *CSR, fn func(i, j int, v float64) (float64, error)) (*CSR, error) {
	if m == nil {
		return nil, matrixErrorf(opMap, ErrNilMatrix)
	}
	out := m.Clone()

	var i, k int
	var nv float64
	var err error
	for i = 0; i < m.r; i++ {
		for k = m.indptr[i]; k < m.indptr[i+1]; k++ {
			if nv, err = fn(i, m.indices[k], m.data[k]); err != nil {
				return nil, fmt.Errorf("%s(%d,%d): %w", opMap, i, m.indices[k], err)
			}
			if isNonFinite(nv) {
				return nil, fmt.Errorf("%s(%d,%d): %w", opMap, i, m.indices[k], ErrNaNInf)
			}
			out.data[k] = nv
		}
	}

	return out, nil
}

// filterMap applies fn to every stored entry and drops exact-zero results.
// Internal: callers validate inputs first.
func filterMap(m *CSR, fn func(i, j int, v float64) float64) *CSR {
	indptr := make([]int, m.r+1)
	indices := make([]int, 0, len(m.data))
	data := make([]float64, 0, len(m.data))

	var i, k int
	var nv float64
	for i = 0; i < m.r; i++ {
		for k = m.indptr[i]; k < m.indptr[i+1]; k++ {
			nv = fn(i, m.indices[k], m.data[k])
			if nv == 0 {
				continue
			}
			indices = append(indices, m.indices[k])
			data = append(data, nv)
		}
		indptr[i+1] = len(data)
	}

	return newCSR(m.r, m.c, indptr, indices, data)
}

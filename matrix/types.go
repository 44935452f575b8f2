// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by the dense and sparse storages.
// Errors and options live in dedicated files (errors.go, options.go).
package matrix

// Matrix represents a two-dimensional array of float64 values with safe,
// bounds-checked reads. Both *Dense and *CSR implement it, which lets tests
// and diagnostics compare the two storages cell by cell.
//
// Complexity notes: Rows/Cols are O(1); At is O(1) for *Dense and
// O(log nnz(row)) for *CSR; Clone is proportional to the stored data.
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)
}

// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating shape/nil/index/diagonal checks here.
//  - Return sentinel errors wrapped with the validator tag so call sites can
//    wrap again uniformly and errors.Is still matches.
//
// Determinism & Performance:
//  - All checks are pure and deterministic; only ValidateNonZeroDiagonal is O(n).
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Square → ...).

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// isNil reports nil interfaces and typed nil pointers of the known storages.
// A (*CSR)(nil) stored in a Matrix interface is not == nil, hence the switch.
func isNil(m Matrix) bool {
	switch v := m.(type) {
	case nil:
		return true
	case *CSR:
		return v == nil
	case *Dense:
		return v == nil
	default:
		return false
	}
}

// ValidateNotNil ensures the matrix reference is non-nil (typed nils included).
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if isNil(m) {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square (Rows == Cols).
//
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if isNil(m) {
		return validatorErrorf("ValidateSquare", ErrNilMatrix)
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", fmt.Errorf("%dx%d: %w", m.Rows(), m.Cols(), ErrNonSquare))
	}

	return nil
}

// ValidateIndex ensures 0 <= i < Rows(m) for a square m (a vertex index).
//
// Errors: ErrNilMatrix, ErrOutOfRange.
// Complexity: O(1).
func ValidateIndex(m Matrix, i int) error {
	if isNil(m) {
		return validatorErrorf("ValidateIndex", ErrNilMatrix)
	}
	if i < 0 || i >= m.Rows() {
		return validatorErrorf("ValidateIndex", fmt.Errorf("index %d not in [0,%d): %w", i, m.Rows(), ErrOutOfRange))
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the required size n.
// Complexity: O(1).
func ValidateVecLen(x []float64, n int) error {
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateNonZeroDiagonal checks that every diagonal entry of a square CSR is
// stored and non-zero, reporting the first offending index.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrZeroDiagonal.
// Complexity: O(n log nnz(row)).
//
// AI-Hints:
//   - Run before any division by the diagonal (production amounts) so that a
//     malformed matrix fails before work starts, never as ±Inf later.
func ValidateNonZeroDiagonal(m *CSR) error {
	if m == nil {
		return validatorErrorf("ValidateNonZeroDiagonal", ErrNilMatrix)
	}
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateNonZeroDiagonal", err)
	}
	var k int
	var ok bool
	for i := 0; i < m.r; i++ {
		if k, ok = m.find(i, i); !ok || m.data[k] == 0 {
			return validatorErrorf("ValidateNonZeroDiagonal", fmt.Errorf("index %d: %w", i, ErrZeroDiagonal))
		}
	}

	return nil
}

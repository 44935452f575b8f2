// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin entry points for common construction tasks.
//   - Avoid logic duplication: each facade delegates to Triplets or a kernel.
//
// AI-Hints:
//   - Build flow matrices with Triplets when entries come from exchange lists;
//     use FromDense only for small literal matrices (tests, examples).

package matrix

// NewIdentity returns I_n as a CSR (n stored ones on the diagonal).
// Complexity: O(n).
func NewIdentity(n int) (*CSR, error) {
	t, err := NewTriplets(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		_ = t.Add(i, i, 1.0) // bounds are valid by construction
	}

	return t.ToCSR()
}

// FromDense converts a dense matrix into CSR, dropping zeros per options.
// Complexity: O(r*c + nnz log nnz).
func FromDense(d *Dense, opts ...Option) (*CSR, error) {
	if d == nil {
		return nil, matrixErrorf("FromDense", ErrNilMatrix)
	}
	t, err := NewTriplets(d.r, d.c, opts...)
	if err != nil {
		return nil, matrixErrorf("FromDense", err)
	}
	var addErr error
	d.Do(func(i, j int, v float64) bool {
		if v == 0 {
			return true
		}
		addErr = t.Add(i, j, v)
		return addErr == nil
	})
	if addErr != nil {
		return nil, matrixErrorf("FromDense", addErr)
	}

	return t.ToCSR()
}

// FromRows builds a CSR from a rectangular row-literal (rows[i][j]).
// Handy for tests and examples; ragged input yields ErrDimensionMismatch.
func FromRows(rows [][]float64, opts ...Option) (*CSR, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, matrixErrorf("FromRows", ErrInvalidDimensions)
	}
	d, err := NewDense(len(rows), len(rows[0]))
	if err != nil {
		return nil, matrixErrorf("FromRows", err)
	}
	for i, row := range rows {
		if len(row) != d.c {
			return nil, matrixErrorf("FromRows", ErrDimensionMismatch)
		}
		for j, v := range row {
			if err = d.Set(i, j, v); err != nil {
				return nil, matrixErrorf("FromRows", err)
			}
		}
	}

	return FromDense(d, opts...)
}

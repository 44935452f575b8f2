// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/boukman/matrix"
	"github.com/stretchr/testify/require"
)

// TestValidateSquare covers nil inputs, square and non-square cases.
func TestValidateSquare(t *testing.T) {
	t.Parallel()

	var typedNil *matrix.CSR

	tests := []struct {
		name string
		m    matrix.Matrix
		want error
	}{
		{"nil", nil, matrix.ErrNilMatrix},
		{"typed nil", typedNil, matrix.ErrNilMatrix},
		{"1x1", mustCSR(t, [][]float64{{1}}), nil},
		{"2x3", mustCSR(t, [][]float64{{1, 0, 0}, {0, 1, 0}}), matrix.ErrNonSquare},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateSquare(tc.m)
			if tc.want == nil {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
				require.Truef(t, errors.Is(err, tc.want),
					"expected errors.Is(%v, %v)", err, tc.want)
			}
		})
	}
}

func TestValidateIndex(t *testing.T) {
	t.Parallel()

	m := mustCSR(t, [][]float64{{1, 0}, {0, 1}})
	require.NoError(t, matrix.ValidateIndex(m, 0))
	require.NoError(t, matrix.ValidateIndex(m, 1))
	require.ErrorIs(t, matrix.ValidateIndex(m, 2), matrix.ErrOutOfRange)
	require.ErrorIs(t, matrix.ValidateIndex(m, -1), matrix.ErrOutOfRange)
	require.ErrorIs(t, matrix.ValidateIndex(nil, 0), matrix.ErrNilMatrix)
}

func TestValidateNonZeroDiagonal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		rows [][]float64
		want error
		at   string
	}{
		{"full diagonal", [][]float64{{2, -1}, {0, 1}}, nil, ""},
		{"missing middle", [][]float64{{1, 0, 0}, {0, 0, -2}, {0, 0, 1}}, matrix.ErrZeroDiagonal, "index 1"},
		{"missing first", [][]float64{{0, 1}, {0, 1}}, matrix.ErrZeroDiagonal, "index 0"},
		{"non-square", [][]float64{{1, 0, 0}}, matrix.ErrNonSquare, ""},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateNonZeroDiagonal(mustCSR(t, tc.rows))
			if tc.want == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.want)
			require.Contains(t, err.Error(), tc.at)
		})
	}

	require.ErrorIs(t, matrix.ValidateNonZeroDiagonal(nil), matrix.ErrNilMatrix)
}

// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for CSR assembly and accessors.
package matrix_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/boukman/matrix"
	"github.com/stretchr/testify/require"
)

// mustCSR builds a CSR from a row literal or fails the test.
func mustCSR(t *testing.T, rows [][]float64) *matrix.CSR {
	t.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)

	return m
}

func TestTriplets_SumsDuplicatesAndDropsZeros(t *testing.T) {
	t.Parallel()

	tr, err := matrix.NewTriplets(3, 3)
	require.NoError(t, err)
	require.NoError(t, tr.Add(2, 1, 1.5))
	require.NoError(t, tr.Add(0, 2, 4))
	require.NoError(t, tr.Add(2, 1, 0.5)) // duplicate: summed
	require.NoError(t, tr.Add(1, 1, 3))
	require.NoError(t, tr.Add(1, 1, -3)) // exact cancellation: dropped
	require.NoError(t, tr.Add(0, 0, 0))  // explicit zero: dropped
	require.Equal(t, 6, tr.Len())

	m, err := tr.ToCSR()
	require.NoError(t, err)
	require.Equal(t, 2, m.NNZ())

	v, err := m.At(2, 1)
	require.NoError(t, err)
	require.Equal(t, 2.0, v)
	require.False(t, m.Has(1, 1))
	require.False(t, m.Has(0, 0))
	require.True(t, m.Has(0, 2))
}

func TestTriplets_RowsAreSorted(t *testing.T) {
	t.Parallel()

	tr, err := matrix.NewTriplets(2, 4)
	require.NoError(t, err)
	for _, j := range []int{3, 0, 2, 1} {
		require.NoError(t, tr.Add(1, j, float64(j+1)))
	}
	m, err := tr.ToCSR()
	require.NoError(t, err)

	cols, vals := m.Row(1)
	require.Equal(t, []int{0, 1, 2, 3}, cols)
	require.Equal(t, []float64{1, 2, 3, 4}, vals)

	cols, vals = m.Row(0)
	require.Empty(t, cols)
	require.Empty(t, vals)
}

func TestTriplets_Errors(t *testing.T) {
	t.Parallel()

	_, err := matrix.NewTriplets(0, 3)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	tr, err := matrix.NewTriplets(2, 2)
	require.NoError(t, err)
	require.ErrorIs(t, tr.Add(2, 0, 1), matrix.ErrOutOfRange)
	require.ErrorIs(t, tr.Add(0, -1, 1), matrix.ErrOutOfRange)
	require.ErrorIs(t, tr.Add(0, 0, nan()), matrix.ErrNaNInf)
	require.ErrorIs(t, tr.Add(0, 0, inf()), matrix.ErrNaNInf)

	relaxed, err := matrix.NewTriplets(2, 2, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.NoError(t, relaxed.Add(0, 0, inf()))
}

func TestTriplets_DropTolerance(t *testing.T) {
	t.Parallel()

	tr, err := matrix.NewTriplets(1, 3, matrix.WithDropTolerance(1e-6))
	require.NoError(t, err)
	require.NoError(t, tr.Add(0, 0, 1e-9))
	require.NoError(t, tr.Add(0, 1, -1e-7))
	require.NoError(t, tr.Add(0, 2, 1e-3))
	m, err := tr.ToCSR()
	require.NoError(t, err)
	require.Equal(t, 1, m.NNZ())
	require.True(t, m.Has(0, 2))

	require.Panics(t, func() { matrix.WithDropTolerance(-1) })
	require.Panics(t, func() { matrix.WithDropTolerance(nan()) })
}

func TestCSR_AtAndDiagonal(t *testing.T) {
	t.Parallel()

	m := mustCSR(t, [][]float64{
		{2, 0, 0},
		{-4, 0, 0},
		{0, -3, 1},
	})
	require.Equal(t, []float64{2, 0, 1}, m.Diagonal())

	v, err := m.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, -4.0, v)

	v, err = m.At(0, 1)
	require.NoError(t, err)
	require.Zero(t, v)

	_, err = m.At(3, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.False(t, m.Has(-1, 0))
}

func TestCSR_ToDenseRoundTrip(t *testing.T) {
	t.Parallel()

	rows := [][]float64{{1, 0, 5}, {0, 0, 0}, {7, 8, 0}}
	m := mustCSR(t, rows)
	d, err := m.ToDense()
	require.NoError(t, err)
	for i := range rows {
		for j := range rows[i] {
			v, err := d.At(i, j)
			require.NoError(t, err)
			require.Equal(t, rows[i][j], v)
		}
	}
	require.Contains(t, m.String(), "(2,1)=8")
}

func TestFromRows_Ragged(t *testing.T) {
	t.Parallel()

	_, err := matrix.FromRows([][]float64{{1, 2}, {3}})
	require.True(t, errors.Is(err, matrix.ErrDimensionMismatch))

	_, err = matrix.FromRows(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestNewIdentity(t *testing.T) {
	t.Parallel()

	id, err := matrix.NewIdentity(3)
	require.NoError(t, err)
	require.Equal(t, 3, id.NNZ())
	require.Equal(t, []float64{1, 1, 1}, id.Diagonal())
}

// Package matrix_test contains unit tests for the Dense staging buffer.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/boukman/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(5, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestDenseShape verifies Rows, Cols and Shape.
func TestDenseShape(t *testing.T) {
	m, err := matrix.NewDense(3, 4)
	require.NoError(t, err)

	require.Equal(t, 3, m.Rows())
	require.Equal(t, 4, m.Cols())
	r, c := m.Shape()
	require.Equal(t, [2]int{3, 4}, [2]int{r, c})
}

// TestDenseAtSetOutOfRange ensures At and Set report ErrOutOfRange on invalid access.
func TestDenseAtSetOutOfRange(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(2, 0, 1.23), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, -1, 4.56), matrix.ErrOutOfRange)
}

// TestDenseSetGet validates Set followed by At, and the finite-value guard.
func TestDenseSetGet(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 2, 7.89))
	val, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 7.89, val)

	require.ErrorIs(t, m.Set(0, 0, nan()), matrix.ErrNaNInf)
}

// TestDenseCloneAndString checks deep copies and the bracketed row format.
func TestDenseCloneAndString(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 1, -2))

	cp := m.Clone()
	require.NoError(t, cp.Set(0, 1, 5))
	v, _ := m.At(0, 1)
	require.Equal(t, -2.0, v, "clone must not share storage")
	require.Equal(t, "[0, -2]\n[0, 0]\n", m.String())
}

// TestDenseCSRRoundTrip converts Dense → CSR → Dense.
func TestDenseCSRRoundTrip(t *testing.T) {
	d, err := matrix.NewDense(3, 3)
	require.NoError(t, err)
	require.NoError(t, d.Set(0, 0, 1))
	require.NoError(t, d.Set(2, 1, -0.5))

	csr, err := matrix.FromDense(d)
	require.NoError(t, err)
	require.Equal(t, 2, csr.NNZ())

	back, err := csr.ToDense()
	require.NoError(t, err)
	require.Equal(t, d.String(), back.String())

	_, err = matrix.FromDense(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

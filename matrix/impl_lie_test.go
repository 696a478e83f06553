package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/gauge/matrix"
	"github.com/stretchr/testify/require"
)

// TestTraceCommutator covers the Lie-algebra helpers.
func TestTraceCommutator(t *testing.T) {
	a := matrix.MustDense([][]float64{{0, 1}, {0, 0}})
	b := matrix.MustDense([][]float64{{0, 0}, {1, 0}})

	c, err := matrix.Commutator(a, b)
	require.NoError(t, err)
	requireClose(t, matrix.MustDense([][]float64{{1, 0}, {0, -1}}), c, 0) // [E12,E21] = H

	tr, err := matrix.Trace(c)
	require.NoError(t, err)
	require.Equal(t, 0.0, tr) // commutators are traceless

	_, err = matrix.Commutator(a, matrix.MustDense([][]float64{{1}}))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.Trace(matrix.MustDense([][]float64{{1, 2}}))
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

// TestConjugate checks that similarity preserves the trace.
func TestConjugate(t *testing.T) {
	g := matrix.MustDense([][]float64{{2, 1}, {1, 1}})
	a := matrix.MustDense([][]float64{{3, -1}, {4, 0.5}})

	c, err := matrix.Conjugate(g, a)
	require.NoError(t, err)
	tc, _ := matrix.Trace(c)
	ta, _ := matrix.Trace(a)
	require.InDelta(t, ta, tc, 1e-12)
}

// TestNormsAndClose covers FrobeniusNorm, MaxAbs, IsZero and AllClose.
func TestNormsAndClose(t *testing.T) {
	a := matrix.MustDense([][]float64{{3, 0}, {0, -4}})
	require.InDelta(t, 5.0, matrix.FrobeniusNorm(a), 1e-15)
	require.Equal(t, 4.0, matrix.MaxAbs(a))
	require.Equal(t, 0.0, matrix.FrobeniusNorm(nil))

	z, _ := matrix.NewZeros(2, 2)
	require.True(t, matrix.IsZero(z, 0))
	require.False(t, matrix.IsZero(a, 1))

	b := a.Copy()
	_ = b.Set(0, 0, 3+1e-9)
	ok, err := matrix.AllClose(a, b, 0, 1e-8)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = matrix.AllClose(a, b, 0, 1e-10)
	require.NoError(t, err)
	require.False(t, ok)

	_ = b.Set(1, 1, math.NaN())
	ok, err = matrix.AllClose(a, b, 1, 1)
	require.NoError(t, err)
	require.False(t, ok) // NaN is never close

	_, err = matrix.AllClose(a, b, math.Inf(1), 0)
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

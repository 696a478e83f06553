// Package matrix_test contains unit tests for the linear-algebra kernels.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/gauge/matrix"
	"github.com/stretchr/testify/require"
)

// TestAddSubScale covers the element-wise kernels on both code paths.
func TestAddSubScale(t *testing.T) {
	a := matrix.MustDense([][]float64{{1, 2}, {3, 4}})
	b := matrix.MustDense([][]float64{{4, 3}, {2, 1}})

	sum, err := matrix.Add(a, b)
	require.NoError(t, err)
	requireClose(t, matrix.MustDense([][]float64{{5, 5}, {5, 5}}), sum, 0)

	diff, err := matrix.Sub(hide{a}, b) // interface fallback
	require.NoError(t, err)
	requireClose(t, matrix.MustDense([][]float64{{-3, -1}, {1, 3}}), diff, 0)

	axpy, err := matrix.AddScaled(a, b, 0.5)
	require.NoError(t, err)
	requireClose(t, matrix.MustDense([][]float64{{3, 3.5}, {4, 4.5}}), axpy, 0)

	scaled, err := matrix.Scale(hide{a}, -2)
	require.NoError(t, err)
	requireClose(t, matrix.MustDense([][]float64{{-2, -4}, {-6, -8}}), scaled, 0)

	_, err = matrix.Add(a, matrix.MustDense([][]float64{{1, 2, 3}}))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.Add(nil, b)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestMulIdentity checks multiply(identity(n), A) == A on both paths.
func TestMulIdentity(t *testing.T) {
	a := matrix.MustDense([][]float64{{1, -2, 0.5}, {3, 4, 7}, {0, 9, -1}})
	I, err := matrix.NewIdentity(3)
	require.NoError(t, err)

	left, err := matrix.Mul(I, a)
	require.NoError(t, err)
	requireClose(t, a, left, 0)

	right, err := matrix.Mul(hide{a}, hide{I})
	require.NoError(t, err)
	requireClose(t, a, right, 0)

	_, err = matrix.Mul(a, matrix.MustDense([][]float64{{1, 2}}))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestMatVecTranspose covers y = A·x and Aᵀ.
func TestMatVecTranspose(t *testing.T) {
	a := matrix.MustDense([][]float64{{1, 2, 3}, {4, 5, 6}})

	y, err := matrix.MatVec(a, []float64{1, 0, -1})
	require.NoError(t, err)
	require.Equal(t, []float64{-2, -2}, y)

	y, err = matrix.MatVec(hide{a}, []float64{1, 1, 1})
	require.NoError(t, err)
	require.Equal(t, []float64{6, 15}, y)

	_, err = matrix.MatVec(a, []float64{1, 2})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	at, err := matrix.Transpose(a)
	require.NoError(t, err)
	require.Equal(t, 3, at.Rows())
	requireClose(t, matrix.MustDense([][]float64{{1, 4}, {2, 5}, {3, 6}}), at, 0)
}

// TestInverse2x2ClosedForm reproduces the documented 2×2 example.
func TestInverse2x2ClosedForm(t *testing.T) {
	a := matrix.MustDense([][]float64{{1, 2}, {3, 4}})
	inv, err := matrix.Inverse(a)
	require.NoError(t, err)
	requireClose(t, matrix.MustDense([][]float64{{-2, 1}, {1.5, -0.5}}), inv, 1e-12)

	prod, err := matrix.Mul(a, inv)
	require.NoError(t, err)
	I, _ := matrix.NewIdentity(2)
	requireClose(t, I, prod, 1e-12)

	// extreme magnitudes neither overflow nor underflow the determinant
	for _, scale := range []float64{1e160, 1e-170} {
		big, err := matrix.Scale(a, scale)
		require.NoError(t, err)
		inv, err := matrix.Inverse(big)
		require.NoError(t, err, "scale %g", scale)
		prod, err := matrix.Mul(big, inv)
		require.NoError(t, err)
		requireClose(t, I, prod, 1e-10)
	}

	// a reciprocal beyond float64 range is reported, not returned
	_, err = matrix.Inverse(matrix.MustDense([][]float64{{1e-320, 0}, {0, 1e-320}}))
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

// TestInverseGaussJordan checks n≥3 inversion including a zero leading pivot,
// which only succeeds with row pivoting.
func TestInverseGaussJordan(t *testing.T) {
	for name, a := range map[string]*matrix.Dense{
		"zero-leading-pivot": matrix.MustDense([][]float64{{0, 1, 2}, {1, 0, 3}, {4, -3, 8}}),
		"dense-4x4": matrix.MustDense([][]float64{
			{4, 7, 2, 0.3},
			{3, 6, 1, -2},
			{2, 5, 3, 1},
			{0.5, -1, 2, 9},
		}),
	} {
		t.Run(name, func(t *testing.T) {
			inv, err := matrix.Inverse(a)
			require.NoError(t, err)

			prod, err := matrix.Mul(a, inv)
			require.NoError(t, err)
			I, _ := matrix.IdentityLike(a)
			requireClose(t, I, prod, 1e-10)

			// the input is untouched by the elimination
			v, _ := a.At(0, 1)
			before := v
			_, _ = matrix.Inverse(a)
			v, _ = a.At(0, 1)
			require.Equal(t, before, v)
		})
	}
}

// TestInverseSingular reports ErrSingular instead of NaN/Inf.
func TestInverseSingular(t *testing.T) {
	cases := []*matrix.Dense{
		matrix.MustDense([][]float64{{0}}),
		matrix.MustDense([][]float64{{1, 2}, {2, 4}}),
		matrix.MustDense([][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}),
		matrix.MustDense([][]float64{{0, 0}, {0, 0}}),
	}
	for _, a := range cases {
		_, err := matrix.Inverse(a)
		require.ErrorIs(t, err, matrix.ErrSingular)
	}

	_, err := matrix.Inverse(matrix.MustDense([][]float64{{1, 2, 3}}))
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	bad := matrix.MustDense([][]float64{{1, 0}, {0, 1}})
	_ = bad.Set(0, 1, nan())
	_, err = matrix.Inverse(bad)
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

// TestDet compares Gaussian-elimination determinants with hand values.
func TestDet(t *testing.T) {
	d, err := matrix.Det(matrix.MustDense([][]float64{{1, 2}, {3, 4}}))
	require.NoError(t, err)
	require.InDelta(t, -2.0, d, 1e-12)

	d, err = matrix.Det(matrix.MustDense([][]float64{{0, 1}, {1, 0}})) // needs a row swap
	require.NoError(t, err)
	require.InDelta(t, -1.0, d, 1e-12)

	d, err = matrix.Det(hide{matrix.MustDense([][]float64{{2, 0, 0}, {0, 3, 0}, {0, 0, 4}})})
	require.NoError(t, err)
	require.InDelta(t, 24.0, d, 1e-12)

	d, err = matrix.Det(matrix.MustDense([][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}))
	require.NoError(t, err)
	require.Equal(t, 0.0, d)
}

package liegroup

import (
	"fmt"
	"math"

	"github.com/katalvlaran/gauge/matrix"
)

// Canonical groups are given in real matrix form. Complex generators iλ are
// replaced by their real antisymmetric counterparts, so the 2×2 SU(2) basis
// spans the split real form of the algebra; structure constants are derived
// numerically by StructureConstants rather than hard-coded.

// U1 returns U(1) acting on a 1-dimensional real fibre with generator [[1]].
func U1() *Group {
	g, _ := New("U(1)", 1, matrix.MustDense([][]float64{{1}}))

	return g
}

// SU2 returns SU(2) with the halved real Pauli forms
// τ1 = ½[[0,1],[1,0]], τ2 = ½[[0,1],[-1,0]], τ3 = ½[[1,0],[0,-1]].
func SU2() *Group {
	g, _ := New("SU(2)", 3,
		matrix.MustDense([][]float64{{0, 0.5}, {0.5, 0}}),
		matrix.MustDense([][]float64{{0, 0.5}, {-0.5, 0}}),
		matrix.MustDense([][]float64{{0.5, 0}, {0, -0.5}}),
	)

	return g
}

// SU3 returns SU(3) with the halved real forms of the eight Gell-Mann matrices
// (iλ for the imaginary λ2, λ5, λ7).
func SU3() *Group {
	s := 1 / (2 * math.Sqrt(3))
	g, _ := New("SU(3)", 8,
		matrix.MustDense([][]float64{{0, 0.5, 0}, {0.5, 0, 0}, {0, 0, 0}}),
		matrix.MustDense([][]float64{{0, 0.5, 0}, {-0.5, 0, 0}, {0, 0, 0}}),
		matrix.MustDense([][]float64{{0.5, 0, 0}, {0, -0.5, 0}, {0, 0, 0}}),
		matrix.MustDense([][]float64{{0, 0, 0.5}, {0, 0, 0}, {0.5, 0, 0}}),
		matrix.MustDense([][]float64{{0, 0, 0.5}, {0, 0, 0}, {-0.5, 0, 0}}),
		matrix.MustDense([][]float64{{0, 0, 0}, {0, 0, 0.5}, {0, 0.5, 0}}),
		matrix.MustDense([][]float64{{0, 0, 0}, {0, 0, 0.5}, {0, -0.5, 0}}),
		matrix.MustDense([][]float64{{s, 0, 0}, {0, s, 0}, {0, 0, -2 * s}}),
	)

	return g
}

// GL returns GL(n, R) with the elementary basis E_ij (row-major order).
// Errors: ErrMatrixSize for n ≤ 0.
func GL(n int) (*Group, error) {
	if n <= 0 {
		return nil, fmt.Errorf("GL(%d): %w", n, ErrMatrixSize)
	}
	gens := make([]*matrix.Dense, 0, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			e, _ := matrix.NewDense(n, n)
			_ = e.Set(i, j, 1)
			gens = append(gens, e)
		}
	}

	return New(fmt.Sprintf("GL(%d)", n), n*n, gens...)
}

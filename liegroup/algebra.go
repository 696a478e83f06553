package liegroup

import (
	"fmt"
	"math"

	"github.com/katalvlaran/gauge/matrix"
)

// DefaultExpTerms is the Taylor order used by Exp after scaling.
const DefaultExpTerms = 12

// Exp returns the matrix exponential e^X by scaling and squaring:
// X is halved until ‖X‖_F ≤ ½, the truncated Taylor series of the given
// order is summed, and the result is squared back.
// terms ≤ 0 selects DefaultExpTerms.
//
// Complexity: O((terms + squarings)·n³).
func Exp(x matrix.Matrix, terms int) (*matrix.Dense, error) {
	if err := matrix.ValidateSquare(x); err != nil {
		return nil, fmt.Errorf("Exp: %w", err)
	}
	if terms <= 0 {
		terms = DefaultExpTerms
	}
	norm := matrix.FrobeniusNorm(x)
	if math.IsNaN(norm) || math.IsInf(norm, 0) {
		return nil, fmt.Errorf("Exp: %w", matrix.ErrNaNInf)
	}
	squarings := 0
	for norm > 0.5 {
		norm /= 2
		squarings++
	}
	xs, err := matrix.Scale(x, math.Ldexp(1, -squarings))
	if err != nil {
		return nil, fmt.Errorf("Exp: %w", err)
	}

	// Horner-free accumulation: term_k = term_{k-1}·X/k.
	sum, err := matrix.IdentityLike(x)
	if err != nil {
		return nil, fmt.Errorf("Exp: %w", err)
	}
	term := sum.Copy()
	for k := 1; k <= terms; k++ {
		if term, err = matrix.Mul(term, xs); err != nil {
			return nil, fmt.Errorf("Exp: %w", err)
		}
		if term, err = matrix.Scale(term, 1/float64(k)); err != nil {
			return nil, fmt.Errorf("Exp: %w", err)
		}
		if sum, err = matrix.Add(sum, term); err != nil {
			return nil, fmt.Errorf("Exp: %w", err)
		}
	}
	for ; squarings > 0; squarings-- {
		if sum, err = matrix.Mul(sum, sum); err != nil {
			return nil, fmt.Errorf("Exp: %w", err)
		}
	}

	return sum, nil
}

// innerProduct returns the Frobenius inner product ⟨A,B⟩ = Σ A[i,j]·B[i,j].
func innerProduct(a, b *matrix.Dense) float64 {
	ad, bd := a.RawData(), b.RawData()
	var s float64
	for i := range ad {
		s += ad[i] * bd[i]
	}

	return s
}

// StructureConstants returns f[a][b][c] with [T_a, T_b] = Σ_c f[a][b][c]·T_c.
// The bracket is projected onto the generator span through the Gram matrix
// of the Frobenius inner product, so the basis need not be orthonormal.
// Errors: ErrNoGenerators; matrix.ErrSingular for a linearly dependent basis.
//
// Complexity: O(k²·n³ + k³) for k generators of order n.
func (g *Group) StructureConstants() ([][][]float64, error) {
	k := len(g.generators)
	if k == 0 {
		return nil, fmt.Errorf("%s.StructureConstants: %w", g.name, ErrNoGenerators)
	}
	gram, err := matrix.NewDense(k, k)
	if err != nil {
		return nil, err
	}
	for a := 0; a < k; a++ {
		for b := 0; b < k; b++ {
			_ = gram.Set(a, b, innerProduct(g.generators[a], g.generators[b]))
		}
	}
	gramInv, err := matrix.Inverse(gram)
	if err != nil {
		return nil, fmt.Errorf("%s.StructureConstants: %w", g.name, err)
	}

	f := make([][][]float64, k)
	rhs := make([]float64, k)
	for a := 0; a < k; a++ {
		f[a] = make([][]float64, k)
		for b := 0; b < k; b++ {
			br, err := matrix.Commutator(g.generators[a], g.generators[b])
			if err != nil {
				return nil, fmt.Errorf("%s.StructureConstants: %w", g.name, err)
			}
			for c := 0; c < k; c++ {
				rhs[c] = innerProduct(g.generators[c], br)
			}
			if f[a][b], err = matrix.MatVec(gramInv, rhs); err != nil {
				return nil, err
			}
		}
	}

	return f, nil
}

package liegroup

import (
	"fmt"

	"github.com/katalvlaran/gauge/fingerprint"
	"github.com/katalvlaran/gauge/matrix"
)

// Group is an immutable matrix Lie group description.
type Group struct {
	name       string
	dimension  int
	generators []*matrix.Dense
}

// New validates and builds a Group. Generators are copied.
// Errors: ErrDimension, ErrGeneratorCount, ErrGeneratorShape.
func New(name string, dim int, generators ...*matrix.Dense) (*Group, error) {
	if dim <= 0 {
		return nil, fmt.Errorf("New(%q, %d): %w", name, dim, ErrDimension)
	}
	if len(generators) > dim {
		return nil, fmt.Errorf("New(%q): %d generators for dimension %d: %w", name, len(generators), dim, ErrGeneratorCount)
	}
	gens := make([]*matrix.Dense, len(generators))
	for i, g := range generators {
		if g == nil || g.Rows() != g.Cols() || g.Rows() != generators[0].Rows() {
			return nil, fmt.Errorf("New(%q): generator %d: %w", name, i, ErrGeneratorShape)
		}
		gens[i] = g.Copy()
	}

	return &Group{name: name, dimension: dim, generators: gens}, nil
}

// Name returns the group name.
func (g *Group) Name() string { return g.name }

// Dimension returns the parameter-space dimension (not the matrix order).
func (g *Group) Dimension() int { return g.dimension }

// Generators returns copies of the generator basis.
func (g *Group) Generators() []*matrix.Dense {
	out := make([]*matrix.Dense, len(g.generators))
	for i, m := range g.generators {
		out[i] = m.Copy()
	}

	return out
}

// MatrixSize returns the order of the generator matrices, or 0 without generators.
func (g *Group) MatrixSize() int {
	if len(g.generators) == 0 {
		return 0
	}

	return g.generators[0].Rows()
}

// Identity returns the n×n identity element.
func (g *Group) Identity(n int) (*matrix.Dense, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%s.Identity(%d): %w", g.name, n, ErrMatrixSize)
	}

	return matrix.NewIdentity(n)
}

// Multiply returns the group product a·b. Both operands must be square and of equal order.
func (g *Group) Multiply(a, b matrix.Matrix) (*matrix.Dense, error) {
	if err := matrix.ValidateSameSquare(a, b); err != nil {
		return nil, fmt.Errorf("%s.Multiply: %w", g.name, err)
	}

	return matrix.Mul(a, b)
}

// Inverse returns a⁻¹, or an error wrapping matrix.ErrSingular.
func (g *Group) Inverse(a matrix.Matrix) (*matrix.Dense, error) {
	inv, err := matrix.Inverse(a)
	if err != nil {
		return nil, fmt.Errorf("%s.Inverse: %w", g.name, err)
	}

	return inv, nil
}

// Commutator returns the algebra bracket [a,b] = ab − ba.
func (g *Group) Commutator(a, b matrix.Matrix) (*matrix.Dense, error) {
	return matrix.Commutator(a, b)
}

// Algebra returns the algebra element Σ_a c_a·T_a.
// Errors: ErrNoGenerators, ErrCoefficientCount.
func (g *Group) Algebra(coeffs []float64) (*matrix.Dense, error) {
	if len(g.generators) == 0 {
		return nil, fmt.Errorf("%s.Algebra: %w", g.name, ErrNoGenerators)
	}
	if len(coeffs) != len(g.generators) {
		return nil, fmt.Errorf("%s.Algebra: %d coefficients: %w", g.name, len(coeffs), ErrCoefficientCount)
	}
	acc, err := matrix.ZerosLike(g.generators[0])
	if err != nil {
		return nil, err
	}
	for a, c := range coeffs {
		if c == 0 {
			continue
		}
		if acc, err = matrix.AddScaled(acc, g.generators[a], c); err != nil {
			return nil, err
		}
	}

	return acc, nil
}

// Fingerprint identifies the group by name, dimension and generator entries.
func (g *Group) Fingerprint() string {
	parts := []any{g.name, g.dimension, len(g.generators)}
	for _, m := range g.generators {
		parts = append(parts, m.Rows(), m.RawData())
	}

	return fingerprint.Of("liegroup", parts...)
}

// String renders "name(dim)".
func (g *Group) String() string { return fmt.Sprintf("%s(%d)", g.name, g.dimension) }

package factory

import (
	"fmt"

	"github.com/katalvlaran/gauge/bundle"
	"github.com/katalvlaran/gauge/connection"
	"github.com/katalvlaran/gauge/fingerprint"
	"github.com/katalvlaran/gauge/liegroup"
	"github.com/katalvlaran/gauge/matrix"
)

// ZeroField is the identically vanishing potential of rank K.
type ZeroField struct {
	K int
}

// Evaluate returns the K×K zero matrix.
func (z ZeroField) Evaluate(_ []float64, _ int) (*matrix.Dense, error) {
	return matrix.NewZeros(z.K, z.K)
}

// Fingerprint identifies the field by its rank.
func (z ZeroField) Fingerprint() string { return fingerprint.Of("zero-field", z.K) }

// ConstantField returns the same matrix for every base point.
type ConstantField struct {
	components []*matrix.Dense
}

// NewConstantField copies components, one per base direction.
func NewConstantField(components []matrix.Matrix) (*ConstantField, error) {
	out := make([]*matrix.Dense, len(components))
	for i, c := range components {
		if err := matrix.ValidateSquare(c); err != nil {
			return nil, fmt.Errorf("NewConstantField: A_%d: %w", i, err)
		}
		d, err := matrix.DenseCopy(c)
		if err != nil {
			return nil, fmt.Errorf("NewConstantField: A_%d: %w", i, err)
		}
		out[i] = d
	}

	return &ConstantField{components: out}, nil
}

// Evaluate returns a copy of A_direction.
func (f *ConstantField) Evaluate(_ []float64, direction int) (*matrix.Dense, error) {
	if direction < 0 || direction >= len(f.components) {
		return nil, fmt.Errorf("ConstantField: direction %d: %w", direction, connection.ErrDirectionRange)
	}

	return f.components[direction].Copy(), nil
}

// Fingerprint hashes every component's entries.
func (f *ConstantField) Fingerprint() string {
	parts := make([]any, 0, len(f.components))
	for _, c := range f.components {
		parts = append(parts, c.RawData())
	}

	return fingerprint.Of("constant-field", parts...)
}

// FlatConnection returns the zero connection, flat at every point.
func FlatConnection(b *bundle.Bundle, opts ...connection.Option) (*connection.Connection, error) {
	if b == nil {
		return nil, fmt.Errorf("FlatConnection: %w", connection.ErrNilBundle)
	}

	return connection.New(b, ZeroField{K: b.FiberDimension()}, opts...)
}

// ConstantConnection returns the connection with A_μ = components[μ]
// everywhere. Its curvature is the commutator F_{μν} = [A_μ, A_ν].
// Errors: ErrComponentCount, ErrComponentShape.
func ConstantConnection(b *bundle.Bundle, components []matrix.Matrix, opts ...connection.Option) (*connection.Connection, error) {
	if b == nil {
		return nil, fmt.Errorf("ConstantConnection: %w", connection.ErrNilBundle)
	}
	if len(components) != b.BaseDimension() {
		return nil, fmt.Errorf("ConstantConnection: %d components, base dimension %d: %w",
			len(components), b.BaseDimension(), ErrComponentCount)
	}
	k := b.FiberDimension()
	for i, c := range components {
		if c == nil || c.Rows() != k || c.Cols() != k {
			return nil, fmt.Errorf("ConstantConnection: A_%d: %w", i, ErrComponentShape)
		}
	}
	f, err := NewConstantField(components)
	if err != nil {
		return nil, fmt.Errorf("ConstantConnection: %w", err)
	}

	return connection.New(b, f, opts...)
}

// thooft[a][μ][ν] is the self-dual 't Hooft symbol η^a_{μν} with the
// Euclidean time direction last: η^a_{bc} = ε_{abc}, η^a_{b3} = δ_{ab},
// η^a_{3b} = −δ_{ab}.
var thooft = func() (eta [3][4][4]float64) {
	for a := 0; a < 3; a++ {
		b, c := (a+1)%3, (a+2)%3
		eta[a][b][c], eta[a][c][b] = 1, -1
		eta[a][a][3], eta[a][3][a] = 1, -1
	}

	return eta
}()

// InstantonField is the single-instanton ansatz centred at the origin,
//
//	A_μ(x) = 2 η^a_{μν} x^ν / (|x|² + ρ²) · T_a
//
// with T_a the SU(2) generators. At the origin F_{μν} = −4 η^a_{μν} T_a / ρ².
type InstantonField struct {
	rho        float64
	generators []*matrix.Dense
}

// NewInstantonField returns the ansatz of size rho.
// Errors: ErrInstantonScale.
func NewInstantonField(rho float64) (*InstantonField, error) {
	if !(rho > 0) {
		return nil, fmt.Errorf("NewInstantonField(%g): %w", rho, ErrInstantonScale)
	}

	return &InstantonField{rho: rho, generators: liegroup.SU2().Generators()}, nil
}

// Rho returns the instanton size.
func (f *InstantonField) Rho() float64 { return f.rho }

// Evaluate returns A_μ(x) for a 4-component point.
func (f *InstantonField) Evaluate(x []float64, mu int) (*matrix.Dense, error) {
	if len(x) != 4 {
		return nil, fmt.Errorf("InstantonField: %d coordinates: %w", len(x), ErrInstantonShape)
	}
	if mu < 0 || mu > 3 {
		return nil, fmt.Errorf("InstantonField: direction %d: %w", mu, connection.ErrDirectionRange)
	}
	r2 := f.rho * f.rho
	for _, v := range x {
		r2 += v * v
	}
	out, err := matrix.NewZeros(2, 2)
	if err != nil {
		return nil, err
	}
	for a := 0; a < 3; a++ {
		var coef float64
		for nu := 0; nu < 4; nu++ {
			coef += thooft[a][mu][nu] * x[nu]
		}
		if coef == 0 {
			continue
		}
		if out, err = matrix.AddScaled(out, f.generators[a], 2*coef/r2); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// Fingerprint identifies the ansatz by its size.
func (f *InstantonField) Fingerprint() string { return fingerprint.Of("instanton-field", f.rho) }

// InstantonConnection returns the instanton of size rho on b, which must be
// rank 2 over a 4-dimensional base.
// Errors: ErrInstantonShape, ErrInstantonScale.
func InstantonConnection(b *bundle.Bundle, rho float64, opts ...connection.Option) (*connection.Connection, error) {
	if b == nil {
		return nil, fmt.Errorf("InstantonConnection: %w", connection.ErrNilBundle)
	}
	if b.BaseDimension() != 4 || b.FiberDimension() != 2 {
		return nil, fmt.Errorf("InstantonConnection: base %d, fiber %d: %w",
			b.BaseDimension(), b.FiberDimension(), ErrInstantonShape)
	}
	f, err := NewInstantonField(rho)
	if err != nil {
		return nil, fmt.Errorf("InstantonConnection: %w", err)
	}

	return connection.New(b, f, opts...)
}

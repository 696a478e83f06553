package factory

import (
	"fmt"

	"github.com/katalvlaran/gauge/bundle"
	"github.com/katalvlaran/gauge/liegroup"
	"github.com/katalvlaran/gauge/manifold"
)

// TrivialBundle returns M × F with a k-dimensional fibre of the given type
// acted on by group, which is also the bundle's structure group.
func TrivialBundle(m *manifold.Manifold, k int, typ bundle.FiberType, group *liegroup.Group) (*bundle.Bundle, error) {
	f, err := bundle.NewFiber(k, typ, group)
	if err != nil {
		return nil, fmt.Errorf("TrivialBundle: %w", err)
	}
	b, err := bundle.New(m, f, group)
	if err != nil {
		return nil, fmt.Errorf("TrivialBundle: %w", err)
	}

	return b, nil
}

func named(name string, b *bundle.Bundle, err error) (*bundle.Bundle, error) {
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	return b.Named(name), nil
}

// generalLinear returns GL(n) for the manifold's dimension.
func generalLinear(m *manifold.Manifold) (*liegroup.Group, error) {
	if m == nil {
		return nil, bundle.ErrNilComponent
	}

	return liegroup.GL(m.Dimension())
}

// TangentBundle returns TM: a vector fibre of the base dimension under GL(n).
func TangentBundle(m *manifold.Manifold) (*bundle.Bundle, error) {
	g, err := generalLinear(m)
	if err != nil {
		return nil, fmt.Errorf("tangent: %w", err)
	}
	b, err := TrivialBundle(m, m.Dimension(), bundle.Vector, g)

	return named("tangent", b, err)
}

// CotangentBundle returns T*M, structurally identical to TM here.
func CotangentBundle(m *manifold.Manifold) (*bundle.Bundle, error) {
	g, err := generalLinear(m)
	if err != nil {
		return nil, fmt.Errorf("cotangent: %w", err)
	}
	b, err := TrivialBundle(m, m.Dimension(), bundle.Vector, g)

	return named("cotangent", b, err)
}

// PrincipalU1 returns the principal U(1) bundle (rank 1).
func PrincipalU1(m *manifold.Manifold) (*bundle.Bundle, error) {
	b, err := TrivialBundle(m, 1, bundle.Principal, liegroup.U1())

	return named("principal-U(1)", b, err)
}

// PrincipalSU2 returns the principal SU(2) bundle in its 2×2 representation.
func PrincipalSU2(m *manifold.Manifold) (*bundle.Bundle, error) {
	b, err := TrivialBundle(m, 2, bundle.Principal, liegroup.SU2())

	return named("principal-SU(2)", b, err)
}

// PrincipalSU3 returns the principal SU(3) bundle in its 3×3 representation.
func PrincipalSU3(m *manifold.Manifold) (*bundle.Bundle, error) {
	b, err := TrivialBundle(m, 3, bundle.Principal, liegroup.SU3())

	return named("principal-SU(3)", b, err)
}

// LineBundle returns the rank-1 vector bundle associated to U(1).
func LineBundle(m *manifold.Manifold) (*bundle.Bundle, error) {
	b, err := TrivialBundle(m, 1, bundle.Vector, liegroup.U1())

	return named("line", b, err)
}

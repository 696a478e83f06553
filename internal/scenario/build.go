package scenario

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/gauge/bundle"
	"github.com/katalvlaran/gauge/connection"
	"github.com/katalvlaran/gauge/factory"
	"github.com/katalvlaran/gauge/lattice"
	"github.com/katalvlaran/gauge/liegroup"
	"github.com/katalvlaran/gauge/manifold"
	"github.com/katalvlaran/gauge/matrix"
	"github.com/katalvlaran/gauge/transport"
)

// Manifold builds the base manifold.
func (s *Scenario) Manifold() (*manifold.Manifold, error) {
	if len(s.Base.Coordinates) == 0 {
		m, err := manifold.Euclidean(s.Base.Dimension)
		if err != nil || s.Base.Name == "" {
			return m, err
		}

		return manifold.New(s.Base.Name, m.Dimension(), m.Coordinates())
	}
	name := s.Base.Name
	if name == "" {
		name = fmt.Sprintf("M%d", s.Base.Dimension)
	}

	return manifold.New(name, s.Base.Dimension, s.Base.Coordinates)
}

// group resolves u1, su2, su3 or gl (GL of the given rank).
func group(name string, rank int) (*liegroup.Group, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "u1", "u(1)":
		return liegroup.U1(), nil
	case "su2", "su(2)":
		return liegroup.SU2(), nil
	case "su3", "su(3)":
		return liegroup.SU3(), nil
	case "gl", "":
		return liegroup.GL(rank)
	}

	return nil, fmt.Errorf("group %q: %w", name, ErrUnknownKind)
}

// BuildBundle builds the bundle over the base manifold.
func (s *Scenario) BuildBundle() (*bundle.Bundle, error) {
	m, err := s.Manifold()
	if err != nil {
		return nil, err
	}
	switch s.Bundle.Kind {
	case "tangent":
		return factory.TangentBundle(m)
	case "cotangent":
		return factory.CotangentBundle(m)
	case "principal-u1":
		return factory.PrincipalU1(m)
	case "principal-su2":
		return factory.PrincipalSU2(m)
	case "principal-su3":
		return factory.PrincipalSU3(m)
	case "line":
		return factory.LineBundle(m)
	case "trivial":
		if s.Bundle.Rank == 0 {
			return nil, fmt.Errorf("bundle.rank: %w", ErrMissing)
		}
		typ := bundle.Vector
		if s.Bundle.Type != "" {
			if typ, err = bundle.ParseFiberType(s.Bundle.Type); err != nil {
				return nil, err
			}
		}
		g, err := group(s.Bundle.Group, s.Bundle.Rank)
		if err != nil {
			return nil, err
		}

		return factory.TrivialBundle(m, s.Bundle.Rank, typ, g)
	}

	return nil, fmt.Errorf("bundle %q: %w", s.Bundle.Kind, ErrUnknownKind)
}

// BuildConnection builds the connection; opts are forwarded to the constructor.
func (s *Scenario) BuildConnection(opts ...connection.Option) (*connection.Connection, error) {
	b, err := s.BuildBundle()
	if err != nil {
		return nil, err
	}
	switch s.Connection.Kind {
	case "flat":
		return factory.FlatConnection(b, opts...)
	case "constant":
		comps := make([]matrix.Matrix, len(s.Connection.Components))
		for i, rows := range s.Connection.Components {
			d, err := matrix.NewDenseFrom(rows)
			if err != nil {
				return nil, fmt.Errorf("connection.components[%d]: %w", i, err)
			}
			comps[i] = d
		}

		return factory.ConstantConnection(b, comps, opts...)
	case "instanton":
		rho := s.Connection.Rho
		if rho == 0 {
			rho = 1
		}

		return factory.InstantonConnection(b, rho, opts...)
	}

	return nil, fmt.Errorf("connection %q: %w", s.Connection.Kind, ErrUnknownKind)
}

// Path builds the loop.
func (l LoopSpec) Path() (transport.Path, error) {
	switch strings.ToLower(l.Shape) {
	case "", "rectangle":
		return transport.Rectangle(l.Origin, l.Mu, l.Nu, l.Width, l.Height)
	case "circle":
		return transport.Circle(l.Origin, l.Mu, l.Nu, l.Radius)
	}

	return nil, fmt.Errorf("loop shape %q: %w", l.Shape, ErrUnknownKind)
}

// Start is the loop's base point γ(0).
func (l LoopSpec) Start() ([]float64, error) {
	p, err := l.Path()
	if err != nil {
		return nil, err
	}

	return p(0), nil
}

// Plane converts the spec into a lattice plane.
func (l LatticeSpec) Plane() lattice.Plane {
	return lattice.Plane{
		Mu: l.Mu, Nu: l.Nu,
		Origin: append([]float64(nil), l.Origin...),
		Width:  l.Width, Height: l.Height,
		NX: l.NX, NY: l.NY,
	}
}

// Conn maps 8 to Conn8 and anything else to Conn4.
func (l LatticeSpec) Conn() lattice.Connectivity {
	if l.Connectivity == 8 {
		return lattice.Conn8
	}

	return lattice.Conn4
}

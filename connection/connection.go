package connection

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/gauge/bundle"
	"github.com/katalvlaran/gauge/fingerprint"
	"github.com/katalvlaran/gauge/matrix"
)

// Field is a matrix-valued one-form: Evaluate returns the component A_μ at
// a base point as a k×k matrix, k being the fibre dimension.
type Field interface {
	Evaluate(point []float64, direction int) (*matrix.Dense, error)
}

// FieldFunc adapts an ordinary function to Field.
type FieldFunc func(point []float64, direction int) (*matrix.Dense, error)

// Evaluate calls f(point, direction).
func (f FieldFunc) Evaluate(point []float64, direction int) (*matrix.Dense, error) {
	return f(point, direction)
}

// Connection binds a Field to a bundle together with numerical options.
type Connection struct {
	bundle *bundle.Bundle
	field  Field
	opts   Options
}

// New attaches field to b.
// Errors: ErrNilBundle, ErrNilField.
func New(b *bundle.Bundle, field Field, opts ...Option) (*Connection, error) {
	if b == nil {
		return nil, fmt.Errorf("connection.New: %w", ErrNilBundle)
	}
	if field == nil {
		return nil, fmt.Errorf("connection.New: %w", ErrNilField)
	}

	return &Connection{bundle: b, field: field, opts: NewOptions(opts...)}, nil
}

// Derive returns a connection over the same bundle and field with opts
// applied on top of the receiver's options.
func (c *Connection) Derive(opts ...Option) *Connection {
	return &Connection{bundle: c.bundle, field: c.field, opts: gatherOptions(c.opts, opts...)}
}

// Bundle returns the underlying bundle.
func (c *Connection) Bundle() *bundle.Bundle { return c.bundle }

// Field returns the gauge potential.
func (c *Connection) Field() Field { return c.field }

// Options returns the effective options.
func (c *Connection) Options() Options { return c.opts }

// Rank is the fibre dimension, i.e. the size of every A_μ.
func (c *Connection) Rank() int { return c.bundle.FiberDimension() }

func (c *Connection) checkDirection(op string, mu int) error {
	if mu < 0 || mu >= c.bundle.BaseDimension() {
		return fmt.Errorf("%s: direction %d, base dimension %d: %w", op, mu, c.bundle.BaseDimension(), ErrDirectionRange)
	}

	return nil
}

// Potential returns A_μ(p).
// Errors: manifold.ErrPointDimension, ErrDirectionRange, ErrPotentialShape,
// or whatever the Field reports.
func (c *Connection) Potential(p []float64, mu int) (*matrix.Dense, error) {
	if err := c.bundle.Base().CheckPoint(p); err != nil {
		return nil, fmt.Errorf("Potential: %w", err)
	}
	if err := c.checkDirection("Potential", mu); err != nil {
		return nil, err
	}

	return c.potential(p, mu)
}

// potential evaluates the field without re-validating p and mu.
func (c *Connection) potential(p []float64, mu int) (*matrix.Dense, error) {
	a, err := c.field.Evaluate(p, mu)
	if err != nil {
		return nil, fmt.Errorf("Potential: A_%d: %w", mu, err)
	}
	k := c.Rank()
	if a == nil || a.Rows() != k || a.Cols() != k {
		return nil, fmt.Errorf("Potential: A_%d is not %dx%d: %w", mu, k, k, ErrPotentialShape)
	}

	return a, nil
}

// shifted returns a copy of p with p[mu] moved by h.
func shifted(p []float64, mu int, h float64) []float64 {
	q := make([]float64, len(p))
	copy(q, p)
	q[mu] += h

	return q
}

// derivative returns the central difference ∂_μ A_ν(p).
func (c *Connection) derivative(p []float64, mu, nu int) (*matrix.Dense, error) {
	eps := c.opts.eps
	plus, err := c.potential(shifted(p, mu, eps), nu)
	if err != nil {
		return nil, err
	}
	minus, err := c.potential(shifted(p, mu, -eps), nu)
	if err != nil {
		return nil, err
	}
	diff, err := matrix.Sub(plus, minus)
	if err != nil {
		return nil, err
	}

	return matrix.Scale(diff, 1/(2*eps))
}

// Curvature returns F_{μν}(p).
// Errors: manifold.ErrPointDimension, ErrDirectionRange, ErrPotentialShape.
//
// Complexity: four field evaluations for the derivatives, two for the
// commutator, O(k³) arithmetic.
func (c *Connection) Curvature(p []float64, mu, nu int) (*matrix.Dense, error) {
	if err := c.bundle.Base().CheckPoint(p); err != nil {
		return nil, fmt.Errorf("Curvature: %w", err)
	}
	if err := c.checkDirection("Curvature", mu); err != nil {
		return nil, err
	}
	if err := c.checkDirection("Curvature", nu); err != nil {
		return nil, err
	}

	dMuANu, err := c.derivative(p, mu, nu)
	if err != nil {
		return nil, fmt.Errorf("Curvature: %w", err)
	}
	dNuAMu, err := c.derivative(p, nu, mu)
	if err != nil {
		return nil, fmt.Errorf("Curvature: %w", err)
	}
	aMu, err := c.potential(p, mu)
	if err != nil {
		return nil, fmt.Errorf("Curvature: %w", err)
	}
	aNu, err := c.potential(p, nu)
	if err != nil {
		return nil, fmt.Errorf("Curvature: %w", err)
	}
	bracket, err := matrix.Commutator(aMu, aNu)
	if err != nil {
		return nil, fmt.Errorf("Curvature: %w", err)
	}
	f, err := matrix.Sub(dMuANu, dNuAMu)
	if err != nil {
		return nil, fmt.Errorf("Curvature: %w", err)
	}
	if f, err = matrix.Add(f, bracket); err != nil {
		return nil, fmt.Errorf("Curvature: %w", err)
	}
	if !f.IsFinite() {
		c.opts.logger.Debug("non-finite curvature",
			zap.Float64s("point", p), zap.Int("mu", mu), zap.Int("nu", nu))
	}

	return f, nil
}

// CovariantDerivative returns D_μ s(p) = ∂_μ s(p) + A_μ(p)·s(p).
// Errors: ErrNilSection, ErrSectionBundle, ErrDirectionRange, and section
// or field evaluation errors.
func (c *Connection) CovariantDerivative(s *bundle.Section, p []float64, mu int) ([]float64, error) {
	if s == nil {
		return nil, fmt.Errorf("CovariantDerivative: %w", ErrNilSection)
	}
	if s.Bundle() != c.bundle {
		return nil, fmt.Errorf("CovariantDerivative: %w", ErrSectionBundle)
	}
	if err := c.bundle.Base().CheckPoint(p); err != nil {
		return nil, fmt.Errorf("CovariantDerivative: %w", err)
	}
	if err := c.checkDirection("CovariantDerivative", mu); err != nil {
		return nil, err
	}

	eps := c.opts.eps
	plus, err := s.At(shifted(p, mu, eps))
	if err != nil {
		return nil, fmt.Errorf("CovariantDerivative: %w", err)
	}
	minus, err := s.At(shifted(p, mu, -eps))
	if err != nil {
		return nil, fmt.Errorf("CovariantDerivative: %w", err)
	}
	here, err := s.At(p)
	if err != nil {
		return nil, fmt.Errorf("CovariantDerivative: %w", err)
	}
	a, err := c.potential(p, mu)
	if err != nil {
		return nil, fmt.Errorf("CovariantDerivative: %w", err)
	}
	as, err := matrix.MatVec(a, here)
	if err != nil {
		return nil, fmt.Errorf("CovariantDerivative: %w", err)
	}

	out := make([]float64, len(here))
	for i := range out {
		out[i] = (plus[i]-minus[i])/(2*eps) + as[i]
	}

	return out, nil
}

// IsFlat reports whether every F_{μν}(p), μ<ν, vanishes entry-wise within
// the configured tolerance. A one-dimensional base is always flat.
func (c *Connection) IsFlat(p []float64) (bool, error) {
	d := c.bundle.BaseDimension()
	for mu := 0; mu < d; mu++ {
		for nu := mu + 1; nu < d; nu++ {
			f, err := c.Curvature(p, mu, nu)
			if err != nil {
				return false, fmt.Errorf("IsFlat: %w", err)
			}
			if !matrix.IsZero(f, c.opts.tol) {
				return false, nil
			}
		}
	}
	if d < 2 {
		// still validate the point
		if err := c.bundle.Base().CheckPoint(p); err != nil {
			return false, fmt.Errorf("IsFlat: %w", err)
		}
	}

	return true, nil
}

// Fingerprint identifies the connection by its bundle, its field (when the
// field has an identity of its own) and its numerical options.
func (c *Connection) Fingerprint() string {
	var field any = fmt.Sprintf("%T", c.field)
	if fp, ok := c.field.(fingerprint.Fingerprinter); ok {
		field = fp
	}

	return fingerprint.Of("connection", c.bundle, field, c.opts.eps, c.opts.tol)
}

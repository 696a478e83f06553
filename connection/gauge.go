package connection

import (
	"fmt"

	"github.com/katalvlaran/gauge/fingerprint"
	"github.com/katalvlaran/gauge/matrix"
)

// GaugeFunc assigns an invertible k×k matrix g(p) to every base point.
type GaugeFunc func(point []float64) (*matrix.Dense, error)

// GaugeTransform returns the connection seen in the frame rotated by g:
//
//	A'_μ = g A_μ g⁻¹ − (∂_μ g) g⁻¹
//
// Sections transform as s' = g·s, and the curvature transforms covariantly,
// F' = g F g⁻¹. ∂_μ g is a central difference with the receiver's ε.
// Errors: ErrNilGauge. A singular g(p) surfaces as matrix.ErrSingular at
// evaluation time.
func (c *Connection) GaugeTransform(g GaugeFunc) (*Connection, error) {
	if g == nil {
		return nil, fmt.Errorf("GaugeTransform: %w", ErrNilGauge)
	}
	gf := &gaugedField{inner: c.field, g: g, eps: c.opts.eps}

	return &Connection{bundle: c.bundle, field: gf, opts: c.opts}, nil
}

type gaugedField struct {
	inner Field
	g     GaugeFunc
	eps   float64
}

func (f *gaugedField) Evaluate(p []float64, mu int) (*matrix.Dense, error) {
	if mu < 0 || mu >= len(p) {
		return nil, fmt.Errorf("gauge: direction %d: %w", mu, ErrDirectionRange)
	}
	gp, err := f.g(p)
	if err != nil {
		return nil, fmt.Errorf("gauge: g(p): %w", err)
	}
	gInv, err := matrix.Inverse(gp)
	if err != nil {
		return nil, fmt.Errorf("gauge: g(p)⁻¹: %w", err)
	}
	a, err := f.inner.Evaluate(p, mu)
	if err != nil {
		return nil, err
	}
	ga, err := matrix.Mul(gp, a)
	if err != nil {
		return nil, fmt.Errorf("gauge: %w", err)
	}
	rotated, err := matrix.Mul(ga, gInv)
	if err != nil {
		return nil, fmt.Errorf("gauge: %w", err)
	}

	gPlus, err := f.g(shifted(p, mu, f.eps))
	if err != nil {
		return nil, fmt.Errorf("gauge: g(p+ε): %w", err)
	}
	gMinus, err := f.g(shifted(p, mu, -f.eps))
	if err != nil {
		return nil, fmt.Errorf("gauge: g(p-ε): %w", err)
	}
	dg, err := matrix.Sub(gPlus, gMinus)
	if err != nil {
		return nil, fmt.Errorf("gauge: %w", err)
	}
	dgInv, err := matrix.Mul(dg, gInv)
	if err != nil {
		return nil, fmt.Errorf("gauge: %w", err)
	}

	return matrix.AddScaled(rotated, dgInv, -1/(2*f.eps))
}

// Fingerprint marks the field as a gauge image of its inner field. The gauge
// function itself has no content identity.
func (f *gaugedField) Fingerprint() string {
	var inner any = fmt.Sprintf("%T", f.inner)
	if fp, ok := f.inner.(fingerprint.Fingerprinter); ok {
		inner = fp
	}

	return fingerprint.Of("gauged-field", inner, f.eps)
}

package chern

import (
	"fmt"
	"math"

	"github.com/katalvlaran/gauge/curvature"
	"github.com/katalvlaran/gauge/fingerprint"
	"github.com/katalvlaran/gauge/matrix"
)

// MaxOrder is the highest supported Chern character order.
const MaxOrder = 2

// Class is a stateless view over a curvature form.
type Class struct {
	form *curvature.Form
}

// New wraps form.
func New(form *curvature.Form) (*Class, error) {
	if form == nil {
		return nil, fmt.Errorf("chern.New: %w", ErrNilForm)
	}

	return &Class{form: form}, nil
}

// Form returns the wrapped curvature form.
func (c *Class) Form() *curvature.Form { return c.form }

// FirstNumber returns Tr F_{μν}(p) / 2π.
func (c *Class) FirstNumber(p []float64, mu, nu int) (float64, error) {
	tr, err := c.form.Trace(p, mu, nu)
	if err != nil {
		return 0, fmt.Errorf("FirstNumber: %w", err)
	}

	return tr / (2 * math.Pi), nil
}

// FirstDensity returns Σ_{μ<ν} c₁(μ,ν) at p.
func (c *Class) FirstDensity(p []float64) (float64, error) {
	comps, err := c.form.Components(p)
	if err != nil {
		return 0, fmt.Errorf("FirstDensity: %w", err)
	}
	var sum float64
	for _, comp := range comps {
		tr, err := matrix.Trace(comp.F)
		if err != nil {
			return 0, fmt.Errorf("FirstDensity: %w", err)
		}
		sum += tr
	}

	return sum / (2 * math.Pi), nil
}

// SecondNumber returns (1/8π²) Σ_{μ<ν} Tr(F_{μν}²) at p.
func (c *Class) SecondNumber(p []float64) (float64, error) {
	comps, err := c.form.Components(p)
	if err != nil {
		return 0, fmt.Errorf("SecondNumber: %w", err)
	}
	var sum float64
	for _, comp := range comps {
		sq, err := matrix.Mul(comp.F, comp.F)
		if err != nil {
			return 0, fmt.Errorf("SecondNumber: %w", err)
		}
		tr, err := matrix.Trace(sq)
		if err != nil {
			return 0, fmt.Errorf("SecondNumber: %w", err)
		}
		sum += tr
	}

	return sum / (8 * math.Pi * math.Pi), nil
}

// Character returns the Chern character truncated at order.
// c₁ is taken in the (0,1) plane; a base of dimension one has c₁ = 0.
// Errors: ErrUnsupportedOrder outside 0..MaxOrder.
func (c *Class) Character(p []float64, order int) (float64, error) {
	if order < 0 || order > MaxOrder {
		return 0, fmt.Errorf("Character: order %d: %w", order, ErrUnsupportedOrder)
	}
	if err := c.form.Connection().Bundle().Base().CheckPoint(p); err != nil {
		return 0, fmt.Errorf("Character: %w", err)
	}
	rank := float64(c.form.Connection().Rank())
	if order == 0 {
		return rank, nil
	}

	var c1 float64
	if c.form.Connection().Bundle().BaseDimension() >= 2 {
		v, err := c.FirstNumber(p, 0, 1)
		if err != nil {
			return 0, fmt.Errorf("Character: %w", err)
		}
		c1 = v
	}
	if order == 1 {
		return rank + c1, nil
	}
	c2, err := c.SecondNumber(p)
	if err != nil {
		return 0, fmt.Errorf("Character: %w", err)
	}

	return rank + c1 + (c1*c1-2*c2)/2, nil
}

// Fingerprint derives from the wrapped form.
func (c *Class) Fingerprint() string {
	return fingerprint.Of("chern-class", c.form)
}

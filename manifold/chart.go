package manifold

import (
	"fmt"

	"github.com/katalvlaran/gauge/fingerprint"
)

// Chart is a local coordinate patch of a shared Manifold centred at Center.
// Local coordinates are offsets from the centre.
type Chart struct {
	manifold *Manifold
	center   []float64
}

// NewChart builds a chart on m centred at center (copied).
// Errors: ErrNilManifold, ErrPointDimension.
func NewChart(m *Manifold, center []float64) (*Chart, error) {
	if m == nil {
		return nil, ErrNilManifold
	}
	if err := m.CheckPoint(center); err != nil {
		return nil, fmt.Errorf("NewChart: %w", err)
	}
	c := make([]float64, len(center))
	copy(c, center)

	return &Chart{manifold: m, center: c}, nil
}

// Manifold returns the (shared) manifold of the chart.
func (c *Chart) Manifold() *Manifold { return c.manifold }

// Center returns a copy of the chart centre.
func (c *Chart) Center() []float64 {
	out := make([]float64, len(c.center))
	copy(out, c.center)

	return out
}

// ToLocal maps a manifold point to chart coordinates: p − center.
func (c *Chart) ToLocal(p []float64) ([]float64, error) {
	if err := c.manifold.CheckPoint(p); err != nil {
		return nil, fmt.Errorf("ToLocal: %w", err)
	}
	out := make([]float64, len(p))
	for i := range p {
		out[i] = p[i] - c.center[i]
	}

	return out, nil
}

// FromLocal maps chart coordinates back to the manifold: q + center.
func (c *Chart) FromLocal(q []float64) ([]float64, error) {
	if err := c.manifold.CheckPoint(q); err != nil {
		return nil, fmt.Errorf("FromLocal: %w", err)
	}
	out := make([]float64, len(q))
	for i := range q {
		out[i] = q[i] + c.center[i]
	}

	return out, nil
}

// Fingerprint combines the manifold fingerprint with the centre.
func (c *Chart) Fingerprint() string {
	return fingerprint.Of("chart", c.manifold, c.center)
}

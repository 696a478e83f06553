package curvature

import (
	"fmt"
	"math"

	"github.com/katalvlaran/gauge/connection"
	"github.com/katalvlaran/gauge/fingerprint"
	"github.com/katalvlaran/gauge/matrix"
)

// Form is a stateless view of F = dA + A∧A. Values are recomputed on every call.
type Form struct {
	conn *connection.Connection
}

// Component is one independent entry F_{μν}, μ<ν, of the two-form.
type Component struct {
	Mu, Nu int
	F      *matrix.Dense
}

// New wraps conn.
func New(conn *connection.Connection) (*Form, error) {
	if conn == nil {
		return nil, fmt.Errorf("curvature.New: %w", ErrNilConnection)
	}

	return &Form{conn: conn}, nil
}

// Connection returns the wrapped connection.
func (f *Form) Connection() *connection.Connection { return f.conn }

// At returns F_{μν}(p).
func (f *Form) At(p []float64, mu, nu int) (*matrix.Dense, error) {
	return f.conn.Curvature(p, mu, nu)
}

// Trace returns Tr F_{μν}(p).
func (f *Form) Trace(p []float64, mu, nu int) (float64, error) {
	fm, err := f.conn.Curvature(p, mu, nu)
	if err != nil {
		return 0, err
	}

	return matrix.Trace(fm)
}

// Components returns F_{μν}(p) for every μ<ν in lexicographic order.
func (f *Form) Components(p []float64) ([]Component, error) {
	if err := f.conn.Bundle().Base().CheckPoint(p); err != nil {
		return nil, fmt.Errorf("Components: %w", err)
	}
	d := f.conn.Bundle().BaseDimension()
	out := make([]Component, 0, d*(d-1)/2)
	for mu := 0; mu < d; mu++ {
		for nu := mu + 1; nu < d; nu++ {
			fm, err := f.conn.Curvature(p, mu, nu)
			if err != nil {
				return nil, fmt.Errorf("Components: %w", err)
			}
			out = append(out, Component{Mu: mu, Nu: nu, F: fm})
		}
	}

	return out, nil
}

// full returns the d×d table of F_{μν}(p), filling μ>ν by antisymmetry.
// Diagonal entries stay nil and count as zero.
func (f *Form) full(p []float64) ([][]*matrix.Dense, error) {
	comps, err := f.Components(p)
	if err != nil {
		return nil, err
	}
	d := f.conn.Bundle().BaseDimension()
	table := make([][]*matrix.Dense, d)
	for i := range table {
		table[i] = make([]*matrix.Dense, d)
	}
	for _, c := range comps {
		neg, err := matrix.Scale(c.F, -1)
		if err != nil {
			return nil, err
		}
		table[c.Mu][c.Nu], table[c.Nu][c.Mu] = c.F, neg
	}

	return table, nil
}

// traceProduct returns Tr(A·B) in O(k²) without forming the product.
func traceProduct(a, b *matrix.Dense) float64 {
	if a == nil || b == nil {
		return 0
	}
	k := a.Rows()
	ad, bd := a.RawData(), b.RawData()
	var s float64
	for i := 0; i < k; i++ {
		for j := 0; j < k; j++ {
			s += ad[i*k+j] * bd[j*k+i]
		}
	}

	return s
}

// Scalar returns Σ_{μνρσ} g^{μρ} g^{νσ} Tr(F_{μν} F_{ρσ}) at p.
// metric is the covariant g_{μν}; nil selects the Euclidean identity. The
// contravariant g^{μν} is its inverse.
// Errors: manifold.ErrPointDimension, ErrMetricShape, ErrMetricSymmetry,
// matrix.ErrSingular for a degenerate metric.
//
// Complexity: O(d⁴·k²) after d(d-1)/2 curvature evaluations.
func (f *Form) Scalar(p []float64, metric matrix.Matrix) (float64, error) {
	d := f.conn.Bundle().BaseDimension()
	var (
		ginv *matrix.Dense
		err  error
	)
	if metric == nil {
		ginv, err = matrix.NewIdentity(d)
	} else {
		if metric.Rows() != d || metric.Cols() != d {
			return 0, fmt.Errorf("Scalar: metric %dx%d, base dimension %d: %w", metric.Rows(), metric.Cols(), d, ErrMetricShape)
		}
		if err = checkSymmetric(metric); err != nil {
			return 0, fmt.Errorf("Scalar: %w", err)
		}
		ginv, err = matrix.Inverse(metric)
	}
	if err != nil {
		return 0, fmt.Errorf("Scalar: %w", err)
	}
	table, err := f.full(p)
	if err != nil {
		return 0, fmt.Errorf("Scalar: %w", err)
	}
	g := ginv.RawData()

	var sum float64
	for mu := 0; mu < d; mu++ {
		for nu := 0; nu < d; nu++ {
			if table[mu][nu] == nil {
				continue
			}
			for rho := 0; rho < d; rho++ {
				gmr := g[mu*d+rho]
				if gmr == 0 {
					continue
				}
				for sigma := 0; sigma < d; sigma++ {
					gns := g[nu*d+sigma]
					if gns == 0 {
						continue
					}
					sum += gmr * gns * traceProduct(table[mu][nu], table[rho][sigma])
				}
			}
		}
	}

	return sum, nil
}

// checkSymmetric compares the metric with its transpose entry-wise.
func checkSymmetric(metric matrix.Matrix) error {
	mt, err := matrix.Transpose(metric)
	if err != nil {
		return err
	}
	ok, err := matrix.AllClose(metric, mt, 1e-12, 1e-12)
	if err != nil {
		return err
	}
	if !ok {
		return ErrMetricSymmetry
	}

	return nil
}

// YangMillsDensity returns −½ Scalar(p) with the Euclidean metric.
func (f *Form) YangMillsDensity(p []float64) (float64, error) {
	s, err := f.Scalar(p, nil)
	if err != nil {
		return 0, err
	}

	return -0.5 * s, nil
}

// Norm returns √(Σ_{μ<ν} ‖F_{μν}‖²_F), a gauge-dependent size of the field strength.
func (f *Form) Norm(p []float64) (float64, error) {
	comps, err := f.Components(p)
	if err != nil {
		return 0, err
	}
	var sum float64
	for _, c := range comps {
		n := matrix.FrobeniusNorm(c.F)
		sum += n * n
	}

	return math.Sqrt(sum), nil
}

// Fingerprint derives from the wrapped connection.
func (f *Form) Fingerprint() string {
	return fingerprint.Of("curvature2form", f.conn)
}

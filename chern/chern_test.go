package chern_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gauge/bundle"
	"github.com/katalvlaran/gauge/chern"
	"github.com/katalvlaran/gauge/connection"
	"github.com/katalvlaran/gauge/curvature"
	"github.com/katalvlaran/gauge/liegroup"
	"github.com/katalvlaran/gauge/manifold"
	"github.com/katalvlaran/gauge/matrix"
)

func newClass(t *testing.T, d, k int, g *liegroup.Group, field connection.FieldFunc) *chern.Class {
	t.Helper()
	base, err := manifold.Euclidean(d)
	require.NoError(t, err)
	fib, err := bundle.NewFiber(k, bundle.Vector, g)
	require.NoError(t, err)
	b, err := bundle.New(base, fib, g)
	require.NoError(t, err)
	conn, err := connection.New(b, field)
	require.NoError(t, err)
	form, err := curvature.New(conn)
	require.NoError(t, err)
	c, err := chern.New(form)
	require.NoError(t, err)

	return c
}

// uniformField is the U(1) potential A_1 = B·x0 with F_{01} = B.
func uniformField(field float64) connection.FieldFunc {
	return func(p []float64, mu int) (*matrix.Dense, error) {
		if mu == 1 {
			return matrix.NewDenseFrom([][]float64{{field * p[0]}})
		}

		return matrix.NewZeros(1, 1)
	}
}

// TestFlatVanishes: c₁ = c₂ = 0 and ch = rank.
func TestFlatVanishes(t *testing.T) {
	zero := connection.FieldFunc(func(_ []float64, _ int) (*matrix.Dense, error) { return matrix.NewZeros(3, 3) })
	c := newClass(t, 4, 3, liegroup.SU3(), zero)
	p := []float64{0.1, 0.2, 0.3, 0.4}

	c1, err := c.FirstNumber(p, 1, 3)
	require.NoError(t, err)
	require.Zero(t, c1)
	c2, err := c.SecondNumber(p)
	require.NoError(t, err)
	require.Zero(t, c2)
	for order := 0; order <= chern.MaxOrder; order++ {
		ch, err := c.Character(p, order)
		require.NoError(t, err)
		require.Equal(t, 3.0, ch)
	}
}

// TestUniformFlux checks every density for a constant abelian field.
func TestUniformFlux(t *testing.T) {
	const b = 2.0
	c := newClass(t, 2, 1, liegroup.U1(), uniformField(b))
	p := []float64{0.5, -1}

	c1, err := c.FirstNumber(p, 0, 1)
	require.NoError(t, err)
	require.InDelta(t, b/(2*math.Pi), c1, 1e-8)

	d, err := c.FirstDensity(p)
	require.NoError(t, err)
	require.InDelta(t, c1, d, 1e-12)

	c2, err := c.SecondNumber(p)
	require.NoError(t, err)
	require.InDelta(t, b*b/(8*math.Pi*math.Pi), c2, 1e-8)

	// c₁² − 2c₂ cancels for a line bundle, so orders 1 and 2 agree
	ch1, err := c.Character(p, 1)
	require.NoError(t, err)
	ch2, err := c.Character(p, 2)
	require.NoError(t, err)
	require.InDelta(t, 1+c1, ch1, 1e-12)
	require.InDelta(t, ch1, ch2, 1e-8)
}

// TestTracelessCurvature: c₁ = 0 but c₂ ≠ 0 for F_{01} = diag(1,-1).
func TestTracelessCurvature(t *testing.T) {
	field := connection.FieldFunc(func(p []float64, mu int) (*matrix.Dense, error) {
		if mu == 1 {
			return matrix.NewDenseFrom([][]float64{{p[0], 0}, {0, -p[0]}})
		}

		return matrix.NewZeros(2, 2)
	})
	c := newClass(t, 2, 2, liegroup.SU2(), field)
	p := []float64{0, 0}

	c1, err := c.FirstNumber(p, 0, 1)
	require.NoError(t, err)
	require.InDelta(t, 0, c1, 1e-12)
	c2, err := c.SecondNumber(p)
	require.NoError(t, err)
	require.InDelta(t, 2/(8*math.Pi*math.Pi), c2, 1e-8)
	ch, err := c.Character(p, 2)
	require.NoError(t, err)
	require.InDelta(t, 2-1/(4*math.Pi*math.Pi), ch, 1e-8)
}

// TestErrors covers order and construction checks.
func TestErrors(t *testing.T) {
	_, err := chern.New(nil)
	require.ErrorIs(t, err, chern.ErrNilForm)

	c := newClass(t, 2, 1, liegroup.U1(), uniformField(1))
	_, err = c.Character([]float64{0, 0}, 3)
	require.ErrorIs(t, err, chern.ErrUnsupportedOrder)
	_, err = c.Character([]float64{0, 0}, -1)
	require.ErrorIs(t, err, chern.ErrUnsupportedOrder)
	_, err = c.FirstNumber([]float64{0, 0}, 0, 2)
	require.ErrorIs(t, err, connection.ErrDirectionRange)

	require.Len(t, c.Fingerprint(), 16)
	require.NotEqual(t, c.Fingerprint(), c.Form().Fingerprint())

	// the point is checked even where no curvature is evaluated
	bad := []float64{1, 2, 3}
	_, err = c.Character(bad, 0)
	require.ErrorIs(t, err, manifold.ErrPointDimension)
	_, err = c.SecondNumber(bad)
	require.ErrorIs(t, err, manifold.ErrPointDimension)

	line := newClass(t, 1, 1, liegroup.U1(), uniformField(1))
	_, err = line.SecondNumber(bad)
	require.ErrorIs(t, err, manifold.ErrPointDimension)
	_, err = line.FirstDensity(bad)
	require.ErrorIs(t, err, manifold.ErrPointDimension)
}

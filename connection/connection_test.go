package connection_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/gauge/bundle"
	"github.com/katalvlaran/gauge/connection"
	"github.com/katalvlaran/gauge/liegroup"
	"github.com/katalvlaran/gauge/manifold"
	"github.com/katalvlaran/gauge/matrix"
)

// planeBundle is a rank-2 vector bundle over R².
func planeBundle(t testing.TB) *bundle.Bundle {
	t.Helper()
	base, err := manifold.Euclidean(2)
	require.NoError(t, err)
	f, err := bundle.NewFiber(2, bundle.Vector, liegroup.SU2())
	require.NoError(t, err)
	b, err := bundle.New(base, f, liegroup.SU2())
	require.NoError(t, err)

	return b
}

// linearField is A_0 = [[0,p1],[0,0]], A_1 = [[0,0],[p0,0]].
var linearField = connection.FieldFunc(func(p []float64, mu int) (*matrix.Dense, error) {
	if mu == 0 {
		return matrix.NewDenseFrom([][]float64{{0, p[1]}, {0, 0}})
	}

	return matrix.NewDenseFrom([][]float64{{0, 0}, {p[0], 0}})
})

var zeroField = connection.FieldFunc(func(_ []float64, _ int) (*matrix.Dense, error) {
	return matrix.NewZeros(2, 2)
})

func requireMatrixClose(t *testing.T, want, got matrix.Matrix, atol float64) {
	t.Helper()
	ok, err := matrix.AllClose(got, want, 0, atol)
	require.NoError(t, err)
	require.Truef(t, ok, "want\n%v\ngot\n%v", want, got)
}

// TestCurvatureLinearField checks F_{01} at [1,1] and antisymmetry.
func TestCurvatureLinearField(t *testing.T) {
	c, err := connection.New(planeBundle(t), linearField)
	require.NoError(t, err)

	f01, err := c.Curvature([]float64{1, 1}, 0, 1)
	require.NoError(t, err)
	// ∂0A1 − ∂1A0 + [A0,A1] = [[0,0],[1,0]] − [[0,1],[0,0]] + diag(1,-1)
	requireMatrixClose(t, matrix.MustDense([][]float64{{1, -1}, {1, -1}}), f01, 1e-6)
	require.False(t, matrix.IsZero(f01, 1e-3))

	f10, err := c.Curvature([]float64{1, 1}, 1, 0)
	require.NoError(t, err)
	neg, err := matrix.Scale(f10, -1)
	require.NoError(t, err)
	requireMatrixClose(t, f01, neg, 1e-9)

	// diagonal components vanish identically
	f00, err := c.Curvature([]float64{1, 1}, 0, 0)
	require.NoError(t, err)
	require.True(t, matrix.IsZero(f00, 0))
}

// TestCurvatureErrors covers range, point and shape violations.
func TestCurvatureErrors(t *testing.T) {
	c, err := connection.New(planeBundle(t), linearField)
	require.NoError(t, err)

	_, err = c.Curvature([]float64{0, 0}, 0, 2)
	require.ErrorIs(t, err, connection.ErrDirectionRange)
	_, err = c.Curvature([]float64{0, 0}, -1, 0)
	require.ErrorIs(t, err, connection.ErrDirectionRange)
	_, err = c.Curvature([]float64{0, 0, 0}, 0, 1)
	require.ErrorIs(t, err, manifold.ErrPointDimension)

	wrong := connection.FieldFunc(func(_ []float64, _ int) (*matrix.Dense, error) {
		return matrix.NewZeros(3, 3)
	})
	bad, err := connection.New(c.Bundle(), wrong)
	require.NoError(t, err)
	_, err = bad.Curvature([]float64{0, 0}, 0, 1)
	require.ErrorIs(t, err, connection.ErrPotentialShape)
	_, err = bad.Potential([]float64{0, 0}, 0)
	require.ErrorIs(t, err, connection.ErrPotentialShape)

	_, err = connection.New(nil, linearField)
	require.ErrorIs(t, err, connection.ErrNilBundle)
	_, err = connection.New(c.Bundle(), nil)
	require.ErrorIs(t, err, connection.ErrNilField)
}

// TestIsFlat distinguishes the zero field from the linear one and honours tolerance.
func TestIsFlat(t *testing.T) {
	b := planeBundle(t)
	flat, err := connection.New(b, zeroField)
	require.NoError(t, err)
	for _, p := range [][]float64{{0, 0}, {1, -2}, {1e3, 7}} {
		ok, err := flat.IsFlat(p)
		require.NoError(t, err)
		require.True(t, ok, "p=%v", p)
	}

	curved, err := connection.New(b, linearField)
	require.NoError(t, err)
	ok, err := curved.IsFlat([]float64{1, 1})
	require.NoError(t, err)
	require.False(t, ok)

	// a loose tolerance swallows |F| ≤ 1
	ok, err = curved.Derive(connection.WithTolerance(10)).IsFlat([]float64{1, 1})
	require.NoError(t, err)
	require.True(t, ok)

	_, err = flat.IsFlat([]float64{0})
	require.ErrorIs(t, err, manifold.ErrPointDimension)
}

// TestCovariantDerivative checks D_0 s = ∂_0 s + A_0 s for s = (p0², p1).
func TestCovariantDerivative(t *testing.T) {
	b := planeBundle(t)
	c, err := connection.New(b, linearField)
	require.NoError(t, err)
	s, err := b.CreateSection(func(p []float64) []float64 { return []float64{p[0] * p[0], p[1]} })
	require.NoError(t, err)

	// at [1,2]: ∂0 s = [2,0]; A_0 s = [[0,2],[0,0]]·[1,2] = [4,0]
	got, err := c.CovariantDerivative(s, []float64{1, 2}, 0)
	require.NoError(t, err)
	require.InDelta(t, 6, got[0], 1e-6)
	require.InDelta(t, 0, got[1], 1e-6)

	// at [1,2]: ∂1 s = [0,1]; A_1 s = [[0,0],[1,0]]·[1,2] = [0,1]
	got, err = c.CovariantDerivative(s, []float64{1, 2}, 1)
	require.NoError(t, err)
	require.InDelta(t, 0, got[0], 1e-6)
	require.InDelta(t, 2, got[1], 1e-6)

	_, err = c.CovariantDerivative(nil, []float64{1, 2}, 0)
	require.ErrorIs(t, err, connection.ErrNilSection)
	_, err = c.CovariantDerivative(s, []float64{1, 2}, 5)
	require.ErrorIs(t, err, connection.ErrDirectionRange)

	other := planeBundle(t)
	foreign, err := other.CreateSection(func(p []float64) []float64 { return []float64{0, 0} })
	require.NoError(t, err)
	_, err = c.CovariantDerivative(foreign, []float64{1, 2}, 0)
	require.ErrorIs(t, err, connection.ErrSectionBundle)
}

// TestGaugeCovariance checks F' = g F g⁻¹ under a point-dependent gauge.
func TestGaugeCovariance(t *testing.T) {
	c, err := connection.New(planeBundle(t), linearField, connection.WithEpsilon(1e-4))
	require.NoError(t, err)
	g := func(p []float64) (*matrix.Dense, error) {
		return matrix.NewDenseFrom([][]float64{{1 + p[1]*p[1], p[0]}, {0, 1}})
	}
	gc, err := c.GaugeTransform(g)
	require.NoError(t, err)

	p := []float64{0.3, -0.2}
	f, err := c.Curvature(p, 0, 1)
	require.NoError(t, err)
	gp, err := g(p)
	require.NoError(t, err)
	want, err := matrix.Conjugate(gp, f)
	require.NoError(t, err)

	got, err := gc.Curvature(p, 0, 1)
	require.NoError(t, err)
	requireMatrixClose(t, want, got, 1e-5)

	// a constant gauge leaves a flat connection flat
	flat, err := connection.New(c.Bundle(), zeroField)
	require.NoError(t, err)
	rot, err := flat.GaugeTransform(func(_ []float64) (*matrix.Dense, error) {
		return matrix.NewDenseFrom([][]float64{{0, -1}, {1, 0}})
	})
	require.NoError(t, err)
	ok, err := rot.IsFlat(p)
	require.NoError(t, err)
	require.True(t, ok)

	_, err = c.GaugeTransform(nil)
	require.ErrorIs(t, err, connection.ErrNilGauge)

	singular, err := c.GaugeTransform(func(_ []float64) (*matrix.Dense, error) { return matrix.NewZeros(2, 2) })
	require.NoError(t, err)
	_, err = singular.Potential(p, 0)
	require.ErrorIs(t, err, matrix.ErrSingular)
}

// TestOptions covers defaults, overrides and panics on nonsense values.
func TestOptions(t *testing.T) {
	o := connection.NewOptions()
	require.Equal(t, connection.DefaultEpsilon, o.Epsilon())
	require.Equal(t, connection.DefaultTolerance, o.Tolerance())
	require.NotNil(t, o.Logger())

	o = connection.NewOptions(connection.WithEpsilon(1e-3), connection.WithTolerance(0), connection.WithLogger(nil))
	require.Equal(t, 1e-3, o.Epsilon())
	require.Zero(t, o.Tolerance())
	require.NotNil(t, o.Logger())

	require.Panics(t, func() { connection.WithEpsilon(0) })
	require.Panics(t, func() { connection.WithEpsilon(math.NaN()) })
	require.Panics(t, func() { connection.WithTolerance(-1) })
	require.Panics(t, func() { connection.WithTolerance(math.Inf(1)) })
}

// TestFingerprint is stable for equal inputs and sensitive to options.
func TestFingerprint(t *testing.T) {
	b := planeBundle(t)
	c1, _ := connection.New(b, linearField)
	c2, _ := connection.New(b, linearField)
	require.Equal(t, c1.Fingerprint(), c2.Fingerprint())
	require.Len(t, c1.Fingerprint(), 16)
	require.NotEqual(t, c1.Fingerprint(), c1.Derive(connection.WithEpsilon(1e-4)).Fingerprint())
}

// TestNonFiniteCurvatureLogged emits a debug entry for NaN potentials.
func TestNonFiniteCurvatureLogged(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	nanField := connection.FieldFunc(func(_ []float64, _ int) (*matrix.Dense, error) {
		return matrix.NewDenseFrom([][]float64{{math.NaN(), 0}, {0, 0}})
	})
	c, err := connection.New(planeBundle(t), nanField, connection.WithLogger(zap.New(core)))
	require.NoError(t, err)

	f, err := c.Curvature([]float64{0, 0}, 0, 1)
	require.NoError(t, err)
	require.False(t, f.IsFinite())
	require.Equal(t, 1, logs.FilterMessage("non-finite curvature").Len())
}

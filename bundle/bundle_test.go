package bundle_test

import (
	"testing"

	"github.com/katalvlaran/gauge/bundle"
	"github.com/katalvlaran/gauge/liegroup"
	"github.com/katalvlaran/gauge/manifold"
	"github.com/katalvlaran/gauge/matrix"
	"github.com/stretchr/testify/require"
)

func newPlaneBundle(t *testing.T) *bundle.Bundle {
	t.Helper()
	base, err := manifold.Euclidean(2)
	require.NoError(t, err)
	f, err := bundle.NewFiber(2, bundle.Vector, liegroup.SU2())
	require.NoError(t, err)
	b, err := bundle.New(base, f, liegroup.SU2())
	require.NoError(t, err)

	return b
}

// TestFiberPointDimension rejects coordinate counts other than the fibre dimension.
func TestFiberPointDimension(t *testing.T) {
	f, err := bundle.NewFiber(3, bundle.Vector, liegroup.SU3())
	require.NoError(t, err)

	_, err = f.Point([]float64{1, 2}) // 2 supplied vs. required 3
	require.ErrorIs(t, err, bundle.ErrDimensionMismatch)

	p, err := f.Point([]float64{1, 2, 3})
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2, 3}, p.Coords())
}

// TestNewFiberValidation covers fibre construction errors and type parsing.
func TestNewFiberValidation(t *testing.T) {
	_, err := bundle.NewFiber(0, bundle.Vector, liegroup.U1())
	require.ErrorIs(t, err, bundle.ErrFiberDimension)

	_, err = bundle.NewFiber(1, bundle.FiberType(7), liegroup.U1())
	require.ErrorIs(t, err, bundle.ErrUnknownFiberType)

	_, err = bundle.NewFiber(1, bundle.Principal, nil)
	require.ErrorIs(t, err, bundle.ErrNilComponent)

	typ, err := bundle.ParseFiberType("Principal")
	require.NoError(t, err)
	require.Equal(t, bundle.Principal, typ)
	require.Equal(t, "associated", bundle.Associated.String())

	_, err = bundle.ParseFiberType("spinor")
	require.ErrorIs(t, err, bundle.ErrUnknownFiberType)
}

// TestFiberPointAct applies a group element without mutating the receiver.
func TestFiberPointAct(t *testing.T) {
	f, _ := bundle.NewFiber(2, bundle.Vector, liegroup.SU2())
	p, _ := f.Point([]float64{1, 2})

	q, err := p.Act(matrix.MustDense([][]float64{{0, -1}, {1, 0}}))
	require.NoError(t, err)
	require.Equal(t, []float64{-2, 1}, q.Coords())
	require.Equal(t, []float64{1, 2}, p.Coords()) // receiver untouched
	require.NotEqual(t, p.Fingerprint(), q.Fingerprint())

	_, err = p.Act(matrix.MustDense([][]float64{{1}}))
	require.ErrorIs(t, err, bundle.ErrDimensionMismatch)

	_, err = p.Act(matrix.MustDense([][]float64{{1, 2}}))
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

// TestBundleGeometry covers projection, fibre lookup and dimensions.
func TestBundleGeometry(t *testing.T) {
	b := newPlaneBundle(t)
	require.Equal(t, 4, b.TotalDimension())
	require.True(t, b.IsLocallyTrivial())

	p, err := b.Project([]float64{1, 2, 3, 4})
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2}, p)

	_, err = b.Project([]float64{1})
	require.ErrorIs(t, err, bundle.ErrTotalPoint)

	f, err := b.FiberAt([]float64{5, 5})
	require.NoError(t, err)
	require.Same(t, b.Fiber(), f)

	_, err = b.FiberAt([]float64{5})
	require.ErrorIs(t, err, manifold.ErrPointDimension)

	_, err = bundle.New(nil, b.Fiber(), b.StructureGroup())
	require.ErrorIs(t, err, bundle.ErrNilComponent)
}

// TestSectionArithmetic checks referential transparency of Add and Scale.
func TestSectionArithmetic(t *testing.T) {
	b := newPlaneBundle(t)
	s1, err := b.CreateSection(func(p []float64) []float64 { return []float64{p[0], p[1]} })
	require.NoError(t, err)
	s2, err := b.CreateSection(func(p []float64) []float64 { return []float64{1, p[0] * p[1]} })
	require.NoError(t, err)

	sum, err := s1.Add(s2)
	require.NoError(t, err)
	scaled := sum.Scale(2)

	for _, p := range [][]float64{{0, 0}, {1, 2}, {-3, 0.5}} {
		a, _ := s1.At(p)
		c, _ := s2.At(p)
		got, err := scaled.At(p)
		require.NoError(t, err)
		require.Equal(t, []float64{2 * (a[0] + c[0]), 2 * (a[1] + c[1])}, got)
	}

	bad, _ := b.CreateSection(func(p []float64) []float64 { return []float64{1} })
	_, err = bad.At([]float64{0, 0})
	require.ErrorIs(t, err, bundle.ErrDimensionMismatch)

	other := newPlaneBundle(t)
	s3, _ := other.CreateSection(func(p []float64) []float64 { return []float64{0, 0} })
	_, err = s1.Add(s3)
	require.ErrorIs(t, err, bundle.ErrBundleMismatch)

	_, err = b.CreateSection(nil)
	require.ErrorIs(t, err, bundle.ErrNilComponent)
}

// TestBundleFingerprint depends on every constituent.
func TestBundleFingerprint(t *testing.T) {
	b1 := newPlaneBundle(t)
	b2 := newPlaneBundle(t)
	require.Equal(t, b1.Fingerprint(), b2.Fingerprint())

	f1, _ := bundle.NewFiber(2, bundle.Principal, liegroup.SU2())
	b3, _ := bundle.New(b1.Base(), f1, liegroup.SU2())
	require.NotEqual(t, b1.Fingerprint(), b3.Fingerprint())
}

// TestBundleNamed labels a copy without touching the receiver.
func TestBundleNamed(t *testing.T) {
	b := newPlaneBundle(t)
	n := b.Named("tangent")
	require.Equal(t, "tangent", n.Name())
	require.Empty(t, b.Name())
	require.NotEqual(t, b.Fingerprint(), n.Fingerprint())
	require.Equal(t, "tangent: vector fiber^2 → R2 (SU(2))", n.String())
	require.Same(t, b.Base(), n.Base())
}

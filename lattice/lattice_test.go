package lattice_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/gauge/connection"
	"github.com/katalvlaran/gauge/factory"
	"github.com/katalvlaran/gauge/lattice"
	"github.com/katalvlaran/gauge/manifold"
	"github.com/katalvlaran/gauge/matrix"
	"github.com/katalvlaran/gauge/transport"
)

// lineConnection puts A_0 = 0, A_1 = a1(p) on the line bundle over R².
func lineConnection(t testing.TB, a1 func(p []float64) float64) *connection.Connection {
	t.Helper()
	m, err := manifold.Euclidean(2)
	require.NoError(t, err)
	b, err := factory.LineBundle(m)
	require.NoError(t, err)
	c, err := connection.New(b, connection.FieldFunc(func(p []float64, mu int) (*matrix.Dense, error) {
		if mu == 0 {
			return matrix.NewZeros(1, 1)
		}

		return matrix.NewDenseFrom([][]float64{{a1(p)}})
	}))
	require.NoError(t, err)

	return c
}

func clamp(x, lo, hi float64) float64 { return math.Min(math.Max(x, lo), hi) }

// TestUniformFlux integrates a constant field strength.
func TestUniformFlux(t *testing.T) {
	const field = 1.0
	c := lineConnection(t, func(p []float64) float64 { return field * p[0] })
	opts := lattice.DefaultOptions()
	opts.Transport = []transport.Option{transport.WithSteps(400)}
	l, err := lattice.New(c, lattice.Plane{Mu: 0, Nu: 1, Origin: []float64{0, 0}, Width: 2, Height: 1.5, NX: 4, NY: 3}, opts)
	require.NoError(t, err)
	require.Equal(t, 4, l.Width)
	require.Equal(t, 3, l.Height)

	total, err := l.TotalFlux()
	require.NoError(t, err)
	require.InDelta(t, field*3/(2*math.Pi), total, 1e-8)

	pqs, err := l.Plaquettes()
	require.NoError(t, err)
	require.Len(t, pqs, 12)
	for i, pq := range pqs {
		x, y := l.Coordinate(i)
		require.Equal(t, [2]int{x, y}, [2]int{pq.X, pq.Y})
		require.InDelta(t, 0.25, pq.Area, 1e-15)
		require.InDelta(t, field/(2*math.Pi), pq.Density, 1e-8)
		if pq.X == 0 {
			// the left edge sits on x0 = 0 where A_1 vanishes
			require.InDelta(t, math.Exp(-field*pq.Area), pq.Wilson, 1e-3)
		}
	}
	require.Equal(t, []float64{1.25, 0.75}, pqs[l.Width+2].Center)
}

// TestFluxRegionsColumns finds two separate bands of flux.
func TestFluxRegionsColumns(t *testing.T) {
	c := lineConnection(t, func(p []float64) float64 {
		return clamp(p[0], 1, 2) - 1 + clamp(p[0], 3, 4) - 3
	})
	plane := lattice.Plane{Mu: 0, Nu: 1, Origin: []float64{0, 0}, Width: 5, Height: 2, NX: 5, NY: 2}
	for _, conn := range []lattice.Connectivity{lattice.Conn4, lattice.Conn8} {
		opts := lattice.DefaultOptions()
		opts.Conn = conn
		l, err := lattice.New(c, plane, opts)
		require.NoError(t, err)
		regions, err := l.FluxRegions(0.1)
		require.NoError(t, err)
		require.Equal(t, [][]int{{1, 6}, {3, 8}}, regions)
	}
}

// TestFluxRegionsDiagonal merges a checkerboard only under Conn8.
func TestFluxRegionsDiagonal(t *testing.T) {
	// F_{01} = 1 on cells with x+y even, 0 elsewhere
	c := lineConnection(t, func(p []float64) float64 {
		if int(math.Floor(p[0])+math.Floor(p[1]))%2 == 0 {
			return p[0]
		}

		return 0
	})
	plane := lattice.Plane{Mu: 0, Nu: 1, Origin: []float64{0, 0}, Width: 3, Height: 3, NX: 3, NY: 3}

	opts := lattice.DefaultOptions()
	l4, err := lattice.New(c, plane, opts)
	require.NoError(t, err)
	regions, err := l4.FluxRegions(0.1)
	require.NoError(t, err)
	require.Len(t, regions, 5)

	opts.Conn = lattice.Conn8
	l8, err := lattice.New(c, plane, opts)
	require.NoError(t, err)
	require.Len(t, l8.NeighborOffsets(), 8)
	regions, err = l8.FluxRegions(0.1)
	require.NoError(t, err)
	require.Len(t, regions, 1)
	require.ElementsMatch(t, []int{0, 2, 4, 6, 8}, regions[0])

	// nothing exceeds an enormous threshold
	regions, err = l8.FluxRegions(10)
	require.NoError(t, err)
	require.Empty(t, regions)
}

// TestNewValidation covers plane errors.
func TestNewValidation(t *testing.T) {
	c := lineConnection(t, func(p []float64) float64 { return 0 })
	ok := lattice.Plane{Mu: 0, Nu: 1, Origin: []float64{0, 0}, Width: 1, Height: 1, NX: 2, NY: 2}

	_, err := lattice.New(nil, ok, lattice.DefaultOptions())
	require.ErrorIs(t, err, lattice.ErrNilConnection)

	bad := ok
	bad.NX = 0
	_, err = lattice.New(c, bad, lattice.DefaultOptions())
	require.ErrorIs(t, err, lattice.ErrEmptyLattice)

	bad = ok
	bad.Nu = 0
	_, err = lattice.New(c, bad, lattice.DefaultOptions())
	require.ErrorIs(t, err, lattice.ErrPlane)

	bad = ok
	bad.Origin = []float64{0}
	_, err = lattice.New(c, bad, lattice.DefaultOptions())
	require.ErrorIs(t, err, lattice.ErrPlane)

	bad = ok
	bad.Height = -1
	_, err = lattice.New(c, bad, lattice.DefaultOptions())
	require.ErrorIs(t, err, lattice.ErrCellSize)

	l, err := lattice.New(c, ok, lattice.Options{})
	require.NoError(t, err)
	require.True(t, l.InBounds(1, 1))
	require.False(t, l.InBounds(2, 0))
	require.False(t, l.InBounds(0, -1))
	p := l.Plane()
	p.Origin[0] = 42
	require.Equal(t, []float64{0, 0}, l.Plane().Origin)
}

// TestSweepLogged emits one debug entry per sweep.
func TestSweepLogged(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	c := lineConnection(t, func(p []float64) float64 { return 0 })
	opts := lattice.DefaultOptions()
	opts.Logger = zap.New(core)
	l, err := lattice.New(c, lattice.Plane{Mu: 1, Nu: 0, Origin: []float64{0, 0}, Width: 1, Height: 1, NX: 1, NY: 1}, opts)
	require.NoError(t, err)
	_, err = l.TotalFlux()
	require.NoError(t, err)
	require.Equal(t, 1, logs.FilterMessage("lattice sweep").Len())
}

// TestRegionsReuseSweep derives flux and regions from a single sweep.
func TestRegionsReuseSweep(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	c := lineConnection(t, func(p []float64) float64 {
		return clamp(p[0], 1, 2) - 1 + clamp(p[0], 3, 4) - 3
	})
	opts := lattice.DefaultOptions()
	opts.Logger = zap.New(core)
	l, err := lattice.New(c, lattice.Plane{Mu: 0, Nu: 1, Origin: []float64{0, 0}, Width: 5, Height: 2, NX: 5, NY: 2}, opts)
	require.NoError(t, err)

	pqs, err := l.Plaquettes()
	require.NoError(t, err)
	regions, err := l.Regions(pqs, 0.1)
	require.NoError(t, err)
	require.Equal(t, [][]int{{1, 6}, {3, 8}}, regions)
	require.InDelta(t, 4/(2*math.Pi), lattice.SumFlux(pqs), 1e-6)
	require.Equal(t, 1, logs.FilterMessage("lattice sweep").Len())

	_, err = l.Regions(pqs[:3], 0.1)
	require.ErrorIs(t, err, lattice.ErrSweepSize)
}

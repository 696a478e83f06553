package lattice

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/gauge/connection"
	"github.com/katalvlaran/gauge/curvature"
	"github.com/katalvlaran/gauge/transport"
)

// Lattice is an immutable plaquette grid over one connection.
// Width and Height count cells along μ and ν; cells are indexed row-major,
// idx = y*Width + x.
type Lattice struct {
	Width, Height int
	Conn          Connectivity

	plane           Plane
	dx, dy          float64
	form            *curvature.Form
	tr              *transport.Transporter
	logger          *zap.Logger
	neighborOffsets [][2]int
}

// New validates plane against the connection's base and prepares the sweep.
// Errors: ErrNilConnection, ErrEmptyLattice, ErrPlane, ErrCellSize.
func New(conn *connection.Connection, plane Plane, opts Options) (*Lattice, error) {
	if conn == nil {
		return nil, ErrNilConnection
	}
	if plane.NX < 1 || plane.NY < 1 {
		return nil, fmt.Errorf("lattice.New: %dx%d: %w", plane.NX, plane.NY, ErrEmptyLattice)
	}
	d := conn.Bundle().BaseDimension()
	if len(plane.Origin) != d || plane.Mu == plane.Nu ||
		plane.Mu < 0 || plane.Nu < 0 || plane.Mu >= d || plane.Nu >= d {
		return nil, fmt.Errorf("lattice.New: plane (%d,%d) origin %v in %d dimensions: %w",
			plane.Mu, plane.Nu, plane.Origin, d, ErrPlane)
	}
	if !(plane.Width > 0) || !(plane.Height > 0) {
		return nil, fmt.Errorf("lattice.New: extent %g×%g: %w", plane.Width, plane.Height, ErrCellSize)
	}
	form, err := curvature.New(conn)
	if err != nil {
		return nil, fmt.Errorf("lattice.New: %w", err)
	}
	trOpts := append([]transport.Option{transport.WithLogger(opts.Logger)}, opts.Transport...)
	tr, err := transport.New(conn, trOpts...)
	if err != nil {
		return nil, fmt.Errorf("lattice.New: %w", err)
	}

	var offsets [][2]int
	if opts.Conn == Conn8 {
		offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	} else {
		offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	p := plane
	p.Origin = append([]float64(nil), plane.Origin...)

	return &Lattice{
		Width:           plane.NX,
		Height:          plane.NY,
		Conn:            opts.Conn,
		plane:           p,
		dx:              plane.Width / float64(plane.NX),
		dy:              plane.Height / float64(plane.NY),
		form:            form,
		tr:              tr,
		logger:          logger,
		neighborOffsets: offsets,
	}, nil
}

// Plane returns the sampled plane.
func (l *Lattice) Plane() Plane {
	p := l.plane
	p.Origin = append([]float64(nil), l.plane.Origin...)

	return p
}

// InBounds reports whether cell (x,y) lies within the lattice.
func (l *Lattice) InBounds(x, y int) bool {
	return x >= 0 && x < l.Width && y >= 0 && y < l.Height
}

// NeighborOffsets returns the precomputed neighbour offsets.
func (l *Lattice) NeighborOffsets() [][2]int {
	return l.neighborOffsets
}

// index maps (x,y) to the row-major index y*Width + x.
func (l *Lattice) index(x, y int) int {
	return y*l.Width + x
}

// Coordinate converts a row-major index back to (x,y).
func (l *Lattice) Coordinate(idx int) (x, y int) {
	return idx % l.Width, idx / l.Width
}

// point returns the base point at plane offsets (u,v) from the origin.
func (l *Lattice) point(u, v float64) []float64 {
	p := append([]float64(nil), l.plane.Origin...)
	p[l.plane.Mu] += u
	p[l.plane.Nu] += v

	return p
}

// plaquette measures cell (x,y).
func (l *Lattice) plaquette(x, y int) (Plaquette, error) {
	corner := l.point(float64(x)*l.dx, float64(y)*l.dy)
	center := l.point((float64(x)+0.5)*l.dx, (float64(y)+0.5)*l.dy)
	loop, err := transport.Rectangle(corner, l.plane.Mu, l.plane.Nu, l.dx, l.dy)
	if err != nil {
		return Plaquette{}, err
	}
	w, err := l.tr.WilsonLoop(corner, loop)
	if err != nil {
		return Plaquette{}, fmt.Errorf("plaquette (%d,%d): %w", x, y, err)
	}
	trF, err := l.form.Trace(center, l.plane.Mu, l.plane.Nu)
	if err != nil {
		return Plaquette{}, fmt.Errorf("plaquette (%d,%d): %w", x, y, err)
	}
	area := l.dx * l.dy
	density := trF / (2 * math.Pi)

	return Plaquette{
		X: x, Y: y,
		Corner:  corner,
		Center:  center,
		Area:    area,
		Wilson:  w,
		Density: density,
		Flux:    density * area,
	}, nil
}

// Plaquettes measures every cell, in row-major order.
//
// Complexity: Width·Height holonomies, each O(steps) integrator stages.
func (l *Lattice) Plaquettes() ([]Plaquette, error) {
	out := make([]Plaquette, 0, l.Width*l.Height)
	for y := 0; y < l.Height; y++ {
		for x := 0; x < l.Width; x++ {
			pq, err := l.plaquette(x, y)
			if err != nil {
				return nil, err
			}
			out = append(out, pq)
		}
	}
	l.logger.Debug("lattice sweep",
		zap.Int("width", l.Width), zap.Int("height", l.Height),
		zap.Int("mu", l.plane.Mu), zap.Int("nu", l.plane.Nu))

	return out, nil
}

// TotalFlux returns Σ Flux over all plaquettes: the midpoint-rule estimate
// of ∫ Tr F_{μν} / 2π over the plane rectangle.
func (l *Lattice) TotalFlux() (float64, error) {
	pqs, err := l.Plaquettes()
	if err != nil {
		return 0, err
	}

	return SumFlux(pqs), nil
}

// SumFlux adds the Flux of every plaquette in a sweep.
func SumFlux(pqs []Plaquette) float64 {
	var sum float64
	for _, pq := range pqs {
		sum += pq.Flux
	}

	return sum
}

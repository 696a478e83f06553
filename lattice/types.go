package lattice

import (
	"errors"

	"go.uber.org/zap"

	"github.com/katalvlaran/gauge/transport"
)

// Sentinel errors for lattice construction.
var (
	// ErrNilConnection indicates a lattice built without a connection.
	ErrNilConnection = errors.New("lattice: nil connection")
	// ErrEmptyLattice indicates a plane with no cells along an axis.
	ErrEmptyLattice = errors.New("lattice: plane must have at least one cell per axis")
	// ErrPlane indicates equal or out-of-range plane directions or a bad origin.
	ErrPlane = errors.New("lattice: invalid coordinate plane")
	// ErrCellSize indicates a non-positive plane extent.
	ErrCellSize = errors.New("lattice: plane extent must be positive")
	// ErrSweepSize indicates a plaquette slice that is not a sweep of the lattice.
	ErrSweepSize = errors.New("lattice: plaquette count does not match lattice size")
)

// Connectivity selects neighbour connectivity between plaquettes:
// orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Plane is the rectangle [Origin_μ, Origin_μ+Width] × [Origin_ν, Origin_ν+Height]
// in the (μ,ν) coordinate plane, cut into NX×NY equal cells. Coordinates
// other than μ and ν stay at Origin.
type Plane struct {
	Mu, Nu        int
	Origin        []float64
	Width, Height float64
	NX, NY        int
}

// Options contains tunable parameters for a lattice sweep.
type Options struct {
	// Conn chooses 4- or 8-directional connectivity for FluxRegions.
	Conn Connectivity
	// Transport configures the per-plaquette holonomy.
	Transport []transport.Option
	// Logger receives sweep diagnostics; nil means no-op.
	Logger *zap.Logger
}

// DefaultOptions returns Conn4, default transport settings and a no-op logger.
func DefaultOptions() Options {
	return Options{Conn: Conn4, Logger: zap.NewNop()}
}

// Plaquette is one lattice cell with its measured gauge quantities.
type Plaquette struct {
	X, Y    int       // cell coordinates within the lattice
	Corner  []float64 // base point of the lower-left corner
	Center  []float64 // base point of the cell centre
	Area    float64
	Wilson  float64 // Tr(holonomy)/rank around the cell boundary
	Density float64 // Tr F_{μν}(centre) / 2π
	Flux    float64 // Density · Area
}

package manifold

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/gauge/fingerprint"
)

// Manifold is a named coordinate space of fixed dimension.
type Manifold struct {
	name        string
	dimension   int
	coordinates []string
}

// New validates and builds a Manifold.
// Errors: ErrDimension (dim ≤ 0), ErrCoordinateCount (len(coords) != dim).
func New(name string, dim int, coords []string) (*Manifold, error) {
	if dim <= 0 {
		return nil, fmt.Errorf("New(%q, %d): %w", name, dim, ErrDimension)
	}
	if len(coords) != dim {
		return nil, fmt.Errorf("New(%q): %d labels for dimension %d: %w", name, len(coords), dim, ErrCoordinateCount)
	}
	cp := make([]string, dim)
	copy(cp, coords)

	return &Manifold{name: name, dimension: dim, coordinates: cp}, nil
}

// Euclidean returns R^dim with coordinate labels x0..x{dim-1}.
func Euclidean(dim int) (*Manifold, error) {
	if dim <= 0 {
		return nil, fmt.Errorf("Euclidean(%d): %w", dim, ErrDimension)
	}
	coords := make([]string, dim)
	for i := range coords {
		coords[i] = "x" + strconv.Itoa(i)
	}

	return New("R"+strconv.Itoa(dim), dim, coords)
}

// Name returns the manifold name.
func (m *Manifold) Name() string { return m.name }

// Dimension returns the coordinate dimension.
func (m *Manifold) Dimension() int { return m.dimension }

// Coordinates returns a copy of the coordinate labels.
func (m *Manifold) Coordinates() []string {
	out := make([]string, len(m.coordinates))
	copy(out, m.coordinates)

	return out
}

// CheckPoint returns ErrPointDimension when p is not a point of m.
func (m *Manifold) CheckPoint(p []float64) error {
	if len(p) != m.dimension {
		return fmt.Errorf("point of length %d on %s (dim %d): %w", len(p), m.name, m.dimension, ErrPointDimension)
	}

	return nil
}

// Fingerprint identifies the manifold by name, dimension and labels.
func (m *Manifold) Fingerprint() string {
	return fingerprint.Of("manifold", m.name, m.dimension, m.coordinates)
}

// String renders "name(dim)[labels]".
func (m *Manifold) String() string {
	return fmt.Sprintf("%s(%d)%v", m.name, m.dimension, m.coordinates)
}

package bundle

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/gauge/fingerprint"
	"github.com/katalvlaran/gauge/liegroup"
	"github.com/katalvlaran/gauge/matrix"
)

// FiberType classifies the fibre attached at each base point.
type FiberType int

const (
	// Vector fibres are real vector spaces acted on linearly.
	Vector FiberType = iota
	// Principal fibres are the structure group itself.
	Principal
	// Associated fibres carry a representation of the structure group.
	Associated
)

var fiberTypeNames = [...]string{"vector", "principal", "associated"}

// String returns the lowercase type name.
func (t FiberType) String() string {
	if t < 0 || int(t) >= len(fiberTypeNames) {
		return fmt.Sprintf("FiberType(%d)", int(t))
	}

	return fiberTypeNames[t]
}

// ParseFiberType maps "vector", "principal" or "associated" (case-insensitive) to a FiberType.
func ParseFiberType(s string) (FiberType, error) {
	for i, n := range fiberTypeNames {
		if strings.EqualFold(s, n) {
			return FiberType(i), nil
		}
	}

	return 0, fmt.Errorf("ParseFiberType(%q): %w", s, ErrUnknownFiberType)
}

// Fiber is the typical fibre: its dimension, type and structure group.
type Fiber struct {
	dimension int
	typ       FiberType
	group     *liegroup.Group
}

// NewFiber validates and builds a Fiber.
// Errors: ErrFiberDimension, ErrUnknownFiberType, ErrNilComponent.
func NewFiber(dim int, typ FiberType, group *liegroup.Group) (*Fiber, error) {
	if dim <= 0 {
		return nil, fmt.Errorf("NewFiber(%d): %w", dim, ErrFiberDimension)
	}
	if typ < Vector || typ > Associated {
		return nil, fmt.Errorf("NewFiber: %v: %w", typ, ErrUnknownFiberType)
	}
	if group == nil {
		return nil, fmt.Errorf("NewFiber: structure group: %w", ErrNilComponent)
	}

	return &Fiber{dimension: dim, typ: typ, group: group}, nil
}

// Dimension returns the fibre dimension.
func (f *Fiber) Dimension() int { return f.dimension }

// Type returns the fibre type.
func (f *Fiber) Type() FiberType { return f.typ }

// StructureGroup returns the (shared) structure group.
func (f *Fiber) StructureGroup() *liegroup.Group { return f.group }

// Point builds a FiberPoint; coords are copied.
// Errors: ErrDimensionMismatch when len(coords) != Dimension().
func (f *Fiber) Point(coords []float64) (*FiberPoint, error) {
	if len(coords) != f.dimension {
		return nil, fmt.Errorf("Fiber.Point: %d coordinates, want %d: %w", len(coords), f.dimension, ErrDimensionMismatch)
	}
	c := make([]float64, len(coords))
	copy(c, coords)

	return &FiberPoint{fiber: f, coords: c}, nil
}

// Fingerprint identifies the fibre by dimension, type and group.
func (f *Fiber) Fingerprint() string {
	return fingerprint.Of("fiber", f.dimension, f.typ.String(), f.group)
}

// FiberPoint is an immutable element of a Fiber.
type FiberPoint struct {
	fiber  *Fiber
	coords []float64
}

// Fiber returns the fibre this point belongs to.
func (p *FiberPoint) Fiber() *Fiber { return p.fiber }

// Coords returns a copy of the coordinates.
func (p *FiberPoint) Coords() []float64 {
	out := make([]float64, len(p.coords))
	copy(out, p.coords)

	return out
}

// Act returns the new point g·p. g must be square of order Dimension().
// The receiver is not modified.
func (p *FiberPoint) Act(g matrix.Matrix) (*FiberPoint, error) {
	if err := matrix.ValidateSquare(g); err != nil {
		return nil, fmt.Errorf("FiberPoint.Act: %w", err)
	}
	if g.Rows() != p.fiber.dimension {
		return nil, fmt.Errorf("FiberPoint.Act: %d×%d action on dimension %d: %w", g.Rows(), g.Cols(), p.fiber.dimension, ErrDimensionMismatch)
	}
	y, err := matrix.MatVec(g, p.coords)
	if err != nil {
		return nil, fmt.Errorf("FiberPoint.Act: %w", err)
	}

	return &FiberPoint{fiber: p.fiber, coords: y}, nil
}

// Fingerprint identifies the point by fibre and coordinates.
func (p *FiberPoint) Fingerprint() string {
	return fingerprint.Of("fiberpoint", p.fiber, p.coords)
}

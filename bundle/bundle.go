package bundle

import (
	"fmt"

	"github.com/katalvlaran/gauge/fingerprint"
	"github.com/katalvlaran/gauge/liegroup"
	"github.com/katalvlaran/gauge/manifold"
)

// Bundle is a fibre bundle E → M with typical fibre F and structure group G.
// The representation is globally trivial (E = M × F): no transition
// functions are modelled, so local triviality always holds.
type Bundle struct {
	name  string
	base  *manifold.Manifold
	fiber *Fiber
	group *liegroup.Group
}

// New composes a bundle. The structure group may differ from the fibre's.
// Errors: ErrNilComponent.
func New(base *manifold.Manifold, fiber *Fiber, group *liegroup.Group) (*Bundle, error) {
	switch {
	case base == nil:
		return nil, fmt.Errorf("bundle.New: base: %w", ErrNilComponent)
	case fiber == nil:
		return nil, fmt.Errorf("bundle.New: fiber: %w", ErrNilComponent)
	case group == nil:
		return nil, fmt.Errorf("bundle.New: structure group: %w", ErrNilComponent)
	}

	return &Bundle{base: base, fiber: fiber, group: group}, nil
}

// Named returns a copy of b labelled name. The label takes part in the
// fingerprint, so structurally equal bundles (tangent and cotangent) stay
// distinguishable.
func (b *Bundle) Named(name string) *Bundle {
	c := *b
	c.name = name

	return &c
}

// Name returns the label set by Named, or "".
func (b *Bundle) Name() string { return b.name }

// Base returns the base manifold.
func (b *Bundle) Base() *manifold.Manifold { return b.base }

// Fiber returns the typical fibre.
func (b *Bundle) Fiber() *Fiber { return b.fiber }

// StructureGroup returns the bundle's structure group.
func (b *Bundle) StructureGroup() *liegroup.Group { return b.group }

// BaseDimension is Base().Dimension().
func (b *Bundle) BaseDimension() int { return b.base.Dimension() }

// FiberDimension is Fiber().Dimension().
func (b *Bundle) FiberDimension() int { return b.fiber.Dimension() }

// TotalDimension is base dimension + fibre dimension.
func (b *Bundle) TotalDimension() int { return b.base.Dimension() + b.fiber.Dimension() }

// IsLocallyTrivial always reports true for this representation.
func (b *Bundle) IsLocallyTrivial() bool { return true }

// Project returns the first BaseDimension() coordinates of a total-space point.
// Errors: ErrTotalPoint when the point is shorter than the base dimension.
func (b *Bundle) Project(total []float64) ([]float64, error) {
	n := b.base.Dimension()
	if len(total) < n {
		return nil, fmt.Errorf("Project: %d coordinates, base dimension %d: %w", len(total), n, ErrTotalPoint)
	}
	out := make([]float64, n)
	copy(out, total[:n])

	return out, nil
}

// FiberAt returns the fibre over p. Every fibre is the typical fibre.
func (b *Bundle) FiberAt(p []float64) (*Fiber, error) {
	if err := b.base.CheckPoint(p); err != nil {
		return nil, fmt.Errorf("FiberAt: %w", err)
	}

	return b.fiber, nil
}

// CreateSection wraps fn as a section of b.
// Errors: ErrNilComponent for a nil function.
func (b *Bundle) CreateSection(fn func(p []float64) []float64) (*Section, error) {
	if fn == nil {
		return nil, fmt.Errorf("CreateSection: %w", ErrNilComponent)
	}

	return &Section{bundle: b, eval: func(p []float64) ([]float64, error) { return fn(p), nil }}, nil
}

// Fingerprint identifies the bundle by its three constituents.
func (b *Bundle) Fingerprint() string {
	return fingerprint.Of("bundle", b.name, b.base, b.fiber, b.group)
}

// String renders "F → M (G)", prefixed by the name when set.
func (b *Bundle) String() string {
	if b.name != "" {
		return fmt.Sprintf("%s: %s fiber^%d → %s (%s)", b.name, b.fiber.Type(), b.fiber.Dimension(), b.base.Name(), b.group.Name())
	}

	return fmt.Sprintf("%s fiber^%d → %s (%s)", b.fiber.Type(), b.fiber.Dimension(), b.base.Name(), b.group.Name())
}

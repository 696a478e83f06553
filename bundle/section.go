package bundle

import "fmt"

// Section assigns fibre coordinates to base points. It holds no mutable
// state; Add and Scale return new sections that evaluate their operands.
type Section struct {
	bundle *Bundle
	eval   func(p []float64) ([]float64, error)
}

// Bundle returns the bundle the section belongs to.
func (s *Section) Bundle() *Bundle { return s.bundle }

// At evaluates the section at base point p.
// Errors: manifold.ErrPointDimension for a bad point, ErrDimensionMismatch
// when the function returns the wrong number of fibre coordinates.
func (s *Section) At(p []float64) ([]float64, error) {
	if err := s.bundle.base.CheckPoint(p); err != nil {
		return nil, fmt.Errorf("Section.At: %w", err)
	}
	v, err := s.eval(p)
	if err != nil {
		return nil, err
	}
	if len(v) != s.bundle.fiber.Dimension() {
		return nil, fmt.Errorf("Section.At: %d fiber coordinates, want %d: %w", len(v), s.bundle.fiber.Dimension(), ErrDimensionMismatch)
	}

	return v, nil
}

// Add returns the pointwise sum s + o. Both must belong to the same bundle.
func (s *Section) Add(o *Section) (*Section, error) {
	if o == nil || o.bundle != s.bundle {
		return nil, fmt.Errorf("Section.Add: %w", ErrBundleMismatch)
	}

	return &Section{bundle: s.bundle, eval: func(p []float64) ([]float64, error) {
		a, err := s.At(p)
		if err != nil {
			return nil, err
		}
		b, err := o.At(p)
		if err != nil {
			return nil, err
		}
		out := make([]float64, len(a))
		for i := range a {
			out[i] = a[i] + b[i]
		}

		return out, nil
	}}, nil
}

// Scale returns the pointwise multiple c·s.
func (s *Section) Scale(c float64) *Section {
	return &Section{bundle: s.bundle, eval: func(p []float64) ([]float64, error) {
		a, err := s.At(p)
		if err != nil {
			return nil, err
		}
		out := make([]float64, len(a))
		for i := range a {
			out[i] = c * a[i]
		}

		return out, nil
	}}
}

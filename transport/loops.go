package transport

import (
	"fmt"
	"math"
)

func checkPlane(op string, origin []float64, mu, nu int) error {
	if mu == nu || mu < 0 || nu < 0 || mu >= len(origin) || nu >= len(origin) {
		return fmt.Errorf("%s: plane (%d,%d) in %d dimensions: %w", op, mu, nu, len(origin), ErrLoopShape)
	}

	return nil
}

// Rectangle returns the counter-clockwise loop in the (μ,ν) plane
// origin → origin+a·e_μ → origin+a·e_μ+b·e_ν → origin+b·e_ν → origin,
// each side taking a quarter of the parameter range. t is clamped to [0,1].
// Errors: ErrLoopShape for equal or out-of-range directions or zero sides.
func Rectangle(origin []float64, mu, nu int, a, b float64) (Path, error) {
	if err := checkPlane("Rectangle", origin, mu, nu); err != nil {
		return nil, err
	}
	if a == 0 || b == 0 {
		return nil, fmt.Errorf("Rectangle: sides %g×%g: %w", a, b, ErrLoopShape)
	}
	o := append([]float64(nil), origin...)

	return func(t float64) []float64 {
		t = math.Min(math.Max(t, 0), 1)
		x := append([]float64(nil), o...)
		s := 4 * t
		switch {
		case s < 1:
			x[mu] += a * s
		case s < 2:
			x[mu] += a
			x[nu] += b * (s - 1)
		case s < 3:
			x[mu] += a * (3 - s)
			x[nu] += b
		default:
			x[nu] += b * (4 - s)
		}

		return x
	}, nil
}

// Circle returns the counter-clockwise circle of radius r around center in
// the (μ,ν) plane, starting at center + r·e_μ.
// Errors: ErrLoopShape for equal or out-of-range directions or r ≤ 0.
func Circle(center []float64, mu, nu int, r float64) (Path, error) {
	if err := checkPlane("Circle", center, mu, nu); err != nil {
		return nil, err
	}
	if !(r > 0) {
		return nil, fmt.Errorf("Circle: radius %g: %w", r, ErrLoopShape)
	}
	c := append([]float64(nil), center...)

	return func(t float64) []float64 {
		x := append([]float64(nil), c...)
		theta := 2 * math.Pi * t
		x[mu] += r * math.Cos(theta)
		x[nu] += r * math.Sin(theta)

		return x
	}, nil
}

// Segment returns the straight path from a to b; both must have the same length.
func Segment(a, b []float64) Path {
	from := append([]float64(nil), a...)
	to := append([]float64(nil), b...)

	return func(t float64) []float64 {
		x := make([]float64, len(from))
		for i := range x {
			x[i] = from[i] + t*(to[i]-from[i])
		}

		return x
	}
}

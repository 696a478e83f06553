package manifold

import "errors"

// Sentinel errors for manifold construction and chart operations.
var (
	// ErrDimension indicates a non-positive manifold dimension.
	ErrDimension = errors.New("manifold: dimension must be positive")

	// ErrCoordinateCount indicates that the number of coordinate labels differs from the dimension.
	ErrCoordinateCount = errors.New("manifold: coordinate count does not match dimension")

	// ErrPointDimension indicates a point whose length differs from the manifold dimension.
	ErrPointDimension = errors.New("manifold: point dimension mismatch")

	// ErrNilManifold indicates that a chart was requested on a nil manifold.
	ErrNilManifold = errors.New("manifold: nil manifold")
)

package curvature

import "errors"

var (
	// ErrNilConnection indicates a Form built without a connection.
	ErrNilConnection = errors.New("curvature: nil connection")

	// ErrMetricShape indicates a metric that is not d×d for base dimension d.
	ErrMetricShape = errors.New("curvature: metric must be square of the base dimension")

	// ErrMetricSymmetry indicates a metric with g_{μν} ≠ g_{νμ}.
	ErrMetricSymmetry = errors.New("curvature: metric must be symmetric")
)

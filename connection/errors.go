package connection

import "errors"

// Sentinel errors for connection construction and evaluation.
var (
	// ErrNilBundle indicates a connection built without a bundle.
	ErrNilBundle = errors.New("connection: nil bundle")

	// ErrNilField indicates a connection built without a gauge potential.
	ErrNilField = errors.New("connection: nil field")

	// ErrDirectionRange indicates a direction index outside [0, base dimension).
	ErrDirectionRange = errors.New("connection: direction index out of range")

	// ErrPotentialShape indicates a field component that is not k×k for fibre dimension k.
	ErrPotentialShape = errors.New("connection: potential component has wrong shape")

	// ErrNilSection indicates a nil section passed to CovariantDerivative.
	ErrNilSection = errors.New("connection: nil section")

	// ErrSectionBundle indicates a section of a different bundle than the connection's.
	ErrSectionBundle = errors.New("connection: section belongs to another bundle")

	// ErrNilGauge indicates a nil gauge function passed to GaugeTransform.
	ErrNilGauge = errors.New("connection: nil gauge function")
)

package bundle

import "errors"

// Sentinel errors for fibre and bundle operations.
var (
	// ErrFiberDimension indicates a non-positive fibre dimension.
	ErrFiberDimension = errors.New("bundle: fiber dimension must be positive")

	// ErrDimensionMismatch indicates coordinates or matrices whose size differs from the fibre dimension.
	ErrDimensionMismatch = errors.New("bundle: dimension mismatch")

	// ErrUnknownFiberType indicates an unrecognised fibre type name or value.
	ErrUnknownFiberType = errors.New("bundle: unknown fiber type")

	// ErrNilComponent indicates a nil manifold, fibre, group or section function.
	ErrNilComponent = errors.New("bundle: nil component")

	// ErrTotalPoint indicates a total-space point shorter than the base dimension.
	ErrTotalPoint = errors.New("bundle: total-space point too short")

	// ErrBundleMismatch indicates arithmetic between sections of different bundles.
	ErrBundleMismatch = errors.New("bundle: sections belong to different bundles")
)

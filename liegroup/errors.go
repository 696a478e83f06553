package liegroup

import "errors"

// Sentinel errors for Lie group construction and algebra operations.
var (
	// ErrDimension indicates a non-positive group (parameter-space) dimension.
	ErrDimension = errors.New("liegroup: dimension must be positive")

	// ErrGeneratorShape indicates non-square or unequally sized generators.
	ErrGeneratorShape = errors.New("liegroup: generators must be square and of equal size")

	// ErrGeneratorCount indicates more generators than the group dimension.
	ErrGeneratorCount = errors.New("liegroup: generator count exceeds dimension")

	// ErrNoGenerators indicates an algebra operation on a group without a generator basis.
	ErrNoGenerators = errors.New("liegroup: group has no generators")

	// ErrCoefficientCount indicates an algebra element with the wrong number of coefficients.
	ErrCoefficientCount = errors.New("liegroup: coefficient count does not match generator count")

	// ErrMatrixSize indicates a non-positive matrix order for Identity.
	ErrMatrixSize = errors.New("liegroup: matrix size must be positive")
)

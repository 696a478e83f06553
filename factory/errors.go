package factory

import "errors"

var (
	// ErrComponentCount indicates a constant connection whose component list
	// length differs from the base dimension.
	ErrComponentCount = errors.New("factory: component count must equal base dimension")

	// ErrComponentShape indicates a constant component that is not k×k.
	ErrComponentShape = errors.New("factory: component must be square of the fiber dimension")

	// ErrInstantonShape indicates an instanton requested on a bundle other
	// than a rank-2 bundle over a 4-dimensional base.
	ErrInstantonShape = errors.New("factory: instanton requires base dimension 4 and fiber dimension 2")

	// ErrInstantonScale indicates a non-positive instanton size.
	ErrInstantonScale = errors.New("factory: instanton scale must be positive")
)

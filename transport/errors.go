package transport

import (
	"errors"
	"fmt"
)

// Sentinel errors for transport and holonomy.
var (
	// ErrNilConnection indicates a Transporter built without a connection.
	ErrNilConnection = errors.New("transport: nil connection")

	// ErrNilPath indicates a nil path function.
	ErrNilPath = errors.New("transport: nil path")

	// ErrPathDimension indicates a path point whose length differs from the base dimension.
	ErrPathDimension = errors.New("transport: path point has wrong dimension")

	// ErrSteps indicates a non-positive step count.
	ErrSteps = errors.New("transport: steps must be positive")

	// ErrUnstable indicates the transport matrix diverged to NaN or Inf.
	ErrUnstable = errors.New("transport: integration unstable (transport matrix diverged)")

	// ErrUnknownIntegrator indicates an unrecognised integrator name.
	ErrUnknownIntegrator = errors.New("transport: unknown integrator")

	// ErrLoopShape indicates a degenerate loop builder argument.
	ErrLoopShape = errors.New("transport: invalid loop parameters")
)

// StepError reports the integration step at which transport failed.
type StepError struct {
	Step    int
	T       float64
	Wrapped error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("transport: step %d (t=%g): %v", e.Step, e.T, e.Wrapped)
}

func (e *StepError) Unwrap() error {
	return e.Wrapped
}

package transport

import (
	"math"

	"go.uber.org/zap"
)

const (
	// DefaultSteps is the number of equal parameter intervals on [0,1].
	DefaultSteps = 100

	// DefaultClosureTolerance bounds |γ(1) − γ(0)| before Holonomy logs an open loop.
	DefaultClosureTolerance = 1e-9
)

const (
	panicStepsInvalid      = "transport: WithSteps: steps must be positive"
	panicIntegratorNil     = "transport: WithIntegrator: integrator must be non-nil"
	panicDifferenceInvalid = "transport: WithDifferenceStep: h must lie in [0, 1]"
)

// Option mutates transport options.
type Option func(*Options)

// Options is the effective transport configuration.
type Options struct {
	steps      int
	integrator Integrator
	diffStep   float64 // 0 ⇒ use the integration step dt
	logger     *zap.Logger
}

// WithSteps sets the default step count. Panics when steps < 1.
func WithSteps(steps int) Option {
	if steps < 1 {
		panic(panicStepsInvalid)
	}

	return func(o *Options) { o.steps = steps }
}

// WithIntegrator selects the stepping scheme. Panics on nil.
func WithIntegrator(in Integrator) Option {
	if in == nil {
		panic(panicIntegratorNil)
	}

	return func(o *Options) { o.integrator = in }
}

// WithDifferenceStep sets the forward-difference step for path velocity.
// Zero (the default) reuses the integration step dt, which makes the
// velocity the exact secant of each interval.
func WithDifferenceStep(h float64) Option {
	if math.IsNaN(h) || h < 0 || h > 1 {
		panic(panicDifferenceInvalid)
	}

	return func(o *Options) { o.diffStep = h }
}

// WithLogger attaches a zap logger; nil restores the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) { o.logger = l }
}

// Steps returns the default step count.
func (o Options) Steps() int { return o.steps }

// Integrator returns the stepping scheme.
func (o Options) Integrator() Integrator { return o.integrator }

func gatherOptions(user ...Option) Options {
	o := Options{steps: DefaultSteps, integrator: Euler{}}
	for _, set := range user {
		set(&o)
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}

	return o
}

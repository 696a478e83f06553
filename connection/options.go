package connection

import (
	"math"

	"go.uber.org/zap"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the central finite-difference step used for ∂_μ.
	DefaultEpsilon = 1e-6

	// DefaultTolerance is the element-wise bound under which IsFlat treats
	// a curvature entry as zero.
	DefaultTolerance = 1e-10
)

// ---------- Internal panic messages ----------

const (
	panicEpsilonInvalid   = "connection: WithEpsilon: eps must be finite and positive"
	panicToleranceInvalid = "connection: WithTolerance: tol must be finite and non-negative"
)

// Option mutates connection options.
// Constructors panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	eps    float64     // > 0; DefaultEpsilon
	tol    float64     // >= 0; DefaultTolerance
	logger *zap.Logger // never nil after gatherOptions
}

// WithEpsilon sets the finite-difference step.
// Panics when eps is not finite and strictly positive.
func WithEpsilon(eps float64) Option {
	if isNonFinite(eps) || eps <= 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithTolerance sets the flatness tolerance used by IsFlat.
// Panics when tol is negative or not finite.
func WithTolerance(tol float64) Option {
	if isNonFinite(tol) || tol < 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tol = tol }
}

// WithLogger attaches a zap logger for debug diagnostics. A nil logger
// restores the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) { o.logger = l }
}

// NewOptions resolves opts over the defaults.
func NewOptions(opts ...Option) Options {
	return gatherOptions(defaultOptions(), opts...)
}

// Epsilon returns the finite-difference step.
func (o Options) Epsilon() float64 { return o.eps }

// Tolerance returns the flatness tolerance.
func (o Options) Tolerance() float64 { return o.tol }

// Logger returns the configured logger (never nil).
func (o Options) Logger() *zap.Logger { return o.logger }

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{eps: DefaultEpsilon, tol: DefaultTolerance, logger: zap.NewNop()}
}

// gatherOptions applies user setters over base in order; last writer wins.
func gatherOptions(base Options, user ...Option) Options {
	o := base
	for _, set := range user {
		set(&o)
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}

	return o
}

// isNonFinite reports NaN or ±Inf.
func isNonFinite(x float64) bool {
	return math.IsNaN(x) || math.IsInf(x, 0)
}

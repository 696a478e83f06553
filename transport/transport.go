package transport

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/gauge/bundle"
	"github.com/katalvlaran/gauge/connection"
	"github.com/katalvlaran/gauge/fingerprint"
	"github.com/katalvlaran/gauge/matrix"
)

// Path maps the parameter t ∈ [0,1] to a base point.
type Path func(t float64) []float64

// Transporter is a stateless parallel-transport operator for one connection.
type Transporter struct {
	conn *connection.Connection
	opts Options
}

// New binds a transporter to conn.
// Errors: ErrNilConnection.
func New(conn *connection.Connection, opts ...Option) (*Transporter, error) {
	if conn == nil {
		return nil, fmt.Errorf("transport.New: %w", ErrNilConnection)
	}
	o := gatherOptions(opts...)
	o.logger.Debug("transport configured",
		zap.String("integrator", o.integrator.Name()), zap.Int("steps", o.steps))

	return &Transporter{conn: conn, opts: o}, nil
}

// Connection returns the transported connection.
func (tr *Transporter) Connection() *connection.Connection { return tr.conn }

// Options returns the effective options.
func (tr *Transporter) Options() Options { return tr.opts }

// at evaluates path at t and checks the dimension.
func (tr *Transporter) at(path Path, t float64) ([]float64, error) {
	x := path(t)
	if d := tr.conn.Bundle().BaseDimension(); len(x) != d {
		return nil, fmt.Errorf("γ(%g) has %d coordinates, base dimension %d: %w", t, len(x), d, ErrPathDimension)
	}

	return x, nil
}

// omega pulls the connection back to the path parameter.
func (tr *Transporter) omega(path Path, dt float64) OmegaFunc {
	h := tr.opts.diffStep
	if h == 0 {
		h = dt
	}
	k := tr.conn.Rank()

	return func(t float64) (*matrix.Dense, error) {
		x, err := tr.at(path, t)
		if err != nil {
			return nil, err
		}
		t0, t1 := t, t+h
		if t1 > 1+1e-12 {
			t0, t1 = t-h, t
		}
		a, err := tr.at(path, t0)
		if err != nil {
			return nil, err
		}
		b, err := tr.at(path, t1)
		if err != nil {
			return nil, err
		}

		w, err := matrix.NewZeros(k, k)
		if err != nil {
			return nil, err
		}
		for mu := range x {
			v := (b[mu] - a[mu]) / h
			if v == 0 {
				continue
			}
			am, err := tr.conn.Potential(x, mu)
			if err != nil {
				return nil, err
			}
			if w, err = matrix.AddScaled(w, am, v); err != nil {
				return nil, err
			}
		}

		return w, nil
	}
}

// Transport integrates along path with the configured step count.
func (tr *Transporter) Transport(path Path) (*matrix.Dense, error) {
	return tr.TransportSteps(path, tr.opts.steps)
}

// TransportSteps integrates along path with steps equal intervals.
// Errors: ErrNilPath, ErrSteps, and a *StepError wrapping ErrUnstable,
// ErrPathDimension or a field error at the failing step.
//
// Complexity: O(steps · s · (d field evaluations + k³)), s being the
// integrator's stage count.
func (tr *Transporter) TransportSteps(path Path, steps int) (*matrix.Dense, error) {
	if path == nil {
		return nil, fmt.Errorf("Transport: %w", ErrNilPath)
	}
	if steps < 1 {
		return nil, fmt.Errorf("Transport: %d: %w", steps, ErrSteps)
	}
	u, err := matrix.NewIdentity(tr.conn.Rank())
	if err != nil {
		return nil, fmt.Errorf("Transport: %w", err)
	}
	dt := 1 / float64(steps)
	omega := tr.omega(path, dt)

	var t float64
	for i := 0; i < steps; i++ {
		t = float64(i) * dt
		next, err := tr.opts.integrator.Step(u, omega, t, dt)
		if err != nil {
			return nil, &StepError{Step: i, T: t, Wrapped: err}
		}
		if !next.IsFinite() {
			tr.opts.logger.Debug("transport diverged", zap.Int("step", i), zap.Float64("t", t))

			return nil, &StepError{Step: i, T: t, Wrapped: ErrUnstable}
		}
		u = next
	}

	return u, nil
}

// Holonomy transports around loop, which should start and end at p.
// Closure is not enforced; an open loop is logged at debug level.
func (tr *Transporter) Holonomy(p []float64, loop Path) (*matrix.Dense, error) {
	return tr.HolonomySteps(p, loop, tr.opts.steps)
}

// HolonomySteps is Holonomy with an explicit step count.
func (tr *Transporter) HolonomySteps(p []float64, loop Path, steps int) (*matrix.Dense, error) {
	if err := tr.conn.Bundle().Base().CheckPoint(p); err != nil {
		return nil, fmt.Errorf("Holonomy: %w", err)
	}
	if loop == nil {
		return nil, fmt.Errorf("Holonomy: %w", ErrNilPath)
	}
	start, err := tr.at(loop, 0)
	if err != nil {
		return nil, fmt.Errorf("Holonomy: %w", err)
	}
	end, err := tr.at(loop, 1)
	if err != nil {
		return nil, fmt.Errorf("Holonomy: %w", err)
	}
	if gap := math.Max(distance(start, end), distance(start, p)); gap > DefaultClosureTolerance {
		tr.opts.logger.Debug("open holonomy loop",
			zap.Float64s("base", p), zap.Float64s("start", start), zap.Float64s("end", end))
	}

	return tr.TransportSteps(loop, steps)
}

// distance is the Euclidean distance between equal-length points.
func distance(a, b []float64) float64 {
	var s float64
	for i := range a {
		d := a[i] - b[i]
		s += d * d
	}

	return math.Sqrt(s)
}

// WilsonLoop returns Tr(Holonomy(p, loop)) / rank; 1 for trivial holonomy.
func (tr *Transporter) WilsonLoop(p []float64, loop Path) (float64, error) {
	h, err := tr.Holonomy(p, loop)
	if err != nil {
		return 0, err
	}
	tr0, err := matrix.Trace(h)
	if err != nil {
		return 0, err
	}

	return tr0 / float64(tr.conn.Rank()), nil
}

// Apply transports a fibre point along path: U·v.
func (tr *Transporter) Apply(v *bundle.FiberPoint, path Path) (*bundle.FiberPoint, error) {
	u, err := tr.Transport(path)
	if err != nil {
		return nil, err
	}

	return v.Act(u)
}

// Fingerprint derives from the connection and the integration settings.
func (tr *Transporter) Fingerprint() string {
	return fingerprint.Of("parallel-transport", tr.conn, tr.opts.steps, tr.opts.integrator.Name(), tr.opts.diffStep)
}

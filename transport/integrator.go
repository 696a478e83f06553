package transport

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/gauge/matrix"
)

// OmegaFunc returns Ω(t) = Σ_μ A_μ(γ(t))·γ'^μ(t), the connection pulled back
// to the path parameter.
type OmegaFunc func(t float64) (*matrix.Dense, error)

// Integrator advances the transport equation dU/dt = −Ω(t)·U by one step.
type Integrator interface {
	Name() string
	Step(u *matrix.Dense, omega OmegaFunc, t, dt float64) (*matrix.Dense, error)
}

// derivative returns −Ω(t)·u.
func derivative(u *matrix.Dense, omega OmegaFunc, t float64) (*matrix.Dense, error) {
	w, err := omega(t)
	if err != nil {
		return nil, err
	}
	wu, err := matrix.Mul(w, u)
	if err != nil {
		return nil, err
	}

	return matrix.Scale(wu, -1)
}

// Euler is the explicit first-order scheme U ← U − dt·Ω(t)·U.
type Euler struct{}

// Name returns "euler".
func (Euler) Name() string { return "euler" }

// Step applies one Euler update.
func (Euler) Step(u *matrix.Dense, omega OmegaFunc, t, dt float64) (*matrix.Dense, error) {
	k1, err := derivative(u, omega, t)
	if err != nil {
		return nil, err
	}

	return matrix.AddScaled(u, k1, dt)
}

// Heun is the explicit trapezoidal predictor-corrector (second order).
type Heun struct{}

// Name returns "heun".
func (Heun) Name() string { return "heun" }

// Step applies one Heun update.
func (Heun) Step(u *matrix.Dense, omega OmegaFunc, t, dt float64) (*matrix.Dense, error) {
	k1, err := derivative(u, omega, t)
	if err != nil {
		return nil, err
	}
	pred, err := matrix.AddScaled(u, k1, dt)
	if err != nil {
		return nil, err
	}
	k2, err := derivative(pred, omega, t+dt)
	if err != nil {
		return nil, err
	}
	sum, err := matrix.Add(k1, k2)
	if err != nil {
		return nil, err
	}

	return matrix.AddScaled(u, sum, dt/2)
}

// RK4 is the classical fourth-order Runge–Kutta scheme.
type RK4 struct{}

// Name returns "rk4".
func (RK4) Name() string { return "rk4" }

// Step applies one RK4 update.
func (RK4) Step(u *matrix.Dense, omega OmegaFunc, t, dt float64) (*matrix.Dense, error) {
	k1, err := derivative(u, omega, t)
	if err != nil {
		return nil, err
	}
	u2, err := matrix.AddScaled(u, k1, dt/2)
	if err != nil {
		return nil, err
	}
	k2, err := derivative(u2, omega, t+dt/2)
	if err != nil {
		return nil, err
	}
	u3, err := matrix.AddScaled(u, k2, dt/2)
	if err != nil {
		return nil, err
	}
	k3, err := derivative(u3, omega, t+dt/2)
	if err != nil {
		return nil, err
	}
	u4, err := matrix.AddScaled(u, k3, dt)
	if err != nil {
		return nil, err
	}
	k4, err := derivative(u4, omega, t+dt)
	if err != nil {
		return nil, err
	}

	// U + dt/6·(k1 + 2k2 + 2k3 + k4)
	acc, err := matrix.AddScaled(k1, k2, 2)
	if err != nil {
		return nil, err
	}
	if acc, err = matrix.AddScaled(acc, k3, 2); err != nil {
		return nil, err
	}
	if acc, err = matrix.Add(acc, k4); err != nil {
		return nil, err
	}

	return matrix.AddScaled(u, acc, dt/6)
}

// IntegratorByName resolves "euler", "heun" or "rk4" (case-insensitive).
func IntegratorByName(name string) (Integrator, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "euler", "":
		return Euler{}, nil
	case "heun":
		return Heun{}, nil
	case "rk4":
		return RK4{}, nil
	}

	return nil, fmt.Errorf("IntegratorByName %q: %w", name, ErrUnknownIntegrator)
}

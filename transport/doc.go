// Package transport integrates a connection along parametrised paths in the
// base, producing the parallel-transport matrix U(1) of
//
//	dU/dt = −Ω(t)·U,  U(0) = I,  Ω(t) = Σ_μ A_μ(γ(t))·γ'^μ(t)
//
// on t ∈ [0,1] with a fixed number of equal steps. Holonomy is transport
// around a closed loop. Path velocity is a forward difference of the path
// (backward on the last interval); the stepping scheme is pluggable and
// defaults to explicit Euler, whose error scales with 1/steps.
package transport

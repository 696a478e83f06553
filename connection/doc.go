// Package connection implements gauge potentials on a fibre bundle: the
// covariant derivative of sections and the curvature two-form
//
//	F_{μν} = ∂_μ A_ν − ∂_ν A_μ + [A_μ, A_ν]
//
// Partial derivatives are central finite differences with step ε; the
// commutator is evaluated exactly at the base point. Nothing is cached: every
// query re-evaluates the Field, so a Connection over a pure Field is safe
// for concurrent read-only use.
package connection

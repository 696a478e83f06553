// Package chern evaluates Chern-class densities of a curvature two-form at a
// base point:
//
//	c₁(μ,ν) = Tr F_{μν} / 2π
//	c₂      = (1/8π²) Σ_{μ<ν} Tr(F_{μν}²)
//	ch      = rank + c₁ + (c₁² − 2c₂)/2, truncated at order 0, 1 or 2
//
// For a flat connection every density vanishes and the character reduces to
// the fibre rank.
package chern

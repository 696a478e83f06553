// Package curvature exposes the field strength of a connection as a
// two-form: components, traces and metric contractions.
//
// Form is a stateless view over a connection. At and Trace evaluate a
// single F_{μν}; Components lists every μ<ν pair; Scalar contracts
//
//	Σ_{μνρσ} g^{μρ} g^{νσ} Tr(F_{μν} F_{ρσ})
//
// with a symmetric, invertible metric (the identity when nil), and
// YangMillsDensity is −½ of the Euclidean contraction. Every query checks
// the base point first.
package curvature

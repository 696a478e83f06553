// Package manifold describes base spaces by dimension and coordinate labels,
// plus local charts centred at a point.
//
// A Manifold is immutable after construction: accessors return copies.
// Points are plain []float64 slices of length Dimension().
package manifold

// Package matrix offers the dense linear-algebra kernels the gauge engine is
// built on.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with error-returning At/Set.
//   - Fresh-result kernels: Add, Sub, AddScaled, Scale, Mul, MatVec, Transpose.
//   - Inverse (closed forms for orders 1 and 2, Gauss–Jordan with partial
//     pivoting above) and Det, both reporting ErrSingular instead of NaN.
//   - Lie-algebra helpers: Trace, Commutator, Conjugate, FrobeniusNorm.
//   - AllClose / IsZero for tolerance-based comparisons.
//
// Kernels accept the Matrix interface and return *Dense. Operands are never
// mutated and never aliased into results.
package matrix

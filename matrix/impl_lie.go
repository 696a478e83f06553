// SPDX-License-Identifier: MIT

// Package matrix - square-matrix helpers used by Lie-algebra valued fields.
//
// Purpose:
//   - Trace, commutator and Frobenius norm on square operands.
//   - AllClose for tolerance-based comparisons in flatness checks and tests.
//
// Determinism:
//   - Flat 0..n-1 loops on *Dense; interface operands are densified once.

package matrix

import "math"

// Trace returns Σ_i A[i,i] for a square matrix.
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(n).
func Trace(m Matrix) (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opTrace, err)
	}
	d, err := asDense(m)
	if err != nil {
		return 0, matrixErrorf(opTrace, err)
	}
	sum := ZeroSum
	for i := 0; i < d.r; i++ {
		sum += d.data[i*d.c+i]
	}

	return sum, nil
}

// Commutator returns [A,B] = AB − BA.
// Both operands must be square and of the same order.
// Complexity: O(n³) (two products) + O(n²).
func Commutator(a, b Matrix) (*Dense, error) {
	if err := ValidateSameSquare(a, b); err != nil {
		return nil, matrixErrorf(opCommutator, err)
	}
	ab, err := Mul(a, b)
	if err != nil {
		return nil, matrixErrorf(opCommutator, err)
	}
	ba, err := Mul(b, a)
	if err != nil {
		return nil, matrixErrorf(opCommutator, err)
	}

	return Sub(ab, ba)
}

// FrobeniusNorm returns √(Σ A[i,j]²).
// A nil matrix has norm 0.
// Complexity: O(r*c).
func FrobeniusNorm(m Matrix) float64 {
	if isNil(m) {
		return 0
	}
	d, err := asDense(m)
	if err != nil {
		return math.NaN()
	}
	var sum float64
	for _, v := range d.data {
		sum += v * v
	}

	return math.Sqrt(sum)
}

// MaxAbs returns max|A[i,j]|; 0 for a nil matrix.
// Complexity: O(r*c).
func MaxAbs(m Matrix) float64 {
	if isNil(m) {
		return 0
	}
	d, err := asDense(m)
	if err != nil {
		return math.NaN()
	}

	return maxAbs(d)
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// NaN never compares close.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol| (negative values are normalized).
//
// Complexity: Time O(r*c). Space O(1).
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	da, err := asDense(a)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	db, err := asDense(b)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	for idx := range da.data {
		diff := math.Abs(da.data[idx] - db.data[idx])
		// written as !(≤) so that NaN differences fail the check
		if !(diff <= atol+rtol*math.Abs(db.data[idx])) {
			return false, nil // early-exit on first violation
		}
	}

	return true, nil
}

// IsZero reports whether every entry satisfies |A[i,j]| ≤ tol.
// Complexity: O(r*c).
func IsZero(m Matrix, tol float64) bool {
	if isNil(m) {
		return true
	}
	d, err := asDense(m)
	if err != nil {
		return false
	}
	tol = math.Abs(tol)
	for _, v := range d.data {
		if !(math.Abs(v) <= tol) {
			return false
		}
	}

	return true
}

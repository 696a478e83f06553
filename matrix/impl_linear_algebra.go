// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation,
// including element-wise addition, subtraction, matrix multiplication,
// transpose, scalar scaling, matrix-vector products, inversion and
// determinants. All functions perform strict fail-fast validation and
// return clear errors on dimension mismatches or singular input.
//
// Notes:
//   - Every kernel allocates a fresh *Dense result; operands are never mutated
//     and never aliased into the result.
//   - All kernels use central validators and wrap errors via matrixErrorf.

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial sum value for accumulations.
const ZeroSum = 0.0

// SingularTolerance is the relative pivot threshold used by Inverse and Det:
// a pivot whose magnitude is ≤ SingularTolerance·max|A[i,j]| is treated as zero.
const SingularTolerance = 1e-12

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd        = "Add"
	opSub        = "Sub"
	opMul        = "Mul"
	opTranspose  = "Transpose"
	opScale      = "Scale"
	opMatVec     = "MatVec"
	opInverse    = "Inverse"
	opDet        = "Det"
	opTrace      = "Trace"
	opCommutator = "Commutator"
	opAllClose   = "AllClose"
	opAddScaled  = "AddScaled"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// Complexity:
//   - Time O(1), Space O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// asDense returns m itself when it is already *Dense, otherwise a Dense copy
// read through the interface. Used by kernels that only have a flat-slice path.
func asDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	out, err := NewDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, err
	}
	var v float64
	for i := 0; i < out.r; i++ {
		for j := 0; j < out.c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			out.data[i*out.c+j] = v
		}
	}

	return out, nil
}

// addSub computes elementwise out = a + sign*b (sign is +1, -1 or an axpy factor).
// Inputs must have identical shapes. A fresh Dense is allocated; operands are not mutated.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b). Allocate result Dense(rows, cols).
//   - Stage 2: Fast-path if both are *Dense - single flat loop 0..n-1.
//     Otherwise, fallback At/Set with fixed i→j order.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
func addSub(a, b Matrix, sign float64, opTag string) (*Dense, error) {
	// Validate shapes match
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	// Allocate result Dense
	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	// Fast path: *Dense with *Dense → single flat loop.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			length := rows * cols
			for idx := 0; idx < length; idx++ { // deterministic 0..n-1
				res.data[idx] = da.data[idx] + sign*db.data[idx]
			}

			return res, nil
		}
	}

	// Fallback: interface path with fixed i→j order.
	var i, j int       // loop iterators (deterministic order)
	var av, bv float64 // element temporaries
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			av, err = a.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opTag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			bv, err = b.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opTag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[i*cols+j] = av + sign*bv
		}
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add(a, b Matrix) (*Dense, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A - B and returns a fresh Dense result.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Sub(a, b Matrix) (*Dense, error) { return addSub(a, b, -1, opSub) }

// AddScaled computes C = A + α·B (axpy on whole matrices).
// Used to accumulate linear combinations such as Σ_μ A_μ·v^μ without temporaries.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func AddScaled(a, b Matrix, alpha float64) (*Dense, error) {
	return addSub(a, b, alpha, opAddScaled)
}

// Mul performs standard matrix multiplication C = A × B (no aliasing).
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: If A and B are *Dense, use i→k→j with row-major strides and skip zeros;
//     otherwise use i→j→k with a fixed order and zero-skip on A[i,k].
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, k         int // loop iterators
		av, bv, current float64
	)
	// Fast-path for two Dense matrices
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			// da.data layout: i*aCols + k
			// db.data layout: k*bCols + j
			var rowOffsetA, rowOffsetB, rowOffsetR int
			for i = 0; i < aRows; i++ {
				rowOffsetA = i * aCols
				rowOffsetR = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[rowOffsetA+k]
					if av == 0 {
						continue // skip zero for performance
					}
					rowOffsetB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
					}
				}
			}

			return res, nil
		}
	}

	// Fallback: generic interface triple-loop (i-j-k)
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = ZeroSum
			for k = 0; k < aCols; k++ {
				av, err = a.At(i, k)
				if err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", i, k, err))
				}
				if av == 0 {
					continue
				}
				bv, err = b.At(k, j)
				if err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", k, j, err))
				}
				current += av * bv
			}
			res.data[i*bCols+j] = current
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Complexity:
//   - Time O(r*c), Space O(r*c) for the returned matrix.
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	dm, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	rows, cols := dm.r, dm.c
	res, err := NewDense(cols, rows) // dims flipped
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	// data[i*cols + j] → res.data[j*rows + i]
	var baseSrc int
	for i := 0; i < rows; i++ {
		baseSrc = i * cols
		for j := 0; j < cols; j++ {
			res.data[j*rows+i] = dm.data[baseSrc+j]
		}
	}

	return res, nil
}

// Scale returns α·m as a fresh Dense.
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Scale(m Matrix, alpha float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	// Fast-path for Dense → Dense
	if dm, ok := m.(*Dense); ok {
		n := rows * cols
		for idx := 0; idx < n; idx++ {
			res.data[idx] = dm.data[idx] * alpha
		}

		return res, nil
	}

	// Fallback: generic interface loop
	var v float64
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opScale, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[i*cols+j] = v * alpha
		}
	}

	return res, nil
}

// MatVec computes y = m·x.
// Errors:
//   - ErrNilMatrix for nil m or x, ErrDimensionMismatch when len(x) != Cols(m).
//
// Complexity:
//   - Time O(r*c), Space O(r).
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, rows) // allocate exactly rows outputs

	// Fast-path: *Dense allows flat, row-major dot-products.
	if d, ok := m.(*Dense); ok {
		var base int
		var acc, xv float64
		for i := 0; i < d.r; i++ {
			acc = ZeroSum
			base = i * d.c
			for j := 0; j < d.c; j++ {
				xv = x[j]
				if xv != 0 { // skip zero multiplications
					acc += d.data[base+j] * xv
				}
			}
			y[i] = acc
		}

		return y, nil
	}

	// Fallback: interface-based dot-products via At.
	var mv float64
	var err error
	for i := 0; i < rows; i++ {
		y[i] = ZeroSum
		for j := 0; j < cols; j++ {
			mv, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opMatVec, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			y[i] += mv * x[j]
		}
	}

	return y, nil
}

// maxAbs returns max|A[i,j]| over the flat buffer.
func maxAbs(d *Dense) float64 {
	var out float64
	for _, v := range d.data {
		if a := math.Abs(v); a > out {
			out = a
		}
	}

	return out
}

// Inverse returns A⁻¹ for a square, non-singular A.
// MAIN DESCRIPTION:
//   - Order 1 and 2 use closed forms guarded by the determinant.
//   - Order n≥3 runs Gauss–Jordan elimination on the augmented block [A | I],
//     pivoting on the largest-magnitude entry remaining in each column.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare (shape), ErrNaNInf (non-finite entries),
//     ErrSingular when no pivot exceeds SingularTolerance·max|A|.
//
// Determinism:
//   - Row swaps pick the first maximal pivot (lowest row index on ties).
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Inverse(m Matrix) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	a, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if !a.IsFinite() {
		return nil, matrixErrorf(opInverse, ErrNaNInf)
	}
	n := a.r
	scale := maxAbs(a)
	if scale == 0 {
		return nil, matrixErrorf(opInverse, ErrSingular)
	}
	tol := SingularTolerance * scale

	switch n {
	case 1:
		if math.Abs(a.data[0]) <= tol {
			return nil, matrixErrorf(opInverse, ErrSingular)
		}
		inv, _ := NewDense(1, 1)
		inv.data[0] = 1 / a.data[0]
		if !inv.IsFinite() {
			return nil, matrixErrorf(opInverse, ErrNaNInf)
		}

		return inv, nil
	case 2:
		// Entries normalised by scale keep det within range for any magnitude.
		p, q, r, s := a.data[0]/scale, a.data[1]/scale, a.data[2]/scale, a.data[3]/scale
		det := p*s - q*r
		if math.Abs(det) <= SingularTolerance {
			return nil, matrixErrorf(opInverse, ErrSingular)
		}
		k := 1 / (det * scale)
		inv, _ := NewDense(2, 2)
		inv.data[0], inv.data[1] = s*k, -q*k
		inv.data[2], inv.data[3] = -r*k, p*k
		if !inv.IsFinite() {
			return nil, matrixErrorf(opInverse, ErrNaNInf)
		}

		return inv, nil
	}

	// Gauss–Jordan on working copies: w is reduced to I while inv accumulates A⁻¹.
	w := a.Copy()
	inv, err := NewIdentity(n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	var (
		col, row, pivotRow, j int
		pivot, best, factor   float64
	)
	for col = 0; col < n; col++ {
		// Stage 1: partial pivoting - largest |w[row,col]| for row ≥ col.
		pivotRow, best = col, math.Abs(w.data[col*n+col])
		for row = col + 1; row < n; row++ {
			if v := math.Abs(w.data[row*n+col]); v > best {
				pivotRow, best = row, v
			}
		}
		if best <= tol {
			return nil, matrixErrorf(opInverse, fmt.Errorf("pivot %d: %w", col, ErrSingular))
		}
		if pivotRow != col {
			swapRows(w, col, pivotRow)
			swapRows(inv, col, pivotRow)
		}

		// Stage 2: normalise the pivot row.
		pivot = w.data[col*n+col]
		for j = 0; j < n; j++ {
			w.data[col*n+j] /= pivot
			inv.data[col*n+j] /= pivot
		}

		// Stage 3: eliminate the column from every other row.
		for row = 0; row < n; row++ {
			if row == col {
				continue
			}
			factor = w.data[row*n+col]
			if factor == 0 {
				continue
			}
			for j = 0; j < n; j++ {
				w.data[row*n+j] -= factor * w.data[col*n+j]
				inv.data[row*n+j] -= factor * inv.data[col*n+j]
			}
		}
	}

	return inv, nil
}

// swapRows exchanges rows i and k of d in place.
func swapRows(d *Dense, i, k int) {
	ri := d.data[i*d.c : (i+1)*d.c]
	rk := d.data[k*d.c : (k+1)*d.c]
	for j := range ri {
		ri[j], rk[j] = rk[j], ri[j]
	}
}

// Det returns the determinant of a square matrix via Gaussian elimination
// with partial pivoting; the sign flips once per row swap.
// A column with no pivot above SingularTolerance·max|A| yields exactly 0.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Det(m Matrix) (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opDet, err)
	}
	a, err := asDense(m)
	if err != nil {
		return 0, matrixErrorf(opDet, err)
	}
	n := a.r
	tol := SingularTolerance * maxAbs(a)
	w := a.Copy()
	det := 1.0
	for col := 0; col < n; col++ {
		pivotRow, best := col, math.Abs(w.data[col*n+col])
		for row := col + 1; row < n; row++ {
			if v := math.Abs(w.data[row*n+col]); v > best {
				pivotRow, best = row, v
			}
		}
		if best <= tol {
			return 0, nil
		}
		if pivotRow != col {
			swapRows(w, col, pivotRow)
			det = -det
		}
		pivot := w.data[col*n+col]
		det *= pivot
		for row := col + 1; row < n; row++ {
			factor := w.data[row*n+col] / pivot
			if factor == 0 {
				continue
			}
			for j := col; j < n; j++ {
				w.data[row*n+j] -= factor * w.data[col*n+j]
			}
		}
	}

	return det, nil
}

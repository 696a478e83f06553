// Package liegroup represents structure groups as matrix groups.
//
// A Group carries a name, its parameter-space dimension and an optional
// ordered generator basis of its Lie algebra. The matrix order used by
// Identity, Multiply and Inverse is taken from the operands, not fixed at
// construction, so one Group value serves every representation.
//
// All operations are pure: inputs are never mutated and results never alias
// inputs. Unlike a raw elimination loop, Inverse reports matrix.ErrSingular
// and Multiply reports matrix.ErrDimensionMismatch instead of producing
// NaN or out-of-range results.
package liegroup

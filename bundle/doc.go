// Package bundle composes base manifolds, fibres and structure groups into
// locally trivial fibre bundles and provides sections over them.
//
// Fibres and points are immutable: FiberPoint.Act returns a new point and
// Section arithmetic returns new sections composing the operands.
package bundle

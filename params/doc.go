// Package params implements the fixed-or-dynamic parameter model shared by
// all lenses: a lens stores named default values, a caller may override any
// of them per call through a Packed context, and resolution follows
// "context value if present, else stored default, else configuration error".
//
// It also hosts the lens-plane coordinate transform (rigid translation plus
// optional rotation) every profile applies before evaluating its radial
// formulas.
//
// Errors:
//
//	ErrUnresolved - a field has no context value and no stored default.
//
// Resolution is pure and per call; Packed contexts are never retained.
package params

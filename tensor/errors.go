// Package tensor: sentinel error set and stable panic messages.
// All fallible public APIs return these sentinels and tests match them via
// errors.Is. Panics are reserved for programmer errors (incompatible operand
// shapes handed to element-wise kernels, Item on a non-scalar).

package tensor

import "errors"

var (
	// ErrBadShape is returned when a requested dimension is < 1.
	ErrBadShape = errors.New("tensor: invalid shape")

	// ErrDataLength is returned by New when len(data) does not equal the
	// product of the requested shape.
	ErrDataLength = errors.New("tensor: data length does not match shape")

	// ErrOutOfRange indicates an index outside valid bounds in At.
	ErrOutOfRange = errors.New("tensor: index out of range")

	// ErrShapeMismatch indicates two shapes that cannot be broadcast
	// together under trailing-dimension alignment.
	ErrShapeMismatch = errors.New("tensor: shapes are not broadcast-compatible")
)

// Stable panic messages (programmer errors only; no magic strings inline).
const (
	panicShapeMismatch = "tensor: operands are not broadcast-compatible"
	panicBadDimension  = "tensor: dimensions must be >= 1"
	panicItemNotScalar = "tensor: Item requires a single-element tensor"
)

// Package tensor: the Tensor type, constructors and accessors.
// Storage is a flat row-major []float64, mirroring a dense matrix layout but
// generalized to arbitrary rank. Tensors are immutable by convention: every
// operation allocates its result and no method mutates the receiver.

package tensor

import (
	"fmt"
	"math"
	"strings"
)

// DefaultEpsilon is the non-negative tolerance used by structural
// comparisons (shape-equal value checks in tests and callers).
const DefaultEpsilon = 1e-9

// Tensor is an N-dimensional array of float64 values in row-major order.
// A rank-0 Tensor holds exactly one element and behaves as a scalar under
// broadcasting. The zero value is not usable; use a constructor.
type Tensor struct {
	shape []int     // dimension sizes, all >= 1; empty for rank-0
	data  []float64 // flat backing storage, length == product(shape)
}

// Scalar returns a rank-0 tensor holding v.
func Scalar(v float64) *Tensor {
	return &Tensor{shape: nil, data: []float64{v}}
}

// FromSlice returns a rank-1 tensor with a copy of vs.
func FromSlice(vs []float64) *Tensor {
	data := make([]float64, len(vs))
	copy(data, vs)

	return &Tensor{shape: []int{len(vs)}, data: data}
}

// Zeros returns a tensor of the given shape filled with zeros.
// Zeros() with no dimensions returns a rank-0 scalar zero.
// Panics if any dimension is < 1 (programmer error).
func Zeros(shape ...int) *Tensor {
	n := sizeOf(shape)

	return &Tensor{shape: cloneShape(shape), data: make([]float64, n)}
}

// Full returns a tensor of the given shape with every element set to v.
// Panics if any dimension is < 1 (programmer error).
func Full(v float64, shape ...int) *Tensor {
	t := Zeros(shape...)
	for i := range t.data {
		t.data[i] = v
	}

	return t
}

// New builds a tensor from an explicit shape and flat row-major data.
// The data slice is copied. Returns ErrBadShape if a dimension is < 1 and
// ErrDataLength if len(data) does not match the shape product.
func New(shape []int, data []float64) (*Tensor, error) {
	n := 1
	for _, d := range shape {
		if d < 1 {
			return nil, fmt.Errorf("dimension %d: %w", d, ErrBadShape)
		}
		n *= d
	}
	if len(data) != n {
		return nil, fmt.Errorf("len(data)=%d, shape %v needs %d: %w", len(data), shape, n, ErrDataLength)
	}
	cp := make([]float64, n)
	copy(cp, data)

	return &Tensor{shape: cloneShape(shape), data: cp}, nil
}

// Shape returns a copy of the tensor's dimension sizes (empty for rank-0).
func (t *Tensor) Shape() []int { return cloneShape(t.shape) }

// Rank returns the number of dimensions (0 for a scalar).
func (t *Tensor) Rank() int { return len(t.shape) }

// Size returns the total number of elements.
func (t *Tensor) Size() int { return len(t.data) }

// Data returns a copy of the flat row-major element storage.
func (t *Tensor) Data() []float64 {
	cp := make([]float64, len(t.data))
	copy(cp, t.data)

	return cp
}

// At retrieves the element at the given multi-index. The index rank must
// match the tensor rank; out-of-bounds indices return ErrOutOfRange.
func (t *Tensor) At(idx ...int) (float64, error) {
	if len(idx) != len(t.shape) {
		return 0, fmt.Errorf("index %v on rank-%d tensor: %w", idx, len(t.shape), ErrOutOfRange)
	}
	off := 0
	for d, i := range idx {
		if i < 0 || i >= t.shape[d] {
			return 0, fmt.Errorf("index %v, shape %v: %w", idx, t.shape, ErrOutOfRange)
		}
		off = off*t.shape[d] + i
	}

	return t.data[off], nil
}

// Item returns the sole element of a single-element tensor (any rank).
// Panics if the tensor holds more than one element (programmer error).
func (t *Tensor) Item() float64 {
	if len(t.data) != 1 {
		panic(panicItemNotScalar)
	}

	return t.data[0]
}

// Clone returns a deep copy.
func (t *Tensor) Clone() *Tensor {
	cp := make([]float64, len(t.data))
	copy(cp, t.data)

	return &Tensor{shape: cloneShape(t.shape), data: cp}
}

// AllFinite reports whether every element is free of NaN and ±Inf.
func (t *Tensor) AllFinite() bool {
	for _, v := range t.data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}

// String implements fmt.Stringer for debugging: shape plus flat values.
func (t *Tensor) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Tensor%v", t.shape)
	sb.WriteString("[")
	for i, v := range t.data {
		if i > 0 {
			sb.WriteString(" ")
		}
		fmt.Fprintf(&sb, "%g", v)
	}
	sb.WriteString("]")

	return sb.String()
}

// sizeOf validates shape dimensions and returns their product.
// Panics on dimensions < 1; used by panicking constructors only.
func sizeOf(shape []int) int {
	n := 1
	for _, d := range shape {
		if d < 1 {
			panic(panicBadDimension)
		}
		n *= d
	}

	return n
}

// cloneShape copies a shape slice; nil-safe.
func cloneShape(shape []int) []int {
	if len(shape) == 0 {
		return nil
	}
	cp := make([]int, len(shape))
	copy(cp, shape)

	return cp
}

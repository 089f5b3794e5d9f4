// Package tensor: broadcasting rules and the element iteration engine.
// Broadcasting follows the standard array rule: shapes are aligned on their
// trailing dimensions, missing leading dimensions count as size 1, and a
// size-1 dimension stretches to match its partner. Stretched dimensions are
// realized with zero strides, never by materializing expanded storage.

package tensor

import "fmt"

// BroadcastShapes resolves the common shape of a and b under
// trailing-dimension alignment, or ErrShapeMismatch when the shapes are
// incompatible. Either input may be empty (rank-0 scalar).
// Complexity: O(max rank).
func BroadcastShapes(a, b []int) ([]int, error) {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	if n == 0 {
		return nil, nil
	}
	out := make([]int, n)
	for i := 1; i <= n; i++ {
		da, db := 1, 1
		if i <= len(a) {
			da = a[len(a)-i]
		}
		if i <= len(b) {
			db = b[len(b)-i]
		}
		switch {
		case da == db:
			out[n-i] = da
		case da == 1:
			out[n-i] = db
		case db == 1:
			out[n-i] = da
		default:
			return nil, fmt.Errorf("%v vs %v: %w", a, b, ErrShapeMismatch)
		}
	}

	return out, nil
}

// rowMajorStrides returns the row-major strides of shape.
func rowMajorStrides(shape []int) []int {
	s := make([]int, len(shape))
	acc := 1
	for i := len(shape) - 1; i >= 0; i-- {
		s[i] = acc
		acc *= shape[i]
	}

	return s
}

// broadcastStrides returns strides for walking src as if it had shape out.
// Leading dimensions absent from src and size-1 dimensions stretched to a
// larger partner get stride 0, so the same source element is revisited.
// src must be broadcast-compatible with out (caller guarantees).
func broadcastStrides(src, out []int) []int {
	ss := rowMajorStrides(src)
	bs := make([]int, len(out))
	off := len(out) - len(src)
	for i := off; i < len(out); i++ {
		if src[i-off] == 1 && out[i] != 1 {
			bs[i] = 0
		} else {
			bs[i] = ss[i-off]
		}
	}

	return bs
}

// zip2 applies f over the broadcast of a and b, allocating the result.
// Panics with a stable message on incompatible shapes (programmer error).
// Complexity: O(result size).
func zip2(a, b *Tensor, f func(x, y float64) float64) *Tensor {
	shape, err := BroadcastShapes(a.shape, b.shape)
	if err != nil {
		panic(panicShapeMismatch)
	}
	out := Zeros(shape...)
	sa := broadcastStrides(a.shape, shape)
	sb := broadcastStrides(b.shape, shape)

	idx := make([]int, len(shape))
	oa, ob := 0, 0
	for i := range out.data {
		out.data[i] = f(a.data[oa], b.data[ob])
		// Odometer increment over the output multi-index, carrying source
		// offsets along so no per-element index arithmetic is needed.
		for d := len(shape) - 1; d >= 0; d-- {
			idx[d]++
			oa += sa[d]
			ob += sb[d]
			if idx[d] < shape[d] {
				break
			}
			idx[d] = 0
			oa -= sa[d] * shape[d]
			ob -= sb[d] * shape[d]
		}
	}

	return out
}

// zip3 applies f over the broadcast of a, b and c, allocating the result.
// Panics with a stable message on incompatible shapes (programmer error).
// Complexity: O(result size).
func zip3(a, b, c *Tensor, f func(x, y, z float64) float64) *Tensor {
	shape, err := BroadcastShapes(a.shape, b.shape)
	if err != nil {
		panic(panicShapeMismatch)
	}
	shape, err = BroadcastShapes(shape, c.shape)
	if err != nil {
		panic(panicShapeMismatch)
	}
	out := Zeros(shape...)
	sa := broadcastStrides(a.shape, shape)
	sb := broadcastStrides(b.shape, shape)
	sc := broadcastStrides(c.shape, shape)

	idx := make([]int, len(shape))
	oa, ob, oc := 0, 0, 0
	for i := range out.data {
		out.data[i] = f(a.data[oa], b.data[ob], c.data[oc])
		for d := len(shape) - 1; d >= 0; d-- {
			idx[d]++
			oa += sa[d]
			ob += sb[d]
			oc += sc[d]
			if idx[d] < shape[d] {
				break
			}
			idx[d] = 0
			oa -= sa[d] * shape[d]
			ob -= sb[d] * shape[d]
			oc -= sc[d] * shape[d]
		}
	}

	return out
}

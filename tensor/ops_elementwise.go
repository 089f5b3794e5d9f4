// Package tensor: element-wise operation surface.
// Every operation evaluates every element of its (broadcast) operands and
// allocates a fresh result; none short-circuits on scalar truth values.
// Piecewise formulas are therefore written as full-domain branch expressions,
// domain-guarded with clamps, and merged per element via Where.

package tensor

import "math"

// ---------- binary arithmetic ----------

// Add returns a + b element-wise over the broadcast shape.
func Add(a, b *Tensor) *Tensor {
	return zip2(a, b, func(x, y float64) float64 { return x + y })
}

// Sub returns a - b element-wise over the broadcast shape.
func Sub(a, b *Tensor) *Tensor {
	return zip2(a, b, func(x, y float64) float64 { return x - y })
}

// Mul returns a * b element-wise over the broadcast shape.
func Mul(a, b *Tensor) *Tensor {
	return zip2(a, b, func(x, y float64) float64 { return x * y })
}

// Div returns a / b element-wise over the broadcast shape.
// Division by zero follows IEEE-754 (±Inf, NaN); no validation.
func Div(a, b *Tensor) *Tensor {
	return zip2(a, b, func(x, y float64) float64 { return x / y })
}

// Pow returns a**b element-wise over the broadcast shape.
func Pow(a, b *Tensor) *Tensor { return zip2(a, b, math.Pow) }

// Atan2 returns atan2(y, x) element-wise over the broadcast shape.
func Atan2(y, x *Tensor) *Tensor { return zip2(y, x, math.Atan2) }

// Hypot returns sqrt(a² + b²) element-wise, overflow-safe.
func Hypot(a, b *Tensor) *Tensor { return zip2(a, b, math.Hypot) }

// ---------- scalar conveniences ----------

// AddScalar returns t + v element-wise.
func AddScalar(t *Tensor, v float64) *Tensor {
	return t.Map(func(x float64) float64 { return x + v })
}

// SubScalar returns t - v element-wise.
func SubScalar(t *Tensor, v float64) *Tensor {
	return t.Map(func(x float64) float64 { return x - v })
}

// MulScalar returns t * v element-wise.
func MulScalar(t *Tensor, v float64) *Tensor {
	return t.Map(func(x float64) float64 { return x * v })
}

// DivScalar returns t / v element-wise.
func DivScalar(t *Tensor, v float64) *Tensor {
	return t.Map(func(x float64) float64 { return x / v })
}

// PowScalar returns t**v element-wise.
func PowScalar(t *Tensor, v float64) *Tensor {
	return t.Map(func(x float64) float64 { return math.Pow(x, v) })
}

// ---------- unary ----------

// Neg returns -t element-wise.
func Neg(t *Tensor) *Tensor { return t.Map(func(x float64) float64 { return -x }) }

// Abs returns |t| element-wise.
func Abs(t *Tensor) *Tensor { return t.Map(math.Abs) }

// Sqrt returns √t element-wise; negative inputs yield NaN (guard upstream
// with ClampMin when the argument may stray outside the domain).
func Sqrt(t *Tensor) *Tensor { return t.Map(math.Sqrt) }

// Square returns t² element-wise.
func Square(t *Tensor) *Tensor { return t.Map(func(x float64) float64 { return x * x }) }

// Exp returns eᵗ element-wise.
func Exp(t *Tensor) *Tensor { return t.Map(math.Exp) }

// Log returns ln(t) element-wise; Log(0) = -Inf, Log(x<0) = NaN.
func Log(t *Tensor) *Tensor { return t.Map(math.Log) }

// Atan returns arctan(t) element-wise.
func Atan(t *Tensor) *Tensor { return t.Map(math.Atan) }

// Atanh returns artanh(t) element-wise; defined on (-1, 1), ±1 give ±Inf.
func Atanh(t *Tensor) *Tensor { return t.Map(math.Atanh) }

// Acos returns arccos(t) element-wise; defined on [-1, 1], outside gives NaN
// (guard with Clamp when feeding a discarded piecewise branch).
func Acos(t *Tensor) *Tensor { return t.Map(math.Acos) }

// Acosh returns arcosh(t) element-wise; defined on [1, ∞), below gives NaN
// (guard with ClampMin when feeding a discarded piecewise branch).
func Acosh(t *Tensor) *Tensor { return t.Map(math.Acosh) }

// ---------- comparison masks ----------

// Greater returns a 0/1 mask of a > b over the broadcast shape.
func Greater(a, b *Tensor) *Tensor {
	return zip2(a, b, func(x, y float64) float64 {
		if x > y {
			return 1
		}

		return 0
	})
}

// Less returns a 0/1 mask of a < b over the broadcast shape.
func Less(a, b *Tensor) *Tensor {
	return zip2(a, b, func(x, y float64) float64 {
		if x < y {
			return 1
		}

		return 0
	})
}

// Equal returns a 0/1 mask of exact a == b over the broadcast shape.
// Exactness is intentional: piecewise boundaries (r == 1) are selected by
// exact comparison so the documented closed-form boundary value is produced.
func Equal(a, b *Tensor) *Tensor {
	return zip2(a, b, func(x, y float64) float64 {
		if x == y {
			return 1
		}

		return 0
	})
}

// ---------- selection and domain guards ----------

// Where merges x and y per element: where cond is non-zero the result takes
// x, elsewhere y. All three operands broadcast together and both candidate
// tensors are fully evaluated by construction (they were built before the
// call), which keeps piecewise kernels free of scalar short-circuits.
func Where(cond, x, y *Tensor) *Tensor {
	return zip3(cond, x, y, func(c, xv, yv float64) float64 {
		if c != 0 {
			return xv
		}

		return yv
	})
}

// ClampMin returns t with every element raised to at least lo.
func ClampMin(t *Tensor, lo float64) *Tensor {
	return t.Map(func(x float64) float64 { return math.Max(x, lo) })
}

// ClampMax returns t with every element lowered to at most hi.
func ClampMax(t *Tensor, hi float64) *Tensor {
	return t.Map(func(x float64) float64 { return math.Min(x, hi) })
}

// Clamp returns t with every element restricted to [lo, hi].
func Clamp(t *Tensor, lo, hi float64) *Tensor {
	return t.Map(func(x float64) float64 { return math.Min(math.Max(x, lo), hi) })
}

// ---------- functional helpers ----------

// Map applies f to every element, allocating the result.
// Complexity: O(size).
func (t *Tensor) Map(f func(float64) float64) *Tensor {
	out := &Tensor{shape: cloneShape(t.shape), data: make([]float64, len(t.data))}
	for i, v := range t.data {
		out.data[i] = f(v)
	}

	return out
}

// Zip applies f over the broadcast of a and b, allocating the result.
// Panics with a stable message on incompatible shapes (programmer error).
func Zip(a, b *Tensor, f func(x, y float64) float64) *Tensor { return zip2(a, b, f) }

// MaxAbsDiff returns the largest |a-b| over the broadcast of a and b.
// Useful for tolerance checks on whole grids.
func MaxAbsDiff(a, b *Tensor) float64 {
	d := zip2(a, b, func(x, y float64) float64 { return math.Abs(x - y) })
	maxV := 0.0
	for _, v := range d.data {
		if v > maxV || math.IsNaN(v) {
			maxV = v
		}
	}

	return maxV
}

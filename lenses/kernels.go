// Package lenses: piecewise NFW projection kernels.
//
// Each kernel takes the dimensionless radius r = ξ/r_s and selects one of
// three analytic branches per element: exterior (r > 1), interior (r < 1)
// and the exact boundary r = 1, where the interior/exterior forms meet in a
// removable 0/0 indeterminate that is replaced by its closed-form limit.
//
// Contract (holds for every kernel):
//
//   - All three branches are evaluated for every element; selection is a
//     per-element Where merge, never a scalar short-circuit, so the code
//     stays valid under vectorized and derivative-propagating evaluation.
//   - Branch sub-expressions are domain-guarded before the merge discards
//     them: square-root arguments are floored, acos/acosh arguments are
//     clamped into their domains. A discarded branch therefore contributes
//     a finite dummy value, never NaN.
//
// Closed forms after Wright & Brainerd (2000) eq. 11-16 and Bartelmann
// (1996):
//
//	f(r>1) = 1 − 2/√(r²−1) · atan √((r−1)/(r+1))    f(1) = 0
//	f(r<1) = 1 − 2/√(1−r²) · atanh √((1−r)/(1+r))
//	g(r>1) = ln²(r/2) + acos²(1/r)                  g(1) = ln²(1/2)
//	g(r<1) = ln²(r/2) − acosh²(1/r)
//	h(r>1) = ln(r/2) + acos(1/r)/√(r²−1)            h(1) = 1 + ln(1/2)
//	h(r<1) = ln(r/2) + acosh(1/r)/√(1−r²)

package lenses

import (
	"math"

	"github.com/parlange/caustics/tensor"
)

// kernelFloor is the positive floor applied to (r²−1)-type square-root
// arguments inside a branch. It only engages for elements the merge will
// discard (the spacing of adjacent float64 values around 1 keeps genuine
// branch elements well above it), and keeps the discarded branch finite.
const kernelFloor = 1e-18

// kernelF is the convergence kernel. f(r) itself vanishes at r = 1; the
// convergence uses the ratio f(r)/(r²−1), see kernelFRatio.
func kernelF(r *tensor.Tensor) *tensor.Tensor {
	one := tensor.Scalar(1)
	// r²−1 and 1−r² are formed as (r∓1)·(r+1) products: near the boundary
	// the difference r−1 is exact in float64 (Sterbenz), while squaring r
	// first rounds away the ε² term and flattens the ratio limit.
	outFactor := tensor.Mul(tensor.Sub(r, one), tensor.Add(r, one))
	inFactor := tensor.Mul(tensor.Sub(one, r), tensor.Add(one, r))

	// Exterior r > 1: 1 − 2/√(r²−1) · atan √((r−1)/(r+1)).
	rootOut := tensor.Sqrt(tensor.ClampMin(outFactor, kernelFloor))
	argOut := tensor.Sqrt(tensor.ClampMin(tensor.Div(tensor.Sub(r, one), tensor.Add(r, one)), 0))
	fOut := tensor.Sub(one, tensor.MulScalar(tensor.Div(tensor.Atan(argOut), rootOut), 2))

	// Interior r < 1: 1 − 2/√(1−r²) · atanh √((1−r)/(1+r)).
	rootIn := tensor.Sqrt(tensor.ClampMin(inFactor, kernelFloor))
	argIn := tensor.Sqrt(tensor.ClampMin(tensor.Div(tensor.Sub(one, r), tensor.Add(one, r)), 0))
	fIn := tensor.Sub(one, tensor.MulScalar(tensor.Div(tensor.Atanh(argIn), rootIn), 2))

	return tensor.Where(tensor.Greater(r, one), fOut,
		tensor.Where(tensor.Less(r, one), fIn, tensor.Scalar(0)))
}

// kernelFRatio evaluates f(r)/(r²−1) with its removable singularity at
// r = 1 replaced by the explicit limit 1/3. The denominator is swapped for
// a finite dummy on boundary elements before the division so the discarded
// lane never evaluates 0/0.
func kernelFRatio(r *tensor.Tensor) *tensor.Tensor {
	one := tensor.Scalar(1)
	atBoundary := tensor.Equal(r, one)
	// Factored like the kernel roots: (r−1)(r+1) keeps the denominator
	// commensurate with f near the boundary instead of rounding to r²−1.
	den := tensor.Mul(tensor.Sub(r, one), tensor.Add(r, one))
	safeDen := tensor.Where(atBoundary, one, den)

	return tensor.Where(atBoundary, tensor.Scalar(1.0/3.0), tensor.Div(kernelF(r), safeDen))
}

// kernelG is the potential kernel. The ln²(r/2) term is branch-free; only
// the inverse-trigonometric term is piecewise.
func kernelG(r *tensor.Tensor) *tensor.Tensor {
	one := tensor.Scalar(1)
	term1 := tensor.Square(tensor.Log(tensor.DivScalar(r, 2)))
	inv := tensor.Div(one, r)

	// Exterior r > 1: +acos²(1/r); clamp keeps the discarded lane (1/r > 1)
	// inside acos's domain.
	gOut := tensor.Square(tensor.Acos(tensor.Clamp(inv, -1, 1)))

	// Interior r < 1: −acosh²(1/r); clamp keeps the discarded lane
	// (1/r < 1) inside acosh's domain.
	gIn := tensor.Neg(tensor.Square(tensor.Acosh(tensor.ClampMin(inv, 1))))

	term2 := tensor.Where(tensor.Greater(r, one), gOut,
		tensor.Where(tensor.Less(r, one), gIn, tensor.Scalar(0)))

	return tensor.Add(term1, term2)
}

// kernelH is the reduced-deflection kernel.
func kernelH(r *tensor.Tensor) *tensor.Tensor {
	one := tensor.Scalar(1)
	term1 := tensor.Log(tensor.DivScalar(r, 2))
	inv := tensor.Div(one, r)

	// Exterior r > 1: ln(r/2) + acos(1/r)/√(r²−1), root factored as in kernelF.
	rootOut := tensor.Sqrt(tensor.ClampMin(tensor.Mul(tensor.Sub(r, one), tensor.Add(r, one)), kernelFloor))
	hOut := tensor.Add(term1, tensor.Div(tensor.Acos(tensor.Clamp(inv, -1, 1)), rootOut))

	// Interior r < 1: ln(r/2) + acosh(1/r)/√(1−r²).
	rootIn := tensor.Sqrt(tensor.ClampMin(tensor.Mul(tensor.Sub(one, r), tensor.Add(one, r)), kernelFloor))
	hIn := tensor.Add(term1, tensor.Div(tensor.Acosh(tensor.ClampMin(inv, 1)), rootIn))

	return tensor.Where(tensor.Greater(r, one), hOut,
		tensor.Where(tensor.Less(r, one), hIn, tensor.Scalar(1+math.Log(0.5))))
}

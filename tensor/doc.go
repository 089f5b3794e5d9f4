// Package tensor provides N-dimensional float64 arrays with NumPy-style
// broadcasting and element-wise math, sized for batched scientific
// computation rather than general linear algebra.
//
// What:
//
//   - Tensor: a rank-N array stored row-major in a flat []float64.
//     Rank-0 tensors act as scalars and broadcast against anything.
//   - BroadcastShapes: trailing-dimension alignment with size-1 expansion,
//     the standard array-broadcasting rule.
//   - Element-wise kernels: arithmetic, powers, roots, logs, inverse
//     trigonometric/hyperbolic functions, comparison masks, Where selection
//     and domain clamps. Every kernel evaluates every element; there are no
//     scalar short-circuits, so piecewise formulas can be written as
//     full-domain branches merged by Where.
//
// Why:
//
//   - Lensing observables are evaluated over many sky positions and many
//     parameter sets at once; scalars and grids must flow through the same
//     code path.
//   - Piecewise-analytic kernels (interior/exterior/boundary branches) need
//     element-wise selection plus per-branch domain guards (ClampMin before
//     Sqrt, Clamp before Acos) so a discarded branch never produces NaN.
//
// Numeric policy:
//
//   - No NaN/Inf validation on ingestion: non-finite values propagate
//     silently, matching the "silent numerical degradation" contract of the
//     lensing core. Use (*Tensor).AllFinite to audit results.
//   - DefaultEpsilon is the tolerance used by structural comparisons.
//
// Errors:
//
//   - ErrBadShape:       a requested dimension is < 1 in New.
//   - ErrDataLength:     New data length does not match the shape product.
//   - ErrOutOfRange:     At index outside valid bounds.
//   - ErrShapeMismatch:  BroadcastShapes inputs are incompatible.
//
// Element-wise operations treat incompatible operand shapes as programmer
// error and panic with a stable message; pre-validate with BroadcastShapes
// when operand shapes come from untrusted input.
package tensor

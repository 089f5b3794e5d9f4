// Package lenses computes thin-lens gravitational-lensing observables for
// analytic dark-matter halo profiles. The NFW (Navarro-Frenk-White) profile
// is the resident implementation: deflection angle, reduced deflection
// angle, convergence and lensing potential from closed-form projection
// integrals.
//
// What:
//
//   - NFW: a halo described by lens redshift, center, total mass m (within
//     the Δ=200 overdensity radius), concentration c and a fixed softening
//     length. Each physical parameter is either stored on the lens or
//     supplied per call through a params.Packed override context.
//   - Radial scale functions: ScaleRadius, ScaleDensity and
//     DimensionlessSurfaceDensity, built on a Cosmology collaborator.
//   - Observables: ReducedDeflectionAngle, DeflectionAngle, Convergence,
//     Potential — pure, batched, element-wise over broadcastable tensors.
//
// The numerically delicate heart is the family of piecewise projection
// kernels (see kernels.go): each has interior (r<1), exterior (r>1) and
// exactly-at-scale-radius branches with removable singularities at r=1.
// All branches are evaluated for every element with domain-guarded
// sub-expressions and merged per element, so boundary elements receive
// their documented closed-form values instead of 0/0.
//
// Error policy (silent numerical degradation):
//
//   - Invalid physics (m ≤ 0, c ≤ 0, z_s ≤ z_l) propagates as non-finite
//     or non-positive values; a bad element never aborts a batch.
//   - The only returned errors are parameter-resolution failures
//     (params.ErrUnresolved) surfaced unmodified from the params layer.
//   - No result is non-finite at r = 1; every kernel and every observable
//     dividing by (r²−1)-type factors special-cases the boundary.
//
// References: Wright & Brainerd (2000); Bartelmann (1996).
package lenses

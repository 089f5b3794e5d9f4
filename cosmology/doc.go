// Package cosmology provides the flat ΛCDM background the lensing core
// needs: angular-diameter distances and critical (surface) densities as
// element-wise functions of redshift.
//
// What:
//
//   - FlatLambdaCDM: radiation-free flat Friedmann model parameterized by
//     H0 (km/s/Mpc) and the matter fraction Ωm0, built with functional
//     options against documented defaults (Planck 2018 values).
//   - Distances by fixed-panel composite-Simpson quadrature of the inverse
//     expansion rate; deterministic, no adaptive state, no caching.
//   - All public methods operate element-wise on tensors and broadcast,
//     so one cosmology serves scalar and gridded queries alike.
//
// Units: Mpc for lengths, M☉/Mpc³ for densities, M☉/Mpc² for surface
// densities.
//
// Numeric policy:
//
//   - Redshift inputs are not validated. Unphysical orderings (z2 ≤ z1 in
//     AngularDiameterDistanceZ1Z2, negative z) silently degrade to
//     non-positive or non-finite outputs, matching the lensing core's
//     contract that a bad element must not abort a batch.
//
// Panics are reserved for nonsensical constructor parameters (H0 ≤ 0,
// Ωm0 outside (0, 1]), which are programmer errors.
package cosmology

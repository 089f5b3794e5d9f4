// Package caustics is a batched gravitational-lensing toolkit — closed-form
// NFW halo observables over broadcast tensor grids, with a small flat-ΛCDM
// cosmology engine underneath.
//
// 🚀 What is caustics?
//
//	A pure-Go lensing core that brings together:
//		• Tensors: rank-N row-major arrays with NumPy-style broadcasting
//		• Cosmology: flat ΛCDM distances, critical densities, Σ_crit
//		• Lenses: NFW deflection angle, convergence and lensing potential
//		• Params: per-call parameter overrides for sampling workflows
//		• lensmap: a CLI that renders observable maps to CSV
//
// ✨ Why choose caustics?
//
//   - Closed forms only – no ray shooting, no numerical differentiation
//   - Batched by construction – one call evaluates a whole grid of halos
//   - Boundary-exact – the r = r_s branch point is handled analytically
//   - Pure Go – no cgo, no GPU runtime
//
// Under the hood, everything is organized under five subpackages:
//
//	tensor/    — broadcasting arrays & element-wise math
//	constants/ — shared physical constants (G/c², ρ_crit,0/h², unit factors)
//	cosmology/ — flat ΛCDM background & lensing distances
//	params/    — packed parameter resolution & frame transforms
//	lenses/    — the NFW profile and its observables
//
// Quick sketch of a scene:
//
//	      α(θ)
//	S────────────►I        source S, image I, halo ⊙ at the lens plane
//	      ⊙
//
// Start with lenses.NewNFW, or run cmd/lensmap for an end-to-end demo.
//
//	go get github.com/parlange/caustics
package caustics

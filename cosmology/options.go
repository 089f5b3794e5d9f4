// Package cosmology: functional configuration for FlatLambdaCDM.
// Defaults are constants (single source of truth); WithX constructors
// validate strictly and panic on nonsensical values (programmer error).

package cosmology

import "math"

// DEFAULTS - single source of truth for zero-option behavior.
const (
	// DefaultH0 is the Hubble constant in km/s/Mpc (Planck 2018, TT,TE,EE
	// +lowE+lensing+BAO).
	DefaultH0 = 67.66

	// DefaultOmegaM is the present-day matter density fraction Ωm0
	// (Planck 2018, same chain).
	DefaultOmegaM = 0.30966
)

// quadraturePanels is the number of composite-Simpson panels used per
// comoving-distance integral. Simpson error scales as (z/panels)⁴; 512
// panels keep the relative error on the smooth 1/E(z) integrand near
// 3e-11 out to z=5, comfortably under the 1e-9 analytic-check tolerance.
const quadraturePanels = 512

// Internal panic messages (no magic strings).
const (
	panicH0Invalid     = "cosmology: WithH0: H0 must be finite and > 0"
	panicOmegaMInvalid = "cosmology: WithOmegaM: Om0 must be finite, in (0, 1]"
)

// Option mutates a FlatLambdaCDM under construction.
type Option func(*FlatLambdaCDM)

// WithH0 sets the Hubble constant in km/s/Mpc.
// Panics with a stable message when h0 is non-finite or non-positive.
func WithH0(h0 float64) Option {
	if math.IsNaN(h0) || math.IsInf(h0, 0) || h0 <= 0 {
		panic(panicH0Invalid)
	}

	return func(c *FlatLambdaCDM) { c.h0 = h0 }
}

// WithOmegaM sets the matter density fraction Ωm0; the dark-energy fraction
// follows as 1-Ωm0 (flatness). Panics when om0 is outside (0, 1].
func WithOmegaM(om0 float64) Option {
	if math.IsNaN(om0) || om0 <= 0 || om0 > 1 {
		panic(panicOmegaMInvalid)
	}

	return func(c *FlatLambdaCDM) { c.om0 = om0 }
}

// NewFlatLambdaCDM resolves opts against the documented defaults and returns
// an immutable cosmology. Options apply in order, last-writer-wins.
func NewFlatLambdaCDM(opts ...Option) *FlatLambdaCDM {
	c := &FlatLambdaCDM{h0: DefaultH0, om0: DefaultOmegaM}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

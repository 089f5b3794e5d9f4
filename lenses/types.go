// Package lenses: the Cosmology collaborator contract, the NFW lens type
// and its functional construction options.

package lenses

import (
	"math"

	"github.com/parlange/caustics/params"
	"github.com/parlange/caustics/tensor"
)

// Delta is the fixed overdensity constant: the halo mass m encloses the
// radius within which the mean density is Delta times the critical density
// at the lens redshift.
const Delta = 200.0

// Cosmology supplies the background distances and densities the lens
// formulas consume. All methods are element-wise over tensors and must
// broadcast their inputs; cosmology.FlatLambdaCDM is the reference
// implementation.
type Cosmology interface {
	// CriticalDensity returns ρ_crit(z) in M☉/Mpc³.
	CriticalDensity(z *tensor.Tensor) *tensor.Tensor

	// CriticalSurfaceDensity returns Σ_crit(z_l, z_s) in M☉/Mpc².
	CriticalSurfaceDensity(zl, zs *tensor.Tensor) *tensor.Tensor

	// AngularDiameterDistance returns d_A(z) in Mpc.
	AngularDiameterDistance(z *tensor.Tensor) *tensor.Tensor

	// AngularDiameterDistanceZ1Z2 returns d_A(z1, z2) in Mpc.
	AngularDiameterDistanceZ1Z2(z1, z2 *tensor.Tensor) *tensor.Tensor
}

// Packed field names used by NFW. Override contexts address parameters by
// these keys.
const (
	FieldRedshift      = "z_l"
	FieldCenterX       = "x0"
	FieldCenterY       = "y0"
	FieldMass          = "m"
	FieldConcentration = "c"
)

// Internal panic messages (programmer errors only).
const (
	panicNilCosmology     = "lenses: NewNFW: cosmology must not be nil"
	panicSofteningInvalid = "lenses: WithSoftening: s must be finite, >= 0"
)

// NFW models a dark-matter halo with the Navarro-Frenk-White density
// profile, ρ(r) ∝ 1/((r/r_s)(1+r/r_s)²), as a circularly symmetric thin
// lens. Immutable after construction; all observables are pure functions.
type NFW struct {
	name  string
	cosmo Cosmology

	// Physical parameters; a nil Field value marks the parameter dynamic
	// (it must arrive through the Packed context on every call).
	zl, x0, y0, m, c params.Field

	// s is the softening length in arcsec, added to the angular separation
	// so the profile center never produces an exact zero radius. Fixed per
	// instance, never resolved from a context.
	s float64
}

// NFWOption configures an NFW lens under construction.
type NFWOption func(*NFW)

// WithRedshift fixes the lens redshift z_l.
func WithRedshift(zl *tensor.Tensor) NFWOption {
	return func(n *NFW) { n.zl.Value = zl }
}

// WithCenter fixes the lens-plane center (x0, y0) in arcsec.
func WithCenter(x0, y0 *tensor.Tensor) NFWOption {
	return func(n *NFW) {
		n.x0.Value = x0
		n.y0.Value = y0
	}
}

// WithMass fixes the halo mass m in M☉ (enclosed within the Delta
// overdensity radius). Must be positive for finite results; not validated.
func WithMass(m *tensor.Tensor) NFWOption {
	return func(n *NFW) { n.m.Value = m }
}

// WithConcentration fixes the concentration c = r_Δ/r_s. Must be positive
// for finite results; not validated.
func WithConcentration(c *tensor.Tensor) NFWOption {
	return func(n *NFW) { n.c.Value = c }
}

// WithSoftening sets the softening length in arcsec.
// Panics with a stable message when s is negative or non-finite.
func WithSoftening(s float64) NFWOption {
	if math.IsNaN(s) || math.IsInf(s, 0) || s < 0 {
		panic(panicSofteningInvalid)
	}

	return func(n *NFW) { n.s = s }
}

// NewNFW builds an NFW lens bound to a cosmology. Parameters left unset
// remain dynamic and must be supplied through the Packed context per call.
// Panics when cosmo is nil (programmer error).
func NewNFW(name string, cosmo Cosmology, opts ...NFWOption) *NFW {
	if cosmo == nil {
		panic(panicNilCosmology)
	}
	n := &NFW{
		name:  name,
		cosmo: cosmo,
		zl:    params.Field{Name: FieldRedshift},
		x0:    params.Field{Name: FieldCenterX},
		y0:    params.Field{Name: FieldCenterY},
		m:     params.Field{Name: FieldMass},
		c:     params.Field{Name: FieldConcentration},
	}
	for _, opt := range opts {
		opt(n)
	}

	return n
}

// Name returns the lens instance name.
func (n *NFW) Name() string { return n.name }

// Softening returns the softening length in arcsec.
func (n *NFW) Softening() float64 { return n.s }

// Package lenses: NFW radial scale functions and observable assembly.
// Formulas follow Wright & Brainerd (2000); units are M☉ and Mpc with
// angular quantities in arcsec on the public surface.

package lenses

import (
	"fmt"
	"math"

	"github.com/parlange/caustics/constants"
	"github.com/parlange/caustics/params"
	"github.com/parlange/caustics/tensor"
)

// ScaleRadius returns r_s = r_Δ/c in Mpc, where r_Δ solves
// m = (4/3)π·Δ·ρ_crit(z_l)·r_Δ³. Requires m, c > 0: non-positive values
// propagate as non-finite output, no internal guard.
func (n *NFW) ScaleRadius(zl, m, c *tensor.Tensor) *tensor.Tensor {
	rhoCr := n.cosmo.CriticalDensity(zl)
	rDelta := tensor.PowScalar(
		tensor.Div(tensor.MulScalar(m, 3), tensor.MulScalar(rhoCr, 4*math.Pi*Delta)),
		1.0/3.0,
	)

	return tensor.Div(rDelta, c)
}

// ScaleDensity returns ρ_s = (Δ/3)·ρ_crit(z_l)·c³/(ln(1+c) − c/(1+c)) in
// M☉/Mpc³. The denominator vanishes only as c → 0⁺.
func (n *NFW) ScaleDensity(zl, c *tensor.Tensor) *tensor.Tensor {
	cp1 := tensor.AddScalar(c, 1)
	den := tensor.Sub(tensor.Log(cp1), tensor.Div(c, cp1))
	num := tensor.Mul(
		tensor.MulScalar(n.cosmo.CriticalDensity(zl), Delta/3),
		tensor.Mul(c, tensor.Square(c)),
	)

	return tensor.Div(num, den)
}

// DimensionlessSurfaceDensity returns κ_s = ρ_s·r_s/Σ_crit(z_l, z_s), the
// profile's characteristic convergence amplitude.
func (n *NFW) DimensionlessSurfaceDensity(zl, zs, m, c *tensor.Tensor) *tensor.Tensor {
	sigmaCr := n.cosmo.CriticalSurfaceDensity(zl, zs)

	return tensor.Div(tensor.Mul(n.ScaleDensity(zl, c), n.ScaleRadius(zl, m, c)), sigmaCr)
}

// unpack resolves the five physical parameters against the override context.
func (n *NFW) unpack(p params.Packed) (zl, x0, y0, m, c *tensor.Tensor, err error) {
	vals, err := params.ResolveAll(p, n.zl, n.x0, n.y0, n.m, n.c)
	if err != nil {
		return nil, nil, nil, nil, nil, fmt.Errorf("lens %q: %w", n.name, err)
	}

	return vals[0], vals[1], vals[2], vals[3], vals[4], nil
}

// frame carries the shared observable preamble: lens-centered coordinates,
// softened separation, projected radius and its dimensionless form.
// Ephemeral, recomputed per call, never cached.
type frame struct {
	x, y  *tensor.Tensor // lens-centered coordinates, arcsec
	theta *tensor.Tensor // softened angular separation √(x²+y²)+s, arcsec
	xi    *tensor.Tensor // projected physical radius d_l·θ, Mpc
	r     *tensor.Tensor // dimensionless radius ξ/r_s
	rs    *tensor.Tensor // scale radius, Mpc
	dl    *tensor.Tensor // angular-diameter distance to the lens, Mpc
}

func (n *NFW) frameAt(zl, x0, y0, m, c, x, y *tensor.Tensor) frame {
	xp, yp := params.TranslateRotate(x, y, x0, y0, 0)
	theta := tensor.AddScalar(tensor.Hypot(xp, yp), n.s)
	dl := n.cosmo.AngularDiameterDistance(zl)
	rs := n.ScaleRadius(zl, m, c)
	xi := tensor.MulScalar(tensor.Mul(dl, theta), constants.ArcsecToRad)

	return frame{x: xp, y: yp, theta: theta, xi: xi, r: tensor.Div(xi, rs), rs: rs, dl: dl}
}

// ReducedDeflectionAngle returns the reduced deflection angle components
// (α̂_x, α̂_y) in arcsec at lens-plane positions (x, y) for sources at z_s.
// The radial magnitude 16π·(G/c²)·ρ_s·r_s³·h(r)/ξ is projected onto the
// translated coordinate directions; at θ = 0 the projection degenerates
// unless the softening is positive.
func (n *NFW) ReducedDeflectionAngle(x, y, zs *tensor.Tensor, p params.Packed) (ax, ay *tensor.Tensor, err error) {
	zl, x0, y0, m, c, err := n.unpack(p)
	if err != nil {
		return nil, nil, err
	}
	fr := n.frameAt(zl, x0, y0, m, c, x, y)

	mag := tensor.Div(
		tensor.MulScalar(
			tensor.Mul(tensor.Mul(n.ScaleDensity(zl, c), tensor.PowScalar(fr.rs, 3)), kernelH(fr.r)),
			16*math.Pi*constants.GOverC2*constants.RadToArcsec,
		),
		fr.xi,
	)
	ax = tensor.Mul(mag, tensor.Div(fr.x, fr.theta))
	ay = tensor.Mul(mag, tensor.Div(fr.y, fr.theta))

	return ax, ay, nil
}

// DeflectionAngle returns the physical deflection angle components (α_x,
// α_y) in arcsec: the reduced deflection scaled by d_ls/d_s, the standard
// lens-equation factor.
func (n *NFW) DeflectionAngle(x, y, zs *tensor.Tensor, p params.Packed) (ax, ay *tensor.Tensor, err error) {
	zl, err := params.Resolve(p, n.zl)
	if err != nil {
		return nil, nil, fmt.Errorf("lens %q: %w", n.name, err)
	}
	ahx, ahy, err := n.ReducedDeflectionAngle(x, y, zs, p)
	if err != nil {
		return nil, nil, err
	}
	ratio := tensor.Div(
		n.cosmo.AngularDiameterDistanceZ1Z2(zl, zs),
		n.cosmo.AngularDiameterDistance(zs),
	)

	return tensor.Mul(ratio, ahx), tensor.Mul(ratio, ahy), nil
}

// Convergence returns κ = 2·κ_s·f(r)/(r²−1), the dimensionless projected
// surface mass density. The ratio is evaluated through kernelFRatio so the
// removable singularity at r = 1 yields exactly 2·κ_s/3.
func (n *NFW) Convergence(x, y, zs *tensor.Tensor, p params.Packed) (*tensor.Tensor, error) {
	zl, x0, y0, m, c, err := n.unpack(p)
	if err != nil {
		return nil, err
	}
	fr := n.frameAt(zl, x0, y0, m, c, x, y)
	ks := n.DimensionlessSurfaceDensity(zl, zs, m, c)

	return tensor.MulScalar(tensor.Mul(ks, kernelFRatio(fr.r)), 2), nil
}

// Potential returns the lensing potential ψ = 2·κ_s·g(r)·r_s²/(d_l·rad)²
// in arcsec².
func (n *NFW) Potential(x, y, zs *tensor.Tensor, p params.Packed) (*tensor.Tensor, error) {
	zl, x0, y0, m, c, err := n.unpack(p)
	if err != nil {
		return nil, err
	}
	fr := n.frameAt(zl, x0, y0, m, c, x, y)
	ks := n.DimensionlessSurfaceDensity(zl, zs, m, c)

	num := tensor.Mul(tensor.Mul(ks, kernelG(fr.r)), tensor.Square(fr.rs))
	den := tensor.MulScalar(tensor.Square(fr.dl), constants.ArcsecToRad*constants.ArcsecToRad)

	return tensor.MulScalar(tensor.Div(num, den), 2), nil
}

// Package cosmology: FlatLambdaCDM distances and densities.
// Comoving distance is the only integral; everything else is closed-form on
// top of it. All tensor methods are pure and element-wise.

package cosmology

import (
	"math"

	"github.com/parlange/caustics/constants"
	"github.com/parlange/caustics/tensor"
)

// FlatLambdaCDM is a flat, radiation-free ΛCDM background.
// The zero value is not usable; construct with NewFlatLambdaCDM.
type FlatLambdaCDM struct {
	h0  float64 // Hubble constant, km/s/Mpc
	om0 float64 // matter fraction Ωm0; ΩΛ = 1 - Ωm0
}

// H0 returns the Hubble constant in km/s/Mpc.
func (c *FlatLambdaCDM) H0() float64 { return c.h0 }

// OmegaM returns the matter density fraction Ωm0.
func (c *FlatLambdaCDM) OmegaM() float64 { return c.om0 }

// efunc is the dimensionless expansion rate E(z) = H(z)/H0.
func (c *FlatLambdaCDM) efunc(z float64) float64 {
	zp1 := 1 + z

	return math.Sqrt(c.om0*zp1*zp1*zp1 + (1 - c.om0))
}

// hubbleDistance returns c/H0 in Mpc.
func (c *FlatLambdaCDM) hubbleDistance() float64 {
	return constants.CSpeedKmS / c.h0
}

// comovingDistance integrates (c/H0)·∫₀ᶻ dz'/E(z') with composite Simpson
// over quadraturePanels panels. Deterministic for a given z.
// Complexity: O(quadraturePanels).
func (c *FlatLambdaCDM) comovingDistance(z float64) float64 {
	if z == 0 {
		return 0
	}
	// 2n+1 samples over [0, z], Simpson weights 1,4,2,...,2,4,1.
	n := quadraturePanels
	h := z / float64(2*n)
	sum := 1/c.efunc(0) + 1/c.efunc(z)
	for i := 1; i < 2*n; i++ {
		w := 2.0
		if i%2 == 1 {
			w = 4.0
		}
		sum += w / c.efunc(float64(i)*h)
	}

	return c.hubbleDistance() * sum * h / 3
}

// ComovingDistance returns the line-of-sight comoving distance in Mpc,
// element-wise over z.
func (c *FlatLambdaCDM) ComovingDistance(z *tensor.Tensor) *tensor.Tensor {
	return z.Map(c.comovingDistance)
}

// AngularDiameterDistance returns d_A(z) = Dc(z)/(1+z) in Mpc,
// element-wise over z.
func (c *FlatLambdaCDM) AngularDiameterDistance(z *tensor.Tensor) *tensor.Tensor {
	return z.Map(func(zv float64) float64 {
		return c.comovingDistance(zv) / (1 + zv)
	})
}

// AngularDiameterDistanceZ1Z2 returns the angular-diameter distance between
// two redshifts, (Dc(z2)-Dc(z1))/(1+z2) in a flat model, element-wise over
// the broadcast of z1 and z2. z2 ≤ z1 yields a non-positive distance.
func (c *FlatLambdaCDM) AngularDiameterDistanceZ1Z2(z1, z2 *tensor.Tensor) *tensor.Tensor {
	return tensor.Zip(z1, z2, func(a, b float64) float64 {
		return (c.comovingDistance(b) - c.comovingDistance(a)) / (1 + b)
	})
}

// CriticalDensity returns ρ_crit(z) = ρ_crit,0 · E²(z) in M☉/Mpc³,
// element-wise over z.
func (c *FlatLambdaCDM) CriticalDensity(z *tensor.Tensor) *tensor.Tensor {
	h := c.h0 / 100
	rho0 := constants.CriticalDensity0h2 * h * h

	return z.Map(func(zv float64) float64 {
		e := c.efunc(zv)

		return rho0 * e * e
	})
}

// CriticalSurfaceDensity returns Σ_crit(z_l, z_s) = d_s/(4π·(G/c²)·d_l·d_ls)
// in M☉/Mpc², element-wise over the broadcast of the two redshifts.
// A source at or below the lens redshift degrades to a non-positive (or
// infinite) value rather than an error.
func (c *FlatLambdaCDM) CriticalSurfaceDensity(zl, zs *tensor.Tensor) *tensor.Tensor {
	dl := c.AngularDiameterDistance(zl)
	ds := c.AngularDiameterDistance(zs)
	dls := c.AngularDiameterDistanceZ1Z2(zl, zs)

	return tensor.Div(ds, tensor.MulScalar(tensor.Mul(dl, dls), 4*math.Pi*constants.GOverC2))
}

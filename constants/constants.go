package constants

// Base figures (CODATA 2018 / IAU 2015 nominal values).
const (
	// GNewton is the gravitational constant in m³ kg⁻¹ s⁻².
	GNewton = 6.67430e-11

	// CSpeedMS is the speed of light in m/s (exact).
	CSpeedMS = 2.99792458e8

	// CSpeedKmS is the speed of light in km/s (exact).
	CSpeedKmS = 299792.458

	// MSunKg is one solar mass in kg.
	MSunKg = 1.98892e30

	// MpcM is one megaparsec in metres.
	MpcM = 3.085677581491367e22
)

// Derived constants in the M☉/Mpc unit system.
const (
	// GOverC2 is G/c² in Mpc/M☉: multiplied by a mass in M☉ it gives half
	// the Schwarzschild radius in Mpc. Derived from the base figures above.
	GOverC2 = GNewton / (CSpeedMS * CSpeedMS) * MSunKg / MpcM // ≈ 4.7867e-20

	// CriticalDensity0h2 is the present-day critical density per h² in
	// M☉/Mpc³: ρ_crit,0 = 3 H0²/(8πG) with H0 = 100 h km/s/Mpc.
	// ρ_crit(z) = CriticalDensity0h2 · h² · E²(z).
	CriticalDensity0h2 = 2.7751938e11
)

// Angle conversions.
const (
	// ArcsecToRad converts arcseconds to radians: π/648000.
	ArcsecToRad = 4.84813681109536e-6

	// RadToArcsec converts radians to arcseconds: 648000/π.
	RadToArcsec = 206264.80624709636
)

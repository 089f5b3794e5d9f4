// Package constants collects the physical and unit-conversion constants the
// lensing core consumes as fixed scalars.
//
// Unit system: masses in solar masses (M☉), lengths in megaparsec (Mpc),
// angles in arcseconds on the public surface and radians internally.
// Every constant documents its provenance; derived values are computed from
// the CODATA/IAU figures listed alongside them so the set stays internally
// consistent.
package constants

package cosmology_test

import (
	"testing"

	"github.com/parlange/caustics/cosmology"
	"github.com/parlange/caustics/tensor"
)

// benchRedshifts builds an n-point redshift batch spread over (0, 3].
func benchRedshifts(n int) *tensor.Tensor {
	zs := make([]float64, n)
	for i := range zs {
		zs[i] = 3.0 * float64(i+1) / float64(n)
	}

	return tensor.FromSlice(zs)
}

// BenchmarkComovingDistance_Batch256 measures the Simpson quadrature cost
// across a 256-point batch, the dominant term in every distance call.
func BenchmarkComovingDistance_Batch256(b *testing.B) {
	cosmo := cosmology.NewFlatLambdaCDM()
	z := benchRedshifts(256)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = cosmo.ComovingDistance(z)
	}
}

// BenchmarkCriticalSurfaceDensity_Scalar measures one full Σ_crit evaluation,
// which internally runs three distance integrals.
func BenchmarkCriticalSurfaceDensity_Scalar(b *testing.B) {
	cosmo := cosmology.NewFlatLambdaCDM()
	zl := tensor.Scalar(0.5)
	zs := tensor.Scalar(2.0)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = cosmo.CriticalSurfaceDensity(zl, zs)
	}
}

package lenses_test

import (
	"testing"

	"github.com/parlange/caustics/cosmology"
	"github.com/parlange/caustics/lenses"
	"github.com/parlange/caustics/tensor"
)

// benchGrid builds an n×n arcsec query grid as a broadcast column×row pair.
func benchGrid(b *testing.B, n int) (x, y *tensor.Tensor) {
	axis := make([]float64, n)
	for i := range axis {
		axis[i] = -4 + 8*float64(i)/float64(n-1) + 0.007
	}
	x, err := tensor.New([]int{n, 1}, axis)
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}
	y, err = tensor.New([]int{1, n}, axis)
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}

	return x, y
}

func benchLens(b *testing.B) *lenses.NFW {
	return lenses.NewNFW("bench", cosmology.NewFlatLambdaCDM(),
		lenses.WithRedshift(tensor.Scalar(0.5)),
		lenses.WithCenter(tensor.Scalar(0), tensor.Scalar(0)),
		lenses.WithMass(tensor.Scalar(1e13)),
		lenses.WithConcentration(tensor.Scalar(5)),
	)
}

// BenchmarkConvergence_Grid64 measures one batched convergence map.
func BenchmarkConvergence_Grid64(b *testing.B) {
	lens := benchLens(b)
	x, y := benchGrid(b, 64)
	zs := tensor.Scalar(2)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := lens.Convergence(x, y, zs, nil); err != nil {
			b.Fatalf("Convergence failed: %v", err)
		}
	}
}

// BenchmarkDeflectionAngle_Grid64 measures one batched deflection map.
func BenchmarkDeflectionAngle_Grid64(b *testing.B) {
	lens := benchLens(b)
	x, y := benchGrid(b, 64)
	zs := tensor.Scalar(2)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := lens.DeflectionAngle(x, y, zs, nil); err != nil {
			b.Fatalf("DeflectionAngle failed: %v", err)
		}
	}
}

// BenchmarkPotential_Scalar measures the scalar fast case.
func BenchmarkPotential_Scalar(b *testing.B) {
	lens := benchLens(b)
	x, y, zs := tensor.Scalar(1), tensor.Scalar(0.5), tensor.Scalar(2)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := lens.Potential(x, y, zs, nil); err != nil {
			b.Fatalf("Potential failed: %v", err)
		}
	}
}

package lenses_test

import (
	"fmt"

	"github.com/parlange/caustics/cosmology"
	"github.com/parlange/caustics/lenses"
	"github.com/parlange/caustics/params"
	"github.com/parlange/caustics/tensor"
)

// ExampleNFW_Convergence builds a halo with fixed parameters and queries the
// convergence at three radii spanning the interior, boundary-adjacent and
// exterior regimes in a single batched call.
func ExampleNFW_Convergence() {
	cosmo := cosmology.NewFlatLambdaCDM()
	halo := lenses.NewNFW("demo", cosmo,
		lenses.WithRedshift(tensor.Scalar(0.5)),
		lenses.WithCenter(tensor.Scalar(0), tensor.Scalar(0)),
		lenses.WithMass(tensor.Scalar(1e13)),
		lenses.WithConcentration(tensor.Scalar(5)),
	)

	x := tensor.FromSlice([]float64{0.5, 1.0, 5.0}) // arcsec
	y := tensor.Scalar(0)
	kappa, err := halo.Convergence(x, y, tensor.Scalar(2.0), nil)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	data := kappa.Data()
	fmt.Println("finite:", kappa.AllFinite())
	fmt.Println("positive:", data[0] > 0 && data[1] > 0 && data[2] > 0)
	fmt.Println("decreasing outward:", data[0] > data[1] && data[1] > data[2])
	// Output:
	// finite: true
	// positive: true
	// decreasing outward: true
}

// ExampleNFW_DeflectionAngle overrides the stored mass per call through a
// Packed context, the pattern inference loops use to sweep parameters.
func ExampleNFW_DeflectionAngle() {
	cosmo := cosmology.NewFlatLambdaCDM()
	halo := lenses.NewNFW("demo", cosmo,
		lenses.WithRedshift(tensor.Scalar(0.5)),
		lenses.WithCenter(tensor.Scalar(0), tensor.Scalar(0)),
		lenses.WithMass(tensor.Scalar(1e13)),
		lenses.WithConcentration(tensor.Scalar(5)),
	)
	x, y, zs := tensor.Scalar(1), tensor.Scalar(0), tensor.Scalar(2)

	axBase, _, err := halo.DeflectionAngle(x, y, zs, nil)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	axHeavy, _, err := halo.DeflectionAngle(x, y, zs, params.Packed{
		lenses.FieldMass: tensor.Scalar(1e14),
	})
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Println("override increases deflection:", axHeavy.Item() > axBase.Item())
	// Output:
	// override increases deflection: true
}

package tensor_test

import (
	"fmt"

	"github.com/parlange/caustics/tensor"
)

// ExampleWhere demonstrates composing a piecewise formula from full-domain
// branches and a per-element merge — the pattern the lensing kernels use.
func ExampleWhere() {
	r := tensor.FromSlice([]float64{0.5, 1.0, 2.0})
	one := tensor.Scalar(1)

	// sign(r-1) written as three full branches merged element-wise.
	inner := tensor.Where(tensor.Less(r, one), tensor.Scalar(-1), tensor.Scalar(0))
	sign := tensor.Where(tensor.Greater(r, one), tensor.Scalar(1), inner)

	fmt.Println(sign.Data())
	// Output:
	// [-1 0 1]
}

// ExampleBroadcastShapes shows the trailing-dimension alignment rule.
func ExampleBroadcastShapes() {
	shape, err := tensor.BroadcastShapes([]int{64, 1}, []int{1, 64})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(shape)
	// Output:
	// [64 64]
}

// ExampleAdd broadcasts a column against a row, building a small grid.
func ExampleAdd() {
	col, _ := tensor.New([]int{2, 1}, []float64{10, 20})
	row, _ := tensor.New([]int{1, 3}, []float64{1, 2, 3})

	sum := tensor.Add(col, row)
	fmt.Println(sum.Shape(), sum.Data())
	// Output:
	// [2 3] [11 12 13 21 22 23]
}

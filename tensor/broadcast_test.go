package tensor_test

import (
	"testing"

	"github.com/parlange/caustics/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBroadcastShapes_Table exercises the trailing-dimension alignment rule.
func TestBroadcastShapes_Table(t *testing.T) {
	cases := []struct {
		name string
		a, b []int
		want []int
	}{
		{name: "scalar_scalar", a: nil, b: nil, want: nil},
		{name: "scalar_vector", a: nil, b: []int{4}, want: []int{4}},
		{name: "equal", a: []int{2, 3}, b: []int{2, 3}, want: []int{2, 3}},
		{name: "stretch_one", a: []int{2, 1}, b: []int{2, 3}, want: []int{2, 3}},
		{name: "missing_leading", a: []int{3}, b: []int{2, 3}, want: []int{2, 3}},
		{name: "column_row", a: []int{2, 1}, b: []int{1, 3}, want: []int{2, 3}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tensor.BroadcastShapes(tc.a, tc.b)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// TestBroadcastShapes_Mismatch verifies incompatible shapes error.
func TestBroadcastShapes_Mismatch(t *testing.T) {
	_, err := tensor.BroadcastShapes([]int{2, 3}, []int{4})
	assert.ErrorIs(t, err, tensor.ErrShapeMismatch)
}

// TestAdd_BroadcastColumnRow checks a (2,1)+(1,3) outer-style broadcast.
func TestAdd_BroadcastColumnRow(t *testing.T) {
	col, err := tensor.New([]int{2, 1}, []float64{10, 20})
	require.NoError(t, err)
	row, err := tensor.New([]int{1, 3}, []float64{1, 2, 3})
	require.NoError(t, err)

	sum := tensor.Add(col, row)
	assert.Equal(t, []int{2, 3}, sum.Shape())
	assert.Equal(t, []float64{11, 12, 13, 21, 22, 23}, sum.Data())
}

// TestMul_ScalarBroadcast checks that a rank-0 tensor stretches over any shape.
func TestMul_ScalarBroadcast(t *testing.T) {
	grid, err := tensor.New([]int{2, 2}, []float64{1, 2, 3, 4})
	require.NoError(t, err)

	got := tensor.Mul(grid, tensor.Scalar(10))
	assert.Equal(t, []int{2, 2}, got.Shape())
	assert.Equal(t, []float64{10, 20, 30, 40}, got.Data())
}

// TestZip_PanicsOnMismatch documents that element-wise ops treat
// incompatible shapes as programmer error.
func TestZip_PanicsOnMismatch(t *testing.T) {
	a := tensor.FromSlice([]float64{1, 2, 3})
	b := tensor.FromSlice([]float64{1, 2})
	assert.Panics(t, func() { tensor.Add(a, b) })
}

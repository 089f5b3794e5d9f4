package params_test

import (
	"testing"

	"github.com/parlange/caustics/params"
	"github.com/parlange/caustics/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestResolve_ContextOverridesDefault verifies the resolution order:
// context value if present, else stored default.
func TestResolve_ContextOverridesDefault(t *testing.T) {
	f := params.Field{Name: "m", Value: tensor.Scalar(1e12)}

	// No context: the stored default wins.
	got, err := params.Resolve(nil, f)
	require.NoError(t, err)
	assert.Equal(t, 1e12, got.Item())

	// Context present: the override wins.
	p := params.Packed{"m": tensor.Scalar(5e13)}
	got, err = params.Resolve(p, f)
	require.NoError(t, err)
	assert.Equal(t, 5e13, got.Item())

	// Context naming a different field leaves the default in place.
	got, err = params.Resolve(params.Packed{"c": tensor.Scalar(7)}, f)
	require.NoError(t, err)
	assert.Equal(t, 1e12, got.Item())
}

// TestResolve_MissingBothIsError verifies that a dynamic field without a
// context value is a configuration error.
func TestResolve_MissingBothIsError(t *testing.T) {
	dynamic := params.Field{Name: "z_l"}

	_, err := params.Resolve(nil, dynamic)
	assert.ErrorIs(t, err, params.ErrUnresolved)
	assert.ErrorContains(t, err, "z_l", "the failing field must be named")

	// A nil value stored under the right key does not count as present.
	_, err = params.Resolve(params.Packed{"z_l": nil}, dynamic)
	assert.ErrorIs(t, err, params.ErrUnresolved)
}

// TestResolveAll_AlignmentAndFirstFailure covers ordering and fail-fast.
func TestResolveAll_AlignmentAndFirstFailure(t *testing.T) {
	fs := []params.Field{
		{Name: "x0", Value: tensor.Scalar(0)},
		{Name: "y0", Value: tensor.Scalar(1)},
		{Name: "m"},
	}

	p := params.Packed{"m": tensor.Scalar(1e13)}
	vals, err := params.ResolveAll(p, fs...)
	require.NoError(t, err)
	require.Len(t, vals, 3)
	assert.Equal(t, 0.0, vals[0].Item())
	assert.Equal(t, 1.0, vals[1].Item())
	assert.Equal(t, 1e13, vals[2].Item())

	_, err = params.ResolveAll(nil, fs...)
	assert.ErrorIs(t, err, params.ErrUnresolved, "missing dynamic field must fail the batch")
}

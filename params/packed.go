package params

import (
	"errors"
	"fmt"

	"github.com/parlange/caustics/tensor"
)

// ErrUnresolved indicates a field that is present neither in the Packed
// context nor as a stored default. Wrapped with the field name; match with
// errors.Is.
var ErrUnresolved = errors.New("params: field resolves to no value")

// Packed is a per-call override context mapping field names to values.
// A nil Packed means "no overrides". Values are used as-is; shapes broadcast
// downstream with the query coordinates.
type Packed map[string]*tensor.Tensor

// Field is a named, optionally-defaulted lens parameter. A nil Value marks
// the field dynamic: it must be supplied through the Packed context on every
// call.
type Field struct {
	Name  string
	Value *tensor.Tensor
}

// Resolve returns the effective value of f under context p: the context
// value when present, else the stored default, else ErrUnresolved wrapped
// with the field name.
func Resolve(p Packed, f Field) (*tensor.Tensor, error) {
	if v, ok := p[f.Name]; ok && v != nil {
		return v, nil
	}
	if f.Value != nil {
		return f.Value, nil
	}

	return nil, fmt.Errorf("%q: %w", f.Name, ErrUnresolved)
}

// ResolveAll resolves every field in order, failing on the first field that
// has no value. The result slice is index-aligned with fs.
func ResolveAll(p Packed, fs ...Field) ([]*tensor.Tensor, error) {
	out := make([]*tensor.Tensor, len(fs))
	for i, f := range fs {
		v, err := Resolve(p, f)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}

	return out, nil
}

package params

import (
	"math"

	"github.com/parlange/caustics/tensor"
)

// TranslateRotate maps query coordinates into the lens-centered frame:
// first the rigid translation x-x0, y-y0, then, when phi is non-zero, a
// rotation by phi radians. Circularly symmetric profiles pass phi = 0 and
// skip the rotation entirely.
// All tensor inputs broadcast together.
func TranslateRotate(x, y, x0, y0 *tensor.Tensor, phi float64) (xp, yp *tensor.Tensor) {
	xp = tensor.Sub(x, x0)
	yp = tensor.Sub(y, y0)
	if phi == 0 {
		return xp, yp
	}
	c, s := math.Cos(phi), math.Sin(phi)
	xr := tensor.Sub(tensor.MulScalar(xp, c), tensor.MulScalar(yp, s))
	yr := tensor.Add(tensor.MulScalar(xp, s), tensor.MulScalar(yp, c))

	return xr, yr
}

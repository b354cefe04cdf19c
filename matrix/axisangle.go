package matrix

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/mat"
)

// singularTol bounds |sin(angle)| below which the rotation axis cannot be
// recovered from a matrix (angle at 0 or pi).
const singularTol = 1e-12

// FromAxisAngle returns the 3×3 rotation by angle radians about axis,
// following Rodrigues' formula. axis must be a unit vector; it is not
// normalized here.
func FromAxisAngle(axis mgl64.Vec3, angle fl) *mat.Dense {
	s, c := math.Sincos(angle)
	t := 1 - c
	x, y, z := axis.X(), axis.Y(), axis.Z()
	return mat.NewDense(3, 3, []fl{
		t*x*x + c, t*x*y - s*z, t*x*z + s*y,
		t*x*y + s*z, t*y*y + c, t*y*z - s*x,
		t*x*z - s*y, t*y*z + s*x, t*z*z + c,
	})
}

// ToAxisAngle extracts the unit axis and angle (in radians, within
// [0, pi]) of a 3×3 rotation matrix. The extraction divides by
// 2 sin(angle), so rotations by 0 or pi return ErrSingularAngle. Matrices
// that are not 3×3 panic with ErrDimension; matrices that are not pure
// rotations give meaningless results.
func ToAxisAngle(m mat.Matrix) (mgl64.Vec3, fl, error) {
	if r, c := m.Dims(); r != 3 || c != 3 {
		panic(ErrDimension)
	}
	ct := (mat.Trace(m) - 1) / 2
	// rounding can push the trace of a valid rotation slightly outside
	// the domain of acos
	if ct > 1 {
		ct = 1
	} else if ct < -1 {
		ct = -1
	}
	angle := math.Acos(ct)
	s := math.Sin(angle)
	if math.Abs(s) <= singularTol {
		return mgl64.Vec3{}, 0, ErrSingularAngle
	}
	k := 1 / (2 * s)
	axis := mgl64.Vec3{
		k * (m.At(2, 1) - m.At(1, 2)),
		k * (m.At(0, 2) - m.At(2, 0)),
		k * (m.At(1, 0) - m.At(0, 1)),
	}
	return axis, angle, nil
}

package matrix

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/mat"
)

// translationTol bounds what the axis-angle queries still accept as a
// zero translation column.
const translationTol = 1e-12

// resolvedForQuery is the common entry of the terminal queries: it
// replays the sticky error, rejects the zero value and folds pending
// rotations.
func (t Transform) resolvedForQuery() (Transform, error) {
	if t.err != nil {
		return t, t.err
	}
	if t.m == nil {
		return t, ErrDimension
	}
	return t.resolved(), nil
}

// Matrix resolves pending rotations and returns the accumulated matrix,
// multiplied into target when given. target defaults to the identity; its
// row count must match the builder dimension. The result is detached from
// the builder.
func (t Transform) Matrix(target ...mat.Matrix) (*mat.Dense, error) {
	r, err := t.resolvedForQuery()
	if err != nil {
		return nil, err
	}
	if len(target) == 0 {
		return mat.DenseCopyOf(r.m), nil
	}
	tr, tc := target[0].Dims()
	if tr != r.dim {
		return nil, ErrDimension
	}
	out := mat.NewDense(r.dim, tc, nil)
	out.Mul(r.m, target[0])
	return out, nil
}

// Matrix3 resolves pending rotations and returns the leading 3×3 block of
// the accumulated matrix (its rotation part, on rigid transforms),
// multiplied into target when given. target defaults to the 3×3 identity
// and must have three rows.
func (t Transform) Matrix3(target ...mat.Matrix) (*mat.Dense, error) {
	r, err := t.resolvedForQuery()
	if err != nil {
		return nil, err
	}
	block := r.rotationBlock()
	if len(target) == 0 {
		return block, nil
	}
	tr, tc := target[0].Dims()
	if tr != 3 {
		return nil, ErrDimension
	}
	out := mat.NewDense(3, tc, nil)
	out.Mul(block, target[0])
	return out, nil
}

// rotationBlock copies the leading 3×3 block of the accumulated matrix.
func (t Transform) rotationBlock() *mat.Dense {
	if t.dim == 3 {
		return mat.DenseCopyOf(t.m)
	}
	return mat.DenseCopyOf(t.m.Slice(0, 3, 0, 3))
}

// Axis resolves pending rotations and extracts the unit rotation axis and
// the angle, in radians within [0, pi]. A dimension-4 builder must carry
// no translation, else ErrNotPureRotation; rotations by 0 or pi have no
// recoverable axis and return ErrSingularAngle.
func (t Transform) Axis() (mgl64.Vec3, fl, error) {
	r, err := t.resolvedForQuery()
	if err != nil {
		return mgl64.Vec3{}, 0, err
	}
	if r.dim == 4 {
		for i := 0; i < 3; i++ {
			if !scalar.EqualWithinAbs(r.m.At(i, 3), 0, translationTol) {
				return mgl64.Vec3{}, 0, ErrNotPureRotation
			}
		}
	}
	return ToAxisAngle(r.rotationBlock())
}

// Axisd is Axis with the angle converted to degrees.
func (t Transform) Axisd() (mgl64.Vec3, fl, error) {
	axis, angle, err := t.Axis()
	if err != nil {
		return axis, 0, err
	}
	return axis, mgl64.RadToDeg(angle), nil
}

// DH chains one Denavit-Hartenberg link: a rotation by theta about z, a
// translation by d along z and by a along x, then a rotation by alpha
// about x. Angles are in radians. Each step follows the usual mode and
// frame rules, so the textbook convention comes out of a local-frame
// builder. The trailing rotation stays pending and the builder remains
// chainable, in rotate mode.
func (t Transform) DH(theta, d, a, alpha fl) Transform {
	return t.Rotate().Z(theta).Translate().Z(d).X(a).Rotate().X(alpha)
}

// DHd is DH with theta and alpha in degrees.
func (t Transform) DHd(theta, d, a, alpha fl) Transform {
	return t.Rotate().Zd(theta).Translate().Z(d).X(a).Rotate().Xd(alpha)
}

// Apply transforms the point p by the accumulated matrix. Dimension-4
// builders use homogeneous coordinates with w = 1, so translations take
// effect; dimension-3 builders rotate p directly.
func (t Transform) Apply(p mgl64.Vec3) (mgl64.Vec3, error) {
	r, err := t.resolvedForQuery()
	if err != nil {
		return mgl64.Vec3{}, err
	}
	v := mat.NewVecDense(r.dim, nil)
	for i := 0; i < 3; i++ {
		v.SetVec(i, p[i])
	}
	if r.dim == 4 {
		v.SetVec(3, 1)
	}
	var out mat.VecDense
	out.MulVec(r.m, v)
	return mgl64.Vec3{out.AtVec(0), out.AtVec(1), out.AtVec(2)}, nil
}

// Inverse resolves pending rotations and returns a builder carrying the
// inverted matrix, keeping mode and frame. A singular matrix (a zero
// scale factor, say) leaves its error on the returned builder.
func (t Transform) Inverse() Transform {
	r, err := t.resolvedForQuery()
	if err != nil {
		return r.fail(err)
	}
	inv := mat.NewDense(r.dim, r.dim, nil)
	if err := inv.Inverse(r.m); err != nil {
		return r.fail(err)
	}
	r.m = inv
	return r
}

// Det resolves pending rotations and returns the determinant of the
// accumulated matrix. Proper rigid rotations have determinant +1.
func (t Transform) Det() (fl, error) {
	r, err := t.resolvedForQuery()
	if err != nil {
		return 0, err
	}
	return mat.Det(r.m), nil
}

// String renders the resolved matrix, for debugging.
func (t Transform) String() string {
	if t.err != nil {
		return fmt.Sprintf("Transform(%v)", t.err)
	}
	if t.m == nil {
		return "Transform(uninitialized)"
	}
	r := t.resolved()
	return fmt.Sprintf("%v", mat.Formatted(r.m, mat.Squeeze()))
}

// Package matrix builds 3D rigid-body transformation matrices through a
// chainable, order-preserving builder, and converts between matrix and
// axis-angle representations.
//
// Points are treated as column vectors: a transform multiplies from the
// left, and the translation part of a 4×4 matrix lives in its last column.
// Rotations are right-handed, with angles in radians unless a method name
// carries the d (degree) suffix.
package matrix

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/mattco98/matrix-transformations/utils"
)

type fl = utils.Fl

// Axis identifies one of the three coordinate axes.
type Axis uint8

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	}
	return "invalid"
}

// index is the row (and column) an axis occupies in a matrix.
func (a Axis) index() int {
	switch a {
	case AxisX:
		return 0
	case AxisY:
		return 1
	case AxisZ:
		return 2
	}
	panic("matrix: invalid axis")
}

func checkDim(dim int) {
	if dim != 3 && dim != 4 {
		panic(ErrDimension)
	}
}

// Identity returns a new identity matrix of dimension 3 or 4.
func Identity(dim int) *mat.Dense {
	checkDim(dim)
	m := mat.NewDense(dim, dim, nil)
	for i := 0; i < dim; i++ {
		m.Set(i, i, 1)
	}
	return m
}

// Rotation returns the elementary rotation by angle radians about the
// given axis, as a dim×dim matrix. Dimension 4 embeds the 3×3 block in a
// homogeneous identity.
func Rotation(axis Axis, angle fl, dim int) *mat.Dense {
	checkDim(dim)
	s, c := math.Sincos(angle)
	var r []fl
	switch axis {
	case AxisX:
		r = []fl{
			1, 0, 0,
			0, c, -s,
			0, s, c,
		}
	case AxisY:
		r = []fl{
			c, 0, s,
			0, 1, 0,
			-s, 0, c,
		}
	case AxisZ:
		r = []fl{
			c, -s, 0,
			s, c, 0,
			0, 0, 1,
		}
	default:
		panic("matrix: invalid axis")
	}
	if dim == 3 {
		return mat.NewDense(3, 3, r)
	}
	m := Identity(4)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			m.Set(i, j, r[3*i+j])
		}
	}
	return m
}

// Translation returns the 4×4 matrix translating by distance along the
// given axis: the identity except for the (axis, 3) entry.
func Translation(axis Axis, distance fl) *mat.Dense {
	m := Identity(4)
	m.Set(axis.index(), 3, distance)
	return m
}

// Scaling returns the 4×4 matrix scaling by factor along the given axis:
// the identity except for the (axis, axis) diagonal entry.
func Scaling(axis Axis, factor fl) *mat.Dense {
	m := Identity(4)
	i := axis.index()
	m.Set(i, i, factor)
	return m
}

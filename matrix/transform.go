package matrix

import (
	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/mat"
)

// Mode selects which elementary matrices the axis operations X, Y and Z
// produce.
type Mode uint8

const (
	ModeNone Mode = iota
	ModeRotate
	ModeTranslate
	ModeScale
)

func (m Mode) String() string {
	switch m {
	case ModeNone:
		return "none"
	case ModeRotate:
		return "rotate"
	case ModeTranslate:
		return "translate"
	case ModeScale:
		return "scale"
	}
	return "invalid"
}

// Frame selects the reference frame operations compose in. Local
// operations act in the already transformed frame of the object
// (post-multiplication), global operations act in the fixed world frame
// (pre-multiplication).
type Frame uint8

const (
	FrameLocal Frame = iota
	FrameGlobal
)

func (f Frame) String() string {
	switch f {
	case FrameLocal:
		return "local"
	case FrameGlobal:
		return "global"
	}
	return "invalid"
}

// angleUnit tags the unit an angle argument was given in. The degree
// entry points are thin wrappers converting to radians up front.
type angleUnit uint8

const (
	radians angleUnit = iota
	degrees
)

// Transform accumulates a chain of rotations, translations and scalings.
//
// A Transform is an immutable value: every method returns a new value and
// leaves its receiver untouched, so intermediate chain states can be kept
// and branched from freely.
//
// Rotations issued in rotate mode are not multiplied in immediately; they
// queue up until the chain leaves rotate mode or a terminal query runs.
// Resolution folds the queued global rotations in ahead of the queued
// local ones, so local and global rotations may be interleaved in any
// call order and still produce the matrix a manually ordered
// multiplication would. Translations and scalings apply immediately.
//
// The zero value carries no matrix and fails queries and mode switches
// with ErrDimension; use the package-level entry points to start a chain.
type Transform struct {
	m     *mat.Dense
	dim   int
	mode  Mode
	frame Frame
	queue []pendingRotation
	err   error
}

// Rotate returns a builder in rotate mode and local frame, seeded with
// the given matrix (the 4×4 identity when absent). The seed is copied and
// must be square, of dimension 3 or 4.
func Rotate(seed ...mat.Matrix) Transform { return newTransform(ModeRotate, 4, seed) }

// Translate returns a builder in translate mode and local frame, seeded
// with the given matrix (the 4×4 identity when absent). A 3×3 seed fails
// with ErrInvalidMode: translations need the homogeneous column.
func Translate(seed ...mat.Matrix) Transform { return newTransform(ModeTranslate, 4, seed) }

// Scale returns a builder in scale mode and local frame, seeded with the
// given matrix (the 4×4 identity when absent). A 3×3 seed fails with
// ErrInvalidMode.
func Scale(seed ...mat.Matrix) Transform { return newTransform(ModeScale, 4, seed) }

// Builder returns a builder with no mode selected, seeded with the given
// matrix (the 4×4 identity when absent). Axis operations fail with
// ErrModeNotSet until Rotate, Translate or Scale is called.
func Builder(seed ...mat.Matrix) Transform { return newTransform(ModeNone, 4, seed) }

// Rotate3 returns a dimension-3 builder in rotate mode and local frame,
// seeded with the given matrix (the 3×3 identity when absent). The
// builder is rotation-only: Translate and Scale transitions fail with
// ErrInvalidMode, and a 4×4 seed fails with ErrDimension.
func Rotate3(seed ...mat.Matrix) Transform {
	t := newTransform(ModeRotate, 3, seed)
	if t.err == nil && t.dim != 3 {
		return t.fail(ErrDimension)
	}
	return t
}

func newTransform(mode Mode, dim int, seed []mat.Matrix) Transform {
	t := Transform{mode: mode, frame: FrameLocal, dim: dim}
	if len(seed) > 0 {
		r, c := seed[0].Dims()
		if r != c || (r != 3 && r != 4) {
			return t.fail(ErrDimension)
		}
		t.dim = r
		t.m = mat.DenseCopyOf(seed[0])
	} else {
		t.m = Identity(dim)
	}
	if t.dim == 3 && mode != ModeRotate && mode != ModeNone {
		return t.fail(ErrInvalidMode)
	}
	return t
}

// fail returns a copy of t carrying err. The first error wins; a builder
// that already failed is returned unchanged.
func (t Transform) fail(err error) Transform {
	if t.err == nil {
		t.err = err
	}
	return t
}

// Err reports the first error of the chain, nil when the builder is
// healthy. After an error every further call is a no-op preserving it.
func (t Transform) Err() error { return t.err }

// Dim reports the matrix dimension of the builder, 3 or 4 (0 on the zero
// value).
func (t Transform) Dim() int { return t.dim }

// Mode reports the mode in effect.
func (t Transform) Mode() Mode { return t.mode }

// Frame reports the reference frame in effect.
func (t Transform) Frame() Frame { return t.frame }

// Local switches subsequent operations to the object's own frame
// (post-multiplication). Rotations already queued keep the frame they
// were issued under.
func (t Transform) Local() Transform {
	if t.err != nil {
		return t
	}
	t.frame = FrameLocal
	return t
}

// Loc is shorthand for Local.
func (t Transform) Loc() Transform { return t.Local() }

// Global switches subsequent operations to the fixed world frame
// (pre-multiplication). Rotations already queued keep the frame they were
// issued under.
func (t Transform) Global() Transform {
	if t.err != nil {
		return t
	}
	t.frame = FrameGlobal
	return t
}

// Glob is shorthand for Global.
func (t Transform) Glob() Transform { return t.Global() }

// Rotate switches the builder to rotate mode. Switching to the mode
// already in effect is a no-op, so pending rotations are kept.
func (t Transform) Rotate() Transform { return t.setMode(ModeRotate) }

// Translate switches the builder to translate mode, folding pending
// rotations into the matrix first. Dimension-3 builders refuse the
// transition with ErrInvalidMode.
func (t Transform) Translate() Transform { return t.setMode(ModeTranslate) }

// Scale switches the builder to scale mode, folding pending rotations
// into the matrix first. Dimension-3 builders refuse the transition with
// ErrInvalidMode.
func (t Transform) Scale() Transform { return t.setMode(ModeScale) }

func (t Transform) setMode(mode Mode) Transform {
	if t.err != nil || t.mode == mode {
		return t
	}
	if t.m == nil {
		return t.fail(ErrDimension)
	}
	if t.dim == 3 && mode != ModeRotate {
		return t.fail(ErrInvalidMode)
	}
	t = t.resolved()
	t.mode = mode
	return t
}

// resolved folds the pending rotation queue into the matrix. The returned
// value carries an empty queue.
func (t Transform) resolved() Transform {
	if len(t.queue) == 0 {
		return t
	}
	t.m = resolveQueue(t.m, t.queue)
	t.queue = nil
	return t
}

// X issues an operation along the x axis: an angle in radians in rotate
// mode, a distance in translate mode, a factor in scale mode. Without a
// mode it fails with ErrModeNotSet.
func (t Transform) X(n fl) Transform { return t.axisOp(AxisX, n, radians) }

// Y issues an operation along the y axis. See X.
func (t Transform) Y(n fl) Transform { return t.axisOp(AxisY, n, radians) }

// Z issues an operation along the z axis. See X.
func (t Transform) Z(n fl) Transform { return t.axisOp(AxisZ, n, radians) }

// Xd is X with the angle in degrees. Degree units only exist in rotate
// mode; other modes fail with ErrInvalidMode.
func (t Transform) Xd(n fl) Transform { return t.axisOp(AxisX, n, degrees) }

// Yd is Y with the angle in degrees. See Xd.
func (t Transform) Yd(n fl) Transform { return t.axisOp(AxisY, n, degrees) }

// Zd is Z with the angle in degrees. See Xd.
func (t Transform) Zd(n fl) Transform { return t.axisOp(AxisZ, n, degrees) }

func (t Transform) axisOp(axis Axis, n fl, unit angleUnit) Transform {
	if t.err != nil {
		return t
	}
	if t.mode == ModeNone {
		return t.fail(ErrModeNotSet)
	}
	if t.m == nil {
		return t.fail(ErrDimension)
	}
	if unit == degrees {
		if t.mode != ModeRotate {
			return t.fail(ErrInvalidMode)
		}
		n = mgl64.DegToRad(n)
	}
	switch t.mode {
	case ModeRotate:
		queue := make([]pendingRotation, len(t.queue)+1)
		copy(queue, t.queue)
		queue[len(queue)-1] = pendingRotation{axis: axis, angle: n, frame: t.frame}
		t.queue = queue
		return t
	case ModeTranslate:
		return t.apply(Translation(axis, n))
	case ModeScale:
		return t.apply(Scaling(axis, n))
	}
	panic("matrix: invalid mode")
}

// apply multiplies the elementary matrix r into the accumulated matrix,
// on the side the current frame selects.
func (t Transform) apply(r *mat.Dense) Transform {
	out := mat.NewDense(t.dim, t.dim, nil)
	if t.frame == FrameGlobal {
		out.Mul(r, t.m)
	} else {
		out.Mul(t.m, r)
	}
	t.m = out
	return t
}

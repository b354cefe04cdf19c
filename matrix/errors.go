package matrix

import "errors"

// Errors reported by builder chains and terminal queries. A builder keeps
// the first error it hits and turns every later call into a no-op, so a
// single check at the end of a chain is enough.
var (
	// ErrModeNotSet is returned when an axis operation is issued before
	// Rotate, Translate or Scale selected a mode.
	ErrModeNotSet = errors.New("matrix: no mode set, call Rotate, Translate or Scale first")

	// ErrInvalidMode is returned when an operation is not available in the
	// current mode, like degree units outside rotate mode or a Translate
	// transition on a dimension-3 builder.
	ErrInvalidMode = errors.New("matrix: operation not valid in the current mode")

	// ErrDimension is returned (or panicked by the elementary factories)
	// when a matrix is not square of dimension 3 or 4, or does not match
	// the dimension of the builder.
	ErrDimension = errors.New("matrix: matrix must be square, of dimension 3 or 4")

	// ErrNotPureRotation is returned by the axis-angle queries when the
	// accumulated matrix carries a translation component.
	ErrNotPureRotation = errors.New("matrix: matrix carries a translation component")

	// ErrSingularAngle is returned by the axis-angle queries for rotations
	// by 0 or pi, whose axis is not recoverable from the matrix.
	ErrSingularAngle = errors.New("matrix: rotation angle too close to 0 or pi to extract an axis")
)

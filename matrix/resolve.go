package matrix

import "gonum.org/v1/gonum/mat"

// pendingRotation is a rotation issued in rotate mode, waiting for the
// next resolution point. The frame is captured when the rotation is
// issued, so later frame switches cannot reinterpret it.
type pendingRotation struct {
	axis  Axis
	angle fl
	frame Frame
}

// resolveQueue folds a queue of pending rotations into m and returns the
// result. Neither m nor the queue is written.
//
// Global entries fold first, scanned from last issued to first, each as
// M <- M * R: walking them backwards while post-multiplying lines the
// whole global block up on the left of every pending local entry. The
// local entries then fold in issue order, also as M <- M * R. For a queue
// holding locals l1..ln and globals g1..gk (in issue order), the result
// is m * R(gk) * ... * R(g1) * R(l1) * ... * R(ln).
func resolveQueue(m *mat.Dense, queue []pendingRotation) *mat.Dense {
	if len(queue) == 0 {
		return m
	}
	dim, _ := m.Dims()
	out := mat.DenseCopyOf(m)
	for i := len(queue) - 1; i >= 0; i-- {
		if e := queue[i]; e.frame == FrameGlobal {
			out.Mul(out, Rotation(e.axis, e.angle, dim))
		}
	}
	for _, e := range queue {
		if e.frame == FrameLocal {
			out.Mul(out, Rotation(e.axis, e.angle, dim))
		}
	}
	return out
}

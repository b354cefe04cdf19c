package matrix

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/mat"

	"github.com/mattco98/matrix-transformations/utils/testutils"
)

func TestResolveEmptyQueue(t *testing.T) {
	m := Rotation(AxisX, 0.3, 4)
	testutils.AssertMatrixApprox(t, resolveQueue(m, nil), m, 0)
}

func TestResolveLocalKeepsIssueOrder(t *testing.T) {
	a, b := 0.7, -1.1
	got := resolveQueue(Identity(4), []pendingRotation{
		{axis: AxisX, angle: a, frame: FrameLocal},
		{axis: AxisY, angle: b, frame: FrameLocal},
	})
	exp := mulAll(Rotation(AxisX, a, 4), Rotation(AxisY, b, 4))
	testutils.AssertMatrixApprox(t, got, exp, 1e-12)
}

func TestResolveGlobalReverses(t *testing.T) {
	a, b := 0.7, -1.1
	got := resolveQueue(Identity(4), []pendingRotation{
		{axis: AxisX, angle: a, frame: FrameGlobal},
		{axis: AxisY, angle: b, frame: FrameGlobal},
	})
	// the later global rotation ends up leftmost, as if each had been
	// pre-multiplied as it was issued
	exp := mulAll(Rotation(AxisY, b, 4), Rotation(AxisX, a, 4))
	testutils.AssertMatrixApprox(t, got, exp, 1e-12)
}

// Mixed queue from a chain reading x 30° local, y 12° local, z 180°
// global, x 90° local: the global entry jumps in front of every pending
// local one.
func TestResolveMixedFrames(t *testing.T) {
	queue := []pendingRotation{
		{axis: AxisX, angle: mgl64.DegToRad(30), frame: FrameLocal},
		{axis: AxisY, angle: mgl64.DegToRad(12), frame: FrameLocal},
		{axis: AxisZ, angle: mgl64.DegToRad(180), frame: FrameGlobal},
		{axis: AxisX, angle: math.Pi / 2, frame: FrameLocal},
	}
	got := resolveQueue(Identity(4), queue)

	exp := mulAll(
		Rotation(AxisZ, mgl64.DegToRad(180), 4),
		Rotation(AxisX, mgl64.DegToRad(30), 4),
		Rotation(AxisY, mgl64.DegToRad(12), 4),
		Rotation(AxisX, math.Pi/2, 4),
	)
	testutils.AssertMatrixApprox(t, got, exp, 1e-12)

	oracle := dense4(mgl64.HomogRotate3DZ(mgl64.DegToRad(180)).
		Mul4(mgl64.HomogRotate3DX(mgl64.DegToRad(30))).
		Mul4(mgl64.HomogRotate3DY(mgl64.DegToRad(12))).
		Mul4(mgl64.HomogRotate3DX(math.Pi / 2)))
	testutils.AssertMatrixApprox(t, got, oracle, 1e-12)
}

// Queued global rotations compose onto whatever the matrix already holds;
// state baked in before them (a translation here) stays leftmost.
func TestResolveGlobalOnPriorState(t *testing.T) {
	tr := Translation(AxisX, 5)
	got := resolveQueue(tr, []pendingRotation{
		{axis: AxisZ, angle: 0.4, frame: FrameGlobal},
	})
	exp := mulAll(tr, Rotation(AxisZ, 0.4, 4))
	testutils.AssertMatrixApprox(t, got, exp, 1e-12)
}

func TestResolveLeavesInputsAlone(t *testing.T) {
	m := Rotation(AxisY, 0.2, 4)
	snapshot := mat.DenseCopyOf(m)
	queue := []pendingRotation{
		{axis: AxisX, angle: 1, frame: FrameLocal},
		{axis: AxisZ, angle: 2, frame: FrameGlobal},
	}
	resolveQueue(m, queue)
	testutils.AssertMatrixApprox(t, m, snapshot, 0)
	testutils.AssertEqual(t, queue[0], pendingRotation{axis: AxisX, angle: 1, frame: FrameLocal})
	testutils.AssertEqual(t, queue[1], pendingRotation{axis: AxisZ, angle: 2, frame: FrameGlobal})
}

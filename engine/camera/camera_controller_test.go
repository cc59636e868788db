package camera

import (
	"testing"
	"time"

	"github.com/Carmen-Shannon/lumen/common"
	"github.com/go-gl/mathgl/mgl32"
)

func newStartCamera() Camera {
	return NewCamera(mgl32.Vec3{0, 5, 10}, mgl32.DegToRad(-90), mgl32.DegToRad(-20))
}

func TestProcessKeyboardRecognizedKeys(t *testing.T) {
	cc := NewCameraController(4, 0.4)
	for _, key := range []common.Key{
		common.KeyW, common.KeyA, common.KeyS, common.KeyD,
		common.KeyUp, common.KeyDown, common.KeyLeft, common.KeyRight,
		common.KeySpace, common.KeyLeftShift, common.KeyRightShift,
	} {
		if !cc.ProcessKeyboard(key, common.KeyPressed) {
			t.Errorf("expected key %d to be consumed on press", key)
		}
		if !cc.ProcessKeyboard(key, common.KeyReleased) {
			t.Errorf("expected key %d to be consumed on release", key)
		}
	}
	if cc.ProcessKeyboard(common.KeyQ, common.KeyPressed) {
		t.Error("expected Q to be left unconsumed")
	}
}

func TestUpdateCameraNoInputIsNoOp(t *testing.T) {
	c := newStartCamera()
	cc := NewCameraController(4, 0.4)

	for _, dt := range []time.Duration{0, 16 * time.Millisecond, time.Second} {
		position, yaw, pitch := c.Position(), c.Yaw(), c.Pitch()
		cc.UpdateCamera(c, dt)
		if c.Position() != position || c.Yaw() != yaw || c.Pitch() != pitch {
			t.Errorf("dt=%v: expected no change, got pos=%v yaw=%f pitch=%f", dt, c.Position(), c.Yaw(), c.Pitch())
		}
	}
}

func TestMouseDeltaIsConsumedOnce(t *testing.T) {
	c := newStartCamera()
	cc := NewCameraController(4, 0.4)

	yaw0, pitch0 := c.Yaw(), c.Pitch()
	cc.ProcessMouse(10, 5)
	cc.ProcessMouse(0, 0)
	if dx, dy := cc.PendingMouse(); dx != 10 || dy != 5 {
		t.Fatalf("expected pending (10, 5), got (%f, %f)", dx, dy)
	}

	cc.UpdateCamera(c, 100*time.Millisecond)
	if dx, dy := cc.PendingMouse(); dx != 0 || dy != 0 {
		t.Errorf("expected pending mouse reset, got (%f, %f)", dx, dy)
	}
	if !near(c.Yaw()-yaw0, 0.4, 1e-5) {
		t.Errorf("expected yaw to increase by 0.4, got %f", c.Yaw()-yaw0)
	}
	if !near(pitch0-c.Pitch(), 0.2, 1e-5) {
		t.Errorf("expected pitch to decrease by 0.2, got %f", pitch0-c.Pitch())
	}

	yaw1, pitch1 := c.Yaw(), c.Pitch()
	cc.UpdateCamera(c, 100*time.Millisecond)
	if c.Yaw() != yaw1 || c.Pitch() != pitch1 {
		t.Error("expected no additional rotation without new input")
	}
}

func TestPitchNeverExceedsLimit(t *testing.T) {
	c := newStartCamera()
	cc := NewCameraController(4, 0.4)

	cc.ProcessMouse(0, -1e7)
	cc.UpdateCamera(c, time.Second)
	if c.Pitch() > cc.PitchLimit() {
		t.Errorf("pitch %f exceeds limit %f", c.Pitch(), cc.PitchLimit())
	}
	if c.Pitch() >= mgl32.DegToRad(90) {
		t.Errorf("pitch %f reached 90 degrees", c.Pitch())
	}

	cc.ProcessMouse(0, 1e7)
	cc.UpdateCamera(c, time.Second)
	if c.Pitch() < -cc.PitchLimit() {
		t.Errorf("pitch %f exceeds limit %f", c.Pitch(), -cc.PitchLimit())
	}
}

func TestWithPitchLimit(t *testing.T) {
	limit := mgl32.DegToRad(60)
	c := newStartCamera()
	cc := NewCameraController(4, 0.4, WithPitchLimit(limit))

	cc.ProcessMouse(0, -1e6)
	cc.UpdateCamera(c, time.Second)
	if c.Pitch() != limit {
		t.Errorf("expected pitch clamped to %f, got %f", limit, c.Pitch())
	}

	if got := NewCameraController(1, 1, WithPitchLimit(10)).PitchLimit(); got != common.SafeFracPi2 {
		t.Errorf("expected out of range limit to fall back to %f, got %f", common.SafeFracPi2, got)
	}
}

func TestForwardForOneSecondMovesSpeedUnits(t *testing.T) {
	c := newStartCamera()
	cc := NewCameraController(4, 0.4)
	start := c.Position()

	cc.ProcessKeyboard(common.KeyW, common.KeyPressed)
	cc.UpdateCamera(c, time.Second)

	displacement := c.Position().Sub(start)
	if !near(displacement.Len(), 4, 1e-4) {
		t.Fatalf("expected displacement of 4 units, got %f", displacement.Len())
	}

	yaw := c.Yaw()
	forward := mgl32.Vec3{float32(cosf(yaw)), 0, float32(sinf(yaw))}
	if !nearVec(displacement.Normalize(), forward, 1e-4) {
		t.Errorf("expected motion along %v, got %v", forward, displacement.Normalize())
	}
	if !nearVec(displacement, mgl32.Vec3{0, 0, -4}, 1e-4) {
		t.Errorf("expected motion toward -Z, got %v", displacement)
	}
}

func TestReleasedKeyStopsMotion(t *testing.T) {
	c := newStartCamera()
	cc := NewCameraController(4, 0.4)

	cc.ProcessKeyboard(common.KeyD, common.KeyPressed)
	cc.ProcessKeyboard(common.KeyD, common.KeyReleased)
	start := c.Position()
	cc.UpdateCamera(c, time.Second)
	if c.Position() != start {
		t.Errorf("expected no motion after release, got %v", c.Position())
	}
}

func TestStrafeAndVerticalMovement(t *testing.T) {
	c := NewCamera(mgl32.Vec3{}, 0, 0)
	cc := NewCameraController(2, 0.4)

	cc.ProcessKeyboard(common.KeyD, common.KeyPressed)
	cc.ProcessKeyboard(common.KeySpace, common.KeyPressed)
	cc.UpdateCamera(c, 500*time.Millisecond)

	if !nearVec(c.Position(), mgl32.Vec3{0, 1, 1}, 1e-5) {
		t.Errorf("expected (0, 1, 1), got %v", c.Position())
	}

	cc.ProcessKeyboard(common.KeySpace, common.KeyReleased)
	cc.ProcessKeyboard(common.KeyLeftShift, common.KeyPressed)
	cc.ProcessKeyboard(common.KeyD, common.KeyReleased)
	cc.UpdateCamera(c, 500*time.Millisecond)
	if !nearVec(c.Position(), mgl32.Vec3{0, 0, 1}, 1e-5) {
		t.Errorf("expected (0, 0, 1), got %v", c.Position())
	}
}

func TestScrollNormalizesUnitsAndIsConsumed(t *testing.T) {
	cc := NewCameraController(2, 0.4, WithPixelsPerLine(10))
	cc.ProcessScroll(common.ScrollDelta{Unit: common.ScrollLines, Delta: 1})
	cc.ProcessScroll(common.ScrollDelta{Unit: common.ScrollPixels, Delta: 5})
	if got := cc.PendingScroll(); got != 15 {
		t.Fatalf("expected pending scroll 15, got %f", got)
	}

	c := NewCamera(mgl32.Vec3{}, 0, 0)
	cc.UpdateCamera(c, 500*time.Millisecond)
	if !nearVec(c.Position(), mgl32.Vec3{15, 0, 0}, 1e-4) {
		t.Errorf("expected scroll impulse along +X, got %v", c.Position())
	}
	if cc.PendingScroll() != 0 {
		t.Errorf("expected scroll reset, got %f", cc.PendingScroll())
	}

	start := c.Position()
	cc.UpdateCamera(c, 500*time.Millisecond)
	if c.Position() != start {
		t.Error("expected no further scroll motion")
	}
}

func TestSettersUpdateTunables(t *testing.T) {
	cc := NewCameraController(4, 0.4)
	cc.SetSpeed(8)
	cc.SetSensitivity(1)
	if cc.Speed() != 8 || cc.Sensitivity() != 1 {
		t.Errorf("unexpected tunables speed=%f sensitivity=%f", cc.Speed(), cc.Sensitivity())
	}
}

package camera

import (
	"math"
	"time"

	"github.com/Carmen-Shannon/lumen/common"
	"github.com/go-gl/mathgl/mgl32"
)

// cameraControllerImpl is the single implementation of CameraController.
type cameraControllerImpl struct {
	// Movement amounts, 1 while the key is held and 0 otherwise.
	amountLeft     float32
	amountRight    float32
	amountForward  float32
	amountBackward float32
	amountUp       float32
	amountDown     float32

	// One-shot input consumed by UpdateCamera.
	rotateHorizontal float32
	rotateVertical   float32
	scroll           float32

	speed         float32
	sensitivity   float32
	pitchLimit    float32
	pixelsPerLine float32
}

// Compile-time interface compliance check
var _ CameraController = &cameraControllerImpl{}

// NewCameraController creates a fly controller.
//
// Parameters:
//   - speed: translation speed in world units per second
//   - sensitivity: rotation speed in radians per device unit per second
//   - options: functional options to configure the controller
//
// Returns:
//   - CameraController: the newly created controller
func NewCameraController(speed, sensitivity float32, options ...CameraControllerOption) CameraController {
	cc := &cameraControllerImpl{
		speed:         speed,
		sensitivity:   sensitivity,
		pitchLimit:    common.SafeFracPi2,
		pixelsPerLine: 20,
	}
	for _, option := range options {
		option(cc)
	}
	return cc
}

func (cc *cameraControllerImpl) ProcessKeyboard(key common.Key, state common.KeyState) bool {
	var amount float32
	if state == common.KeyPressed {
		amount = 1
	}

	switch key {
	case common.KeyW, common.KeyUp:
		cc.amountForward = amount
	case common.KeyS, common.KeyDown:
		cc.amountBackward = amount
	case common.KeyA, common.KeyLeft:
		cc.amountLeft = amount
	case common.KeyD, common.KeyRight:
		cc.amountRight = amount
	case common.KeySpace:
		cc.amountUp = amount
	case common.KeyLeftShift, common.KeyRightShift:
		cc.amountDown = amount
	default:
		return false
	}
	return true
}

func (cc *cameraControllerImpl) ProcessMouse(dx, dy float64) {
	cc.rotateHorizontal += float32(dx)
	cc.rotateVertical += float32(dy)
}

func (cc *cameraControllerImpl) ProcessScroll(delta common.ScrollDelta) {
	switch delta.Unit {
	case common.ScrollPixels:
		cc.scroll += delta.Delta
	default:
		cc.scroll += delta.Delta * cc.pixelsPerLine
	}
}

func (cc *cameraControllerImpl) UpdateCamera(c Camera, dt time.Duration) {
	seconds := float32(dt.Seconds())
	step := cc.speed * seconds

	sinYaw, cosYaw := math.Sincos(float64(c.Yaw()))
	forward := mgl32.Vec3{float32(cosYaw), 0, float32(sinYaw)}
	right := mgl32.Vec3{float32(-sinYaw), 0, float32(cosYaw)}

	position := c.Position().
		Add(forward.Mul((cc.amountForward - cc.amountBackward) * step)).
		Add(right.Mul((cc.amountRight - cc.amountLeft) * step))

	// Scroll pushes the camera along where it is looking, pitch included.
	position = position.Add(c.Direction().Mul(cc.scroll * step))
	position[1] += (cc.amountUp - cc.amountDown) * step
	c.SetPosition(position)

	c.SetYaw(c.Yaw() + cc.rotateHorizontal*cc.sensitivity*seconds)
	c.SetPitch(c.Pitch() - cc.rotateVertical*cc.sensitivity*seconds)

	cc.rotateHorizontal = 0
	cc.rotateVertical = 0
	cc.scroll = 0

	c.SetPitch(common.ClampPitch(c.Pitch(), cc.pitchLimit))
}

func (cc *cameraControllerImpl) Speed() float32 {
	return cc.speed
}

func (cc *cameraControllerImpl) Sensitivity() float32 {
	return cc.sensitivity
}

func (cc *cameraControllerImpl) PitchLimit() float32 {
	return cc.pitchLimit
}

func (cc *cameraControllerImpl) PendingMouse() (dx, dy float32) {
	return cc.rotateHorizontal, cc.rotateVertical
}

func (cc *cameraControllerImpl) PendingScroll() float32 {
	return cc.scroll
}

func (cc *cameraControllerImpl) SetSpeed(speed float32) {
	cc.speed = speed
}

func (cc *cameraControllerImpl) SetSensitivity(sensitivity float32) {
	cc.sensitivity = sensitivity
}

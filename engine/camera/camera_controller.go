package camera

import (
	"time"

	"github.com/Carmen-Shannon/lumen/common"
)

// CameraController defines the interface for a first-person fly controller.
// It accumulates raw input between frames and integrates it into a Camera once per frame,
// scaled by the elapsed time so motion is independent of frame rate.
//
// Movement amounts persist until the matching key is released. Mouse and scroll deltas are
// one-shot: UpdateCamera consumes them and resets them to zero.
type CameraController interface {
	// ProcessKeyboard records the state of a movement key.
	// W/Up move forward, S/Down backward, A/Left left, D/Right right,
	// Space up and either Shift key down.
	//
	// Parameters:
	//   - key: the key that changed
	//   - state: whether the key is pressed or released
	//
	// Returns:
	//   - bool: true if the key is a movement key and was consumed, false otherwise
	ProcessKeyboard(key common.Key, state common.KeyState) bool

	// ProcessMouse accumulates a raw pointer delta into the pending rotation.
	//
	// Parameters:
	//   - dx: horizontal delta in device units, positive to the right
	//   - dy: vertical delta in device units, positive downward
	ProcessMouse(dx, dy float64)

	// ProcessScroll accumulates a scroll delta into the pending forward impulse.
	// Line deltas are converted to pixels with the controller's pixels-per-line factor.
	//
	// Parameters:
	//   - delta: the scroll event
	ProcessScroll(delta common.ScrollDelta)

	// UpdateCamera integrates the accumulated input into the camera:
	//  1. move along the horizontal forward/right axes by the held keys,
	//     along the look direction by the scroll impulse, and along +Y by Space/Shift,
	//     all scaled by speed * dt
	//  2. add the mouse delta to yaw and subtract it from pitch, scaled by sensitivity * dt
	//  3. reset the mouse delta and scroll impulse
	//  4. clamp pitch to the controller's pitch limit
	//
	// Parameters:
	//   - c: the camera to update
	//   - dt: the time elapsed since the previous frame
	UpdateCamera(c Camera, dt time.Duration)

	// Speed returns the translation speed in world units per second.
	//
	// Returns:
	//   - float32: the speed
	Speed() float32

	// Sensitivity returns the rotation speed in radians per device unit per second.
	//
	// Returns:
	//   - float32: the sensitivity
	Sensitivity() float32

	// PitchLimit returns the largest pitch magnitude the controller allows, in radians.
	//
	// Returns:
	//   - float32: the pitch limit
	PitchLimit() float32

	// PendingMouse returns the mouse delta accumulated since the last UpdateCamera.
	//
	// Returns:
	//   - dx, dy: the pending horizontal and vertical delta
	PendingMouse() (dx, dy float32)

	// PendingScroll returns the scroll impulse accumulated since the last UpdateCamera, in pixels.
	//
	// Returns:
	//   - float32: the pending scroll amount
	PendingScroll() float32

	// SetSpeed sets the translation speed in world units per second.
	//
	// Parameters:
	//   - speed: the new speed
	SetSpeed(speed float32)

	// SetSensitivity sets the rotation speed.
	//
	// Parameters:
	//   - sensitivity: the new sensitivity
	SetSensitivity(sensitivity float32)
}

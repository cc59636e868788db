package camera

import (
	"math"

	"github.com/Carmen-Shannon/lumen/common"
	"github.com/Carmen-Shannon/lumen/engine/renderer/bind_group_provider"
	"github.com/go-gl/mathgl/mgl32"
)

type cameraImpl struct {
	position mgl32.Vec3
	yaw      float32 // radians, 0 looks down +X, -π/2 looks down -Z
	pitch    float32 // radians, positive looks up

	bindGroupProvider bind_group_provider.BindGroupProvider
}

// Camera defines the interface for a free-flying yaw/pitch camera.
// The camera only holds its eye position and orientation; projection settings live in a
// separate Projection so that window resizes never touch the camera. A CameraController
// mutates the camera once per frame.
type Camera interface {
	// Position returns the camera's world-space eye position.
	//
	// Returns:
	//   - mgl32.Vec3: the eye position
	Position() mgl32.Vec3

	// Yaw returns the horizontal orientation angle in radians.
	//
	// Returns:
	//   - float32: yaw in radians
	Yaw() float32

	// Pitch returns the vertical orientation angle in radians.
	//
	// Returns:
	//   - float32: pitch in radians
	Pitch() float32

	// Direction returns the unit look direction derived from yaw and pitch:
	// (cos(pitch)*cos(yaw), sin(pitch), cos(pitch)*sin(yaw)).
	//
	// Returns:
	//   - mgl32.Vec3: the normalized look direction
	Direction() mgl32.Vec3

	// ViewMatrix returns the right-handed view matrix looking from Position along Direction
	// with world +Y as up. The matrix is column-major.
	//
	// Returns:
	//   - mgl32.Mat4: the view matrix
	ViewMatrix() mgl32.Mat4

	// BindGroupProvider returns the provider holding the camera uniform buffer and bind group.
	//
	// Returns:
	//   - bind_group_provider.BindGroupProvider: the bind group provider
	BindGroupProvider() bind_group_provider.BindGroupProvider

	// SetPosition sets the eye position.
	//
	// Parameters:
	//   - position: world-space coordinates
	SetPosition(position mgl32.Vec3)

	// SetYaw sets the horizontal orientation angle.
	//
	// Parameters:
	//   - yaw: angle in radians
	SetYaw(yaw float32)

	// SetPitch sets the vertical orientation angle. Callers are expected to keep it strictly
	// inside ±π/2; the controller clamps it every frame.
	//
	// Parameters:
	//   - pitch: angle in radians
	SetPitch(pitch float32)
}

var _ Camera = &cameraImpl{}

// NewCamera creates a Camera at position looking along the direction given by yaw and pitch.
//
// Parameters:
//   - position: the initial eye position
//   - yaw: the initial yaw in radians
//   - pitch: the initial pitch in radians
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera: the newly created camera
func NewCamera(position mgl32.Vec3, yaw, pitch float32, options ...CameraBuilderOption) Camera {
	c := &cameraImpl{
		position: position,
		yaw:      yaw,
		pitch:    pitch,
	}
	for _, option := range options {
		option(c)
	}
	if c.bindGroupProvider == nil {
		c.bindGroupProvider = bind_group_provider.NewBindGroupProvider("camera")
	}
	return c
}

func (c *cameraImpl) Position() mgl32.Vec3 {
	return c.position
}

func (c *cameraImpl) Yaw() float32 {
	return c.yaw
}

func (c *cameraImpl) Pitch() float32 {
	return c.pitch
}

func (c *cameraImpl) Direction() mgl32.Vec3 {
	return lookDirection(c.yaw, c.pitch)
}

func (c *cameraImpl) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.position, c.position.Add(c.Direction()), common.WorldUp)
}

func (c *cameraImpl) BindGroupProvider() bind_group_provider.BindGroupProvider {
	return c.bindGroupProvider
}

func (c *cameraImpl) SetPosition(position mgl32.Vec3) {
	c.position = position
}

func (c *cameraImpl) SetYaw(yaw float32) {
	c.yaw = yaw
}

func (c *cameraImpl) SetPitch(pitch float32) {
	c.pitch = pitch
}

// lookDirection converts yaw/pitch to a unit direction vector.
func lookDirection(yaw, pitch float32) mgl32.Vec3 {
	sinPitch, cosPitch := math.Sincos(float64(pitch))
	sinYaw, cosYaw := math.Sincos(float64(yaw))
	return mgl32.Vec3{
		float32(cosPitch * cosYaw),
		float32(sinPitch),
		float32(cosPitch * sinYaw),
	}.Normalize()
}

package model

import (
	"github.com/Carmen-Shannon/lumen/common"
	"github.com/go-gl/mathgl/mgl32"
)

// DefaultInstancesPerRow is the default number of instances along each grid axis.
const DefaultInstancesPerRow = 10

// DefaultInstanceSpacing is the default distance between neighbouring grid instances.
const DefaultInstanceSpacing float32 = 3.0

// instanceTilt is the fixed rotation applied to every grid instance, in degrees.
const instanceTilt float32 = 45

// Instance is the CPU-side transform of one drawn copy of a mesh.
// It holds no GPU state; ToRaw produces the blob written to the instance buffer.
type Instance struct {
	Position mgl32.Vec3
	Rotation mgl32.Quat
}

// ModelMatrix returns translation * rotation.
//
// Returns:
//   - mgl32.Mat4: the model-to-world transform
func (i Instance) ModelMatrix() mgl32.Mat4 {
	return mgl32.Translate3D(i.Position[0], i.Position[1], i.Position[2]).Mul4(i.Rotation.Mat4())
}

// ToRaw converts the instance into its GPU layout. The normal matrix is the rotation
// alone since instances are never scaled.
//
// Returns:
//   - GPUInstance: the 100-byte per-instance blob
func (i Instance) ToRaw() GPUInstance {
	return GPUInstance{
		Model:  i.ModelMatrix(),
		Normal: i.Rotation.Mat4().Mat3(),
	}
}

// Spin rotates the instance about world +Y by angle radians, applied after its current rotation.
//
// Parameters:
//   - angle: rotation in radians
func (i *Instance) Spin(angle float32) {
	i.Rotation = mgl32.QuatRotate(angle, common.WorldUp).Mul(i.Rotation).Normalize()
}

// NewInstanceGrid lays out perRow*perRow instances on the XZ plane, row by row along +Z.
//
// Each instance sits at spacing * ((x, 0, z) - (perRow/2, 0, perRow/2)), so for an even
// perRow exactly one instance lands on the origin. Every instance is tilted 45° about its
// normalized position; the origin instance, which has no direction, is tilted about +Z.
//
// Parameters:
//   - perRow: number of instances along each axis
//   - spacing: distance between neighbouring instances
//
// Returns:
//   - []Instance: the instances in row-major order, or nil when perRow is not positive
func NewInstanceGrid(perRow int, spacing float32) []Instance {
	if perRow <= 0 {
		return nil
	}

	displacement := mgl32.Vec3{float32(perRow) * 0.5, 0, float32(perRow) * 0.5}
	tilt := mgl32.DegToRad(instanceTilt)

	instances := make([]Instance, 0, perRow*perRow)
	for z := 0; z < perRow; z++ {
		for x := 0; x < perRow; x++ {
			position := mgl32.Vec3{float32(x), 0, float32(z)}.Sub(displacement).Mul(spacing)
			axis := common.NormalizeOr(position, mgl32.Vec3{0, 0, 1})
			instances = append(instances, Instance{
				Position: position,
				Rotation: mgl32.QuatRotate(tilt, axis),
			})
		}
	}
	return instances
}

// MarshalInstances serializes instances into one contiguous instance buffer payload.
//
// Parameters:
//   - instances: the instances in draw order
//
// Returns:
//   - []byte: len(instances) * 100 bytes, or nil when empty
func MarshalInstances(instances []Instance) []byte {
	raw := make([]*GPUInstance, len(instances))
	for i := range instances {
		r := instances[i].ToRaw()
		raw[i] = &r
	}
	return common.MarshalSlice(raw)
}

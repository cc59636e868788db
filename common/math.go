package common

import (
	"encoding/binary"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// OpenGLToWGPU remaps clip-space depth from the OpenGL range [-1, 1] to the WebGPU range [0, 1].
// The matrix is stored in column-major order and must be pre-multiplied onto any projection
// built with mgl32.Perspective before it is uploaded.
var OpenGLToWGPU = mgl32.Mat4{
	1, 0, 0, 0,
	0, 1, 0, 0,
	0, 0, 0.5, 0,
	0, 0, 0.5, 1,
}

// SafeFracPi2 is the largest pitch magnitude, in radians, that keeps a yaw/pitch camera
// from flipping over its up vector.
const SafeFracPi2 = float32(math.Pi/2 - 0.0001)

// WorldUp is the fixed world-space up axis.
var WorldUp = mgl32.Vec3{0, 1, 0}

// Marshaler is implemented by GPU-layout structs that serialize themselves for buffer uploads.
type Marshaler interface {
	// Size returns the serialized size in bytes.
	Size() int

	// Marshal returns the little-endian byte representation of the struct.
	Marshal() []byte
}

// MarshalSlice serializes a slice of GPU structs into one contiguous byte buffer.
//
// Parameters:
//   - items: the GPU structs to serialize, in buffer order
//
// Returns:
//   - []byte: the concatenated byte representation, or nil if items is empty
func MarshalSlice[T Marshaler](items []T) []byte {
	if len(items) == 0 {
		return nil
	}
	buf := make([]byte, 0, items[0].Size()*len(items))
	for _, item := range items {
		buf = append(buf, item.Marshal()...)
	}
	return buf
}

// PutFloat32s writes values as little-endian float32 into buf starting at offset.
//
// Parameters:
//   - buf: destination buffer, must hold offset+4*len(values) bytes
//   - offset: byte offset of the first value
//   - values: the values to write
//
// Returns:
//   - int: the byte offset just past the last written value
func PutFloat32s(buf []byte, offset int, values ...float32) int {
	for _, v := range values {
		binary.LittleEndian.PutUint32(buf[offset:], math.Float32bits(v))
		offset += 4
	}
	return offset
}

// NormalizeOr returns v scaled to unit length, or fallback when v is too short to normalize.
//
// Parameters:
//   - v: the vector to normalize
//   - fallback: the vector returned when v has (near) zero length
//
// Returns:
//   - mgl32.Vec3: the normalized vector or fallback
func NormalizeOr(v, fallback mgl32.Vec3) mgl32.Vec3 {
	if v.LenSqr() < 1e-12 {
		return fallback
	}
	return v.Normalize()
}

// ClampPitch limits pitch to [-limit, limit].
func ClampPitch(pitch, limit float32) float32 {
	return mgl32.Clamp(pitch, -limit, limit)
}

// CosDeg returns the cosine of an angle given in degrees.
func CosDeg(deg float32) float32 {
	return float32(math.Cos(float64(mgl32.DegToRad(deg))))
}
